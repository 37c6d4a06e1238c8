package utils

import (
	"bytes"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Storage uploads art images to an S3-compatible bucket.
type Storage struct {
	client *s3.S3
	bucket string
}

func NewStorage(endpoint, region, bucket, accessKey, secretKey string) (*Storage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket is not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: new session: %w", err)
	}

	return &Storage{client: s3.New(sess), bucket: bucket}, nil
}

// UploadImage stores the file under folder/<uuid><ext> with public-read
// access and returns the object URL.
func (s *Storage) UploadImage(file []byte, folder, fileName, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(fileName))

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s/%s", aws.StringValue(s.client.Config.Endpoint), s.bucket, key), nil
}
