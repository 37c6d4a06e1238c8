package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"johuart/internal/models"
)

type ArtRepository struct {
	DB *sql.DB
}

func (r *ArtRepository) CreateArt(ctx context.Context, art models.Art) (models.Art, error) {
	art.CreatedAt = time.Now()

	query := `
		INSERT INTO arts (user_email, item_name, subcategory_name, image, short_description,
		                  rating, customization, processing_time, stock_status, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		art.UserEmail, art.ItemName, art.SubcategoryName, art.Image, art.ShortDescription,
		art.Rating, art.Customization, art.ProcessingTime, art.StockStatus, art.Price, art.CreatedAt,
	)
	if err != nil {
		return models.Art{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Art{}, err
	}
	art.ID = id

	return art, nil
}

func (r *ArtRepository) GetArtByID(ctx context.Context, id int64) (models.Art, error) {
	var art models.Art
	var updatedAt sql.NullTime

	query := `
		SELECT id, user_email, item_name, subcategory_name, image, short_description,
		       rating, customization, processing_time, stock_status, price, created_at, updated_at
		FROM arts
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&art.ID, &art.UserEmail, &art.ItemName, &art.SubcategoryName, &art.Image,
		&art.ShortDescription, &art.Rating, &art.Customization, &art.ProcessingTime,
		&art.StockStatus, &art.Price, &art.CreatedAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Art{}, models.ErrArtNotFound
		}
		return models.Art{}, err
	}
	if updatedAt.Valid {
		art.UpdatedAt = &updatedAt.Time
	}

	return art, nil
}

func (r *ArtRepository) GetArts(ctx context.Context, filter models.ArtFilter) ([]models.Art, error) {
	query := `
		SELECT id, user_email, item_name, subcategory_name, image, short_description,
		       rating, customization, processing_time, stock_status, price, created_at, updated_at
		FROM arts
	`
	var conditions []string
	var args []interface{}
	if filter.UserEmail != "" {
		conditions = append(conditions, "user_email = ?")
		args = append(args, filter.UserEmail)
	}
	if filter.Customization != "" {
		conditions = append(conditions, "customization = ?")
		args = append(args, filter.Customization)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return r.queryArts(ctx, query, args...)
}

func (r *ArtRepository) GetArtsBySubcategory(ctx context.Context, subcategoryName string) ([]models.Art, error) {
	query := `
		SELECT id, user_email, item_name, subcategory_name, image, short_description,
		       rating, customization, processing_time, stock_status, price, created_at, updated_at
		FROM arts
		WHERE subcategory_name = ?
		ORDER BY created_at DESC
	`
	return r.queryArts(ctx, query, subcategoryName)
}

func (r *ArtRepository) queryArts(ctx context.Context, query string, args ...interface{}) ([]models.Art, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arts []models.Art
	for rows.Next() {
		var art models.Art
		var updatedAt sql.NullTime
		err := rows.Scan(
			&art.ID, &art.UserEmail, &art.ItemName, &art.SubcategoryName, &art.Image,
			&art.ShortDescription, &art.Rating, &art.Customization, &art.ProcessingTime,
			&art.StockStatus, &art.Price, &art.CreatedAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			art.UpdatedAt = &updatedAt.Time
		}
		arts = append(arts, art)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return arts, nil
}

// UpdateArt writes only the fields present in upd. Omitted fields keep their
// stored values. Changing subcategory_name does not move the art between
// category counters.
func (r *ArtRepository) UpdateArt(ctx context.Context, id int64, upd models.ArtUpdate) (models.Art, error) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		set = append(set, column+" = ?")
		args = append(args, value)
	}
	if upd.Image != nil {
		add("image", *upd.Image)
	}
	if upd.ItemName != nil {
		add("item_name", *upd.ItemName)
	}
	if upd.SubcategoryName != nil {
		add("subcategory_name", *upd.SubcategoryName)
	}
	if upd.ShortDescription != nil {
		add("short_description", *upd.ShortDescription)
	}
	if upd.Rating != nil {
		add("rating", *upd.Rating)
	}
	if upd.Customization != nil {
		add("customization", *upd.Customization)
	}
	if upd.ProcessingTime != nil {
		add("processing_time", *upd.ProcessingTime)
	}
	if upd.StockStatus != nil {
		add("stock_status", *upd.StockStatus)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}

	if len(set) > 0 {
		add("updated_at", time.Now())
		query := "UPDATE arts SET " + strings.Join(set, ", ") + " WHERE id = ?"
		args = append(args, id)

		result, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return models.Art{}, err
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return models.Art{}, err
		}
		if rowsAffected == 0 {
			return models.Art{}, models.ErrArtNotFound
		}
	}

	return r.GetArtByID(ctx, id)
}

// DeleteArt removes the art and reports ErrArtNotFound when no row matched,
// so a concurrent double delete never reaches the counter step twice.
func (r *ArtRepository) DeleteArt(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM arts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrArtNotFound
	}
	return nil
}

func (r *ArtRepository) SetArtImage(ctx context.Context, id int64, imageURL string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE arts SET image = ?, updated_at = ? WHERE id = ?`, imageURL, time.Now(), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrArtNotFound
	}
	return nil
}
