package models

import (
	"errors"
)

var (
	ErrArtNotFound      = errors.New("models: art not found")
	ErrCategoryNotFound = errors.New("models: category not found")
	ErrUserNotFound     = errors.New("models: user not found")
	ErrDuplicateEmail   = errors.New("models: duplicate email")
	ErrCategoryRequired = errors.New("models: subcategory name is required")
	ErrEmailRequired    = errors.New("models: email is required")
	ErrInvalidToken     = errors.New("models: invalid or expired token")
	ErrForbidden        = errors.New("models: forbidden")
)
