package repositories

import (
	"context"
	"database/sql"

	"johuart/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, subcategory_name, image, art_count
		FROM categories
		ORDER BY subcategory_name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.SubcategoryName, &c.Image, &c.ArtCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepository) GetCategoryByName(ctx context.Context, subcategoryName string) (models.Category, error) {
	var c models.Category

	query := `
		SELECT id, subcategory_name, image, art_count
		FROM categories
		WHERE subcategory_name = ?
	`
	err := r.DB.QueryRowContext(ctx, query, subcategoryName).Scan(&c.ID, &c.SubcategoryName, &c.Image, &c.ArtCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, models.ErrCategoryNotFound
		}
		return models.Category{}, err
	}

	return c, nil
}

// AdjustArtCount applies the delta with a single in-place UPDATE so that
// concurrent adjustments for the same category never lose updates. There is
// no floor at zero. Returns ErrCategoryNotFound when no row matched.
func (r *CategoryRepository) AdjustArtCount(ctx context.Context, subcategoryName string, delta int) error {
	query := `UPDATE categories SET art_count = art_count + ? WHERE subcategory_name = ?`
	result, err := r.DB.ExecContext(ctx, query, delta, subcategoryName)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
