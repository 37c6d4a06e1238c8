package services

import (
	"context"
	"log"
	"strings"

	"johuart/internal/models"
)

// ArtStore is the slice of the art repository the catalog service needs.
type ArtStore interface {
	CreateArt(ctx context.Context, art models.Art) (models.Art, error)
	GetArtByID(ctx context.Context, id int64) (models.Art, error)
	GetArts(ctx context.Context, filter models.ArtFilter) ([]models.Art, error)
	GetArtsBySubcategory(ctx context.Context, subcategoryName string) ([]models.Art, error)
	UpdateArt(ctx context.Context, id int64, upd models.ArtUpdate) (models.Art, error)
	DeleteArt(ctx context.Context, id int64) error
	SetArtImage(ctx context.Context, id int64, imageURL string) error
}

type CategoryStore interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByName(ctx context.Context, subcategoryName string) (models.Category, error)
	AdjustArtCount(ctx context.Context, subcategoryName string, delta int) error
}

// ArtService keeps the denormalized per-category art count in step with art
// creation and removal. The art write and the counter write hit two
// independent tables with no shared transaction: within one call the art
// write always happens first, and a failed counter adjustment is logged but
// never rolls back the art write. See the consistency notes in DESIGN.md.
type ArtService struct {
	ArtRepo      ArtStore
	CategoryRepo CategoryStore
	ErrorLog     *log.Logger
}

func (s *ArtService) CreateArt(ctx context.Context, art models.Art) (models.Art, error) {
	if strings.TrimSpace(art.SubcategoryName) == "" {
		return models.Art{}, models.ErrCategoryRequired
	}

	created, err := s.ArtRepo.CreateArt(ctx, art)
	if err != nil {
		return models.Art{}, err
	}

	if err := s.CategoryRepo.AdjustArtCount(ctx, created.SubcategoryName, 1); err != nil {
		s.logf("art %d created but art_count for category %q was not incremented: %v",
			created.ID, created.SubcategoryName, err)
	}

	return created, nil
}

// DeleteArt reads the art first to learn its category; an absent art stops
// the operation before the counter step. The decrement is applied only when
// the delete itself removed a row, so two deletes of the same id decrement
// at most once.
func (s *ArtService) DeleteArt(ctx context.Context, id int64) error {
	art, err := s.ArtRepo.GetArtByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ArtRepo.DeleteArt(ctx, id); err != nil {
		return err
	}

	if err := s.CategoryRepo.AdjustArtCount(ctx, art.SubcategoryName, -1); err != nil {
		s.logf("art %d deleted but art_count for category %q was not decremented: %v",
			id, art.SubcategoryName, err)
	}

	return nil
}

// UpdateArt replaces only the supplied fields. Changing the category does not
// migrate the art between category counters.
func (s *ArtService) UpdateArt(ctx context.Context, id int64, upd models.ArtUpdate) (models.Art, error) {
	return s.ArtRepo.UpdateArt(ctx, id, upd)
}

func (s *ArtService) GetArtByID(ctx context.Context, id int64) (models.Art, error) {
	return s.ArtRepo.GetArtByID(ctx, id)
}

func (s *ArtService) GetArts(ctx context.Context, filter models.ArtFilter) ([]models.Art, error) {
	return s.ArtRepo.GetArts(ctx, filter)
}

func (s *ArtService) GetArtsBySubcategory(ctx context.Context, subcategoryName string) ([]models.Art, error) {
	return s.ArtRepo.GetArtsBySubcategory(ctx, subcategoryName)
}

func (s *ArtService) SetArtImage(ctx context.Context, id int64, imageURL string) error {
	return s.ArtRepo.SetArtImage(ctx, id, imageURL)
}

func (s *ArtService) logf(format string, args ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
