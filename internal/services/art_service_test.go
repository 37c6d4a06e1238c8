package services

import (
	"context"
	"errors"
	"testing"

	"johuart/internal/models"
)

type fakeArtStore struct {
	arts       map[int64]models.Art
	nextID     int64
	getCalls   int
	listCalls  int
	failCreate error
	failDelete error
}

func newFakeArtStore() *fakeArtStore {
	return &fakeArtStore{arts: make(map[int64]models.Art), nextID: 1}
}

func (f *fakeArtStore) CreateArt(_ context.Context, art models.Art) (models.Art, error) {
	if f.failCreate != nil {
		return models.Art{}, f.failCreate
	}
	art.ID = f.nextID
	f.nextID++
	f.arts[art.ID] = art
	return art, nil
}

func (f *fakeArtStore) GetArtByID(_ context.Context, id int64) (models.Art, error) {
	f.getCalls++
	art, ok := f.arts[id]
	if !ok {
		return models.Art{}, models.ErrArtNotFound
	}
	return art, nil
}

func (f *fakeArtStore) GetArts(_ context.Context, filter models.ArtFilter) ([]models.Art, error) {
	f.listCalls++
	var out []models.Art
	for _, art := range f.arts {
		if filter.UserEmail != "" && art.UserEmail != filter.UserEmail {
			continue
		}
		if filter.Customization != "" && art.Customization != filter.Customization {
			continue
		}
		out = append(out, art)
	}
	return out, nil
}

func (f *fakeArtStore) GetArtsBySubcategory(_ context.Context, name string) ([]models.Art, error) {
	f.listCalls++
	var out []models.Art
	for _, art := range f.arts {
		if art.SubcategoryName == name {
			out = append(out, art)
		}
	}
	return out, nil
}

func (f *fakeArtStore) UpdateArt(_ context.Context, id int64, upd models.ArtUpdate) (models.Art, error) {
	art, ok := f.arts[id]
	if !ok {
		return models.Art{}, models.ErrArtNotFound
	}
	if upd.ItemName != nil {
		art.ItemName = *upd.ItemName
	}
	if upd.SubcategoryName != nil {
		art.SubcategoryName = *upd.SubcategoryName
	}
	if upd.Price != nil {
		art.Price = *upd.Price
	}
	f.arts[id] = art
	return art, nil
}

func (f *fakeArtStore) DeleteArt(_ context.Context, id int64) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.arts[id]; !ok {
		return models.ErrArtNotFound
	}
	delete(f.arts, id)
	return nil
}

func (f *fakeArtStore) SetArtImage(_ context.Context, id int64, imageURL string) error {
	art, ok := f.arts[id]
	if !ok {
		return models.ErrArtNotFound
	}
	art.Image = imageURL
	f.arts[id] = art
	return nil
}

type fakeCategoryStore struct {
	counts      map[string]int
	adjustCalls int
	adjustErr   error
}

func newFakeCategoryStore(names ...string) *fakeCategoryStore {
	counts := make(map[string]int)
	for _, n := range names {
		counts[n] = 0
	}
	return &fakeCategoryStore{counts: counts}
}

func (f *fakeCategoryStore) GetAllCategories(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for name, count := range f.counts {
		out = append(out, models.Category{SubcategoryName: name, ArtCount: count})
	}
	return out, nil
}

func (f *fakeCategoryStore) GetCategoryByName(_ context.Context, name string) (models.Category, error) {
	count, ok := f.counts[name]
	if !ok {
		return models.Category{}, models.ErrCategoryNotFound
	}
	return models.Category{SubcategoryName: name, ArtCount: count}, nil
}

func (f *fakeCategoryStore) AdjustArtCount(_ context.Context, name string, delta int) error {
	f.adjustCalls++
	if f.adjustErr != nil {
		return f.adjustErr
	}
	if _, ok := f.counts[name]; !ok {
		return models.ErrCategoryNotFound
	}
	f.counts[name] += delta
	return nil
}

func newTestService(arts *fakeArtStore, cats *fakeCategoryStore) *ArtService {
	return &ArtService{ArtRepo: arts, CategoryRepo: cats}
}

func TestCreateArtIncrementsCategoryCount(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore("ceramics")
	svc := newTestService(arts, cats)

	created, err := svc.CreateArt(context.Background(), models.Art{
		UserEmail:       "a@x.com",
		SubcategoryName: "ceramics",
		Price:           10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a store-assigned id")
	}
	if got := cats.counts["ceramics"]; got != 1 {
		t.Fatalf("expected art_count 1, got %d", got)
	}
}

func TestCreateArtRequiresCategory(t *testing.T) {
	cases := []struct {
		name        string
		subcategory string
	}{
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arts := newFakeArtStore()
			cats := newFakeCategoryStore("ceramics")
			svc := newTestService(arts, cats)

			_, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: tc.subcategory})
			if !errors.Is(err, models.ErrCategoryRequired) {
				t.Fatalf("expected ErrCategoryRequired, got %v", err)
			}
			if len(arts.arts) != 0 {
				t.Fatal("art must not be inserted without a category key")
			}
			if cats.adjustCalls != 0 {
				t.Fatal("counter must not be touched without a category key")
			}
		})
	}
}

func TestCreateArtToleratesCounterFailure(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore()
	cats.adjustErr = errors.New("storage down")
	svc := newTestService(arts, cats)

	created, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: "ceramics"})
	if err != nil {
		t.Fatalf("create must not fail when only the counter step fails: %v", err)
	}
	if _, ok := arts.arts[created.ID]; !ok {
		t.Fatal("art insert must not be rolled back")
	}
}

func TestCreateArtUnknownCategoryStillInserts(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore("ceramics")
	svc := newTestService(arts, cats)

	created, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: "glasswork"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := arts.arts[created.ID]; !ok {
		t.Fatal("art must be inserted even when its category has no counter row")
	}
	if got := cats.counts["ceramics"]; got != 0 {
		t.Fatalf("unrelated counter changed: %d", got)
	}
}

func TestCreateArtPrimaryFailureAbortsOperation(t *testing.T) {
	arts := newFakeArtStore()
	arts.failCreate = errors.New("insert failed")
	cats := newFakeCategoryStore("ceramics")
	svc := newTestService(arts, cats)

	_, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: "ceramics"})
	if err == nil {
		t.Fatal("expected error")
	}
	if cats.adjustCalls != 0 {
		t.Fatal("counter must not be adjusted when the insert fails")
	}
}

func TestDeleteArtDecrementsCategoryCount(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore("ceramics")
	svc := newTestService(arts, cats)

	created, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: "ceramics", Price: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cats.counts["ceramics"]; got != 1 {
		t.Fatalf("expected art_count 1 after create, got %d", got)
	}

	if err := svc.DeleteArt(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cats.counts["ceramics"]; got != 0 {
		t.Fatalf("expected art_count back to 0 after delete, got %d", got)
	}
}

func TestDeleteArtNotFoundLeavesCountUnchanged(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore("ceramics")
	cats.counts["ceramics"] = 3
	svc := newTestService(arts, cats)

	err := svc.DeleteArt(context.Background(), 42)
	if !errors.Is(err, models.ErrArtNotFound) {
		t.Fatalf("expected ErrArtNotFound, got %v", err)
	}
	if cats.adjustCalls != 0 {
		t.Fatal("counter must not be touched for an absent art")
	}
	if got := cats.counts["ceramics"]; got != 3 {
		t.Fatalf("count changed: %d", got)
	}
}

func TestDoubleDeleteDecrementsAtMostOnce(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore("ceramics")
	svc := newTestService(arts, cats)

	created, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: "ceramics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteArt(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err = svc.DeleteArt(context.Background(), created.ID)
	if !errors.Is(err, models.ErrArtNotFound) {
		t.Fatalf("second delete: expected ErrArtNotFound, got %v", err)
	}
	if got := cats.counts["ceramics"]; got != 0 {
		t.Fatalf("decrement applied twice, art_count %d", got)
	}
	if cats.adjustCalls != 2 {
		t.Fatalf("expected one increment and one decrement, got %d adjust calls", cats.adjustCalls)
	}
}

func TestDeleteDecrementHasNoFloor(t *testing.T) {
	arts := newFakeArtStore()
	arts.arts[7] = models.Art{ID: 7, SubcategoryName: "ceramics"}
	cats := newFakeCategoryStore("ceramics")
	svc := newTestService(arts, cats)

	if err := svc.DeleteArt(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cats.counts["ceramics"]; got != -1 {
		t.Fatalf("expected count -1 (no floor), got %d", got)
	}
}

func TestUpdateArtDoesNotMigrateCounters(t *testing.T) {
	arts := newFakeArtStore()
	cats := newFakeCategoryStore("ceramics", "glasswork")
	svc := newTestService(arts, cats)

	created, err := svc.CreateArt(context.Background(), models.Art{SubcategoryName: "ceramics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newCategory := "glasswork"
	if _, err := svc.UpdateArt(context.Background(), created.ID, models.ArtUpdate{SubcategoryName: &newCategory}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cats.counts["ceramics"]; got != 1 {
		t.Fatalf("old category decremented on update: %d", got)
	}
	if got := cats.counts["glasswork"]; got != 0 {
		t.Fatalf("new category incremented on update: %d", got)
	}
}
