package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/guitarworld/guitar-store/internal/core/domain"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

// stubCache is a recording in-memory CatalogCache.
type stubCache struct {
	lists       map[string][]domain.Guitar
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{lists: make(map[string][]domain.Guitar)}
}

func (c *stubCache) GetList(_ context.Context, style string) ([]domain.Guitar, bool, error) {
	guitars, ok := c.lists[style]
	return guitars, ok, nil
}

func (c *stubCache) SetList(_ context.Context, style string, guitars []domain.Guitar) error {
	c.lists[style] = guitars
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.lists = make(map[string][]domain.Guitar)
	c.invalidated++
	return nil
}

// seedCatalog builds n guitars alternating Electric/Acoustic, ids g1..gn.
func seedCatalog(n int) []domain.Guitar {
	guitars := make([]domain.Guitar, n)
	for i := range guitars {
		style := domain.StyleElectric
		if i%2 == 1 {
			style = domain.StyleAcoustic
		}
		guitars[i] = domain.Guitar{
			ID:    fmt.Sprintf("g%d", i+1),
			Brand: "Brand",
			Style: style,
			Price: 100,
		}
	}
	return guitars
}

func TestGuitarService_List_PageWindow(t *testing.T) {
	repo := newStubGuitarRepo(seedCatalog(12)...)
	svc := NewGuitarService(repo, newStubCache(), zerolog.Nop())

	page1, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 1, Style: domain.StyleAll})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page1) != 5 || page1[0].ID != "g1" || page1[4].ID != "g5" {
		t.Fatalf("unexpected page 1: %+v", page1)
	}

	page3, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 3, Style: domain.StyleAll})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page3) != 2 || page3[0].ID != "g11" {
		t.Fatalf("unexpected page 3: %+v", page3)
	}
}

func TestGuitarService_List_StyleFilterDeterminism(t *testing.T) {
	// Catalog of 10: odd indices are Acoustic, so Electric = g1,g3,g5,g7,g9.
	repo := newStubGuitarRepo(seedCatalog(10)...)
	svc := NewGuitarService(repo, newStubCache(), zerolog.Nop())

	for attempt := 0; attempt < 3; attempt++ {
		page1, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 1, Style: domain.StyleElectric})
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(page1) != 5 {
			t.Fatalf("expected 5 electric guitars, got %d", len(page1))
		}
		want := []string{"g1", "g3", "g5", "g7", "g9"}
		for i, g := range page1 {
			if g.ID != want[i] {
				t.Fatalf("attempt %d: unexpected item %d: %+v", attempt, i, g)
			}
			if g.Style != domain.StyleElectric {
				t.Fatalf("non-electric guitar in filtered page: %+v", g)
			}
		}
	}
}

func TestGuitarService_List_EmptyPageWithinBounds(t *testing.T) {
	repo := newStubGuitarRepo(seedCatalog(3)...)
	svc := NewGuitarService(repo, newStubCache(), zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 7, Style: domain.StyleAll})
	if err != nil {
		t.Fatalf("expected empty page, got error: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty slice, got %+v", page)
	}
}

func TestGuitarService_List_Validation(t *testing.T) {
	repo := newStubGuitarRepo(seedCatalog(3)...)
	svc := NewGuitarService(repo, newStubCache(), zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 0, Style: domain.StyleAll}); err != domain.ErrInvalidPage {
		t.Fatalf("expected ErrInvalidPage for page 0, got %v", err)
	}
	if _, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 8, Style: domain.StyleAll}); err != domain.ErrInvalidPage {
		t.Fatalf("expected ErrInvalidPage for page 8, got %v", err)
	}
	if _, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 1, Style: "test"}); err != domain.ErrInvalidStyle {
		t.Fatalf("expected ErrInvalidStyle, got %v", err)
	}
}

func TestGuitarService_List_CacheHit(t *testing.T) {
	repo := newStubGuitarRepo() // empty store
	cache := newStubCache()
	cache.lists[string(domain.StyleAll)] = seedCatalog(6)
	svc := NewGuitarService(repo, cache, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListGuitarsInput{Page: 2, Style: domain.StyleAll})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	// Served from cache: the empty repo would have produced nothing.
	if len(page) != 1 || page[0].ID != "g6" {
		t.Fatalf("expected cached page, got %+v", page)
	}
}

func TestGuitarService_Create(t *testing.T) {
	repo := newStubGuitarRepo()
	cache := newStubCache()
	cache.lists[string(domain.StyleAll)] = seedCatalog(2)
	svc := NewGuitarService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Guitar{
		Brand: "Gibson",
		Style: domain.StyleAcoustic,
		Price: 900,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Style != domain.StyleAcoustic {
		t.Fatalf("unexpected style: %q", created.Style)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation after create")
	}
}

func TestGuitarService_Create_InvalidStyle(t *testing.T) {
	svc := NewGuitarService(newStubGuitarRepo(), newStubCache(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Guitar{Style: "test"}); err != domain.ErrInvalidStyle {
		t.Fatalf("expected ErrInvalidStyle, got %v", err)
	}
	// The filter-only All value is not storable either.
	if _, err := svc.Create(context.Background(), &domain.Guitar{Style: domain.StyleAll}); err != domain.ErrInvalidStyle {
		t.Fatalf("expected ErrInvalidStyle for All, got %v", err)
	}
}

func TestGuitarService_Edit(t *testing.T) {
	repo := newStubGuitarRepo(seedCatalog(1)...)
	cache := newStubCache()
	svc := NewGuitarService(repo, cache, zerolog.Nop())

	updated, err := svc.Edit(context.Background(), &domain.Guitar{ID: "g1", Brand: "Ibanez", Style: domain.StyleElectric, Price: 500})
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	if updated.Brand != "Ibanez" {
		t.Fatalf("unexpected record: %+v", updated)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation after edit")
	}

	if _, err := svc.Edit(context.Background(), &domain.Guitar{ID: "missing", Style: domain.StyleElectric}); err != domain.ErrGuitarNotFound {
		t.Fatalf("expected ErrGuitarNotFound, got %v", err)
	}
}

func TestGuitarService_Delete(t *testing.T) {
	repo := newStubGuitarRepo(seedCatalog(1)...)
	cache := newStubCache()
	svc := NewGuitarService(repo, cache, zerolog.Nop())

	if err := svc.Delete(context.Background(), "g1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation after delete")
	}

	if err := svc.Delete(context.Background(), "g1"); err != domain.ErrGuitarNotFound {
		t.Fatalf("expected ErrGuitarNotFound, got %v", err)
	}
}

func TestGuitarService_Get(t *testing.T) {
	repo := newStubGuitarRepo(seedCatalog(1)...)
	svc := NewGuitarService(repo, newStubCache(), zerolog.Nop())

	guitar, err := svc.Get(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if guitar.ID != "g1" {
		t.Fatalf("unexpected guitar: %+v", guitar)
	}

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrGuitarNotFound {
		t.Fatalf("expected ErrGuitarNotFound, got %v", err)
	}
}
