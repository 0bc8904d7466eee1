package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/guitarworld/guitar-store/internal/api/metrics"
	"github.com/guitarworld/guitar-store/internal/core/domain"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

const (
	// pageSize is the fixed listing window W.
	pageSize = 5
	// maxPage is the highest page number the catalog accepts; pages inside
	// the bound that fall past the data yield an empty slice, not an error.
	maxPage = 7
)

// CatalogCache abstracts the listing cache (Redis). A miss is (nil, false, nil).
type CatalogCache interface {
	GetList(ctx context.Context, style string) ([]domain.Guitar, bool, error)
	SetList(ctx context.Context, style string, guitars []domain.Guitar) error
	Invalidate(ctx context.Context) error
}

// GuitarService implements the catalog use cases. Write operations are
// admin-gated upstream by the access-control middleware.
type GuitarService struct {
	repo   ports.Repository[domain.Guitar]
	cache  CatalogCache
	logger zerolog.Logger
}

func NewGuitarService(repo ports.Repository[domain.Guitar], cache CatalogCache, logger zerolog.Logger) *GuitarService {
	return &GuitarService{repo: repo, cache: cache, logger: logger}
}

// List returns one page of the catalog, optionally filtered by style.
func (s *GuitarService) List(ctx context.Context, input ports.ListGuitarsInput) ([]domain.Guitar, error) {
	if input.Page < 1 || input.Page > maxPage {
		return nil, domain.ErrInvalidPage
	}
	if !input.Style.ValidFilter() {
		return nil, domain.ErrInvalidStyle
	}

	metrics.CatalogQueriesTotal.WithLabelValues(string(input.Style)).Inc()

	guitars, err := s.fetchByStyle(ctx, input.Style)
	if err != nil {
		return nil, fmt.Errorf("list guitars: %w", err)
	}

	start := (input.Page - 1) * pageSize
	if start >= len(guitars) {
		return []domain.Guitar{}, nil
	}
	end := start + pageSize
	if end > len(guitars) {
		end = len(guitars)
	}
	return guitars[start:end], nil
}

// fetchByStyle loads the full filtered listing, consulting the cache first.
// Cache failures are logged and bypassed, never surfaced to the caller.
func (s *GuitarService) fetchByStyle(ctx context.Context, style domain.GuitarStyle) ([]domain.Guitar, error) {
	if cached, ok, err := s.cache.GetList(ctx, string(style)); err != nil {
		s.logger.Warn().Err(err).Str("style", string(style)).Msg("catalog cache read failed, falling back to store")
	} else if ok {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	var guitars []domain.Guitar
	var err error
	if style == domain.StyleAll {
		guitars, err = s.repo.List(ctx)
	} else {
		guitars, err = s.repo.Search(ctx, "style", string(style))
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, string(style), guitars); err != nil {
		s.logger.Warn().Err(err).Str("style", string(style)).Msg("catalog cache write failed")
	}
	return guitars, nil
}

func (s *GuitarService) Get(ctx context.Context, id string) (*domain.Guitar, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GuitarService) Create(ctx context.Context, guitar *domain.Guitar) (*domain.Guitar, error) {
	if !guitar.Style.Valid() {
		return nil, domain.ErrInvalidStyle
	}

	created, err := s.repo.Create(ctx, guitar)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.GuitarsCreatedTotal.WithLabelValues(string(created.Style)).Inc()
	s.logger.Info().Str("guitar_id", created.ID).Str("style", string(created.Style)).Msg("guitar created")
	return created, nil
}

func (s *GuitarService) Edit(ctx context.Context, guitar *domain.Guitar) (*domain.Guitar, error) {
	if guitar.Style != "" && !guitar.Style.Valid() {
		return nil, domain.ErrInvalidStyle
	}

	updated, err := s.repo.Update(ctx, guitar)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("guitar_id", updated.ID).Msg("guitar updated")
	return updated, nil
}

func (s *GuitarService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("guitar_id", id).Msg("guitar deleted")
	return nil
}

func (s *GuitarService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
