package ports

import (
	"context"

	"github.com/guitarworld/guitar-store/internal/core/domain"
)

// ListGuitarsInput carries the catalog listing query. Page is 1-based.
type ListGuitarsInput struct {
	Page  int
	Style domain.GuitarStyle
}

// GuitarService defines catalog use cases. Create, Edit, and Delete are
// restricted to admins upstream by the access-control middleware.
type GuitarService interface {
	List(ctx context.Context, input ListGuitarsInput) ([]domain.Guitar, error)
	Get(ctx context.Context, id string) (*domain.Guitar, error)
	Create(ctx context.Context, guitar *domain.Guitar) (*domain.Guitar, error)
	Edit(ctx context.Context, guitar *domain.Guitar) (*domain.Guitar, error)
	Delete(ctx context.Context, id string) error
}
