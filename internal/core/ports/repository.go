package ports

import "context"

// Repository is the uniform persistence contract shared by every entity.
// Implementations are backed by one document-store collection each; mutating
// operations either return the post-mutation record or fail, never a partial
// write. Search treats zero matches as a successful empty result.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	// Update performs a full replace-by-id and returns the stored record.
	Update(ctx context.Context, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
	// Search runs an equality filter on a single field.
	Search(ctx context.Context, key string, value any) ([]T, error)
}
