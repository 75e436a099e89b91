package interfaces

import (
	"context"

	"client_portal/internal/domain/entities"
)

// ResourceRepository abstracts DynamoDB persistence for one resource variant.
//
// Contract:
//   - GetByID reports found=false for an unknown id instead of an error.
//   - ListByClient returns only items whose clientId matches, newest first
//     (variant sort key descending), sliced by offset/limit. An empty status
//     narrows nothing.
//   - Create assigns the item id; Save replaces the whole item
//     (last-write-wins, the store's own write semantics).
type ResourceRepository[T entities.Resource] interface {
	ListByClient(ctx context.Context, clientID, status string, limit, offset int) ([]T, error)
	GetByID(ctx context.Context, id string) (T, bool, error)
	Create(ctx context.Context, r T) (T, error)
	Save(ctx context.Context, r T) (T, error)
	Delete(ctx context.Context, id string) error
}
