package usecase

import (
	"context"
	"errors"
	"time"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("resource belongs to another client")
	ErrInvalidStatus = errors.New("invalid status")
	ErrMissingFields = errors.New("missing required fields")
)

const (
	// DefaultPageLimit is applied when the caller supplies no limit.
	DefaultPageLimit = 50
	// MaxPageLimit caps caller-supplied limits. The upstream behavior was
	// unclamped; the clamp is a deliberate hardening deviation.
	MaxPageLimit = 100

	// StatusFilterAll is the sentinel that disables status narrowing.
	StatusFilterAll = "all"
)

// Page is one window of a client's records. Total counts the items in this
// page, not the full matching set.
type Page[T any] struct {
	Items  []T
	Limit  int
	Offset int
}

// ResourceAccessor is the single ownership gate shared by all resource
// variants. Every operation on an existing record confirms existence first
// and then re-checks that the record's clientId matches the caller; the
// check is never cached across requests.
type ResourceAccessor[T entities.Resource] struct {
	repo interfaces.ResourceRepository[T]
}

func NewResourceAccessor[T entities.Resource](repo interfaces.ResourceRepository[T]) *ResourceAccessor[T] {
	return &ResourceAccessor[T]{repo: repo}
}

// List returns the caller's own records, optionally narrowed by status.
// No match is an empty page, not an error.
func (a *ResourceAccessor[T]) List(ctx context.Context, clientID, status string, limit, offset int) (Page[T], error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	filter := status
	if filter == StatusFilterAll {
		filter = ""
	}

	items, err := a.repo.ListByClient(ctx, clientID, filter, limit, offset)
	if err != nil {
		return Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Limit: limit, Offset: offset}, nil
}

// Get returns the record only when it exists and belongs to clientID.
func (a *ResourceAccessor[T]) Get(ctx context.Context, clientID, id string) (T, error) {
	var zero T

	r, found, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, ErrNotFound
	}
	if r.GetClientID() != clientID {
		return zero, ErrForbidden
	}
	return r, nil
}

// Create stamps ownership and timestamps and persists r. The clientId is
// always taken from the authenticated caller; whatever the payload carried
// is overwritten here.
func (a *ResourceAccessor[T]) Create(ctx context.Context, clientID string, r T) (T, error) {
	var zero T

	r.SetClientID(clientID)
	if r.GetStatus() == "" {
		r.SetStatus(r.DefaultStatus())
	}
	if !r.ValidStatus(r.GetStatus()) {
		return zero, ErrInvalidStatus
	}
	r.Stamp(time.Now().UTC())

	return a.repo.Create(ctx, r)
}

// Update fetches and ownership-checks the record, lets apply merge the
// patch, refreshes updated_at and persists. apply errors abort the write.
func (a *ResourceAccessor[T]) Update(ctx context.Context, clientID, id string, apply func(T) error) (T, error) {
	var zero T

	r, err := a.Get(ctx, clientID, id)
	if err != nil {
		return zero, err
	}
	if err := apply(r); err != nil {
		return zero, err
	}
	r.Touch(time.Now().UTC())

	return a.repo.Save(ctx, r)
}

// Delete removes the record after the same existence and ownership checks.
func (a *ResourceAccessor[T]) Delete(ctx context.Context, clientID, id string) error {
	if _, err := a.Get(ctx, clientID, id); err != nil {
		return err
	}
	return a.repo.Delete(ctx, id)
}
