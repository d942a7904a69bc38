// README: Generic keyed repository contract shared by every entity collection.
package store

import (
	"context"
	"errors"

	"railway/internal/types"
)

// ErrStorage marks a failed flush or read against the backing medium.
// A failed Add/Update/Delete is not committed; in-memory and durable state
// may diverge until the next successful flush.
var ErrStorage = errors.New("storage failure")

// IDSelector extracts the stable identity of an entity.
type IDSelector[T any] func(T) types.ID

// Repository is a durable homogeneous collection keyed by entity identity.
//
// GetAll returns entities in insertion order. Update replaces by id with
// delete-then-append semantics, so an updated entity always moves to the
// end of iteration order. Callers that need a stable display order must
// sort by their own field; store order is mutation-observable.
type Repository[T any] interface {
	GetByID(ctx context.Context, id types.ID) (T, bool, error)
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id types.ID) error
}
