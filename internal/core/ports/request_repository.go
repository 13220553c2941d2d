// Package ports defines the persistence contracts between the waste
// collection domain and its infrastructure.
package ports

import (
	"context"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
)

// RequestRepository persists collection requests.
type RequestRepository interface {
	// Add inserts a new request and returns it with the store-assigned ID.
	Add(ctx context.Context, r *request.Request) (*request.Request, error)

	// Get returns the request or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*request.Request, error)

	// UpdateStatus moves request id from status from to status to only if it
	// is still in from, and returns the number of affected rows. Zero rows
	// means another writer changed the status first.
	UpdateStatus(ctx context.Context, id kernel.ID, from, to request.Status) (int64, error)
}
