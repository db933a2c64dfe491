// Package movies implements the movie collection: its stores, HTTP handlers
// and API documentation.
package movies

import "context"

// System defines the movie collection operations.
// Implementations serialize every read-modify-write so concurrent requests
// never observe a partially applied change or receive the same id.
type System interface {
	// List returns every movie in insertion order.
	List(ctx context.Context) ([]Movie, error)

	// Find retrieves a movie by id.
	// Returns ErrNotFound if the movie does not exist.
	Find(ctx context.Context, id int) (*Movie, error)

	// Create stores a new movie under the next unused id.
	// Ids are never reused, even after deletes.
	Create(ctx context.Context, in Input) (*Movie, error)

	// Update overwrites all three fields of an existing movie; absent input
	// fields become null. Returns ErrNotFound if the movie does not exist.
	Update(ctx context.Context, id int, in Input) (*Movie, error)

	// Delete removes a movie and returns the removed record.
	// Returns ErrNotFound if the movie does not exist.
	Delete(ctx context.Context, id int) (*Movie, error)
}
