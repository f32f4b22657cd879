package repository

import (
	"context"
	"errors"
)

// OrdersCollection is where order records are persisted.
const OrdersCollection = "orders"

// Persistence is the durable-write contract the placement pipeline depends
// on. Consumers define this interface, not the MongoDB implementation.
type Persistence interface {
	// Create writes a new record into the named collection and returns the
	// backend-generated internal id.
	Create(ctx context.Context, collection string, record interface{}) (string, error)

	// Update patches the given fields onto an existing record.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error

	// Find loads a record by its internal id into out.
	Find(ctx context.Context, collection, id string, out interface{}) error
}

var ErrRecordNotFound = errors.New("record not found")
