package types

import "errors"

// Store persists whole collection documents. A collection is read and
// replaced as one unit; backends never expose partial records.
//
// Business code goes through storage.Load and storage.Save, which add JSON
// decoding, default handling and the process-wide write lock on top of a
// Store.
type Store interface {
	// Read returns the stored document for the collection.
	// Returns ErrNoDocument if nothing has been written yet.
	Read(collection string) ([]byte, error)

	// Write durably replaces the document for the collection.
	Write(collection string, data []byte) error

	// Close releases backend resources.
	Close() error
}

// ErrNoDocument is returned by Store.Read for a collection with no durable copy.
var ErrNoDocument = errors.New("collection has no document")
