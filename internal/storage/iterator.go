package storage

// RowIterator allows iterating over the rows of a table in insertion order.
// Not threadsafe
type RowIterator interface {
	// Returns true if there's another row available in the iterator
	HasNext() bool

	// Returns the next row in the iterator
	Next() *Row
}
