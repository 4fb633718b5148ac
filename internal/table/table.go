package table

import (
	"errors"
	"fmt"

	"github.com/nbroyles/rowdb/internal/storage"
	log "github.com/sirupsen/logrus"
)

const (
	PageSize = 4096
	MaxPages = 100

	RowsPerPage = PageSize / storage.RowSize
	MaxRows     = RowsPerPage * MaxPages
)

var (
	// ErrTableFull is returned when appending to a table that already holds MaxRows rows
	ErrTableFull = errors.New("table full")
	// ErrRowOutOfRange is returned when reading a row that has not been written yet
	ErrRowOutOfRange = errors.New("row out of range")
)

// Table is the single in-memory relation. Rows are stored back to back in
// fixed size pages which are allocated the first time a row maps into them
// and held until the table is closed. Not threadsafe
type Table struct {
	numRows uint32
	pages   [MaxPages][]byte
	codec   storage.Codec
}

func New() *Table {
	return &Table{}
}

// NumRows returns the number of rows appended so far
func (t *Table) NumRows() uint32 {
	return t.numRows
}

// AllocatedPages returns the number of pages currently owned by the table
func (t *Table) AllocatedPages() int {
	count := 0
	for _, page := range t.pages {
		if page != nil {
			count++
		}
	}

	return count
}

// Append encodes row into the next free slot. Capacity is checked before
// anything is written, so a failed append leaves the table unchanged
func (t *Table) Append(row *storage.Row) error {
	if t.numRows >= MaxRows {
		return fmt.Errorf("cannot append row %d: %w", t.numRows, ErrTableFull)
	}

	t.codec.Encode(row, t.rowSlot(t.numRows))
	t.numRows++

	return nil
}

// Row decodes the row stored at rowNum
func (t *Table) Row(rowNum uint32) (*storage.Row, error) {
	if rowNum >= t.numRows {
		return nil, fmt.Errorf("row %d requested, table has %d rows: %w", rowNum, t.numRows, ErrRowOutOfRange)
	}

	return t.codec.Decode(t.rowSlot(rowNum)), nil
}

// Scan returns an iterator over every row currently in the table, in
// insertion order. Each call starts a new pass from the first row
func (t *Table) Scan() storage.RowIterator {
	return newCursor(t)
}

// Close releases every allocated page and returns how many were released.
// The table is empty afterwards and subsequent calls release nothing
func (t *Table) Close() int {
	released := 0
	for i := range t.pages {
		if t.pages[i] == nil {
			continue
		}

		t.pages[i] = nil
		released++
	}

	log.WithFields(log.Fields{"pages": released, "rows": t.numRows}).Debug("released table pages")
	t.numRows = 0

	return released
}

// rowSlot returns the RowSize bytes backing rowNum, allocating the page that
// holds it if needed. Addressing beyond the next unwritten row is a
// programming error
func (t *Table) rowSlot(rowNum uint32) []byte {
	if rowNum > t.numRows || rowNum >= MaxRows {
		log.Panicf("row %d is not addressable. rows=%d, max=%d", rowNum, t.numRows, MaxRows)
	}

	pageNum, offset := address(rowNum)

	page := t.pages[pageNum]
	if page == nil {
		page = make([]byte, PageSize)
		t.pages[pageNum] = page

		log.WithFields(log.Fields{"page": pageNum, "row": rowNum}).Debug("allocated page")
	}

	return page[offset : offset+storage.RowSize]
}

// address maps a row number to the page holding it and the byte offset of
// the row within that page
func address(rowNum uint32) (pageNum uint32, offset uint32) {
	return rowNum / RowsPerPage, (rowNum % RowsPerPage) * storage.RowSize
}
