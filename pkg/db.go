package pkg

import (
	"errors"
	"fmt"
	"io"

	"github.com/nbroyles/rowdb/internal/statement"
	"github.com/nbroyles/rowdb/internal/storage"
	"github.com/nbroyles/rowdb/internal/table"
	log "github.com/sirupsen/logrus"
)

// ErrClosed is returned when using a DB after Close
var ErrClosed = errors.New("database is closed")

// DB is an in-memory, single table row store. Not threadsafe
type DB struct {
	table  *table.Table
	closed bool
}

// New creates an empty database
func New() *DB {
	return &DB{table: table.New()}
}

// Exec runs a single command line against the database, writing any rows it
// produces to out, and returns the resulting status
func (d *DB) Exec(line string, out io.Writer) statement.Status {
	if d.closed {
		log.Panic(ErrClosed)
	}

	return statement.NewPipeline(d.table, out).Process(line)
}

// Insert appends a row. Text columns longer than their fixed width are
// rejected with storage.ErrStringTooLong, columns holding a zero byte with
// storage.ErrInvalidCharacter and a full table with table.ErrTableFull
func (d *DB) Insert(id uint32, username string, email string) error {
	if d.closed {
		return ErrClosed
	}

	row := storage.NewRow(id, username, email)
	if err := row.Validate(); err != nil {
		return fmt.Errorf("could not insert row %d: %w", id, err)
	}

	if err := d.table.Append(row); err != nil {
		return fmt.Errorf("could not insert row %d: %w", id, err)
	}

	return nil
}

// Rows returns every row in insertion order
func (d *DB) Rows() ([]*storage.Row, error) {
	if d.closed {
		return nil, ErrClosed
	}

	var rows []*storage.Row
	for iter := d.table.Scan(); iter.HasNext(); {
		rows = append(rows, iter.Next())
	}

	return rows, nil
}

// Row returns the row at the zero-based insertion position rowNum.
// table.ErrRowOutOfRange is returned for positions not written yet
func (d *DB) Row(rowNum uint32) (*storage.Row, error) {
	if d.closed {
		return nil, ErrClosed
	}

	row, err := d.table.Row(rowNum)
	if err != nil {
		return nil, fmt.Errorf("could not read row: %w", err)
	}

	return row, nil
}

// Close releases all memory held by the database
func (d *DB) Close() error {
	if d.closed {
		return ErrClosed
	}

	d.table.Close()
	d.closed = true

	return nil
}
