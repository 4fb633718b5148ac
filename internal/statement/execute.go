package statement

import (
	"fmt"
	"io"

	"github.com/nbroyles/rowdb/internal/storage"
	"github.com/nbroyles/rowdb/internal/table"
)

// Execute runs a prepared statement against tbl. Rows produced by a select
// are written to out, one per line
func Execute(stmt *Statement, tbl *table.Table, out io.Writer) error {
	switch stmt.Type {
	case Insert:
		if err := tbl.Append(stmt.RowToInsert); err != nil {
			return fmt.Errorf("failed executing insert: %w", err)
		}
		return nil
	case Select:
		if err := writeRows(out, tbl.Scan()); err != nil {
			return fmt.Errorf("failed executing select: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown statement type %d: %w", stmt.Type, ErrUnrecognizedStatement)
	}
}

func writeRows(out io.Writer, iter storage.RowIterator) error {
	for iter.HasNext() {
		if _, err := fmt.Fprintln(out, iter.Next()); err != nil {
			return fmt.Errorf("failed writing row: %w", err)
		}
	}

	return nil
}
