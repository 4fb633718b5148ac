package table

import (
	"github.com/nbroyles/rowdb/internal/storage"
	log "github.com/sirupsen/logrus"
)

// cursor walks the table from the first row up to the row count observed
// when it was created
type cursor struct {
	table  *Table
	rowNum uint32
	end    uint32
}

func newCursor(table *Table) *cursor {
	return &cursor{table: table, end: table.numRows}
}

func (c *cursor) HasNext() bool {
	return c.rowNum < c.end
}

func (c *cursor) Next() *storage.Row {
	if !c.HasNext() {
		log.Panic("iterator has no next element")
	}

	row := c.table.codec.Decode(c.table.rowSlot(c.rowNum))
	c.rowNum++

	return row
}

var _ storage.RowIterator = &cursor{}
