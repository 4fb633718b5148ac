package test

import (
	"fmt"
	"testing"

	"github.com/nbroyles/rowdb/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// MakeRows returns n rows with distinct ids starting at 1, named like
// (1, user1, user1@example.com)
func MakeRows(n int) []*storage.Row {
	rows := make([]*storage.Row, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("user%d", i)
		rows = append(rows, storage.NewRow(uint32(i), name, name+"@example.com"))
	}

	return rows
}

// AssertRows drains iter and checks it yields exactly expected, in order
func AssertRows(t *testing.T, expected []*storage.Row, iter storage.RowIterator) {
	var actual []*storage.Row
	for iter.HasNext() {
		actual = append(actual, iter.Next())
	}

	if len(expected) == 0 {
		assert.Empty(t, actual)
		return
	}

	assert.Equal(t, expected, actual)
}

type StaticIterator struct {
	rows    []*storage.Row
	pointer int
}

func NewStaticIterator(rows []*storage.Row) storage.RowIterator {
	return &StaticIterator{rows: rows}
}

func (s *StaticIterator) HasNext() bool {
	return s.pointer < len(s.rows)
}

func (s *StaticIterator) Next() *storage.Row {
	if !s.HasNext() {
		log.Panic("iterator has no next element")
	}

	row := s.rows[s.pointer]
	s.pointer += 1

	return row
}

var _ storage.RowIterator = &StaticIterator{}
