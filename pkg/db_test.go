package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/nbroyles/rowdb/internal/statement"
	"github.com/nbroyles/rowdb/internal/storage"
	"github.com/nbroyles/rowdb/internal/table"
	"github.com/nbroyles/rowdb/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	db := New()
	defer db.Close()

	rows, err := db.Rows()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDB_InsertAndRows(t *testing.T) {
	db := New()
	defer db.Close()

	expected := test.MakeRows(20)
	for _, row := range expected {
		require.NoError(t, db.Insert(row.ID, row.Username, row.Email))
	}

	rows, err := db.Rows()
	assert.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestDB_Row(t *testing.T) {
	db := New()
	defer db.Close()

	expected := test.MakeRows(table.RowsPerPage + 1)
	for _, row := range expected {
		require.NoError(t, db.Insert(row.ID, row.Username, row.Email))
	}

	row, err := db.Row(table.RowsPerPage)
	assert.NoError(t, err)
	assert.Equal(t, expected[table.RowsPerPage], row)

	_, err = db.Row(uint32(len(expected)))
	assert.True(t, errors.Is(err, table.ErrRowOutOfRange))
}

func TestDB_InsertZeroByte(t *testing.T) {
	db := New()
	defer db.Close()

	err := db.Insert(1, "a\x00b", "c")
	assert.True(t, errors.Is(err, storage.ErrInvalidCharacter))

	_, err = db.Row(0)
	assert.True(t, errors.Is(err, table.ErrRowOutOfRange))
}

func TestDB_InsertTooLong(t *testing.T) {
	db := New()
	defer db.Close()

	err := db.Insert(1, strings.Repeat("a", storage.UsernameSize+1), "a@b")
	assert.True(t, errors.Is(err, storage.ErrStringTooLong))

	rows, err := db.Rows()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDB_InsertFull(t *testing.T) {
	db := New()
	defer db.Close()

	for _, row := range test.MakeRows(table.MaxRows) {
		require.NoError(t, db.Insert(row.ID, row.Username, row.Email))
	}

	err := db.Insert(0, "late", "late@example.com")
	assert.True(t, errors.Is(err, table.ErrTableFull))
}

func TestDB_Exec(t *testing.T) {
	db := New()
	defer db.Close()

	var out strings.Builder
	assert.Equal(t, statement.StatusExecuted, db.Exec("insert 1 user1 user1@example.com", &out))
	assert.Equal(t, statement.StatusExecuted, db.Exec("insert 2 user2 user2@example.com", &out))
	assert.Equal(t, statement.StatusExecuted, db.Exec("select", &out))

	assert.Equal(t, "(1, user1, user1@example.com)\n(2, user2, user2@example.com)\n", out.String())
}

func TestDB_Close(t *testing.T) {
	db := New()
	require.NoError(t, db.Insert(1, "user1", "user1@example.com"))

	assert.NoError(t, db.Close())
	assert.Equal(t, 0, db.table.AllocatedPages())

	assert.Equal(t, ErrClosed, db.Close())
	assert.Equal(t, ErrClosed, db.Insert(2, "user2", "user2@example.com"))

	_, err := db.Rows()
	assert.Equal(t, ErrClosed, err)

	_, err = db.Row(0)
	assert.Equal(t, ErrClosed, err)

	assert.Panics(t, func() { db.Exec("select", &strings.Builder{}) })
}
