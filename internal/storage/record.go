package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Column widths and offsets of the encoded row. Every row occupies exactly
// RowSize bytes; fields are positional, there are no delimiters or length
// prefixes.
const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize
)

var (
	// ErrStringTooLong is returned when a text column does not fit its fixed width
	ErrStringTooLong = errors.New("string is too long")
	// ErrInvalidCharacter is returned when a text column contains a zero byte,
	// which the encoding reserves as padding
	ErrInvalidCharacter = errors.New("invalid character")
)

// Row is the in-memory representation of a single record in the table
type Row struct {
	ID       uint32
	Username string
	Email    string
}

func NewRow(id uint32, username string, email string) *Row {
	return &Row{
		ID:       id,
		Username: username,
		Email:    email,
	}
}

// Validate checks that both text columns survive encoding unchanged: they
// must fit within their widths and contain no zero bytes. Encoding an invalid
// row silently truncates, so callers are expected to validate before handing
// the row to storage
func (r *Row) Validate() error {
	if err := validateColumn("username", r.Username, UsernameSize); err != nil {
		return err
	}

	return validateColumn("email", r.Email, EmailSize)
}

func validateColumn(name string, value string, width int) error {
	if len(value) > width {
		return fmt.Errorf("%s is %d bytes, max %d: %w", name, len(value), width, ErrStringTooLong)
	}

	if i := strings.IndexByte(value, 0); i >= 0 {
		return fmt.Errorf("%s has a zero byte at %d: %w", name, i, ErrInvalidCharacter)
	}

	return nil
}

func (r *Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
