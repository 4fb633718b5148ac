package statement

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nbroyles/rowdb/internal/storage"
)

type Type int

const (
	Insert Type = iota
	Select
)

const (
	insertKeyword = "insert"
	selectKeyword = "select"
)

var (
	// ErrUnrecognizedStatement is returned when a line does not start with a known verb
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	// ErrSyntax is returned when the verb is known but its arguments are malformed
	ErrSyntax = errors.New("syntax error")
)

// Statement is a prepared data operation, ready to be executed against a table
type Statement struct {
	Type        Type
	RowToInsert *storage.Row
}

// Prepare parses a single input line into a statement. The line is expected
// to have been stripped of its trailing newline
func Prepare(line string) (*Statement, error) {
	if line == selectKeyword {
		return &Statement{Type: Select}, nil
	}

	if strings.HasPrefix(line, insertKeyword) {
		if tokens := strings.Fields(line); tokens[0] == insertKeyword {
			return prepareInsert(tokens[1:])
		}
	}

	return nil, fmt.Errorf("could not prepare %q: %w", line, ErrUnrecognizedStatement)
}

// prepareInsert expects exactly: id username email
func prepareInsert(args []string) (*Statement, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("insert takes 3 arguments, got %d: %w", len(args), ErrSyntax)
	}

	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	row := storage.NewRow(id, args[1], args[2])
	if err := row.Validate(); err != nil {
		return nil, &invalidRowError{err: err}
	}

	return &Statement{Type: Insert, RowToInsert: row}, nil
}

// parseID accepts any decimal that fits a signed or unsigned 32-bit integer.
// Negative ids wrap around into the unsigned id column
func parseID(token string) (uint32, error) {
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id < math.MinInt32 || id > math.MaxUint32 {
		return 0, fmt.Errorf("invalid id %q: %w", token, ErrSyntax)
	}

	return uint32(id), nil
}

// invalidRowError reports a column that cannot be stored as given. It
// matches ErrSyntax as well as the storage error it wraps
type invalidRowError struct {
	err error
}

func (e *invalidRowError) Error() string {
	return e.err.Error()
}

func (e *invalidRowError) Unwrap() error {
	return e.err
}

func (e *invalidRowError) Is(target error) bool {
	return target == ErrSyntax
}
