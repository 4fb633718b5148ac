package statement

import (
	"fmt"
	"io"

	"github.com/nbroyles/rowdb/internal/storage"
	"github.com/nbroyles/rowdb/internal/table"
)

const (
	metaSigil        = '.'
	exitCommand      = ".exit"
	constantsCommand = ".constants"
)

type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandExit
	MetaCommandUnrecognized
)

func isMetaCommand(line string) bool {
	return len(line) > 0 && line[0] == metaSigil
}

// DoMetaCommand handles a line starting with the meta-command sigil
func DoMetaCommand(line string, out io.Writer) (MetaCommandResult, error) {
	switch line {
	case exitCommand:
		return MetaCommandExit, nil
	case constantsCommand:
		if err := writeConstants(out); err != nil {
			return MetaCommandSuccess, err
		}
		return MetaCommandSuccess, nil
	default:
		return MetaCommandUnrecognized, nil
	}
}

func writeConstants(out io.Writer) error {
	constants := []struct {
		name  string
		value int
	}{
		{"ROW_SIZE", storage.RowSize},
		{"PAGE_SIZE", table.PageSize},
		{"ROWS_PER_PAGE", table.RowsPerPage},
		{"TABLE_MAX_PAGES", table.MaxPages},
		{"TABLE_MAX_ROWS", table.MaxRows},
	}

	for _, c := range constants {
		if _, err := fmt.Fprintf(out, "%s: %d\n", c.name, c.value); err != nil {
			return fmt.Errorf("failed writing constants: %w", err)
		}
	}

	return nil
}
