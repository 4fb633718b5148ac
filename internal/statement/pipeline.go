package statement

import (
	"errors"
	"fmt"
	"io"

	"github.com/nbroyles/rowdb/internal/table"
	log "github.com/sirupsen/logrus"
)

// Status is the outcome of processing a single line
type Status int

const (
	StatusExecuted Status = iota
	StatusMetaHandled
	StatusExit
	StatusUnrecognizedCommand
	StatusUnrecognizedStatement
	StatusSyntaxError
	StatusTableFull
	StatusFailed
)

// Message renders the status for the user. Statuses that have nothing to
// report render as the empty string
func (s Status) Message(line string) string {
	switch s {
	case StatusExecuted:
		return "Executed"
	case StatusUnrecognizedCommand:
		return fmt.Sprintf("Unrecognized command '%s'", line)
	case StatusUnrecognizedStatement:
		return fmt.Sprintf("Unrecognized keyword at start of '%s'", line)
	case StatusSyntaxError:
		return "Syntax error"
	case StatusTableFull:
		return "Table full"
	case StatusFailed:
		return "Error executing statement"
	default:
		return ""
	}
}

// Pipeline turns input lines into operations on a table. Apart from the
// table contents nothing is carried over from one line to the next
type Pipeline struct {
	table *table.Table
	out   io.Writer
}

func NewPipeline(tbl *table.Table, out io.Writer) *Pipeline {
	return &Pipeline{table: tbl, out: out}
}

// Process classifies, prepares and executes line. Any failure stops the
// remaining stages and leaves the table as it was
func (p *Pipeline) Process(line string) Status {
	if isMetaCommand(line) {
		return p.processMeta(line)
	}

	stmt, err := Prepare(line)
	if err != nil {
		log.WithField("line", line).Debugf("prepare failed: %v", err)

		if errors.Is(err, ErrSyntax) {
			return StatusSyntaxError
		}
		return StatusUnrecognizedStatement
	}

	if err := Execute(stmt, p.table, p.out); err != nil {
		log.WithField("line", line).Debugf("execute failed: %v", err)

		if errors.Is(err, table.ErrTableFull) {
			return StatusTableFull
		}
		return StatusFailed
	}

	return StatusExecuted
}

func (p *Pipeline) processMeta(line string) Status {
	result, err := DoMetaCommand(line, p.out)
	if err != nil {
		log.WithField("line", line).Debugf("meta command failed: %v", err)
		return StatusFailed
	}

	switch result {
	case MetaCommandExit:
		return StatusExit
	case MetaCommandUnrecognized:
		return StatusUnrecognizedCommand
	default:
		return StatusMetaHandled
	}
}
