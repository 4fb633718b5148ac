package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nbroyles/rowdb/internal/config"
	"github.com/nbroyles/rowdb/internal/statement"
	"github.com/nbroyles/rowdb/pkg"
	log "github.com/sirupsen/logrus"
)

// ErrInputClosed is returned when input ends before an exit command is read
var ErrInputClosed = errors.New("input closed before .exit")

// Session reads commands line by line and prints the outcome of each
type Session struct {
	db     *pkg.DB
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

func New(db *pkg.DB, in io.Reader, out io.Writer, cfg *config.Config) *Session {
	return &Session{
		db:     db,
		reader: bufio.NewReader(in),
		out:    out,
		prompt: cfg.Prompt,
	}
}

// Run processes lines until an exit command is read or input fails. The
// database is closed on the way out either way
func (s *Session) Run() error {
	defer func() {
		if err := s.db.Close(); err != nil {
			log.Warnf("failed closing database: %v", err)
		}
	}()

	for {
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return fmt.Errorf("failed writing prompt: %w", err)
		}

		line, err := s.readLine()
		if err != nil {
			return err
		}

		status := s.db.Exec(line, s.out)
		if status == statement.StatusExit {
			return nil
		}

		if msg := status.Message(line); msg != "" {
			if _, err := fmt.Fprintln(s.out, msg); err != nil {
				return fmt.Errorf("failed writing result: %w", err)
			}
		}
	}
}

// readLine returns the next line without its line ending. Lines are not
// length limited; over-long statements are rejected by the pipeline. A final
// line without a newline is still returned
func (s *Session) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("failed reading input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
