// Package console implements the interactive session: it greets the user,
// reads commands from the input, dispatches them to the cafe Manager, and
// renders every result and error as text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/cafe/internal/cafe"
)

// DefaultCafeName is used in the welcome banner when none is configured.
const DefaultCafeName = "Lory's Cafe"

// errEndOfInput reports that the input closed before a full line was read.
var errEndOfInput = errors.New("end of input")

// Session is one interactive run over an input and an output stream.
// A Session is not safe for concurrent use.
type Session struct {
	manager  *cafe.Manager
	in       *bufio.Reader
	out      io.Writer
	cafeName string
	logger   *slog.Logger
	id       string
}

// Option configures a Session.
type Option func(*Session)

// WithCafeName sets the name shown in the welcome banner.
func WithCafeName(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.cafeName = name
		}
	}
}

// WithLogger sets the session logger. The session ID is attached to it.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession returns a session reading commands from in and writing
// prompts and results to out.
func NewSession(manager *cafe.Manager, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		manager:  manager,
		in:       bufio.NewReader(in),
		out:      out,
		cafeName: DefaultCafeName,
		logger:   slog.New(slog.DiscardHandler),
		id:       newSessionID(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session's correlation ID.
func (s *Session) ID() string {
	return s.id
}

// Run greets the user and dispatches commands until a stop token is read
// or the input ends, both of which return nil. It returns ctx.Err() if the
// context is cancelled between commands, and any error writing the output.
func (s *Session) Run(ctx context.Context) error {
	name, err := s.prompt(promptName)
	if err != nil {
		return s.finish(err)
	}
	s.logger.Info("session started")
	if err := s.welcome(name); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled")
			return err
		}
		if err := s.dispatch(); err != nil {
			return s.finish(err)
		}
	}
}

// finish maps the loop's terminal conditions to Run's result.
func (s *Session) finish(err error) error {
	if errors.Is(err, errStop) || errors.Is(err, errEndOfInput) {
		s.logger.Info("session ended", "reason", err)
		return nil
	}
	return err
}

func (s *Session) welcome(name string) error {
	return s.printf("\nWelcoming %s to %s Management System!\n%s\n\n",
		name, s.cafeName, strings.Repeat("=", 59))
}

// prompt writes text and reads one line, without its line terminator.
// A final line without a newline is still returned; errEndOfInput is
// returned only when nothing is left to read.
func (s *Session) prompt(text string) (string, error) {
	if _, err := io.WriteString(s.out, text); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) println(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

func (s *Session) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}

// newSessionID generates a UUID v7 for session correlation.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
