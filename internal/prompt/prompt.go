package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInputClosed is returned when the input stream ends before a valid
	// answer was read.
	ErrInputClosed = errors.New("input closed before a valid answer was given")

	// ErrTooManyAttempts is returned when MaxAttempts invalid answers were given.
	ErrTooManyAttempts = errors.New("too many invalid answers")
)

// InvalidError rejects an answer and asks the question again. Msg is printed
// to the engine's output before re-prompting.
type InvalidError struct {
	Msg string
}

func (e *InvalidError) Error() string { return e.Msg }

// Invalid returns an error that makes Ask re-prompt after printing msg.
func Invalid(msg string) error {
	return &InvalidError{Msg: msg}
}

// Engine asks questions on an input/output pair.
type Engine struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds the number of rejected answers per question.
	// Zero means unbounded.
	MaxAttempts int
}

// New returns an Engine reading answers from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Engine {
	return &Engine{in: bufio.NewReader(r), out: w}
}

// Out returns the writer prompts are printed to, so callers can print
// guidance text between questions.
func (e *Engine) Out() io.Writer {
	return e.out
}

// Ask prints text, reads one line, and returns def for an empty line or the
// result of accept otherwise. accept signals a retry by returning an
// *InvalidError; any other error is returned to the caller unchanged.
func Ask[T any](e *Engine, text string, def T, accept func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		fmt.Fprint(e.out, text)

		line, err := e.readLine()
		if err != nil {
			return zero, err
		}
		if line == "" {
			return def, nil
		}

		v, err := accept(line)
		if err == nil {
			return v, nil
		}

		var invalid *InvalidError
		if !errors.As(err, &invalid) {
			return zero, err
		}
		if invalid.Msg != "" {
			fmt.Fprintln(e.out, invalid.Msg)
		}
		if e.MaxAttempts > 0 && attempt >= e.MaxAttempts {
			return zero, ErrTooManyAttempts
		}
	}
}

// readLine returns the next line without its terminator. A final line
// without a trailing newline is still returned.
func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			// The prompt was printed without a newline; finish the line.
			fmt.Fprintln(e.out)
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
