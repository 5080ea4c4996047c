package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when a prompt is abandoned because its context ended.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader reads prompt answers from a terminal or pipe without
// pinning the caller once ctx is done. Ctrl-C during an import prompt cancels
// the import context, so a blocked read must not hold the command open.
type NonBlockingReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
}

type readResult struct {
	err  error
	text string
}

// NewNonBlockingReader wraps in. It panics on a nil reader.
func NewNonBlockingReader(in io.Reader) *NonBlockingReader {
	if in == nil {
		panic("reader cannot be nil")
	}
	return &NonBlockingReader{reader: bufio.NewReader(in)}
}

// ReadString reads through delim. A context that is already done never
// consumes input.
func (r *NonBlockingReader) ReadString(ctx context.Context, delim byte) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	done := make(chan readResult, 1)
	go func() {
		// Reads stay ordered; an abandoned read finishes before the next starts.
		r.mu.Lock()
		defer r.mu.Unlock()
		text, err := r.reader.ReadString(delim)
		done <- readResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-done:
		return res.text, res.err
	}
}

// ReadLine returns the next answer with surrounding whitespace removed. A
// final answer without a trailing newline is still returned; io.EOF is only
// reported once no input is left.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	line, err := r.ReadString(ctx, '\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
