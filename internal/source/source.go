package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go0183/internal/config"
)

// Source produces raw sentence lines from one receiver. Implementations
// are not safe for concurrent use; the pipeline drives each source from a
// single goroutine.
type Source interface {
	// Lines reads the source until ctx is done or input ends, sending one
	// line per channel message with the line ending stripped. Every message
	// is an independent copy, safe to retain after the next read.
	// Cancellation takes effect at the next line boundary; Close unblocks a
	// pending read.
	Lines(ctx context.Context, out chan<- []byte) error

	Close() error
}

// New builds the Source a receiver declaration names.
func New(r config.Receiver) (Source, error) {
	switch r.Source {
	case config.SourceFile:
		return NewFile(r.Path)
	case config.SourceSerial:
		return NewSerial(r.Device, r.Baud)
	case config.SourceStdin:
		return NewStdin(), nil
	}
	return nil, fmt.Errorf("unknown source %q", r.Source)
}

// scanLines pumps r into out line by line.
func scanLines(ctx context.Context, r io.Reader, out chan<- []byte) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		line := make([]byte, len(raw))
		copy(line, raw)
		select {
		case <-ctx.Done():
			return nil
		case out <- line:
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("read failed: %w", err)
	}
	return nil
}

// File replays sentences from a capture file.
type File struct {
	f *os.File
}

// NewFile opens a capture file for replay.
func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	return &File{f: f}, nil
}

// Lines replays the file and returns when it is exhausted.
func (s *File) Lines(ctx context.Context, out chan<- []byte) error {
	return scanLines(ctx, s.f, out)
}

// Close closes the capture file.
func (s *File) Close() error { return s.f.Close() }

// Stdin reads sentences from standard input.
type Stdin struct{}

// NewStdin creates a standard input source.
func NewStdin() *Stdin { return &Stdin{} }

// Lines reads standard input until EOF.
func (s *Stdin) Lines(ctx context.Context, out chan<- []byte) error {
	return scanLines(ctx, os.Stdin, out)
}

// Close is a no-op; standard input stays open for the process.
func (s *Stdin) Close() error { return nil }
