// Package source supplies decompressed bytes to the STDF stream reader.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ssargent/gostdf/pkg/codec"
)

// DefaultBufferSize is the read buffer used when none is configured
const DefaultBufferSize = 64 * 1024

// Source is a forward-only supply of bytes
type Source interface {
	// ReadExact returns the next n bytes. The slice is only valid until the next call.
	// A short read returns a *ShortReadError.
	ReadExact(n int) ([]byte, error)
	// Skip discards the next n bytes
	Skip(n int) error
	// BytesConsumed returns the number of bytes read or skipped so far
	BytesConsumed() uint64
}

// ShortReadError reports that the supply ended before n bytes could be read
type ShortReadError struct {
	Want int
	Got  int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read: wanted %d bytes, got %d", e.Want, e.Got)
}

// Unwrap matches codec.ErrInsufficientData
func (e *ShortReadError) Unwrap() error {
	return codec.ErrInsufficientData
}

// Reader adapts an io.Reader to Source
type Reader struct {
	r        *bufio.Reader
	buf      []byte
	consumed uint64
}

// New wraps r with a buffer of DefaultBufferSize
func New(r io.Reader) *Reader {
	return NewSize(r, DefaultBufferSize)
}

// NewSize wraps r with a buffer of the given size
func NewSize(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Reader{r: bufio.NewReaderSize(r, size)}
}

// ReadExact returns the next n bytes. The slice is reused by the next call.
// A short read returns the bytes read and a *ShortReadError.
func (s *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if cap(s.buf) < n {
		s.buf = make([]byte, n)
	}
	buf := s.buf[:n]

	got, err := io.ReadFull(s.r, buf)
	s.consumed += uint64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return buf[:got], &ShortReadError{Want: n, Got: got}
		}
		return buf[:got], err
	}
	return buf, nil
}

// Skip discards the next n bytes
func (s *Reader) Skip(n int) error {
	got, err := s.r.Discard(n)
	s.consumed += uint64(got)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ShortReadError{Want: n, Got: got}
		}
		return err
	}
	return nil
}

// BytesConsumed returns the number of bytes read or skipped so far
func (s *Reader) BytesConsumed() uint64 {
	return s.consumed
}
