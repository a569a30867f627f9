package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
)

// Writer encodes records to an io.Writer. The first record must be a FAR
// whose CPU_TYPE matches the configured byte order.
type Writer struct {
	closer  io.Closer
	writer  *bufio.Writer
	codec   *record.RecordCodec
	buf     []byte
	started bool
	mutex   sync.Mutex
	offset  int64 // Current write offset
}

// NewWriter creates a record writer over w
func NewWriter(w io.Writer, config WriterConfig) *Writer {
	size := config.BufferSize
	if size <= 0 {
		size = 64 * 1024
	}
	return &Writer{
		writer: bufio.NewWriterSize(w, size),
		codec:  record.NewRecordCodec(config.Order),
	}
}

// CreateFile creates or truncates path and returns a writer that closes it
func CreateFile(path string, config WriterConfig) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}
	w := NewWriter(file, config)
	w.closer = file
	return w, nil
}

// Order returns the byte order records are written in
func (w *Writer) Order() codec.ByteOrder {
	return w.codec.Order()
}

// Write appends one record and returns the offset it starts at
func (w *Writer) Write(r record.Record) (int64, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.started {
		far, ok := r.(*record.FAR)
		if !ok {
			return 0, fmt.Errorf("%w, got %s", ErrFARExpected, record.Name(r))
		}
		if far.CPUType != w.Order().CPUType() {
			return 0, fmt.Errorf("%w: FAR CPU_TYPE %d cannot describe %s output", ErrUnsupportedCPU, far.CPUType, w.Order())
		}
	}

	data, err := w.codec.AppendEncode(w.buf[:0], r)
	if err != nil {
		return 0, err
	}
	w.buf = data

	n, err := w.writer.Write(data)
	if err != nil {
		return 0, err
	}

	recordOffset := w.offset
	w.offset += int64(n)
	w.started = true
	return recordOffset, nil
}

// WriteRaw appends a framed record. Bodies in the writer's byte order are
// copied verbatim; others are decoded and re-encoded. A FAR gets the
// CPU_TYPE of the writer's byte order.
func (w *Writer) WriteRaw(raw RawRecord) (int64, error) {
	if raw.Order != w.Order() || raw.Header.IsType(record.KindFAR) {
		rec, err := raw.Decode()
		if err != nil {
			return 0, err
		}
		if far, ok := rec.(*record.FAR); ok {
			far.CPUType = w.Order().CPUType()
		}
		return w.Write(rec)
	}
	return w.Write(&record.Unknown{Header: raw.Header, Body: raw.Body})
}

// Flush writes buffered records to the underlying writer
func (w *Writer) Flush() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.writer.Flush()
}

// Close flushes and, for writers from CreateFile, closes the file
func (w *Writer) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	err := w.writer.Flush()
	if w.closer != nil {
		if file, ok := w.closer.(*os.File); ok && err == nil {
			err = file.Sync()
		}
		err = errors.Join(err, w.closer.Close())
		w.closer = nil
	}
	return err
}

// Size returns the number of bytes written, buffered ones included
func (w *Writer) Size() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}
