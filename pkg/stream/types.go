package stream

import (
	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"go.uber.org/zap"
)

// Errors
var (
	ErrUnsupportedCPU = &StreamError{"unsupported CPU type"}
	ErrInvalidFile    = &StreamError{"not an STDF file"}
	ErrTruncated      = &StreamError{"truncated stream"}
	ErrFARExpected    = &StreamError{"first record must be a FAR"}
)

// StreamError represents a stream level error
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return e.Message
}

// RawRecord is one framed record whose body has not been decoded
type RawRecord struct {
	Offset int64 // Stream offset of the header
	Header record.Header
	Body   []byte
	Order  codec.ByteOrder
}

// Decode decodes the body with the default schema table
func (r RawRecord) Decode() (record.Record, error) {
	return record.NewRecordCodec(r.Order).DecodeAt(r.Offset, r.Header, r.Body)
}

// RecordIterator provides streaming access to records
type RecordIterator interface {
	Next() bool
	Record() record.Record
	Err() error
	Close() error
}

// Observer is told about every record the reader frames
type Observer interface {
	RecordDecoded(h record.Header)
	RecordCorrupt(h record.Header)
	RecordUnknown(h record.Header)
	RecordSkipped(h record.Header)
	BytesConsumed(n uint64)
}

type nopObserver struct{}

func (nopObserver) RecordDecoded(record.Header) {}
func (nopObserver) RecordCorrupt(record.Header) {}
func (nopObserver) RecordUnknown(record.Header) {}
func (nopObserver) RecordSkipped(record.Header) {}
func (nopObserver) BytesConsumed(uint64)        {}

// Option configures a Reader
type Option func(*options)

type options struct {
	filter   record.Kind
	logger   *zap.Logger
	observer Observer
}

// WithFilter restricts Next and NextRaw to records whose kind is in mask.
// Other records are skipped without decoding.
func WithFilter(mask record.Kind) Option {
	return func(o *options) {
		o.filter = mask
	}
}

// WithLogger sets the logger for corrupt and unknown record reports
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer, e.g. a metrics collector
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WriterConfig holds configuration for a record writer
type WriterConfig struct {
	Order      codec.ByteOrder // Byte order of the output, must match the FAR written first
	BufferSize int             // Write buffer size
}
