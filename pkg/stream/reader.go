// Package stream reads and writes STDF record streams. A Reader takes its
// byte order from the FAR at the start of the stream and then returns one
// record per call, skipping the bodies of records outside its filter.
package stream

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
)

// Reader pulls records from a Source one at a time. It is not safe for
// concurrent use and never rewinds.
type Reader struct {
	src    source.Source
	codec  *record.RecordCodec
	far    *record.FAR
	farRaw RawRecord
	filter record.Kind
	log    *zap.Logger
	obs    Observer

	farPending bool
	last       int64 // Offset of the record last returned by Next
	err        error // Terminal error, returned by every later call
}

// Open reads the FAR at the start of src and fixes the byte order for the
// rest of the stream. The FAR is returned by the first call to Next.
func Open(src source.Source, opts ...Option) (*Reader, error) {
	o := options{filter: record.KindAll, logger: zap.NewNop(), observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}

	raw, far, err := bootstrap(src)
	if err != nil {
		return nil, err
	}
	order := raw.Order
	o.logger.Debug("opened stream",
		zap.Stringer("order", order),
		zap.Uint8("cpu_type", far.CPUType),
		zap.Uint8("stdf_ver", far.StdfVer))

	r := &Reader{
		src:        src,
		codec:      record.NewRecordCodec(order),
		far:        far,
		farRaw:     raw,
		filter:     o.filter,
		log:        o.logger,
		obs:        o.observer,
		farPending: true,
	}
	r.obs.BytesConsumed(src.BytesConsumed())
	return r, nil
}

// bootstrap reads the FAR. Its length field cannot be interpreted until
// CPU_TYPE, the first body byte, says which byte order the file uses.
func bootstrap(src source.Source) (RawRecord, *record.FAR, error) {
	b, err := src.ReadExact(record.HeaderSize + 1)
	if err != nil {
		if isShort(err) {
			return RawRecord{}, nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		return RawRecord{}, nil, err
	}
	var hdr [record.HeaderSize]byte
	copy(hdr[:], b)
	cpu := b[record.HeaderSize]

	if hdr[2] != 0 || hdr[3] != 10 {
		return RawRecord{}, nil, fmt.Errorf("%w: first record is (%d,%d), want FAR (0,10)", ErrInvalidFile, hdr[2], hdr[3])
	}
	order, ok := codec.OrderForCPU(cpu)
	if !ok {
		return RawRecord{}, nil, fmt.Errorf("%w: %d", ErrUnsupportedCPU, cpu)
	}

	h, err := record.ParseHeader(hdr[:], order)
	if err != nil {
		return RawRecord{}, nil, err
	}
	if h.Len < 1 {
		return RawRecord{}, nil, fmt.Errorf("%w: FAR declares an empty body", ErrInvalidFile)
	}

	body := make([]byte, h.Len)
	body[0] = cpu
	rest, err := src.ReadExact(int(h.Len) - 1)
	if err != nil {
		if isShort(err) {
			return RawRecord{}, nil, fmt.Errorf("%w: FAR: %v", ErrTruncated, err)
		}
		return RawRecord{}, nil, err
	}
	copy(body[1:], rest)

	rec, err := record.NewRecordCodec(order).DecodeAt(0, h, body)
	if err != nil {
		return RawRecord{}, nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	raw := RawRecord{Offset: 0, Header: h, Body: body, Order: order}
	return raw, rec.(*record.FAR), nil
}

func isShort(err error) bool {
	var short *source.ShortReadError
	return errors.As(err, &short)
}

// Order returns the byte order taken from the FAR
func (r *Reader) Order() codec.ByteOrder {
	return r.codec.Order()
}

// FAR returns the record the stream was opened with
func (r *Reader) FAR() *record.FAR {
	return r.far
}

// RecordOffset returns the stream offset of the record, or corrupt record,
// last returned by Next
func (r *Reader) RecordOffset() int64 {
	return r.last
}

// Offset returns the number of bytes consumed from the source
func (r *Reader) Offset() int64 {
	return int64(r.src.BytesConsumed())
}

// Next returns the next record that passes the filter. Errors are:
//   - *record.CorruptRecordError: this record was skipped, Next may be called again
//   - ErrTruncated: the source ended inside a record, terminal
//   - io.EOF: clean end of stream, terminal
//   - anything else from the source, terminal
func (r *Reader) Next() (record.Record, error) {
	if r.farPending {
		r.farPending = false
		if r.filter&record.KindFAR != 0 {
			r.obs.RecordDecoded(r.farRaw.Header)
			r.last = 0
			return r.far, nil
		}
	}

	for {
		off, h, err := r.readHeader()
		if err != nil {
			return nil, err
		}
		if !h.IsType(r.filter) {
			if err := r.skipBody(off, h); err != nil {
				return nil, err
			}
			continue
		}

		body, err := r.readBody(off, h)
		if err != nil {
			return nil, err
		}

		r.last = off
		rec, err := r.codec.DecodeAt(off, h, body)
		if err != nil {
			var corrupt *record.CorruptRecordError
			if errors.As(err, &corrupt) {
				r.log.Warn("corrupt record",
					zap.Int64("offset", off),
					zap.Stringer("type", h.Type()),
					zap.Uint16("len", h.Len),
					zap.String("field", corrupt.Field),
					zap.Error(corrupt.Err))
			}
			r.obs.RecordCorrupt(h)
			return nil, err
		}

		if _, ok := rec.(*record.Unknown); ok {
			r.log.Debug("unknown record",
				zap.Int64("offset", off),
				zap.Uint8("typ", h.Typ),
				zap.Uint8("sub", h.Sub),
				zap.Uint16("len", h.Len))
			r.obs.RecordUnknown(h)
		} else {
			r.obs.RecordDecoded(h)
		}
		return rec, nil
	}
}

// NextRaw returns the next record that passes the filter without decoding it.
// The returned body is owned by the caller.
func (r *Reader) NextRaw() (RawRecord, error) {
	if r.farPending {
		r.farPending = false
		if r.filter&record.KindFAR != 0 {
			raw := r.farRaw
			raw.Body = append([]byte(nil), raw.Body...)
			return raw, nil
		}
	}

	for {
		off, h, err := r.readHeader()
		if err != nil {
			return RawRecord{}, err
		}
		if !h.IsType(r.filter) {
			if err := r.skipBody(off, h); err != nil {
				return RawRecord{}, err
			}
			continue
		}

		body, err := r.readBody(off, h)
		if err != nil {
			return RawRecord{}, err
		}
		owned := make([]byte, len(body))
		copy(owned, body)
		return RawRecord{Offset: off, Header: h, Body: owned, Order: r.Order()}, nil
	}
}

// readHeader returns the offset and header of the next record.
// Fewer than four bytes left is a clean end of stream.
func (r *Reader) readHeader() (int64, record.Header, error) {
	if r.err != nil {
		return 0, record.Header{}, r.err
	}
	off := r.Offset()
	b, err := r.src.ReadExact(record.HeaderSize)
	if err != nil {
		if isShort(err) {
			var short *source.ShortReadError
			errors.As(err, &short)
			if short.Got > 0 {
				r.log.Debug("ignoring trailing bytes", zap.Int64("offset", off), zap.Int("bytes", short.Got))
			}
			err = io.EOF
		}
		r.fail(err)
		return 0, record.Header{}, err
	}
	h, err := record.ParseHeader(b, r.Order())
	if err != nil {
		r.fail(err)
		return 0, record.Header{}, err
	}
	return off, h, nil
}

func (r *Reader) readBody(off int64, h record.Header) ([]byte, error) {
	body, err := r.src.ReadExact(int(h.Len))
	if err != nil {
		return nil, r.failBody(off, h, err)
	}
	r.obs.BytesConsumed(r.src.BytesConsumed())
	return body, nil
}

func (r *Reader) skipBody(off int64, h record.Header) error {
	if err := r.src.Skip(int(h.Len)); err != nil {
		return r.failBody(off, h, err)
	}
	r.obs.RecordSkipped(h)
	r.obs.BytesConsumed(r.src.BytesConsumed())
	return nil
}

func (r *Reader) failBody(off int64, h record.Header, err error) error {
	if isShort(err) {
		err = fmt.Errorf("%w: %s at offset %d declares %d bytes: %v", ErrTruncated, h.Type(), off, h.Len, err)
		r.log.Warn("truncated record", zap.Int64("offset", off), zap.Stringer("type", h.Type()), zap.Uint16("len", h.Len))
	}
	r.fail(err)
	return err
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
	r.obs.BytesConsumed(r.src.BytesConsumed())
}

// Iterator returns a streaming iterator over the reader's records
func (r *Reader) Iterator() RecordIterator {
	return &recordIterator{reader: r}
}

// recordIterator stops at the first error. After a corrupt record Err
// reports it and Next may be called again to continue.
type recordIterator struct {
	reader *Reader
	record record.Record
	err    error
}

func (it *recordIterator) Next() bool {
	it.record, it.err = it.reader.Next()
	return it.err == nil
}

func (it *recordIterator) Record() record.Record {
	return it.record
}

func (it *recordIterator) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}

func (it *recordIterator) Close() error {
	// The reader and its source belong to the caller
	return nil
}
