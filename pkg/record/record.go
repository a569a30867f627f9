package record

import (
	"fmt"

	"github.com/ssargent/gostdf/pkg/codec"
)

// Errors
var (
	ErrCorruptRecord  = &RecordError{"corrupt record"}
	ErrSchema         = &RecordError{"invalid record schema"}
	ErrCountMismatch  = &RecordError{"array length does not match its count field"}
	ErrRecordTooLarge = &RecordError{"record body exceeds 65535 bytes"}
)

// RecordError represents a record codec error
type RecordError struct {
	Message string
}

func (e *RecordError) Error() string {
	return e.Message
}

// CorruptRecordError reports a record whose fields need more bytes than its
// header declared. The stream can continue with the next record.
type CorruptRecordError struct {
	Offset int64  // Stream offset of the record header, -1 when unknown
	Header Header // Header as read from the stream
	Field  string // First field that could not be decoded
	Err    error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt %s record at offset %d (len %d), field %s: %v",
		e.Header.Type(), e.Offset, e.Header.Len, e.Field, e.Err)
}

// Unwrap lets errors.Is match both ErrCorruptRecord and the underlying cause
func (e *CorruptRecordError) Unwrap() []error {
	return []error{ErrCorruptRecord, e.Err}
}

// RecordCodec decodes and encodes records in one byte order
type RecordCodec struct {
	order codec.ByteOrder
	table *Table
}

// NewRecordCodec creates a codec over the default schema table
func NewRecordCodec(order codec.ByteOrder) *RecordCodec {
	return &RecordCodec{order: order, table: DefaultTable()}
}

// Order returns the codec's byte order
func (c *RecordCodec) Order() codec.ByteOrder {
	return c.order
}

// Table returns the schema table the codec decodes with
func (c *RecordCodec) Table() *Table {
	return c.table
}

// Decode decodes one record body. See DecodeAt.
func (c *RecordCodec) Decode(h Header, body []byte) (Record, error) {
	return c.DecodeAt(-1, h, body)
}

// DecodeAt decodes one record body read at the given stream offset.
// Pairs missing from the table decode as *Unknown. A body that ends at a field
// boundary leaves the remaining fields at their sentinels. A field that runs
// past the end of body yields a *CorruptRecordError and no record.
func (c *RecordCodec) DecodeAt(offset int64, h Header, body []byte) (Record, error) {
	s, ok := c.table.Lookup(h.Type())
	if !ok {
		raw := make([]byte, len(body))
		copy(raw, body)
		return &Unknown{Header: h, Body: raw}, nil
	}

	r := s.New()
	b := &binder{
		mode:   modeDecode,
		r:      codec.NewReader(body, c.order),
		fields: s.Fields,
	}
	r.bind(b)
	if b.err != nil {
		return nil, &CorruptRecordError{Offset: offset, Header: h, Field: b.field, Err: b.err}
	}
	return r, nil
}

// Encode serializes r as header and body
func (c *RecordCodec) Encode(r Record) ([]byte, error) {
	return c.AppendEncode(nil, r)
}

// AppendEncode appends the encoded header and body of r to dst.
// The header length is recomputed from the body.
func (c *RecordCodec) AppendEncode(dst []byte, r Record) ([]byte, error) {
	if u, ok := r.(*Unknown); ok {
		if len(u.Body) > MaxBodySize {
			return dst, fmt.Errorf("%w: %s has %d bytes", ErrRecordTooLarge, u.Type(), len(u.Body))
		}
		h := Header{Len: uint16(len(u.Body)), Typ: u.Header.Typ, Sub: u.Header.Sub}
		dst = h.AppendTo(dst, c.order)
		return append(dst, u.Body...), nil
	}

	s, ok := c.table.Lookup(r.Type())
	if !ok {
		return dst, fmt.Errorf("%w: no layout for %s", ErrSchema, r.Type())
	}

	w := codec.NewWriter(c.order)
	b := &binder{mode: modeEncode, w: w, fields: s.Fields}
	r.bind(b)
	if b.err != nil {
		return dst, fmt.Errorf("encode %s field %s: %w", s.Name, b.field, b.err)
	}
	if w.Len() > MaxBodySize {
		return dst, fmt.Errorf("%w: %s has %d bytes", ErrRecordTooLarge, s.Name, w.Len())
	}

	h := Header{Len: uint16(w.Len()), Typ: s.Type.Typ, Sub: s.Type.Sub}
	dst = h.AppendTo(dst, c.order)
	return append(dst, w.Bytes()...), nil
}

// Decode decodes one record body with the default schema table
func Decode(h Header, body []byte, order codec.ByteOrder) (Record, error) {
	return NewRecordCodec(order).Decode(h, body)
}

// Encode encodes r with the default schema table
func Encode(r Record, order codec.ByteOrder) ([]byte, error) {
	return NewRecordCodec(order).Encode(r)
}
