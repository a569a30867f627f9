package codec

import (
	"fmt"
	"math"
)

// Reader decodes primitive fields from one record body
type Reader struct {
	buf   []byte
	pos   int
	order ByteOrder
	impl  orderer
}

// NewReader creates a cursor at the start of buf
func NewReader(buf []byte, order ByteOrder) *Reader {
	return &Reader{buf: buf, order: order, impl: order.impl()}
}

// Order returns the byte order used for multi-byte fields
func (r *Reader) Order() ByteOrder {
	return r.order
}

// Len returns the number of unread bytes
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Pos returns the cursor position within the buffer
func (r *Reader) Pos() int {
	return r.pos
}

// take returns the next n bytes and advances, or fails without moving
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes at %d, have %d", ErrInsufficientData, n, r.pos, r.Len())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// need checks that n bytes are available starting at skip bytes past the cursor
func (r *Reader) need(skip, n int) error {
	if r.Len() < skip+n {
		return fmt.Errorf("%w: need %d bytes at %d, have %d", ErrInsufficientData, skip+n, r.pos, r.Len())
	}
	return nil
}

// U1 reads a one byte unsigned integer
func (r *Reader) U1() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U2 reads a two byte unsigned integer
func (r *Reader) U2() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.impl.Uint16(b), nil
}

// U4 reads a four byte unsigned integer
func (r *Reader) U4() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.impl.Uint32(b), nil
}

// U8 reads an eight byte unsigned integer
func (r *Reader) U8() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return r.impl.Uint64(b), nil
}

// I1 reads a one byte signed integer
func (r *Reader) I1() (int8, error) {
	v, err := r.U1()
	return int8(v), err
}

// I2 reads a two byte signed integer
func (r *Reader) I2() (int16, error) {
	v, err := r.U2()
	return int16(v), err
}

// I4 reads a four byte signed integer
func (r *Reader) I4() (int32, error) {
	v, err := r.U4()
	return int32(v), err
}

// R4 reads an IEEE 754 single precision float
func (r *Reader) R4() (float32, error) {
	v, err := r.U4()
	return math.Float32frombits(v), err
}

// R8 reads an IEEE 754 double precision float
func (r *Reader) R8() (float64, error) {
	v, err := r.U8()
	return math.Float64frombits(v), err
}

// UN reads an unsigned value of width 1, 2, 4 or 8 bytes
func (r *Reader) UN(width int) (uint64, error) {
	switch width {
	case 1:
		v, err := r.U1()
		return uint64(v), err
	case 2:
		v, err := r.U2()
		return uint64(v), err
	case 4:
		v, err := r.U4()
		return uint64(v), err
	case 8:
		return r.U8()
	default:
		return 0, fmt.Errorf("invalid field width %d", width)
	}
}

// Bytes reads n bytes into a new slice
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Cf reads a fixed length string of n bytes, padding included
func (r *Reader) Cf(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Cn reads a string with a one byte length prefix
func (r *Reader) Cn() (string, error) {
	if err := r.need(0, 1); err != nil {
		return "", err
	}
	n := int(r.buf[r.pos])
	if err := r.need(1, n); err != nil {
		return "", err
	}
	s := string(r.buf[r.pos+1 : r.pos+1+n])
	r.pos += 1 + n
	return s, nil
}

// Sn reads a string with a two byte length prefix
func (r *Reader) Sn() (string, error) {
	if err := r.need(0, 2); err != nil {
		return "", err
	}
	n := int(r.impl.Uint16(r.buf[r.pos:]))
	if err := r.need(2, n); err != nil {
		return "", err
	}
	s := string(r.buf[r.pos+2 : r.pos+2+n])
	r.pos += 2 + n
	return s, nil
}

// Bn reads a byte string with a one byte length prefix
func (r *Reader) Bn() ([]byte, error) {
	if err := r.need(0, 1); err != nil {
		return nil, err
	}
	n := int(r.buf[r.pos])
	if err := r.need(1, n); err != nil {
		return nil, err
	}
	r.pos++
	return r.Bytes(n)
}

// Dn reads a bit field: a two byte bit count followed by ceil(bits/8) bytes
func (r *Reader) Dn() (uint16, []byte, error) {
	if err := r.need(0, 2); err != nil {
		return 0, nil, err
	}
	bits := r.impl.Uint16(r.buf[r.pos:])
	n := (int(bits) + 7) / 8
	if err := r.need(2, n); err != nil {
		return 0, nil, err
	}
	r.pos += 2
	data, err := r.Bytes(n)
	return bits, data, err
}

// Nibbles reads n 4-bit values packed two per byte, low nibble first
func (r *Reader) Nibbles(n int) ([]uint8, error) {
	b, err := r.take((n + 1) / 2)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]uint8, n)
	for i := range out {
		out[i] = (b[i/2] >> (uint(i%2) * 4)) & 0x0F
	}
	return out, nil
}
