package codec

import (
	"fmt"
	"math"
	"strings"
)

// Writer encodes primitive fields into a growing buffer
type Writer struct {
	buf   []byte
	order ByteOrder
	impl  orderer
}

// NewWriter creates an empty writer for the given byte order
func NewWriter(order ByteOrder) *Writer {
	return &Writer{buf: make([]byte, 0, 64), order: order, impl: order.impl()}
}

// Order returns the byte order used for multi-byte fields
func (w *Writer) Order() ByteOrder {
	return w.order
}

// Bytes returns the encoded bytes. The slice aliases the writer buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of encoded bytes
func (w *Writer) Len() int {
	return len(w.buf)
}

// Truncate discards everything after the first n bytes
func (w *Writer) Truncate(n int) {
	w.buf = w.buf[:n]
}

// Reset empties the buffer, keeping its capacity
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// PutU1 writes a one byte unsigned integer
func (w *Writer) PutU1(v uint8) {
	w.buf = append(w.buf, v)
}

// PutU2 writes a two byte unsigned integer
func (w *Writer) PutU2(v uint16) {
	w.buf = w.impl.AppendUint16(w.buf, v)
}

// PutU4 writes a four byte unsigned integer
func (w *Writer) PutU4(v uint32) {
	w.buf = w.impl.AppendUint32(w.buf, v)
}

// PutU8 writes an eight byte unsigned integer
func (w *Writer) PutU8(v uint64) {
	w.buf = w.impl.AppendUint64(w.buf, v)
}

// PutI1 writes a one byte signed integer
func (w *Writer) PutI1(v int8) {
	w.PutU1(uint8(v))
}

// PutI2 writes a two byte signed integer
func (w *Writer) PutI2(v int16) {
	w.PutU2(uint16(v))
}

// PutI4 writes a four byte signed integer
func (w *Writer) PutI4(v int32) {
	w.PutU4(uint32(v))
}

// PutR4 writes an IEEE 754 single precision float
func (w *Writer) PutR4(v float32) {
	w.PutU4(math.Float32bits(v))
}

// PutR8 writes an IEEE 754 double precision float
func (w *Writer) PutR8(v float64) {
	w.PutU8(math.Float64bits(v))
}

// PutUN writes v with a width of 1, 2, 4 or 8 bytes
func (w *Writer) PutUN(v uint64, width int) error {
	switch width {
	case 1:
		if v > math.MaxUint8 {
			return overflow("U1", v)
		}
		w.PutU1(uint8(v))
	case 2:
		if v > math.MaxUint16 {
			return overflow("U2", v)
		}
		w.PutU2(uint16(v))
	case 4:
		if v > math.MaxUint32 {
			return overflow("U4", v)
		}
		w.PutU4(uint32(v))
	case 8:
		w.PutU8(v)
	default:
		return fmt.Errorf("invalid field width %d", width)
	}
	return nil
}

// PutRaw appends b unchanged
func (w *Writer) PutRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutCf writes s as a fixed length string of n bytes, padding short values with spaces
func (w *Writer) PutCf(s string, n int) error {
	if len(s) > n {
		return fmt.Errorf("%w: string of %d bytes in a %d byte field", ErrFieldOverflow, len(s), n)
	}
	w.buf = append(w.buf, s...)
	if pad := n - len(s); pad > 0 {
		w.buf = append(w.buf, strings.Repeat(" ", pad)...)
	}
	return nil
}

// PutCn writes s with a one byte length prefix
func (w *Writer) PutCn(s string) error {
	if len(s) > math.MaxUint8 {
		return fmt.Errorf("%w: Cn of %d bytes", ErrFieldOverflow, len(s))
	}
	w.PutU1(uint8(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// PutSn writes s with a two byte length prefix
func (w *Writer) PutSn(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: Sn of %d bytes", ErrFieldOverflow, len(s))
	}
	w.PutU2(uint16(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// PutBn writes b with a one byte length prefix
func (w *Writer) PutBn(b []byte) error {
	if len(b) > math.MaxUint8 {
		return fmt.Errorf("%w: Bn of %d bytes", ErrFieldOverflow, len(b))
	}
	w.PutU1(uint8(len(b)))
	w.buf = append(w.buf, b...)
	return nil
}

// PutDn writes a bit field; data must hold exactly ceil(bits/8) bytes
func (w *Writer) PutDn(bits uint16, data []byte) error {
	if want := (int(bits) + 7) / 8; len(data) != want {
		return fmt.Errorf("%w: Dn of %d bits needs %d bytes, got %d", ErrFieldOverflow, bits, want, len(data))
	}
	w.PutU2(bits)
	w.buf = append(w.buf, data...)
	return nil
}

// PutNibbles packs 4-bit values two per byte, low nibble first
func (w *Writer) PutNibbles(vals []uint8) error {
	for i := 0; i < len(vals); i += 2 {
		lo := vals[i]
		var hi uint8
		if i+1 < len(vals) {
			hi = vals[i+1]
		}
		if lo > 0x0F || hi > 0x0F {
			return fmt.Errorf("%w: nibble value above 15", ErrFieldOverflow)
		}
		w.buf = append(w.buf, lo|hi<<4)
	}
	return nil
}

func overflow(kind string, v uint64) error {
	return fmt.Errorf("%w: %d does not fit %s", ErrFieldOverflow, v, kind)
}
