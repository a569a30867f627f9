package record

import (
	"fmt"

	"github.com/ssargent/gostdf/pkg/codec"
)

// Each record kind lists its fields once, in wire order, in a bind method.
// The same method drives decoding, encoding, sentinel initialisation, schema
// description and field enumeration, so the layout cannot drift between them.

type bindMode uint8

const (
	modeDecode bindMode = iota
	modeEncode
	modeReset
	modeDescribe
	modeVisit
)

type binder struct {
	mode     bindMode
	r        *codec.Reader
	w        *codec.Writer
	fields   []FieldSpec
	required int
	cur      int
	next     int
	field    string
	done     bool
	err      error
	visit    func(FieldSpec, any)
}

// enter moves to the next field. It returns false once an error was recorded.
// The failing field stays in b.field.
func (b *binder) enter(name string) bool {
	if b.err != nil {
		return false
	}
	b.cur = b.next
	b.next++
	b.field = name
	if b.mode == modeDecode && !b.done && b.r.Len() == 0 {
		// Body exhausted at a field boundary: this and all later fields keep their sentinels
		b.done = true
	}
	return true
}

func (b *binder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *binder) describe(spec FieldSpec) {
	switch {
	case spec.Type.IsArray():
		spec.Presence = PresenceCount
	case b.cur < b.required:
		spec.Presence = PresenceAlways
	default:
		spec.Presence = PresenceTail
	}
	b.fields = append(b.fields, spec)
}

func (b *binder) emit(v any) {
	if b.visit != nil {
		b.visit(b.fields[b.cur], v)
	}
}

// checkRef verifies that a referenced count or size field precedes the current field
func (b *binder) checkRef(name string, index int) bool {
	if index < 0 || index >= b.cur {
		b.fail(fmt.Errorf("%w: %s references %s, which is not decoded before it", ErrSchema, b.field, name))
		return false
	}
	return true
}

// tailSentinel is used while encoding after the body was ended early:
// every remaining field must still hold its sentinel.
func (b *binder) tailSentinel(isSentinel bool) {
	if !isSentinel {
		b.fail(fmt.Errorf("%w: %s is set after an empty count-driven array", ErrCountMismatch, b.field))
	}
}

var (
	readU1 = (*codec.Reader).U1
	readU2 = (*codec.Reader).U2
	readU4 = (*codec.Reader).U4
	readU8 = (*codec.Reader).U8
	readI1 = (*codec.Reader).I1
	readI2 = (*codec.Reader).I2
	readI4 = (*codec.Reader).I4
	readR4 = (*codec.Reader).R4
	readR8 = (*codec.Reader).R8
	readCn = (*codec.Reader).Cn
	readSn = (*codec.Reader).Sn

	putU1 = func(w *codec.Writer, v uint8) error { w.PutU1(v); return nil }
	putU2 = func(w *codec.Writer, v uint16) error { w.PutU2(v); return nil }
	putU4 = func(w *codec.Writer, v uint32) error { w.PutU4(v); return nil }
	putU8 = func(w *codec.Writer, v uint64) error { w.PutU8(v); return nil }
	putI1 = func(w *codec.Writer, v int8) error { w.PutI1(v); return nil }
	putI2 = func(w *codec.Writer, v int16) error { w.PutI2(v); return nil }
	putI4 = func(w *codec.Writer, v int32) error { w.PutI4(v); return nil }
	putR4 = func(w *codec.Writer, v float32) error { w.PutR4(v); return nil }
	putR8 = func(w *codec.Writer, v float64) error { w.PutR8(v); return nil }
	putCn = (*codec.Writer).PutCn
	putSn = (*codec.Writer).PutSn
)

func scalar[T comparable](b *binder, name string, ft FieldType, p *T, sentinel T,
	read func(*codec.Reader) (T, error), write func(*codec.Writer, T) error) {
	if !b.enter(name) {
		return
	}
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		v, err := read(b.r)
		if err != nil {
			b.fail(err)
			return
		}
		*p = v
	case modeEncode:
		if b.done {
			b.tailSentinel(*p == sentinel)
			return
		}
		if err := write(b.w, *p); err != nil {
			b.fail(err)
		}
	case modeReset:
		*p = sentinel
	case modeDescribe:
		b.describe(FieldSpec{Name: name, Type: ft, Sentinel: sentinel})
	case modeVisit:
		b.emit(*p)
	}
}

func (b *binder) u1(name string, p *uint8, s uint8)       { scalar(b, name, U1, p, s, readU1, putU1) }
func (b *binder) u2(name string, p *uint16, s uint16)     { scalar(b, name, U2, p, s, readU2, putU2) }
func (b *binder) u4(name string, p *uint32, s uint32)     { scalar(b, name, U4, p, s, readU4, putU4) }
func (b *binder) u8(name string, p *uint64, s uint64)     { scalar(b, name, U8, p, s, readU8, putU8) }
func (b *binder) i1(name string, p *int8, s int8)         { scalar(b, name, I1, p, s, readI1, putI1) }
func (b *binder) i2(name string, p *int16, s int16)       { scalar(b, name, I2, p, s, readI2, putI2) }
func (b *binder) i4(name string, p *int32, s int32)       { scalar(b, name, I4, p, s, readI4, putI4) }
func (b *binder) r4(name string, p *float32, s float32)   { scalar(b, name, R4, p, s, readR4, putR4) }
func (b *binder) r8(name string, p *float64, s float64)   { scalar(b, name, R8, p, s, readR8, putR8) }
func (b *binder) c1(name string, p *byte, s byte)         { scalar(b, name, C1, p, s, readU1, putU1) }
func (b *binder) b1(name string, p *byte, s byte)         { scalar(b, name, B1, p, s, readU1, putU1) }
func (b *binder) cn(name string, p *string, s string)     { scalar(b, name, Cn, p, s, readCn, putCn) }
func (b *binder) sn(name string, p *string, s string)     { scalar(b, name, Sn, p, s, readSn, putSn) }

// bn binds a one byte length-prefixed byte string
func (b *binder) bn(name string, p *[]byte) {
	if !b.enter(name) {
		return
	}
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		v, err := b.r.Bn()
		if err != nil {
			b.fail(err)
			return
		}
		*p = v
	case modeEncode:
		if b.done {
			b.tailSentinel(len(*p) == 0)
			return
		}
		if err := b.w.PutBn(*p); err != nil {
			b.fail(err)
		}
	case modeReset:
		*p = nil
	case modeDescribe:
		b.describe(FieldSpec{Name: name, Type: Bn, Sentinel: []byte(nil)})
	case modeVisit:
		b.emit(*p)
	}
}

// dn binds a bit-count-prefixed bit field
func (b *binder) dn(name string, p *BitField) {
	if !b.enter(name) {
		return
	}
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		bits, data, err := b.r.Dn()
		if err != nil {
			b.fail(err)
			return
		}
		*p = BitField{Bits: bits, Data: data}
	case modeEncode:
		if b.done {
			b.tailSentinel(p.Bits == 0 && len(p.Data) == 0)
			return
		}
		if err := b.w.PutDn(p.Bits, p.Data); err != nil {
			b.fail(err)
		}
	case modeReset:
		*p = BitField{}
	case modeDescribe:
		b.describe(FieldSpec{Name: name, Type: Dn, Sentinel: BitField{}})
	case modeVisit:
		b.emit(*p)
	}
}

// arrayPrologue handles the modes shared by every count-driven array and
// reports whether the caller should decode or encode elements.
func arrayPrologue[T any](b *binder, name string, ft FieldType, p *[]T, countField, sizeField string) bool {
	if !b.enter(name) {
		return false
	}
	switch b.mode {
	case modeReset:
		*p = nil
		return false
	case modeDescribe:
		b.describe(FieldSpec{Name: name, Type: ft, CountField: countField, SizeField: sizeField, Sentinel: []T(nil)})
		return false
	case modeVisit:
		b.emit(*p)
		return false
	}
	spec := b.fields[b.cur]
	if !b.checkRef(countField, spec.countIndex) {
		return false
	}
	if sizeField != "" && !b.checkRef(sizeField, spec.sizeIndex) {
		return false
	}
	return true
}

// arrayLength decides how many elements to encode. An empty array whose count
// is non-zero ends the body, which is how decode represents an array cut off
// by the end of the record.
func arrayLength(b *binder, have, n int, countField string) bool {
	if b.done {
		b.tailSentinel(have == 0)
		return false
	}
	if have == n {
		return true
	}
	if have == 0 {
		b.done = true
		return false
	}
	b.fail(fmt.Errorf("%w: %s has %d elements, %s is %d", ErrCountMismatch, b.field, have, countField, n))
	return false
}

func array[T any](b *binder, name string, ft FieldType, p *[]T, countField string, n, minSize int,
	read func(*codec.Reader) (T, error), write func(*codec.Writer, T) error) {
	if !arrayPrologue(b, name, ft, p, countField, "") {
		return
	}
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		if n == 0 {
			*p = nil
			return
		}
		if b.r.Len() < n*minSize {
			b.fail(fmt.Errorf("%w: %d elements of %s need at least %d bytes, have %d",
				codec.ErrInsufficientData, n, ft, n*minSize, b.r.Len()))
			return
		}
		out := make([]T, n)
		for i := range out {
			v, err := read(b.r)
			if err != nil {
				b.fail(err)
				return
			}
			out[i] = v
		}
		*p = out
	case modeEncode:
		if !arrayLength(b, len(*p), n, countField) {
			return
		}
		for _, v := range *p {
			if err := write(b.w, v); err != nil {
				b.fail(err)
				return
			}
		}
	}
}

func (b *binder) u1s(name string, p *[]uint8, count string, n int) {
	array(b, name, KxU1, p, count, n, 1, readU1, putU1)
}

func (b *binder) u2s(name string, p *[]uint16, count string, n int) {
	array(b, name, KxU2, p, count, n, 2, readU2, putU2)
}

func (b *binder) u4s(name string, p *[]uint32, count string, n int) {
	array(b, name, KxU4, p, count, n, 4, readU4, putU4)
}

func (b *binder) u8s(name string, p *[]uint64, count string, n int) {
	array(b, name, KxU8, p, count, n, 8, readU8, putU8)
}

func (b *binder) r4s(name string, p *[]float32, count string, n int) {
	array(b, name, KxR4, p, count, n, 4, readR4, putR4)
}

func (b *binder) cns(name string, p *[]string, count string, n int) {
	array(b, name, KxCn, p, count, n, 1, readCn, putCn)
}

func (b *binder) sns(name string, p *[]string, count string, n int) {
	array(b, name, KxSn, p, count, n, 2, readSn, putSn)
}

// n1s binds a packed nibble array
func (b *binder) n1s(name string, p *[]uint8, count string, n int) {
	if !arrayPrologue(b, name, KxN1, p, count, "") {
		return
	}
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		v, err := b.r.Nibbles(n)
		if err != nil {
			b.fail(err)
			return
		}
		*p = v
	case modeEncode:
		if !arrayLength(b, len(*p), n, count) {
			return
		}
		if err := b.w.PutNibbles(*p); err != nil {
			b.fail(err)
		}
	}
}

// ufs binds an array of unsigned values whose width is given by another field
func (b *binder) ufs(name string, p *[]uint64, count string, n int, size string, width uint8) {
	if !arrayPrologue(b, name, KxUf, p, count, size) {
		return
	}
	w := int(width)
	validWidth := w == 1 || w == 2 || w == 4 || w == 8
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		if n == 0 {
			*p = nil
			return
		}
		if !validWidth {
			b.fail(fmt.Errorf("%s of %d is not a valid element width for %s", size, width, name))
			return
		}
		if b.r.Len() < n*w {
			b.fail(fmt.Errorf("%w: %d elements of %d bytes, have %d", codec.ErrInsufficientData, n, w, b.r.Len()))
			return
		}
		out := make([]uint64, n)
		for i := range out {
			v, err := b.r.UN(w)
			if err != nil {
				b.fail(err)
				return
			}
			out[i] = v
		}
		*p = out
	case modeEncode:
		if !arrayLength(b, len(*p), n, count) || len(*p) == 0 {
			return
		}
		if !validWidth {
			b.fail(fmt.Errorf("%s of %d is not a valid element width for %s", size, width, name))
			return
		}
		for _, v := range *p {
			if err := b.w.PutUN(v, w); err != nil {
				b.fail(err)
				return
			}
		}
	}
}

// cfs binds an array of fixed length strings whose length is given by another field
func (b *binder) cfs(name string, p *[]string, count string, n int, size string, width uint8) {
	if !arrayPrologue(b, name, KxCf, p, count, size) {
		return
	}
	w := int(width)
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		if n == 0 {
			*p = nil
			return
		}
		if b.r.Len() < n*w {
			b.fail(fmt.Errorf("%w: %d strings of %d bytes, have %d", codec.ErrInsufficientData, n, w, b.r.Len()))
			return
		}
		out := make([]string, n)
		for i := range out {
			s, err := b.r.Cf(w)
			if err != nil {
				b.fail(err)
				return
			}
			out[i] = s
		}
		*p = out
	case modeEncode:
		if !arrayLength(b, len(*p), n, count) {
			return
		}
		for _, s := range *p {
			if err := b.w.PutCf(s, w); err != nil {
				b.fail(err)
				return
			}
		}
	}
}

// vn binds the typed generic data of a GDR
func (b *binder) vn(name string, p *[]GenValue, count string, n int) {
	if !arrayPrologue(b, name, Vn, p, count, "") {
		return
	}
	switch b.mode {
	case modeDecode:
		if b.done {
			return
		}
		if n == 0 {
			*p = nil
			return
		}
		if b.r.Len() < n {
			b.fail(fmt.Errorf("%w: %d generic fields need at least %d bytes, have %d", codec.ErrInsufficientData, n, n, b.r.Len()))
			return
		}
		out := make([]GenValue, n)
		for i := range out {
			v, err := readGenValue(b.r)
			if err != nil {
				b.fail(err)
				return
			}
			out[i] = v
		}
		*p = out
	case modeEncode:
		if !arrayLength(b, len(*p), n, count) {
			return
		}
		for _, v := range *p {
			if err := writeGenValue(b.w, v); err != nil {
				b.fail(err)
				return
			}
		}
	}
}

func readGenValue(r *codec.Reader) (GenValue, error) {
	code, err := r.U1()
	if err != nil {
		return GenValue{}, err
	}
	t := GenType(code)
	var v any
	switch t {
	case GenB0:
		return GenValue{Type: t}, nil
	case GenU1, GenN1:
		v, err = r.U1()
	case GenU2:
		v, err = r.U2()
	case GenU4:
		v, err = r.U4()
	case GenI1:
		v, err = r.I1()
	case GenI2:
		v, err = r.I2()
	case GenI4:
		v, err = r.I4()
	case GenR4:
		v, err = r.R4()
	case GenR8:
		v, err = r.R8()
	case GenCn:
		v, err = r.Cn()
	case GenBn:
		v, err = r.Bn()
	case GenDn:
		var bits uint16
		var data []byte
		bits, data, err = r.Dn()
		v = BitField{Bits: bits, Data: data}
	default:
		return GenValue{}, fmt.Errorf("unknown GDR type code %d", code)
	}
	if err != nil {
		return GenValue{}, err
	}
	return GenValue{Type: t, Value: v}, nil
}

func writeGenValue(w *codec.Writer, g GenValue) error {
	bad := func() error {
		return fmt.Errorf("GDR value %T does not match type code %d", g.Value, g.Type)
	}
	w.PutU1(uint8(g.Type))
	switch g.Type {
	case GenB0:
		return nil
	case GenU1, GenN1:
		v, ok := g.Value.(uint8)
		if !ok {
			return bad()
		}
		w.PutU1(v)
	case GenU2:
		v, ok := g.Value.(uint16)
		if !ok {
			return bad()
		}
		w.PutU2(v)
	case GenU4:
		v, ok := g.Value.(uint32)
		if !ok {
			return bad()
		}
		w.PutU4(v)
	case GenI1:
		v, ok := g.Value.(int8)
		if !ok {
			return bad()
		}
		w.PutI1(v)
	case GenI2:
		v, ok := g.Value.(int16)
		if !ok {
			return bad()
		}
		w.PutI2(v)
	case GenI4:
		v, ok := g.Value.(int32)
		if !ok {
			return bad()
		}
		w.PutI4(v)
	case GenR4:
		v, ok := g.Value.(float32)
		if !ok {
			return bad()
		}
		w.PutR4(v)
	case GenR8:
		v, ok := g.Value.(float64)
		if !ok {
			return bad()
		}
		w.PutR8(v)
	case GenCn:
		v, ok := g.Value.(string)
		if !ok {
			return bad()
		}
		return w.PutCn(v)
	case GenBn:
		v, ok := g.Value.([]byte)
		if !ok {
			return bad()
		}
		return w.PutBn(v)
	case GenDn:
		v, ok := g.Value.(BitField)
		if !ok {
			return bad()
		}
		return w.PutDn(v.Bits, v.Data)
	default:
		return fmt.Errorf("unknown GDR type code %d", g.Type)
	}
	return nil
}
