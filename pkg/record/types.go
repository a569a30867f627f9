package record

import "fmt"

// FieldType is the wire type of a record field
type FieldType uint8

const (
	U1 FieldType = iota + 1
	U2
	U4
	U8
	I1
	I2
	I4
	R4
	R8
	C1
	B1
	Cn
	Sn
	Bn
	Dn
	KxU1
	KxU2
	KxU4
	KxU8
	KxR4
	KxN1
	KxCn
	KxSn
	KxCf
	KxUf
	Vn
)

var fieldTypeNames = map[FieldType]string{
	U1: "U1", U2: "U2", U4: "U4", U8: "U8",
	I1: "I1", I2: "I2", I4: "I4",
	R4: "R4", R8: "R8",
	C1: "C1", B1: "B1",
	Cn: "Cn", Sn: "Sn", Bn: "Bn", Dn: "Dn",
	KxU1: "kxU1", KxU2: "kxU2", KxU4: "kxU4", KxU8: "kxU8", KxR4: "kxR4",
	KxN1: "kxN1", KxCn: "kxCn", KxSn: "kxSn", KxCf: "kxCf", KxUf: "kxUf",
	Vn: "Vn",
}

func (t FieldType) String() string {
	if s, ok := fieldTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// IsArray reports whether the field is a count-driven array
func (t FieldType) IsArray() bool {
	return t >= KxU1
}

// Presence describes when a field appears in a record body
type Presence uint8

const (
	// PresenceAlways fields are required by the standard. A body that ends before
	// them still decodes, with sentinels.
	PresenceAlways Presence = iota
	// PresenceCount fields are arrays sized by an earlier field's value
	PresenceCount
	// PresenceTail fields are optional and may be omitted from the end of a body
	PresenceTail
)

func (p Presence) String() string {
	switch p {
	case PresenceAlways:
		return "always"
	case PresenceCount:
		return "count"
	case PresenceTail:
		return "tail"
	default:
		return fmt.Sprintf("Presence(%d)", uint8(p))
	}
}

// FieldSpec describes one field of a record layout
type FieldSpec struct {
	Name       string
	Type       FieldType
	Presence   Presence
	CountField string // Field holding the element count (arrays only)
	SizeField  string // Field holding the element width (kxUf, kxCf only)
	Sentinel   any    // Value assigned when the field is absent

	countIndex int
	sizeIndex  int
}

// BitField is a Dn value: a bit count and ceil(Bits/8) bytes of data
type BitField struct {
	Bits uint16
	Data []byte
}

// Bit reports whether bit i is set, counting from the least significant bit of the first byte
func (f BitField) Bit(i int) bool {
	if i < 0 || i >= int(f.Bits) || i/8 >= len(f.Data) {
		return false
	}
	return f.Data[i/8]&(1<<uint(i%8)) != 0
}

// GenType is the type code of one GDR data field
type GenType uint8

const (
	GenB0 GenType = 0  // Pad byte, no value
	GenU1 GenType = 1  // uint8
	GenU2 GenType = 2  // uint16
	GenU4 GenType = 3  // uint32
	GenI1 GenType = 4  // int8
	GenI2 GenType = 5  // int16
	GenI4 GenType = 6  // int32
	GenR4 GenType = 7  // float32
	GenR8 GenType = 8  // float64
	GenCn GenType = 10 // string
	GenBn GenType = 11 // []byte
	GenDn GenType = 12 // BitField
	GenN1 GenType = 13 // uint8, low nibble
)

// GenValue is one typed value of a GDR record
type GenValue struct {
	Type  GenType
	Value any
}

func (v GenValue) String() string {
	if v.Type == GenB0 {
		return "B0"
	}
	return fmt.Sprintf("%v", v.Value)
}
