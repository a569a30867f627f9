package codec

import (
	"encoding/binary"
	"fmt"
)

// ByteOrder is the byte order of multi-byte fields in one STDF stream
type ByteOrder uint8

const (
	// LittleEndian is written by CPU type 2 (Sun 386i, IBM PC and compatibles)
	LittleEndian ByteOrder = iota
	// BigEndian is written by CPU type 1 (Sun 1, 2, 3 and 4)
	BigEndian
)

// CPU type codes carried in FAR.CPU_TYPE
const (
	CPUTypeVAX   uint8 = 0
	CPUTypeSun   uint8 = 1
	CPUTypeIntel uint8 = 2
)

type orderer interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o ByteOrder) impl() orderer {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String returns the name of the byte order
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// Uint16 decodes a two byte unsigned value in this order
func (o ByteOrder) Uint16(b []byte) uint16 {
	return o.impl().Uint16(b)
}

// AppendUint16 appends v to b in this order
func (o ByteOrder) AppendUint16(b []byte, v uint16) []byte {
	return o.impl().AppendUint16(b, v)
}

// CPUType returns the FAR.CPU_TYPE value that declares this order
func (o ByteOrder) CPUType() uint8 {
	if o == BigEndian {
		return CPUTypeSun
	}
	return CPUTypeIntel
}

// OrderForCPU maps a FAR.CPU_TYPE value to a byte order.
// VAX/PDP files (type 0) use a non-IEEE float format and are not supported.
func OrderForCPU(cpuType uint8) (ByteOrder, bool) {
	switch cpuType {
	case CPUTypeSun:
		return BigEndian, true
	case CPUTypeIntel:
		return LittleEndian, true
	default:
		return LittleEndian, false
	}
}

// ParseByteOrder parses "little", "big" and their long forms
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "little", "le", "little-endian":
		return LittleEndian, nil
	case "big", "be", "big-endian":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("unknown byte order %q", s)
	}
}
