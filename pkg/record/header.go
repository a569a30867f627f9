package record

import (
	"fmt"
	"strings"

	"github.com/ssargent/gostdf/pkg/codec"
)

// HeaderSize is the encoded size of a record header
const HeaderSize = 4

// MaxBodySize is the largest body a header length can declare
const MaxBodySize = 0xFFFF

// RecordType identifies a record kind by its REC_TYP and REC_SUB codes
type RecordType struct {
	Typ uint8
	Sub uint8
}

func (t RecordType) String() string {
	if s, ok := DefaultTable().Lookup(t); ok {
		return s.Name
	}
	return fmt.Sprintf("(%d,%d)", t.Typ, t.Sub)
}

// Kind returns the filter bit for this record type
func (t RecordType) Kind() Kind {
	if s, ok := DefaultTable().Lookup(t); ok {
		return s.Kind
	}
	return KindUnknown
}

// Header precedes every record body
type Header struct {
	Len uint16 // Body length in bytes, as declared by the producer
	Typ uint8  // Record type
	Sub uint8  // Record subtype
}

// Type returns the (type, subtype) pair of the header
func (h Header) Type() RecordType {
	return RecordType{Typ: h.Typ, Sub: h.Sub}
}

// IsType reports whether the header's record kind is in mask
func (h Header) IsType(mask Kind) bool {
	return h.Type().Kind()&mask != 0
}

// ParseHeader decodes a four byte header in the given order
func ParseHeader(b []byte, order codec.ByteOrder) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", codec.ErrInsufficientData, HeaderSize, len(b))
	}
	return Header{
		Len: order.Uint16(b[0:2]),
		Typ: b[2],
		Sub: b[3],
	}, nil
}

// AppendTo appends the encoded header to b
func (h Header) AppendTo(b []byte, order codec.ByteOrder) []byte {
	b = order.AppendUint16(b, h.Len)
	return append(b, h.Typ, h.Sub)
}

// Kind is a bit set over record kinds, used to filter streams.
// Kinds combine with |, e.g. KindPIR|KindPTR.
type Kind uint64

const (
	KindFAR Kind = 1 << iota
	KindATR
	KindVUR
	KindMIR
	KindMRR
	KindPCR
	KindHBR
	KindSBR
	KindPMR
	KindPGR
	KindPLR
	KindRDR
	KindSDR
	KindPSR
	KindNMR
	KindCNR
	KindSSR
	KindCDR
	KindWIR
	KindWRR
	KindWCR
	KindPIR
	KindPRR
	KindTSR
	KindPTR
	KindMPR
	KindFTR
	KindSTR
	KindBPS
	KindEPS
	KindGDR
	KindDTR
	// KindUnknown matches records missing from the schema table
	KindUnknown
)

// KindAll matches every record
const KindAll = KindUnknown<<1 - 1

// Has reports whether any bit of other is set in k
func (k Kind) Has(other Kind) bool {
	return k&other != 0
}

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	if k == KindAll {
		return "all"
	}
	var names []string
	for _, s := range DefaultTable().Schemas() {
		if k&s.Kind != 0 {
			names = append(names, s.Name)
		}
	}
	if k&KindUnknown != 0 {
		names = append(names, "UNKNOWN")
	}
	return strings.Join(names, "|")
}

// ParseKinds builds a mask from record names such as "PTR" or "pir".
// "ALL" selects every kind and "UNKNOWN" selects unmodeled records.
func ParseKinds(names []string) (Kind, error) {
	var mask Kind
	for _, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		switch n {
		case "":
			continue
		case "ALL":
			mask |= KindAll
			continue
		case "UNKNOWN":
			mask |= KindUnknown
			continue
		}
		s, ok := DefaultTable().LookupName(n)
		if !ok {
			return 0, fmt.Errorf("unknown record name %q", n)
		}
		mask |= s.Kind
	}
	return mask, nil
}
