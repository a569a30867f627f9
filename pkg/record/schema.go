package record

import (
	"errors"
	"fmt"
	"sort"
)

// Record is one decoded STDF record. The set of implementations is closed:
// one struct per record kind in the schema table, plus *Unknown.
type Record interface {
	Type() RecordType
	bind(b *binder)
}

// Schema is the field layout of one record kind
type Schema struct {
	Name   string
	Type   RecordType
	Kind   Kind
	Fields []FieldSpec

	new func() Record
}

// New returns an empty record of this kind with every field set to its sentinel
func (s *Schema) New() Record {
	r := s.new()
	r.bind(&binder{mode: modeReset})
	return r
}

// Field returns the FieldSpec of the named field
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Table maps record types to their schemas. A Table is immutable once built.
type Table struct {
	byType map[RecordType]*Schema
	byName map[string]*Schema
	byKind map[Kind]*Schema
	list   []*Schema
}

type schemaEntry struct {
	name     string
	typ      RecordType
	kind     Kind
	required int // fields the standard requires, the rest may be cut from the tail
	new      func() Record
}

// newSchemaTable builds schemas by running each record's bind method in
// describe mode. Count and size references are resolved by name here and
// checked on every decode and encode, see Validate.
func newSchemaTable(entries ...schemaEntry) *Table {
	t := &Table{
		byType: make(map[RecordType]*Schema, len(entries)),
		byName: make(map[string]*Schema, len(entries)),
		byKind: make(map[Kind]*Schema, len(entries)),
	}
	for _, e := range entries {
		b := &binder{mode: modeDescribe, required: e.required}
		e.new().bind(b)

		fields := b.fields
		for i := range fields {
			fields[i].countIndex = indexOf(fields, fields[i].CountField)
			fields[i].sizeIndex = indexOf(fields, fields[i].SizeField)
		}

		s := &Schema{Name: e.name, Type: e.typ, Kind: e.kind, Fields: fields, new: e.new}
		t.byType[s.Type] = s
		t.byName[s.Name] = s
		if s.Kind != 0 {
			t.byKind[s.Kind] = s
		}
		t.list = append(t.list, s)
	}
	sort.Slice(t.list, func(i, j int) bool {
		a, b := t.list[i].Type, t.list[j].Type
		if a.Typ != b.Typ {
			return a.Typ < b.Typ
		}
		return a.Sub < b.Sub
	})
	return t
}

func indexOf(fields []FieldSpec, name string) int {
	if name == "" {
		return -1
	}
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Validate checks that every count and size field names an earlier field
func (t *Table) Validate() error {
	var errs []error
	for _, s := range t.list {
		for i, f := range s.Fields {
			if !f.Type.IsArray() {
				continue
			}
			if f.countIndex < 0 || f.countIndex >= i {
				errs = append(errs, fmt.Errorf("%w: %s.%s counted by %q, which does not precede it", ErrSchema, s.Name, f.Name, f.CountField))
			}
			if (f.Type == KxUf || f.Type == KxCf) && (f.sizeIndex < 0 || f.sizeIndex >= i) {
				errs = append(errs, fmt.Errorf("%w: %s.%s sized by %q, which does not precede it", ErrSchema, s.Name, f.Name, f.SizeField))
			}
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the schema for a (type, subtype) pair
func (t *Table) Lookup(rt RecordType) (*Schema, bool) {
	s, ok := t.byType[rt]
	return s, ok
}

// LookupName returns the schema for a record name such as "PTR"
func (t *Table) LookupName(name string) (*Schema, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// LookupKind returns the schema for a single kind bit
func (t *Table) LookupKind(k Kind) (*Schema, bool) {
	s, ok := t.byKind[k]
	return s, ok
}

// Schemas returns all schemas ordered by type and subtype
func (t *Table) Schemas() []*Schema {
	out := make([]*Schema, len(t.list))
	copy(out, t.list)
	return out
}

// New returns an empty record for rt, or an *Unknown when rt has no schema
func (t *Table) New(rt RecordType) Record {
	if s, ok := t.byType[rt]; ok {
		return s.New()
	}
	return &Unknown{Header: Header{Typ: rt.Typ, Sub: rt.Sub}}
}

// FieldValue is one named field of a decoded record
type FieldValue struct {
	FieldSpec
	Value any
}

// Fields lists the fields of r in wire order. Unknown records have no fields.
func (t *Table) Fields(r Record) []FieldValue {
	s, ok := t.byType[r.Type()]
	if !ok {
		return nil
	}
	if _, unknown := r.(*Unknown); unknown {
		return nil
	}
	out := make([]FieldValue, 0, len(s.Fields))
	r.bind(&binder{mode: modeVisit, fields: s.Fields, visit: func(spec FieldSpec, v any) {
		out = append(out, FieldValue{FieldSpec: spec, Value: v})
	}})
	return out
}

// Fields lists the fields of r using the default table
func Fields(r Record) []FieldValue {
	return DefaultTable().Fields(r)
}

// Name returns the record kind name, e.g. "PTR"
func Name(r Record) string {
	return r.Type().String()
}

// IsType reports whether r's kind is in mask
func IsType(r Record, mask Kind) bool {
	if _, ok := r.(*Unknown); ok {
		return mask&KindUnknown != 0
	}
	return r.Type().Kind()&mask != 0
}

var defaultTable *Table

func init() {
	defaultTable = newSchemaTable(
		schemaEntry{"FAR", RecordType{0, 10}, KindFAR, 2, func() Record { return new(FAR) }},
		schemaEntry{"ATR", RecordType{0, 20}, KindATR, 2, func() Record { return new(ATR) }},
		schemaEntry{"VUR", RecordType{0, 30}, KindVUR, 1, func() Record { return new(VUR) }},
		schemaEntry{"MIR", RecordType{1, 10}, KindMIR, 3, func() Record { return new(MIR) }},
		schemaEntry{"MRR", RecordType{1, 20}, KindMRR, 1, func() Record { return new(MRR) }},
		schemaEntry{"PCR", RecordType{1, 30}, KindPCR, 3, func() Record { return new(PCR) }},
		schemaEntry{"HBR", RecordType{1, 40}, KindHBR, 4, func() Record { return new(HBR) }},
		schemaEntry{"SBR", RecordType{1, 50}, KindSBR, 4, func() Record { return new(SBR) }},
		schemaEntry{"PMR", RecordType{1, 60}, KindPMR, 1, func() Record { return new(PMR) }},
		schemaEntry{"PGR", RecordType{1, 62}, KindPGR, 3, func() Record { return new(PGR) }},
		schemaEntry{"PLR", RecordType{1, 63}, KindPLR, 1, func() Record { return new(PLR) }},
		schemaEntry{"RDR", RecordType{1, 70}, KindRDR, 1, func() Record { return new(RDR) }},
		schemaEntry{"SDR", RecordType{1, 80}, KindSDR, 4, func() Record { return new(SDR) }},
		schemaEntry{"PSR", RecordType{1, 90}, KindPSR, 6, func() Record { return new(PSR) }},
		schemaEntry{"NMR", RecordType{1, 91}, KindNMR, 3, func() Record { return new(NMR) }},
		schemaEntry{"CNR", RecordType{1, 92}, KindCNR, 3, func() Record { return new(CNR) }},
		schemaEntry{"SSR", RecordType{1, 93}, KindSSR, 2, func() Record { return new(SSR) }},
		schemaEntry{"CDR", RecordType{1, 94}, KindCDR, 12, func() Record { return new(CDR) }},
		schemaEntry{"WIR", RecordType{2, 10}, KindWIR, 3, func() Record { return new(WIR) }},
		schemaEntry{"WRR", RecordType{2, 20}, KindWRR, 4, func() Record { return new(WRR) }},
		schemaEntry{"WCR", RecordType{2, 30}, KindWCR, 0, func() Record { return new(WCR) }},
		schemaEntry{"PIR", RecordType{5, 10}, KindPIR, 2, func() Record { return new(PIR) }},
		schemaEntry{"PRR", RecordType{5, 20}, KindPRR, 5, func() Record { return new(PRR) }},
		schemaEntry{"TSR", RecordType{10, 30}, KindTSR, 4, func() Record { return new(TSR) }},
		schemaEntry{"PTR", RecordType{15, 10}, KindPTR, 6, func() Record { return new(PTR) }},
		schemaEntry{"MPR", RecordType{15, 15}, KindMPR, 7, func() Record { return new(MPR) }},
		schemaEntry{"FTR", RecordType{15, 20}, KindFTR, 4, func() Record { return new(FTR) }},
		schemaEntry{"STR", RecordType{15, 30}, KindSTR, 32, func() Record { return new(STR) }},
		schemaEntry{"BPS", RecordType{20, 10}, KindBPS, 0, func() Record { return new(BPS) }},
		schemaEntry{"EPS", RecordType{20, 20}, KindEPS, 0, func() Record { return new(EPS) }},
		schemaEntry{"GDR", RecordType{50, 10}, KindGDR, 1, func() Record { return new(GDR) }},
		schemaEntry{"DTR", RecordType{50, 30}, KindDTR, 1, func() Record { return new(DTR) }},
	)
	if err := defaultTable.Validate(); err != nil {
		panic(err)
	}
}

// DefaultTable returns the STDF V4 / V4-2007 schema table
func DefaultTable() *Table {
	return defaultTable
}
