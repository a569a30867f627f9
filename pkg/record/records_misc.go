package record

// BPS is the Begin Program Section Record
type BPS struct {
	SeqName string
}

func (*BPS) Type() RecordType { return RecordType{20, 10} }

func (r *BPS) bind(b *binder) {
	b.cn("SEQ_NAME", &r.SeqName, "")
}

// EPS is the End Program Section Record. It has no fields.
type EPS struct{}

func (*EPS) Type() RecordType { return RecordType{20, 20} }

func (*EPS) bind(*binder) {}

// GDR is the Generic Data Record. FLD_CNT counts every value, pad bytes included.
type GDR struct {
	FldCnt  uint16
	GenData []GenValue
}

func (*GDR) Type() RecordType { return RecordType{50, 10} }

func (r *GDR) bind(b *binder) {
	b.u2("FLD_CNT", &r.FldCnt, 0)
	b.vn("GEN_DATA", &r.GenData, "FLD_CNT", int(r.FldCnt))
}

// DTR is the Datalog Text Record
type DTR struct {
	TextDat string
}

func (*DTR) Type() RecordType { return RecordType{50, 30} }

func (r *DTR) bind(b *binder) {
	b.cn("TEXT_DAT", &r.TextDat, "")
}

// Unknown holds a record whose (type, subtype) is not in the schema table.
// Body is kept verbatim so encoding reproduces the original bytes.
type Unknown struct {
	Header Header
	Body   []byte
}

func (u *Unknown) Type() RecordType { return u.Header.Type() }

func (*Unknown) bind(*binder) {}
