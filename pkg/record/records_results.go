package record

// Test result records

// TSR is the Test Synopsis Record
type TSR struct {
	HeadNum uint8
	SiteNum uint8
	TestTyp byte
	TestNum uint32
	ExecCnt uint32
	FailCnt uint32
	AlrmCnt uint32
	TestNam string
	SeqName string
	TestLbl string
	OptFlag byte
	TestTim float32
	TestMin float32
	TestMax float32
	TstSums float32
	TstSqrs float32
}

func (*TSR) Type() RecordType { return RecordType{10, 30} }

func (r *TSR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.c1("TEST_TYP", &r.TestTyp, ' ')
	b.u4("TEST_NUM", &r.TestNum, 0)
	b.u4("EXEC_CNT", &r.ExecCnt, 4294967295)
	b.u4("FAIL_CNT", &r.FailCnt, 4294967295)
	b.u4("ALRM_CNT", &r.AlrmCnt, 4294967295)
	b.cn("TEST_NAM", &r.TestNam, "")
	b.cn("SEQ_NAME", &r.SeqName, "")
	b.cn("TEST_LBL", &r.TestLbl, "")
	b.b1("OPT_FLAG", &r.OptFlag, 0)
	b.r4("TEST_TIM", &r.TestTim, 0)
	b.r4("TEST_MIN", &r.TestMin, 0)
	b.r4("TEST_MAX", &r.TestMax, 0)
	b.r4("TST_SUMS", &r.TstSums, 0)
	b.r4("TST_SQRS", &r.TstSqrs, 0)
}

// PTR is the Parametric Test Record
type PTR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	ParmFlg byte
	Result  float32
	TestTxt string
	AlarmID string
	OptFlag byte
	ResScal int8
	LlmScal int8
	HlmScal int8
	LoLimit float32
	HiLimit float32
	Units   string
	CResfmt string
	CLlmfmt string
	CHlmfmt string
	LoSpec  float32
	HiSpec  float32
}

func (*PTR) Type() RecordType { return RecordType{15, 10} }

func (r *PTR) bind(b *binder) {
	b.u4("TEST_NUM", &r.TestNum, 0)
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.b1("TEST_FLG", &r.TestFlg, 0)
	b.b1("PARM_FLG", &r.ParmFlg, 0)
	b.r4("RESULT", &r.Result, 0)
	b.cn("TEST_TXT", &r.TestTxt, "")
	b.cn("ALARM_ID", &r.AlarmID, "")
	b.b1("OPT_FLAG", &r.OptFlag, 0)
	b.i1("RES_SCAL", &r.ResScal, 0)
	b.i1("LLM_SCAL", &r.LlmScal, 0)
	b.i1("HLM_SCAL", &r.HlmScal, 0)
	b.r4("LO_LIMIT", &r.LoLimit, 0)
	b.r4("HI_LIMIT", &r.HiLimit, 0)
	b.cn("UNITS", &r.Units, "")
	b.cn("C_RESFMT", &r.CResfmt, "")
	b.cn("C_LLMFMT", &r.CLlmfmt, "")
	b.cn("C_HLMFMT", &r.CHlmfmt, "")
	b.r4("LO_SPEC", &r.LoSpec, 0)
	b.r4("HI_SPEC", &r.HiSpec, 0)
}

// Failed reports whether bit 7 of TEST_FLG is set
func (r *PTR) Failed() bool {
	return r.TestFlg&0x80 != 0
}

// MPR is the Multiple-Result Parametric Record
type MPR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	ParmFlg byte
	RtnIcnt uint16
	RsltCnt uint16
	RtnStat []uint8
	RtnRslt []float32
	TestTxt string
	AlarmID string
	OptFlag byte
	ResScal int8
	LlmScal int8
	HlmScal int8
	LoLimit float32
	HiLimit float32
	StartIn float32
	IncrIn  float32
	RtnIndx []uint16
	Units   string
	UnitsIn string
	CResfmt string
	CLlmfmt string
	CHlmfmt string
	LoSpec  float32
	HiSpec  float32
}

func (*MPR) Type() RecordType { return RecordType{15, 15} }

func (r *MPR) bind(b *binder) {
	b.u4("TEST_NUM", &r.TestNum, 0)
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.b1("TEST_FLG", &r.TestFlg, 0)
	b.b1("PARM_FLG", &r.ParmFlg, 0)
	b.u2("RTN_ICNT", &r.RtnIcnt, 0)
	b.u2("RSLT_CNT", &r.RsltCnt, 0)
	b.n1s("RTN_STAT", &r.RtnStat, "RTN_ICNT", int(r.RtnIcnt))
	b.r4s("RTN_RSLT", &r.RtnRslt, "RSLT_CNT", int(r.RsltCnt))
	b.cn("TEST_TXT", &r.TestTxt, "")
	b.cn("ALARM_ID", &r.AlarmID, "")
	b.b1("OPT_FLAG", &r.OptFlag, 0)
	b.i1("RES_SCAL", &r.ResScal, 0)
	b.i1("LLM_SCAL", &r.LlmScal, 0)
	b.i1("HLM_SCAL", &r.HlmScal, 0)
	b.r4("LO_LIMIT", &r.LoLimit, 0)
	b.r4("HI_LIMIT", &r.HiLimit, 0)
	b.r4("START_IN", &r.StartIn, 0)
	b.r4("INCR_IN", &r.IncrIn, 0)
	b.u2s("RTN_INDX", &r.RtnIndx, "RTN_ICNT", int(r.RtnIcnt))
	b.cn("UNITS", &r.Units, "")
	b.cn("UNITS_IN", &r.UnitsIn, "")
	b.cn("C_RESFMT", &r.CResfmt, "")
	b.cn("C_LLMFMT", &r.CLlmfmt, "")
	b.cn("C_HLMFMT", &r.CHlmfmt, "")
	b.r4("LO_SPEC", &r.LoSpec, 0)
	b.r4("HI_SPEC", &r.HiSpec, 0)
}

// FTR is the Functional Test Record
type FTR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	OptFlag byte
	CyclCnt uint32
	RelVadr uint32
	ReptCnt uint32
	NumFail uint32
	XfailAd int32
	YfailAd int32
	VectOff int16
	RtnIcnt uint16
	PgmIcnt uint16
	RtnIndx []uint16
	RtnStat []uint8
	PgmIndx []uint16
	PgmStat []uint8
	FailPin BitField
	VectNam string
	TimeSet string
	OpCode  string
	TestTxt string
	AlarmID string
	ProgTxt string
	RsltTxt string
	PatgNum uint8
	SpinMap BitField
}

func (*FTR) Type() RecordType { return RecordType{15, 20} }

func (r *FTR) bind(b *binder) {
	b.u4("TEST_NUM", &r.TestNum, 0)
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.b1("TEST_FLG", &r.TestFlg, 0)
	b.b1("OPT_FLAG", &r.OptFlag, 0)
	b.u4("CYCL_CNT", &r.CyclCnt, 0)
	b.u4("REL_VADR", &r.RelVadr, 0)
	b.u4("REPT_CNT", &r.ReptCnt, 0)
	b.u4("NUM_FAIL", &r.NumFail, 0)
	b.i4("XFAIL_AD", &r.XfailAd, 0)
	b.i4("YFAIL_AD", &r.YfailAd, 0)
	b.i2("VECT_OFF", &r.VectOff, 0)
	b.u2("RTN_ICNT", &r.RtnIcnt, 0)
	b.u2("PGM_ICNT", &r.PgmIcnt, 0)
	b.u2s("RTN_INDX", &r.RtnIndx, "RTN_ICNT", int(r.RtnIcnt))
	b.n1s("RTN_STAT", &r.RtnStat, "RTN_ICNT", int(r.RtnIcnt))
	b.u2s("PGM_INDX", &r.PgmIndx, "PGM_ICNT", int(r.PgmIcnt))
	b.n1s("PGM_STAT", &r.PgmStat, "PGM_ICNT", int(r.PgmIcnt))
	b.dn("FAIL_PIN", &r.FailPin)
	b.cn("VECT_NAM", &r.VectNam, "")
	b.cn("TIME_SET", &r.TimeSet, "")
	b.cn("OP_CODE", &r.OpCode, "")
	b.cn("TEST_TXT", &r.TestTxt, "")
	b.cn("ALARM_ID", &r.AlarmID, "")
	b.cn("PROG_TXT", &r.ProgTxt, "")
	b.cn("RSLT_TXT", &r.RsltTxt, "")
	b.u1("PATG_NUM", &r.PatgNum, 255)
	b.dn("SPIN_MAP", &r.SpinMap)
}

// Failed reports whether bit 7 of TEST_FLG is set
func (r *FTR) Failed() bool {
	return r.TestFlg&0x80 != 0
}
