package record

// Scan test and pattern records added in V4-2007

// PSR is the Pattern Sequence Record
type PSR struct {
	ContFlg byte
	PsrIndx uint16
	PsrNam  string
	OptFlg  byte
	TotpCnt uint16
	LocpCnt uint16
	PatBgn  []uint64
	PatEnd  []uint64
	PatFile []string
	PatLbl  []string
	FileUID []string
	AtpgDsc []string
	SrcID   []string
}

func (*PSR) Type() RecordType { return RecordType{1, 90} }

func (r *PSR) bind(b *binder) {
	b.b1("CONT_FLG", &r.ContFlg, 0)
	b.u2("PSR_INDX", &r.PsrIndx, 0)
	b.cn("PSR_NAM", &r.PsrNam, "")
	b.b1("OPT_FLG", &r.OptFlg, 0)
	b.u2("TOTP_CNT", &r.TotpCnt, 0)
	b.u2("LOCP_CNT", &r.LocpCnt, 0)
	n := int(r.LocpCnt)
	b.u8s("PAT_BGN", &r.PatBgn, "LOCP_CNT", n)
	b.u8s("PAT_END", &r.PatEnd, "LOCP_CNT", n)
	b.cns("PAT_FILE", &r.PatFile, "LOCP_CNT", n)
	b.cns("PAT_LBL", &r.PatLbl, "LOCP_CNT", n)
	b.cns("FILE_UID", &r.FileUID, "LOCP_CNT", n)
	b.cns("ATPG_DSC", &r.AtpgDsc, "LOCP_CNT", n)
	b.cns("SRC_ID", &r.SrcID, "LOCP_CNT", n)
}

// NMR is the Name Map Record
type NMR struct {
	ContFlg byte
	TotmCnt uint16
	LocmCnt uint16
	PmrIndx []uint16
	AtpgNam []string
}

func (*NMR) Type() RecordType { return RecordType{1, 91} }

func (r *NMR) bind(b *binder) {
	b.b1("CONT_FLG", &r.ContFlg, 0)
	b.u2("TOTM_CNT", &r.TotmCnt, 0)
	b.u2("LOCM_CNT", &r.LocmCnt, 0)
	b.u2s("PMR_INDX", &r.PmrIndx, "LOCM_CNT", int(r.LocmCnt))
	b.cns("ATPG_NAM", &r.AtpgNam, "LOCM_CNT", int(r.LocmCnt))
}

// CNR is the Cell Name Record
type CNR struct {
	ChnNum  uint16
	BitPos  uint32
	CellNam string
}

func (*CNR) Type() RecordType { return RecordType{1, 92} }

func (r *CNR) bind(b *binder) {
	b.u2("CHN_NUM", &r.ChnNum, 0)
	b.u4("BIT_POS", &r.BitPos, 0)
	b.sn("CELL_NAM", &r.CellNam, "")
}

// SSR is the Scan Structure Record
type SSR struct {
	SsrNam  string
	ChnCnt  uint16
	ChnList []uint16
}

func (*SSR) Type() RecordType { return RecordType{1, 93} }

func (r *SSR) bind(b *binder) {
	b.cn("SSR_NAM", &r.SsrNam, "")
	b.u2("CHN_CNT", &r.ChnCnt, 0)
	b.u2s("CHN_LIST", &r.ChnList, "CHN_CNT", int(r.ChnCnt))
}

// CDR is the Chain Description Record
type CDR struct {
	ContFlg byte
	CdrIndx uint16
	ChnNam  string
	ChnLen  uint32
	SinPin  uint16
	SoutPin uint16
	MstrCnt uint8
	MClks   []uint16
	SlavCnt uint8
	SClks   []uint16
	InvVal  uint8
	LstCnt  uint16
	CellLst []string
}

func (*CDR) Type() RecordType { return RecordType{1, 94} }

func (r *CDR) bind(b *binder) {
	b.b1("CONT_FLG", &r.ContFlg, 0)
	b.u2("CDR_INDX", &r.CdrIndx, 0)
	b.cn("CHN_NAM", &r.ChnNam, "")
	b.u4("CHN_LEN", &r.ChnLen, 0)
	b.u2("SIN_PIN", &r.SinPin, 0)
	b.u2("SOUT_PIN", &r.SoutPin, 0)
	b.u1("MSTR_CNT", &r.MstrCnt, 0)
	b.u2s("M_CLKS", &r.MClks, "MSTR_CNT", int(r.MstrCnt))
	b.u1("SLAV_CNT", &r.SlavCnt, 0)
	b.u2s("S_CLKS", &r.SClks, "SLAV_CNT", int(r.SlavCnt))
	b.u1("INV_VAL", &r.InvVal, 255)
	b.u2("LST_CNT", &r.LstCnt, 0)
	b.sns("CELL_LST", &r.CellLst, "LST_CNT", int(r.LstCnt))
}

// STR is the Scan Test Record. The element width of the variable width
// arrays comes from the matching *_SIZE field.
type STR struct {
	ContFlg byte
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	PsrRef  uint16
	TestFlg byte
	LogTyp  string
	TestTxt string
	AlarmID string
	ProgTxt string
	RsltTxt string
	ZVal    uint8
	FmuFlg  byte
	MaskMap BitField
	FalMap  BitField
	CycCntT uint64
	TotfCnt uint32
	TotlCnt uint32
	CycBase uint64
	BitBase uint32
	CondCnt uint16
	LimCnt  uint16
	CycSize uint8
	PmrSize uint8
	ChnSize uint8
	PatSize uint8
	BitSize uint8
	U1Size  uint8
	U2Size  uint8
	U3Size  uint8
	UtxSize uint8
	CapBgn  uint16
	LimIndx []uint16
	LimSpec []uint32
	CondLst []string
	CycCnt  uint16
	CycOfst []uint64
	PmrCnt  uint16
	PmrIndx []uint64
	ChnCnt  uint16
	ChnNum  []uint64
	ExpCnt  uint16
	ExpData []uint8
	CapCnt  uint16
	CapData []uint8
	NewCnt  uint16
	NewData []uint8
	PatCnt  uint16
	PatNum  []uint64
	BposCnt uint16
	BitPos  []uint64
	Usr1Cnt uint16
	Usr1    []uint64
	Usr2Cnt uint16
	Usr2    []uint64
	Usr3Cnt uint16
	Usr3    []uint64
	TxtCnt  uint16
	UserTxt []string
}

func (*STR) Type() RecordType { return RecordType{15, 30} }

func (r *STR) bind(b *binder) {
	b.b1("CONT_FLG", &r.ContFlg, 0)
	b.u4("TEST_NUM", &r.TestNum, 0)
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.u2("PSR_REF", &r.PsrRef, 0)
	b.b1("TEST_FLG", &r.TestFlg, 0)
	b.cn("LOG_TYP", &r.LogTyp, "")
	b.cn("TEST_TXT", &r.TestTxt, "")
	b.cn("ALARM_ID", &r.AlarmID, "")
	b.cn("PROG_TXT", &r.ProgTxt, "")
	b.cn("RSLT_TXT", &r.RsltTxt, "")
	b.u1("Z_VAL", &r.ZVal, 0)
	b.b1("FMU_FLG", &r.FmuFlg, 0)
	b.dn("MASK_MAP", &r.MaskMap)
	b.dn("FAL_MAP", &r.FalMap)
	b.u8("CYC_CNT_T", &r.CycCntT, 0)
	b.u4("TOTF_CNT", &r.TotfCnt, 0)
	b.u4("TOTL_CNT", &r.TotlCnt, 0)
	b.u8("CYC_BASE", &r.CycBase, 0)
	b.u4("BIT_BASE", &r.BitBase, 0)
	b.u2("COND_CNT", &r.CondCnt, 0)
	b.u2("LIM_CNT", &r.LimCnt, 0)
	b.u1("CYC_SIZE", &r.CycSize, 0)
	b.u1("PMR_SIZE", &r.PmrSize, 0)
	b.u1("CHN_SIZE", &r.ChnSize, 0)
	b.u1("PAT_SIZE", &r.PatSize, 0)
	b.u1("BIT_SIZE", &r.BitSize, 0)
	b.u1("U1_SIZE", &r.U1Size, 0)
	b.u1("U2_SIZE", &r.U2Size, 0)
	b.u1("U3_SIZE", &r.U3Size, 0)
	b.u1("UTX_SIZE", &r.UtxSize, 0)
	b.u2("CAP_BGN", &r.CapBgn, 0)
	b.u2s("LIM_INDX", &r.LimIndx, "LIM_CNT", int(r.LimCnt))
	b.u4s("LIM_SPEC", &r.LimSpec, "LIM_CNT", int(r.LimCnt))
	b.cns("COND_LST", &r.CondLst, "COND_CNT", int(r.CondCnt))
	b.u2("CYC_CNT", &r.CycCnt, 0)
	b.ufs("CYC_OFST", &r.CycOfst, "CYC_CNT", int(r.CycCnt), "CYC_SIZE", r.CycSize)
	b.u2("PMR_CNT", &r.PmrCnt, 0)
	b.ufs("PMR_INDX", &r.PmrIndx, "PMR_CNT", int(r.PmrCnt), "PMR_SIZE", r.PmrSize)
	b.u2("CHN_CNT", &r.ChnCnt, 0)
	b.ufs("CHN_NUM", &r.ChnNum, "CHN_CNT", int(r.ChnCnt), "CHN_SIZE", r.ChnSize)
	b.u2("EXP_CNT", &r.ExpCnt, 0)
	b.u1s("EXP_DATA", &r.ExpData, "EXP_CNT", int(r.ExpCnt))
	b.u2("CAP_CNT", &r.CapCnt, 0)
	b.u1s("CAP_DATA", &r.CapData, "CAP_CNT", int(r.CapCnt))
	b.u2("NEW_CNT", &r.NewCnt, 0)
	b.u1s("NEW_DATA", &r.NewData, "NEW_CNT", int(r.NewCnt))
	b.u2("PAT_CNT", &r.PatCnt, 0)
	b.ufs("PAT_NUM", &r.PatNum, "PAT_CNT", int(r.PatCnt), "PAT_SIZE", r.PatSize)
	b.u2("BPOS_CNT", &r.BposCnt, 0)
	b.ufs("BIT_POS", &r.BitPos, "BPOS_CNT", int(r.BposCnt), "BIT_SIZE", r.BitSize)
	b.u2("USR1_CNT", &r.Usr1Cnt, 0)
	b.ufs("USR1", &r.Usr1, "USR1_CNT", int(r.Usr1Cnt), "U1_SIZE", r.U1Size)
	b.u2("USR2_CNT", &r.Usr2Cnt, 0)
	b.ufs("USR2", &r.Usr2, "USR2_CNT", int(r.Usr2Cnt), "U2_SIZE", r.U2Size)
	b.u2("USR3_CNT", &r.Usr3Cnt, 0)
	b.ufs("USR3", &r.Usr3, "USR3_CNT", int(r.Usr3Cnt), "U3_SIZE", r.U3Size)
	b.u2("TXT_CNT", &r.TxtCnt, 0)
	b.cfs("USER_TXT", &r.UserTxt, "TXT_CNT", int(r.TxtCnt), "UTX_SIZE", r.UtxSize)
}
