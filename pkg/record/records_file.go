package record

// File and lot level records

// FAR is the File Attributes Record. It is always the first record of a file
// and its CPUType selects the byte order of everything that follows.
type FAR struct {
	CPUType uint8
	StdfVer uint8
}

func (*FAR) Type() RecordType { return RecordType{0, 10} }

func (r *FAR) bind(b *binder) {
	b.u1("CPU_TYPE", &r.CPUType, 0)
	b.u1("STDF_VER", &r.StdfVer, 0)
}

// ATR is the Audit Trail Record
type ATR struct {
	ModTim  uint32
	CmdLine string
}

func (*ATR) Type() RecordType { return RecordType{0, 20} }

func (r *ATR) bind(b *binder) {
	b.u4("MOD_TIM", &r.ModTim, 0)
	b.cn("CMD_LINE", &r.CmdLine, "")
}

// VUR is the Version Update Record (V4-2007)
type VUR struct {
	UpdNam string
}

func (*VUR) Type() RecordType { return RecordType{0, 30} }

func (r *VUR) bind(b *binder) {
	b.cn("UPD_NAM", &r.UpdNam, "")
}

// MIR is the Master Information Record
type MIR struct {
	SetupT  uint32
	StartT  uint32
	StatNum uint8
	ModeCod byte
	RtstCod byte
	ProtCod byte
	BurnTim uint16
	CmodCod byte
	LotID   string
	PartTyp string
	NodeNam string
	TstrTyp string
	JobNam  string
	JobRev  string
	SblotID string
	OperNam string
	ExecTyp string
	ExecVer string
	TestCod string
	TstTemp string
	UserTxt string
	AuxFile string
	PkgTyp  string
	FamlyID string
	DateCod string
	FacilID string
	FloorID string
	ProcID  string
	OperFrq string
	SpecNam string
	SpecVer string
	FlowID  string
	SetupID string
	DsgnRev string
	EngID   string
	RomCod  string
	SerlNum string
	SuprNam string
}

func (*MIR) Type() RecordType { return RecordType{1, 10} }

func (r *MIR) bind(b *binder) {
	b.u4("SETUP_T", &r.SetupT, 0)
	b.u4("START_T", &r.StartT, 0)
	b.u1("STAT_NUM", &r.StatNum, 0)
	b.c1("MODE_COD", &r.ModeCod, ' ')
	b.c1("RTST_COD", &r.RtstCod, ' ')
	b.c1("PROT_COD", &r.ProtCod, ' ')
	b.u2("BURN_TIM", &r.BurnTim, 65535)
	b.c1("CMOD_COD", &r.CmodCod, ' ')
	b.cn("LOT_ID", &r.LotID, "")
	b.cn("PART_TYP", &r.PartTyp, "")
	b.cn("NODE_NAM", &r.NodeNam, "")
	b.cn("TSTR_TYP", &r.TstrTyp, "")
	b.cn("JOB_NAM", &r.JobNam, "")
	b.cn("JOB_REV", &r.JobRev, "")
	b.cn("SBLOT_ID", &r.SblotID, "")
	b.cn("OPER_NAM", &r.OperNam, "")
	b.cn("EXEC_TYP", &r.ExecTyp, "")
	b.cn("EXEC_VER", &r.ExecVer, "")
	b.cn("TEST_COD", &r.TestCod, "")
	b.cn("TST_TEMP", &r.TstTemp, "")
	b.cn("USER_TXT", &r.UserTxt, "")
	b.cn("AUX_FILE", &r.AuxFile, "")
	b.cn("PKG_TYP", &r.PkgTyp, "")
	b.cn("FAMLY_ID", &r.FamlyID, "")
	b.cn("DATE_COD", &r.DateCod, "")
	b.cn("FACIL_ID", &r.FacilID, "")
	b.cn("FLOOR_ID", &r.FloorID, "")
	b.cn("PROC_ID", &r.ProcID, "")
	b.cn("OPER_FRQ", &r.OperFrq, "")
	b.cn("SPEC_NAM", &r.SpecNam, "")
	b.cn("SPEC_VER", &r.SpecVer, "")
	b.cn("FLOW_ID", &r.FlowID, "")
	b.cn("SETUP_ID", &r.SetupID, "")
	b.cn("DSGN_REV", &r.DsgnRev, "")
	b.cn("ENG_ID", &r.EngID, "")
	b.cn("ROM_COD", &r.RomCod, "")
	b.cn("SERL_NUM", &r.SerlNum, "")
	b.cn("SUPR_NAM", &r.SuprNam, "")
}

// MRR is the Master Results Record
type MRR struct {
	FinishT uint32
	DispCod byte
	UsrDesc string
	ExcDesc string
}

func (*MRR) Type() RecordType { return RecordType{1, 20} }

func (r *MRR) bind(b *binder) {
	b.u4("FINISH_T", &r.FinishT, 0)
	b.c1("DISP_COD", &r.DispCod, ' ')
	b.cn("USR_DESC", &r.UsrDesc, "")
	b.cn("EXC_DESC", &r.ExcDesc, "")
}

// PCR is the Part Count Record. HeadNum 255 summarises all heads.
type PCR struct {
	HeadNum uint8
	SiteNum uint8
	PartCnt uint32
	RtstCnt uint32
	AbrtCnt uint32
	GoodCnt uint32
	FuncCnt uint32
}

func (*PCR) Type() RecordType { return RecordType{1, 30} }

func (r *PCR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.u4("PART_CNT", &r.PartCnt, 0)
	b.u4("RTST_CNT", &r.RtstCnt, 4294967295)
	b.u4("ABRT_CNT", &r.AbrtCnt, 4294967295)
	b.u4("GOOD_CNT", &r.GoodCnt, 4294967295)
	b.u4("FUNC_CNT", &r.FuncCnt, 4294967295)
}

// HBR is the Hardware Bin Record
type HBR struct {
	HeadNum uint8
	SiteNum uint8
	HbinNum uint16
	HbinCnt uint32
	HbinPf  byte
	HbinNam string
}

func (*HBR) Type() RecordType { return RecordType{1, 40} }

func (r *HBR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.u2("HBIN_NUM", &r.HbinNum, 0)
	b.u4("HBIN_CNT", &r.HbinCnt, 0)
	b.c1("HBIN_PF", &r.HbinPf, ' ')
	b.cn("HBIN_NAM", &r.HbinNam, "")
}

// SBR is the Software Bin Record
type SBR struct {
	HeadNum uint8
	SiteNum uint8
	SbinNum uint16
	SbinCnt uint32
	SbinPf  byte
	SbinNam string
}

func (*SBR) Type() RecordType { return RecordType{1, 50} }

func (r *SBR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.u2("SBIN_NUM", &r.SbinNum, 0)
	b.u4("SBIN_CNT", &r.SbinCnt, 0)
	b.c1("SBIN_PF", &r.SbinPf, ' ')
	b.cn("SBIN_NAM", &r.SbinNam, "")
}

// PMR is the Pin Map Record
type PMR struct {
	PmrIndx uint16
	ChanTyp uint16
	ChanNam string
	PhyNam  string
	LogNam  string
	HeadNum uint8
	SiteNum uint8
}

func (*PMR) Type() RecordType { return RecordType{1, 60} }

func (r *PMR) bind(b *binder) {
	b.u2("PMR_INDX", &r.PmrIndx, 0)
	b.u2("CHAN_TYP", &r.ChanTyp, 0)
	b.cn("CHAN_NAM", &r.ChanNam, "")
	b.cn("PHY_NAM", &r.PhyNam, "")
	b.cn("LOG_NAM", &r.LogNam, "")
	b.u1("HEAD_NUM", &r.HeadNum, 1)
	b.u1("SITE_NUM", &r.SiteNum, 1)
}

// PGR is the Pin Group Record
type PGR struct {
	GrpIndx uint16
	GrpNam  string
	IndxCnt uint16
	PmrIndx []uint16
}

func (*PGR) Type() RecordType { return RecordType{1, 62} }

func (r *PGR) bind(b *binder) {
	b.u2("GRP_INDX", &r.GrpIndx, 0)
	b.cn("GRP_NAM", &r.GrpNam, "")
	b.u2("INDX_CNT", &r.IndxCnt, 0)
	b.u2s("PMR_INDX", &r.PmrIndx, "INDX_CNT", int(r.IndxCnt))
}

// PLR is the Pin List Record
type PLR struct {
	GrpCnt  uint16
	GrpIndx []uint16
	GrpMode []uint16
	GrpRadx []uint8
	PgmChar []string
	RtnChar []string
	PgmChal []string
	RtnChal []string
}

func (*PLR) Type() RecordType { return RecordType{1, 63} }

func (r *PLR) bind(b *binder) {
	b.u2("GRP_CNT", &r.GrpCnt, 0)
	n := int(r.GrpCnt)
	b.u2s("GRP_INDX", &r.GrpIndx, "GRP_CNT", n)
	b.u2s("GRP_MODE", &r.GrpMode, "GRP_CNT", n)
	b.u1s("GRP_RADX", &r.GrpRadx, "GRP_CNT", n)
	b.cns("PGM_CHAR", &r.PgmChar, "GRP_CNT", n)
	b.cns("RTN_CHAR", &r.RtnChar, "GRP_CNT", n)
	b.cns("PGM_CHAL", &r.PgmChal, "GRP_CNT", n)
	b.cns("RTN_CHAL", &r.RtnChal, "GRP_CNT", n)
}

// RDR is the Retest Data Record
type RDR struct {
	NumBins uint16
	RtstBin []uint16
}

func (*RDR) Type() RecordType { return RecordType{1, 70} }

func (r *RDR) bind(b *binder) {
	b.u2("NUM_BINS", &r.NumBins, 0)
	b.u2s("RTST_BIN", &r.RtstBin, "NUM_BINS", int(r.NumBins))
}

// SDR is the Site Description Record
type SDR struct {
	HeadNum uint8
	SiteGrp uint8
	SiteCnt uint8
	SiteNum []uint8
	HandTyp string
	HandID  string
	CardTyp string
	CardID  string
	LoadTyp string
	LoadID  string
	DibTyp  string
	DibID   string
	CablTyp string
	CablID  string
	ContTyp string
	ContID  string
	LasrTyp string
	LasrID  string
	ExtrTyp string
	ExtrID  string
}

func (*SDR) Type() RecordType { return RecordType{1, 80} }

func (r *SDR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_GRP", &r.SiteGrp, 0)
	b.u1("SITE_CNT", &r.SiteCnt, 0)
	b.u1s("SITE_NUM", &r.SiteNum, "SITE_CNT", int(r.SiteCnt))
	b.cn("HAND_TYP", &r.HandTyp, "")
	b.cn("HAND_ID", &r.HandID, "")
	b.cn("CARD_TYP", &r.CardTyp, "")
	b.cn("CARD_ID", &r.CardID, "")
	b.cn("LOAD_TYP", &r.LoadTyp, "")
	b.cn("LOAD_ID", &r.LoadID, "")
	b.cn("DIB_TYP", &r.DibTyp, "")
	b.cn("DIB_ID", &r.DibID, "")
	b.cn("CABL_TYP", &r.CablTyp, "")
	b.cn("CABL_ID", &r.CablID, "")
	b.cn("CONT_TYP", &r.ContTyp, "")
	b.cn("CONT_ID", &r.ContID, "")
	b.cn("LASR_TYP", &r.LasrTyp, "")
	b.cn("LASR_ID", &r.LasrID, "")
	b.cn("EXTR_TYP", &r.ExtrTyp, "")
	b.cn("EXTR_ID", &r.ExtrID, "")
}
