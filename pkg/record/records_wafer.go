package record

// Wafer and part records

// WIR is the Wafer Information Record
type WIR struct {
	HeadNum uint8
	SiteGrp uint8
	StartT  uint32
	WaferID string
}

func (*WIR) Type() RecordType { return RecordType{2, 10} }

func (r *WIR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_GRP", &r.SiteGrp, 255)
	b.u4("START_T", &r.StartT, 0)
	b.cn("WAFER_ID", &r.WaferID, "")
}

// WRR is the Wafer Results Record
type WRR struct {
	HeadNum uint8
	SiteGrp uint8
	FinishT uint32
	PartCnt uint32
	RtstCnt uint32
	AbrtCnt uint32
	GoodCnt uint32
	FuncCnt uint32
	WaferID string
	FabwfID string
	FrameID string
	MaskID  string
	UsrDesc string
	ExcDesc string
}

func (*WRR) Type() RecordType { return RecordType{2, 20} }

func (r *WRR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_GRP", &r.SiteGrp, 255)
	b.u4("FINISH_T", &r.FinishT, 0)
	b.u4("PART_CNT", &r.PartCnt, 0)
	b.u4("RTST_CNT", &r.RtstCnt, 4294967295)
	b.u4("ABRT_CNT", &r.AbrtCnt, 4294967295)
	b.u4("GOOD_CNT", &r.GoodCnt, 4294967295)
	b.u4("FUNC_CNT", &r.FuncCnt, 4294967295)
	b.cn("WAFER_ID", &r.WaferID, "")
	b.cn("FABWF_ID", &r.FabwfID, "")
	b.cn("FRAME_ID", &r.FrameID, "")
	b.cn("MASK_ID", &r.MaskID, "")
	b.cn("USR_DESC", &r.UsrDesc, "")
	b.cn("EXC_DESC", &r.ExcDesc, "")
}

// WCR is the Wafer Configuration Record
type WCR struct {
	WafrSiz float32
	DieHt   float32
	DieWid  float32
	WfUnits uint8
	WfFlat  byte
	CenterX int16
	CenterY int16
	PosX    byte
	PosY    byte
}

func (*WCR) Type() RecordType { return RecordType{2, 30} }

func (r *WCR) bind(b *binder) {
	b.r4("WAFR_SIZ", &r.WafrSiz, 0)
	b.r4("DIE_HT", &r.DieHt, 0)
	b.r4("DIE_WID", &r.DieWid, 0)
	b.u1("WF_UNITS", &r.WfUnits, 0)
	b.c1("WF_FLAT", &r.WfFlat, ' ')
	b.i2("CENTER_X", &r.CenterX, -32768)
	b.i2("CENTER_Y", &r.CenterY, -32768)
	b.c1("POS_X", &r.PosX, ' ')
	b.c1("POS_Y", &r.PosY, ' ')
}

// PIR is the Part Information Record, opening the results of one part
type PIR struct {
	HeadNum uint8
	SiteNum uint8
}

func (*PIR) Type() RecordType { return RecordType{5, 10} }

func (r *PIR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
}

// PRR is the Part Results Record
type PRR struct {
	HeadNum uint8
	SiteNum uint8
	PartFlg byte
	NumTest uint16
	HardBin uint16
	SoftBin uint16
	XCoord  int16
	YCoord  int16
	TestT   uint32
	PartID  string
	PartTxt string
	PartFix []byte
}

func (*PRR) Type() RecordType { return RecordType{5, 20} }

func (r *PRR) bind(b *binder) {
	b.u1("HEAD_NUM", &r.HeadNum, 0)
	b.u1("SITE_NUM", &r.SiteNum, 0)
	b.b1("PART_FLG", &r.PartFlg, 0)
	b.u2("NUM_TEST", &r.NumTest, 0)
	b.u2("HARD_BIN", &r.HardBin, 0)
	b.u2("SOFT_BIN", &r.SoftBin, 65535)
	b.i2("X_COORD", &r.XCoord, -32768)
	b.i2("Y_COORD", &r.YCoord, -32768)
	b.u4("TEST_T", &r.TestT, 0)
	b.cn("PART_ID", &r.PartID, "")
	b.cn("PART_TXT", &r.PartTxt, "")
	b.bn("PART_FIX", &r.PartFix)
}

// Passed reports whether the part passed, per bits 3 and 4 of PART_FLG
func (r *PRR) Passed() bool {
	return r.PartFlg&0x18 == 0
}
