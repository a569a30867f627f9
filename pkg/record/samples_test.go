package record

// sampleRecords returns one fully populated record of every kind in the table
func sampleRecords() []Record {
	return []Record{
		&FAR{CPUType: 2, StdfVer: 4},
		&ATR{ModTim: 1700000000, CmdLine: "stdf rewrite --order big"},
		&VUR{UpdNam: "V4-2007"},
		&MIR{
			SetupT: 1700000000, StartT: 1700000100, StatNum: 3,
			ModeCod: 'P', RtstCod: 'N', ProtCod: '0', BurnTim: 120, CmodCod: 'A',
			LotID: "LOT123", PartTyp: "DEV-A", NodeNam: "node7", TstrTyp: "93k",
			JobNam: "prog", JobRev: "r2", SblotID: "S1", OperNam: "op",
			ExecTyp: "smt", ExecVer: "8.1", TestCod: "FT", TstTemp: "25C",
			UserTxt: "u", AuxFile: "aux", PkgTyp: "BGA", FamlyID: "fam",
			DateCod: "2344", FacilID: "F1", FloorID: "FL2", ProcID: "P3",
			OperFrq: "1", SpecNam: "spec", SpecVer: "1.0", FlowID: "flow",
			SetupID: "setup", DsgnRev: "B", EngID: "eng", RomCod: "rom",
			SerlNum: "SN1", SuprNam: "sup",
		},
		&MRR{FinishT: 1700009999, DispCod: 'D', UsrDesc: "user", ExcDesc: "exec"},
		&PCR{HeadNum: 255, SiteNum: 1, PartCnt: 100, RtstCnt: 2, AbrtCnt: 0, GoodCnt: 97, FuncCnt: 98},
		&HBR{HeadNum: 1, SiteNum: 2, HbinNum: 1, HbinCnt: 90, HbinPf: 'P', HbinNam: "PASS"},
		&SBR{HeadNum: 1, SiteNum: 2, SbinNum: 12, SbinCnt: 3, SbinPf: 'F', SbinNam: "LEAKAGE"},
		&PMR{PmrIndx: 4, ChanTyp: 1, ChanNam: "ch4", PhyNam: "P4", LogNam: "DATA0", HeadNum: 1, SiteNum: 3},
		&PGR{GrpIndx: 32768, GrpNam: "DATA", IndxCnt: 3, PmrIndx: []uint16{4, 5, 6}},
		&PLR{
			GrpCnt: 2, GrpIndx: []uint16{4, 32768}, GrpMode: []uint16{0, 20},
			GrpRadx: []uint8{2, 16}, PgmChar: []string{"0", "1"}, RtnChar: []string{"L", "H"},
			PgmChal: []string{"", "x"}, RtnChal: []string{"", "y"},
		},
		&RDR{NumBins: 2, RtstBin: []uint16{5, 7}},
		&SDR{
			HeadNum: 1, SiteGrp: 1, SiteCnt: 4, SiteNum: []uint8{0, 1, 2, 3},
			HandTyp: "handler", HandID: "h1", CardTyp: "card", CardID: "c1",
			LoadTyp: "lb", LoadID: "l1", DibTyp: "dib", DibID: "d1",
			CablTyp: "cab", CablID: "cb1", ContTyp: "cont", ContID: "ct1",
			LasrTyp: "laser", LasrID: "ls1", ExtrTyp: "x", ExtrID: "x1",
		},
		&PSR{
			ContFlg: 0, PsrIndx: 1, PsrNam: "seq", OptFlg: 0x0F, TotpCnt: 2, LocpCnt: 2,
			PatBgn: []uint64{0, 1000}, PatEnd: []uint64{999, 1999},
			PatFile: []string{"a.pat", "b.pat"}, PatLbl: []string{"A", "B"},
			FileUID: []string{"u1", "u2"}, AtpgDsc: []string{"d1", "d2"}, SrcID: []string{"s1", "s2"},
		},
		&NMR{ContFlg: 1, TotmCnt: 4, LocmCnt: 2, PmrIndx: []uint16{1, 2}, AtpgNam: []string{"sig1", "sig2"}},
		&CNR{ChnNum: 3, BitPos: 77, CellNam: "core/u1/ff_reg[3]"},
		&SSR{SsrNam: "scan", ChnCnt: 2, ChnList: []uint16{1, 2}},
		&CDR{
			ContFlg: 0, CdrIndx: 1, ChnNam: "chain1", ChnLen: 512, SinPin: 10, SoutPin: 11,
			MstrCnt: 2, MClks: []uint16{20, 21}, SlavCnt: 1, SClks: []uint16{22},
			InvVal: 1, LstCnt: 2, CellLst: []string{"cell_a", "cell_b"},
		},
		&WIR{HeadNum: 1, SiteGrp: 2, StartT: 1700000200, WaferID: "W01"},
		&WRR{
			HeadNum: 1, SiteGrp: 2, FinishT: 1700000900, PartCnt: 500, RtstCnt: 3,
			AbrtCnt: 1, GoodCnt: 480, FuncCnt: 490, WaferID: "W01", FabwfID: "FW01",
			FrameID: "FR", MaskID: "M1", UsrDesc: "ud", ExcDesc: "ed",
		},
		&WCR{WafrSiz: 300, DieHt: 5.5, DieWid: 4.25, WfUnits: 3, WfFlat: 'D', CenterX: 10, CenterY: -12, PosX: 'R', PosY: 'U'},
		&PIR{HeadNum: 1, SiteNum: 3},
		&PRR{
			HeadNum: 1, SiteNum: 3, PartFlg: 0x08, NumTest: 1200, HardBin: 5, SoftBin: 12,
			XCoord: -3, YCoord: 14, TestT: 850, PartID: "17", PartTxt: "txt", PartFix: []byte{0xAA, 0x55},
		},
		&TSR{
			HeadNum: 255, SiteNum: 0, TestTyp: 'P', TestNum: 1000, ExecCnt: 500, FailCnt: 3,
			AlrmCnt: 0, TestNam: "vdd_leak", SeqName: "dc", TestLbl: "lbl", OptFlag: 0xC8,
			TestTim: 0.002, TestMin: -1.5, TestMax: 2.25, TstSums: 10, TstSqrs: 20,
		},
		&PTR{
			TestNum: 1000, HeadNum: 1, SiteNum: 3, TestFlg: 0x80, ParmFlg: 0x04, Result: 1.25,
			TestTxt: "vdd_leak", AlarmID: "alm", OptFlag: 0x02, ResScal: -6, LlmScal: -6, HlmScal: -6,
			LoLimit: -1, HiLimit: 1, Units: "A", CResfmt: "%7.3f", CLlmfmt: "%7.3f", CHlmfmt: "%7.3f",
			LoSpec: -2, HiSpec: 2,
		},
		&MPR{
			TestNum: 2000, HeadNum: 1, SiteNum: 3, TestFlg: 0, ParmFlg: 0, RtnIcnt: 3, RsltCnt: 2,
			RtnStat: []uint8{1, 15, 4}, RtnRslt: []float32{0.5, -0.5}, TestTxt: "mpr", AlarmID: "a",
			OptFlag: 0x0E, ResScal: 3, LlmScal: 3, HlmScal: 3, LoLimit: -1, HiLimit: 1,
			StartIn: 0.1, IncrIn: 0.05, RtnIndx: []uint16{4, 5, 6}, Units: "V", UnitsIn: "mA",
			CResfmt: "%f", CLlmfmt: "%f", CHlmfmt: "%f", LoSpec: -3, HiSpec: 3,
		},
		&FTR{
			TestNum: 3000, HeadNum: 1, SiteNum: 3, TestFlg: 0x80, OptFlag: 0x00,
			CyclCnt: 9000, RelVadr: 12, ReptCnt: 1, NumFail: 2, XfailAd: -1, YfailAd: 7,
			VectOff: -2, RtnIcnt: 2, PgmIcnt: 3, RtnIndx: []uint16{4, 5}, RtnStat: []uint8{7, 8},
			PgmIndx: []uint16{4, 5, 6}, PgmStat: []uint8{1, 2, 3},
			FailPin: BitField{Bits: 12, Data: []byte{0x30, 0x08}}, VectNam: "v", TimeSet: "ts",
			OpCode: "op", TestTxt: "func", AlarmID: "al", ProgTxt: "p", RsltTxt: "r", PatgNum: 2,
			SpinMap: BitField{Bits: 3, Data: []byte{0x05}},
		},
		&STR{
			ContFlg: 0, TestNum: 4000, HeadNum: 1, SiteNum: 3, PsrRef: 1, TestFlg: 0x80,
			LogTyp: "log", TestTxt: "scan", AlarmID: "a", ProgTxt: "p", RsltTxt: "r", ZVal: 1,
			FmuFlg: 0x05, MaskMap: BitField{Bits: 4, Data: []byte{0x0F}}, FalMap: BitField{Bits: 8, Data: []byte{0x81}},
			CycCntT: 1 << 40, TotfCnt: 10, TotlCnt: 8, CycBase: 100, BitBase: 5,
			CondCnt: 2, LimCnt: 1, CycSize: 4, PmrSize: 2, ChnSize: 1, PatSize: 2, BitSize: 4,
			U1Size: 8, U2Size: 1, U3Size: 2, UtxSize: 3, CapBgn: 9,
			LimIndx: []uint16{4}, LimSpec: []uint32{100}, CondLst: []string{"VDD=1.0", "T=25"},
			CycCnt: 2, CycOfst: []uint64{1, 70000},
			PmrCnt: 2, PmrIndx: []uint64{4, 65535},
			ChnCnt: 1, ChnNum: []uint64{200},
			ExpCnt: 2, ExpData: []uint8{0, 1},
			CapCnt: 1, CapData: []uint8{1},
			NewCnt: 1, NewData: []uint8{3},
			PatCnt: 1, PatNum: []uint64{300},
			BposCnt: 2, BitPos: []uint64{0, 1 << 20},
			Usr1Cnt: 1, Usr1: []uint64{1 << 50},
			Usr2Cnt: 1, Usr2: []uint64{255},
			Usr3Cnt: 1, Usr3: []uint64{1024},
			TxtCnt: 2, UserTxt: []string{"abc", "d  "},
		},
		&BPS{SeqName: "dc_tests"},
		&EPS{},
		&GDR{FldCnt: 14, GenData: []GenValue{
			{Type: GenB0},
			{Type: GenU1, Value: uint8(7)},
			{Type: GenU2, Value: uint16(600)},
			{Type: GenU4, Value: uint32(70000)},
			{Type: GenI1, Value: int8(-1)},
			{Type: GenI2, Value: int16(-300)},
			{Type: GenI4, Value: int32(-70000)},
			{Type: GenR4, Value: float32(1.5)},
			{Type: GenR8, Value: float64(-2.25)},
			{Type: GenCn, Value: "note"},
			{Type: GenBn, Value: []byte{1, 2}},
			{Type: GenDn, Value: BitField{Bits: 9, Data: []byte{0xFF, 0x01}}},
			{Type: GenN1, Value: uint8(9)},
			{Type: GenB0},
		}},
		&DTR{TextDat: "COND: VDD=1.0"},
	}
}
