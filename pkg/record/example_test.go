package record_test

import (
	"fmt"
	"log"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
)

// ExampleRecordCodec demonstrates encoding a record and decoding it back
func ExampleRecordCodec() {
	c := record.NewRecordCodec(codec.LittleEndian)

	data, err := c.Encode(&record.PIR{HeadNum: 1, SiteNum: 4})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("% x\n", data)

	h, err := record.ParseHeader(data, c.Order())
	if err != nil {
		log.Fatal(err)
	}
	r, err := c.Decode(h, data[record.HeaderSize:])
	if err != nil {
		log.Fatal(err)
	}
	pir := r.(*record.PIR)
	fmt.Println(record.Name(r), pir.HeadNum, pir.SiteNum)

	// Output:
	// 02 00 05 0a 01 04
	// PIR 1 4
}

// ExampleRecordCodec_tailFields shows sentinels for fields cut from the end of a body
func ExampleRecordCodec_tailFields() {
	c := record.NewRecordCodec(codec.LittleEndian)

	h := record.Header{Len: 6, Typ: 5, Sub: 20}
	body := []byte{1, 2, 0x00, 10, 0, 1} // HEAD_NUM, SITE_NUM, PART_FLG, NUM_TEST, part of HARD_BIN
	if _, err := c.Decode(h, body); err != nil {
		fmt.Println("error:", err)
	}

	h.Len = 5
	r, err := c.Decode(h, body[:5])
	if err != nil {
		log.Fatal(err)
	}
	prr := r.(*record.PRR)
	fmt.Println(prr.NumTest, prr.SoftBin, prr.XCoord)

	// Output:
	// error: corrupt PRR record at offset -1 (len 6), field HARD_BIN: insufficient data: need 2 bytes at 5, have 1
	// 10 65535 -32768
}

// ExampleParseKinds builds a filter mask from record names
func ExampleParseKinds() {
	mask, err := record.ParseKinds([]string{"PIR", "PTR", "PRR"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(mask)
	fmt.Println(record.Header{Typ: 15, Sub: 20}.IsType(mask))

	// Output:
	// PIR|PRR|PTR
	// false
}
