package query

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
	"github.com/ssargent/gostdf/pkg/stream"
)

func mustParse(t *testing.T, exprs ...string) []FieldQuery {
	t.Helper()
	out := make([]FieldQuery, len(exprs))
	for i, e := range exprs {
		q, err := ParseFieldQuery(e)
		require.NoError(t, err)
		out[i] = q
	}
	return out
}

func TestEngine_Match(t *testing.T) {
	ptr := &record.PTR{TestNum: 100, HeadNum: 1, SiteNum: 3, Result: 1.5, TestTxt: "vdd  "}
	prr := &record.PRR{HeadNum: 1, SoftBin: 7, PartID: "12"}
	mir := &record.MIR{LotID: "LOT1", ModeCod: 'P'}

	tests := []struct {
		name  string
		rec   record.Record
		exprs []string
		want  bool
	}{
		{name: "numeric equality", rec: ptr, exprs: []string{"TEST_NUM=100"}, want: true},
		{name: "numeric inequality", rec: ptr, exprs: []string{"TEST_NUM!=100"}, want: false},
		{name: "float range", rec: ptr, exprs: []string{"RESULT>1", "RESULT<=1.5"}, want: true},
		{name: "one condition fails", rec: ptr, exprs: []string{"RESULT>1", "SITE_NUM<3"}, want: false},
		{name: "trailing spaces ignored", rec: ptr, exprs: []string{"TEST_TXT=vdd"}, want: true},
		{name: "missing field", rec: ptr, exprs: []string{"SOFT_BIN=7"}, want: false},
		{name: "string field numeric query", rec: prr, exprs: []string{"PART_ID=12"}, want: true},
		{name: "string ordering", rec: mir, exprs: []string{"LOT_ID>LOT0"}, want: true},
		{name: "C1 field", rec: mir, exprs: []string{"MODE_COD=P"}, want: true},
		{name: "no queries matches everything", rec: prr, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(nil, mustParse(t, tt.exprs...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Match(tt.rec))
		})
	}
}

func TestNewEngine_RejectsInvalidQuery(t *testing.T) {
	_, err := NewEngine(nil, FieldQuery{Field: "TEST_NUM", Operator: "=~", Value: float64(1)})
	assert.Error(t, err)
}

func openLot(t *testing.T) *stream.Reader {
	t.Helper()
	c := record.NewRecordCodec(codec.LittleEndian)
	recs := []record.Record{
		&record.FAR{CPUType: 2, StdfVer: 4},
		&record.PTR{TestNum: 100, Result: 0.5},
		&record.PTR{TestNum: 101, Result: 2.5},
		&record.PTR{TestNum: 100, Result: 3.5},
		&record.PRR{SoftBin: 1},
	}
	var data []byte
	for _, r := range recs {
		var err error
		data, err = c.AppendEncode(data, r)
		require.NoError(t, err)
	}
	r, err := stream.Open(source.New(bytes.NewReader(data)))
	require.NoError(t, err)
	return r
}

func TestEngine_Filter(t *testing.T) {
	e, err := NewEngine(nil, mustParse(t, "TEST_NUM=100")...)
	require.NoError(t, err)

	it := e.Filter(context.Background(), openLot(t).Iterator())
	defer it.Close()

	var results []float32
	for it.Next() {
		results = append(results, it.Record().(*record.PTR).Result)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []float32{0.5, 3.5}, results)
}

func TestEngine_FilterCancelled(t *testing.T) {
	e, err := NewEngine(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := e.Filter(ctx, openLot(t).Iterator())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), context.Canceled)
}
