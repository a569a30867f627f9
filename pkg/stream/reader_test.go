package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
)

// encodeAll encodes records back to back, failing the test on error
func encodeAll(t *testing.T, order codec.ByteOrder, recs ...record.Record) []byte {
	t.Helper()
	c := record.NewRecordCodec(order)
	var out []byte
	for _, r := range recs {
		var err error
		out, err = c.AppendEncode(out, r)
		require.NoError(t, err)
	}
	return out
}

func farFor(order codec.ByteOrder) *record.FAR {
	return &record.FAR{CPUType: order.CPUType(), StdfVer: 4}
}

func openBytes(t *testing.T, data []byte, opts ...Option) *Reader {
	t.Helper()
	r, err := Open(source.New(bytes.NewReader(data)), opts...)
	require.NoError(t, err)
	return r
}

func readAll(t *testing.T, r *Reader) []record.Record {
	t.Helper()
	var out []record.Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func lot(order codec.ByteOrder) []record.Record {
	return []record.Record{
		farFor(order),
		&record.MIR{LotID: "LOT1", BurnTim: 65535, ModeCod: 'P', RtstCod: ' ', ProtCod: ' ', CmodCod: ' '},
		&record.PIR{HeadNum: 1, SiteNum: 0},
		&record.PTR{TestNum: 100, HeadNum: 1, Result: 1.5, TestTxt: "vdd"},
		&record.FTR{TestNum: 200, HeadNum: 1, PatgNum: 255, RtnIcnt: 1, RtnIndx: []uint16{3}, RtnStat: []uint8{2}},
		&record.PRR{HeadNum: 1, SoftBin: 1, HardBin: 1, XCoord: 2, YCoord: 3, PartID: "1"},
		&record.PIR{HeadNum: 1, SiteNum: 1},
		&record.PTR{TestNum: 100, HeadNum: 1, SiteNum: 1, Result: 2.5},
		&record.PRR{HeadNum: 1, SiteNum: 1, SoftBin: 2, HardBin: 2, XCoord: -32768, YCoord: -32768},
		&record.MRR{FinishT: 99, DispCod: ' '},
	}
}

func TestReader_BothByteOrders(t *testing.T) {
	for _, order := range []codec.ByteOrder{codec.LittleEndian, codec.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			want := lot(order)
			r := openBytes(t, encodeAll(t, order, want...))
			assert.Equal(t, order, r.Order())
			assert.Equal(t, order.CPUType(), r.FAR().CPUType)

			got := readAll(t, r)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("records differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_Bootstrap(t *testing.T) {
	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: ErrInvalidFile},
		{name: "short header", data: []byte{2, 0, 0}, wantErr: ErrInvalidFile},
		{name: "first record not FAR", data: []byte{2, 0, 5, 10, 1, 1}, wantErr: ErrInvalidFile},
		{name: "VAX CPU type", data: []byte{2, 0, 0, 10, 0, 4}, wantErr: ErrUnsupportedCPU},
		{name: "unknown CPU type", data: []byte{2, 0, 0, 10, 3, 4}, wantErr: ErrUnsupportedCPU},
		{name: "FAR body cut short", data: []byte{2, 0, 0, 10, 2}, wantErr: ErrTruncated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Open(source.New(bytes.NewReader(tc.data)))
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOpen_SourceError(t *testing.T) {
	boom := errors.New("read failed")
	_, err := Open(source.New(&failingReader{err: boom}))
	assert.ErrorIs(t, err, boom)
}

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestReader_Filter(t *testing.T) {
	recs := lot(codec.LittleEndian)
	data := encodeAll(t, codec.LittleEndian, recs...)

	obs := &countingObserver{}
	r := openBytes(t, data, WithFilter(record.KindPTR|record.KindPIR), WithObserver(obs))

	var want []record.Record
	for _, rec := range recs {
		if record.IsType(rec, record.KindPTR|record.KindPIR) {
			want = append(want, rec)
		}
	}
	got := readAll(t, r)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filtered records differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, obs.decoded)
	assert.Equal(t, 5, obs.skipped, "FAR is consumed at open, not skipped")
	assert.Equal(t, uint64(len(data)), obs.bytes)
	assert.Equal(t, int64(len(data)), r.Offset())
}

func TestReader_Truncated(t *testing.T) {
	data := encodeAll(t, codec.LittleEndian, farFor(codec.LittleEndian), &record.PIR{HeadNum: 1})
	data = append(data, 10, 0, 15, 10, 1, 2, 3)

	r := openBytes(t, data)
	_, err := r.Next() // FAR
	require.NoError(t, err)
	_, err = r.Next() // PIR
	require.NoError(t, err)

	rec, err := r.Next()
	assert.Nil(t, rec)
	require.ErrorIs(t, err, ErrTruncated)

	_, again := r.Next()
	assert.Equal(t, err, again, "truncation is terminal")
}

func TestReader_TruncatedWhileSkipping(t *testing.T) {
	data := encodeAll(t, codec.LittleEndian, farFor(codec.LittleEndian))
	data = append(data, 10, 0, 15, 10, 1, 2, 3)

	r := openBytes(t, data, WithFilter(record.KindPIR))
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReader_TrailingBytesAreCleanEOF(t *testing.T) {
	data := encodeAll(t, codec.BigEndian, farFor(codec.BigEndian), &record.EPS{})
	data = append(data, 0x00, 0x01)

	r := openBytes(t, data)
	recs := readAll(t, r)
	assert.Len(t, recs, 2)

	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_CorruptRecordContinues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	order := codec.LittleEndian

	data := encodeAll(t, order, farFor(order))
	corruptAt := int64(len(data))
	// PTR whose body ends in the middle of RESULT
	data = append(data, 10, 0, 15, 10, 1, 0, 0, 0, 1, 1, 0, 0, 0x00, 0x00)
	data = append(data, encodeAll(t, order, &record.PIR{HeadNum: 7})...)

	obs := &countingObserver{}
	r := openBytes(t, data, WithLogger(zap.New(core)), WithObserver(obs))
	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	var corrupt *record.CorruptRecordError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, corruptAt, corrupt.Offset)
	assert.Equal(t, "RESULT", corrupt.Field)
	assert.Equal(t, corruptAt, r.RecordOffset())

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, &record.PIR{HeadNum: 7}, rec)
	assert.Equal(t, corruptAt+14, r.RecordOffset())
	assert.Equal(t, 1, obs.corrupt)

	entries := logs.FilterMessage("corrupt record").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, corruptAt, entries[0].ContextMap()["offset"])
}

func TestReader_UnknownRecordBytesPreserved(t *testing.T) {
	order := codec.LittleEndian
	data := encodeAll(t, order, farFor(order))
	unknown := []byte{0x06, 0x00, 99, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	data = append(data, unknown...)

	obs := &countingObserver{}
	r := openBytes(t, data, WithObserver(obs))
	recs := readAll(t, r)
	require.Len(t, recs, 2)

	u, ok := recs[1].(*record.Unknown)
	require.True(t, ok)
	assert.Equal(t, record.Header{Len: 6, Typ: 99, Sub: 0}, u.Header)
	assert.Equal(t, unknown[4:], u.Body)
	assert.Equal(t, 1, obs.unknown)

	out, err := record.Encode(u, order)
	require.NoError(t, err)
	assert.Equal(t, unknown, out)
}

func TestReader_NextRawAndReadAt(t *testing.T) {
	order := codec.BigEndian
	recs := lot(order)
	data := encodeAll(t, order, recs...)

	r := openBytes(t, data)
	var raws []RawRecord
	for {
		raw, err := r.NextRaw()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		raws = append(raws, raw)
	}
	require.Len(t, raws, len(recs))
	assert.Equal(t, int64(0), raws[0].Offset)

	ra := bytes.NewReader(data)
	for i, raw := range raws {
		rec, err := raw.Decode()
		require.NoError(t, err)
		if diff := cmp.Diff(recs[i], rec); diff != "" {
			t.Errorf("raw %d differs (-want +got):\n%s", i, diff)
		}

		at, err := ReadAt(ra, raw.Offset, order)
		require.NoError(t, err)
		if diff := cmp.Diff(recs[i], at); diff != "" {
			t.Errorf("ReadAt %d differs (-want +got):\n%s", i, diff)
		}
	}

	_, err := ReadAt(ra, int64(len(data))-2, order)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReader_Iterator(t *testing.T) {
	order := codec.LittleEndian
	recs := lot(order)
	r := openBytes(t, encodeAll(t, order, recs...), WithFilter(record.KindPRR))

	it := r.Iterator()
	var bins []uint16
	for it.Next() {
		bins = append(bins, it.Record().(*record.PRR).SoftBin)
	}
	assert.NoError(t, it.Err())
	assert.NoError(t, it.Close())
	assert.Equal(t, []uint16{1, 2}, bins)
}

func TestReader_IteratorReportsTruncation(t *testing.T) {
	data := encodeAll(t, codec.LittleEndian, farFor(codec.LittleEndian))
	data = append(data, 4, 0, 5, 10, 1)

	it := openBytes(t, data).Iterator()
	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrTruncated)
}

type countingObserver struct {
	decoded, corrupt, unknown, skipped int
	bytes                              uint64
}

func (o *countingObserver) RecordDecoded(record.Header) { o.decoded++ }
func (o *countingObserver) RecordCorrupt(record.Header) { o.corrupt++ }
func (o *countingObserver) RecordUnknown(record.Header) { o.unknown++ }
func (o *countingObserver) RecordSkipped(record.Header) { o.skipped++ }
func (o *countingObserver) BytesConsumed(n uint64)      { o.bytes = n }
