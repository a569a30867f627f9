package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
	"github.com/ssargent/gostdf/pkg/stream"
)

func testRecords(order codec.ByteOrder) []record.Record {
	recs := []record.Record{
		&record.FAR{CPUType: order.CPUType(), StdfVer: 4},
		&record.MIR{LotID: "LOT7", ModeCod: 'P'},
	}
	for i := 0; i < 5; i++ {
		recs = append(recs,
			&record.PIR{HeadNum: 1, SiteNum: uint8(i)},
			&record.PTR{TestNum: 1000, HeadNum: 1, SiteNum: uint8(i), Result: float32(i) / 2, TestTxt: "idd"},
			&record.PRR{HeadNum: 1, SiteNum: uint8(i), HardBin: 1, SoftBin: uint16(i), PartID: "p"},
		)
	}
	return append(recs, &record.MRR{FinishT: 7})
}

func writeFile(t *testing.T, order codec.ByteOrder, recs []record.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lot.stdf")
	w, err := stream.CreateFile(path, stream.WriterConfig{Order: order})
	require.NoError(t, err)
	for _, rec := range recs {
		_, err := w.Write(rec)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func openCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func indexFile(t *testing.T, c *Catalog, path string) Scan {
	t.Helper()
	f, err := source.Open(path, source.Config{})
	require.NoError(t, err)
	defer f.Close()

	r, err := stream.Open(f)
	require.NoError(t, err)
	scan, err := c.Index(r, Scan{Path: path, Compression: string(f.Compression)})
	require.NoError(t, err)
	return scan
}

func TestCatalog_IndexAndReadAt(t *testing.T) {
	for _, order := range []codec.ByteOrder{codec.LittleEndian, codec.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			recs := testRecords(order)
			path := writeFile(t, order, recs)
			c := openCatalog(t)

			scan := indexFile(t, c, path)
			assert.Equal(t, uint64(len(recs)), scan.Records)
			assert.Equal(t, order.String(), scan.Order)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, info.Size(), scan.Bytes)

			stored, err := c.Scan(scan.ID)
			require.NoError(t, err)
			assert.Equal(t, scan, stored)
			storedOrder, err := stored.ByteOrder()
			require.NoError(t, err)
			assert.Equal(t, order, storedOrder)

			file, err := os.Open(path)
			require.NoError(t, err)
			defer file.Close()

			for _, seq := range []uint64{0, 3, uint64(len(recs) - 1)} {
				e, err := c.Lookup(scan.ID, seq)
				require.NoError(t, err)
				assert.Equal(t, seq, e.Seq)
				assert.Equal(t, recs[seq].Type(), e.Header.Type())

				got, err := stream.ReadAt(file, e.Offset, order)
				require.NoError(t, err)
				if diff := cmp.Diff(recs[seq], got); diff != "" {
					t.Errorf("record %d differs (-want +got):\n%s", seq, diff)
				}
			}

			_, err = c.Lookup(scan.ID, uint64(len(recs)))
			assert.ErrorIs(t, err, ErrEntryNotFound)
		})
	}
}

func TestCatalog_Entries(t *testing.T) {
	recs := testRecords(codec.LittleEndian)
	c := openCatalog(t)
	scan := indexFile(t, c, writeFile(t, codec.LittleEndian, recs))

	var seqs []uint64
	var last int64 = -1
	err := c.Entries(scan.ID, record.KindPRR, func(e Entry) error {
		assert.Greater(t, e.Offset, last)
		last = e.Offset
		seqs = append(seqs, e.Seq)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 7, 10, 13, 16}, seqs)

	stop := errors.New("stop")
	calls := 0
	err = c.Entries(scan.ID, record.KindAll, func(Entry) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestCatalog_ScansAndDelete(t *testing.T) {
	c := openCatalog(t)
	path := writeFile(t, codec.LittleEndian, testRecords(codec.LittleEndian))

	first := indexFile(t, c, path)
	second := indexFile(t, c, path)
	require.NotEqual(t, first.ID, second.ID)

	scans, err := c.Scans()
	require.NoError(t, err)
	assert.Len(t, scans, 2)

	require.NoError(t, c.Delete(first.ID))
	_, err = c.Scan(first.ID)
	assert.ErrorIs(t, err, ErrScanNotFound)
	_, err = c.Lookup(first.ID, 0)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// The other scan is untouched
	e, err := c.Lookup(second.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.Offset)

	scans, err = c.Scans()
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, second.ID, scans[0].ID)
	assert.WithinDuration(t, time.Now(), scans[0].Created(), time.Minute)

	assert.ErrorIs(t, c.Delete(ksuid.New()), ErrScanNotFound)
}

func TestCatalog_EntryRangeCoversHighSeqs(t *testing.T) {
	c := openCatalog(t)
	path := writeFile(t, codec.LittleEndian, testRecords(codec.LittleEndian))
	scan := indexFile(t, c, path)
	other := indexFile(t, c, path)

	high := uint64(0xFF) << 56
	entry := encodeEntry(64, record.Header{Len: 2, Typ: 5, Sub: 10})
	require.NoError(t, c.db.Set(entryKey(scan.ID, high), entry, nil))
	require.NoError(t, c.db.Set(entryKey(scan.ID, ^uint64(0)), entry, nil))

	var seqs []uint64
	require.NoError(t, c.Entries(scan.ID, record.KindPIR, func(e Entry) error {
		seqs = append(seqs, e.Seq)
		return nil
	}))
	assert.Equal(t, []uint64{2, 5, 8, 11, 14, high, ^uint64(0)}, seqs)

	require.NoError(t, c.Delete(scan.ID))
	_, err := c.Lookup(scan.ID, high)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	_, err = c.Lookup(scan.ID, ^uint64(0))
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = c.Lookup(other.ID, 0)
	assert.NoError(t, err)
}

func TestPrefixSuccessor(t *testing.T) {
	tests := []struct {
		in, want []byte
	}{
		{in: []byte{'e', 1, 2}, want: []byte{'e', 1, 3}},
		{in: []byte{'e', 1, 0xFF}, want: []byte{'e', 2}},
		{in: []byte{'e', 0xFF, 0xFF}, want: []byte{'f'}},
		{in: []byte{0xFF}, want: nil},
	}
	for _, tt := range tests {
		if got := prefixSuccessor(tt.in); !cmp.Equal(tt.want, got) {
			t.Errorf("prefixSuccessor(%x) = %x, want %x", tt.in, got, tt.want)
		}
	}
}

func TestCatalog_FailedIndexLeavesNoScan(t *testing.T) {
	rec := &countingRecorder{}
	c := openCatalog(t, WithRecorder(rec))

	data, err := record.Encode(&record.FAR{CPUType: 2, StdfVer: 4}, codec.LittleEndian)
	require.NoError(t, err)
	data = append(data, 8, 0, 5, 10, 1) // PIR declaring more bytes than remain

	path := filepath.Join(t.TempDir(), "cut.stdf")
	require.NoError(t, os.WriteFile(path, data, 0600))
	f, err := source.Open(path, source.Config{})
	require.NoError(t, err)
	defer f.Close()

	r, err := stream.Open(f)
	require.NoError(t, err)
	_, err = c.Index(r, Scan{Path: path})
	assert.ErrorIs(t, err, stream.ErrTruncated)

	scans, err := c.Scans()
	require.NoError(t, err)
	assert.Empty(t, scans)
	assert.Equal(t, 1, rec.failures["index"])
}

type countingRecorder struct {
	successes map[string]int
	failures  map[string]int
}

func (r *countingRecorder) RecordCatalogOperation(op string, success bool, _ time.Duration) {
	if r.successes == nil {
		r.successes = map[string]int{}
		r.failures = map[string]int{}
	}
	if success {
		r.successes[op]++
	} else {
		r.failures[op]++
	}
}
