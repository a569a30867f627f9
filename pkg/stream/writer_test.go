package stream

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
)

func TestWriter_RequiresFARFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterConfig{Order: codec.LittleEndian})

	_, err := w.Write(&record.PIR{HeadNum: 1})
	assert.ErrorIs(t, err, ErrFARExpected)

	_, err = w.Write(farFor(codec.BigEndian))
	assert.ErrorIs(t, err, ErrUnsupportedCPU)

	off, err := w.Write(farFor(codec.LittleEndian))
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)

	off, err = w.Write(&record.PIR{HeadNum: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(6), off)

	require.NoError(t, w.Close())
	assert.Equal(t, []byte{2, 0, 0, 10, 2, 4, 2, 0, 5, 10, 1, 0}, buf.Bytes())
	assert.Equal(t, int64(buf.Len()), w.Size())
}

func TestWriter_RoundTrip(t *testing.T) {
	for _, order := range []codec.ByteOrder{codec.LittleEndian, codec.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			want := lot(order)

			var buf bytes.Buffer
			w := NewWriter(&buf, WriterConfig{Order: order})
			for _, rec := range want {
				_, err := w.Write(rec)
				require.NoError(t, err)
			}
			require.NoError(t, w.Flush())
			assert.Equal(t, encodeAll(t, order, want...), buf.Bytes())

			got := readAll(t, openBytes(t, buf.Bytes()))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("records differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriter_RejectedRecordWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterConfig{Order: codec.LittleEndian})
	_, err := w.Write(farFor(codec.LittleEndian))
	require.NoError(t, err)

	_, err = w.Write(&record.SDR{SiteCnt: 2, SiteNum: []uint8{1}})
	assert.ErrorIs(t, err, record.ErrCountMismatch)

	require.NoError(t, w.Flush())
	assert.Equal(t, 6, buf.Len())
	assert.Equal(t, int64(6), w.Size())
}

func TestWriter_WriteRawConvertsByteOrder(t *testing.T) {
	want := lot(codec.LittleEndian)
	unknown := []byte{0x06, 0x00, 99, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	data := append(encodeAll(t, codec.LittleEndian, want...), unknown...)

	r := openBytes(t, data)
	var out bytes.Buffer
	w := NewWriter(&out, WriterConfig{Order: codec.BigEndian})
	for {
		raw, err := r.NextRaw()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		_, err = w.WriteRaw(raw)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	converted := openBytes(t, out.Bytes())
	assert.Equal(t, codec.BigEndian, converted.Order())
	got := readAll(t, converted)
	require.Len(t, got, len(want)+1)

	want[0] = farFor(codec.BigEndian)
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("converted records differ (-want +got):\n%s", diff)
	}

	// Unmodelled bodies cannot be reinterpreted, so their bytes are carried over
	u, ok := got[len(want)].(*record.Unknown)
	require.True(t, ok)
	assert.Equal(t, unknown[4:], u.Body)
}

func TestWriter_WriteRawSameOrderIsVerbatim(t *testing.T) {
	order := codec.BigEndian
	data := encodeAll(t, order, lot(order)...)

	r := openBytes(t, data)
	var out bytes.Buffer
	w := NewWriter(&out, WriterConfig{Order: order})
	for {
		raw, err := r.NextRaw()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		_, err = w.WriteRaw(raw)
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())
	assert.Equal(t, data, out.Bytes())
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "lot.stdf")

	w, err := CreateFile(path, WriterConfig{Order: codec.LittleEndian})
	require.NoError(t, err)
	for _, rec := range lot(codec.LittleEndian) {
		_, err := w.Write(rec)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	f, err := source.Open(path, source.Config{})
	require.NoError(t, err)
	defer f.Close()

	r, err := Open(f)
	require.NoError(t, err)
	got := readAll(t, r)
	if diff := cmp.Diff(lot(codec.LittleEndian), got); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, w.Size(), info.Size())
}
