package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
)

// ReadRawAt reads the record framed at offset of an uncompressed file
func ReadRawAt(ra io.ReaderAt, offset int64, order codec.ByteOrder) (RawRecord, error) {
	var hdr [record.HeaderSize]byte
	if err := readFullAt(ra, hdr[:], offset); err != nil {
		return RawRecord{}, fmt.Errorf("header at offset %d: %w", offset, err)
	}
	h, err := record.ParseHeader(hdr[:], order)
	if err != nil {
		return RawRecord{}, err
	}

	body := make([]byte, h.Len)
	if err := readFullAt(ra, body, offset+record.HeaderSize); err != nil {
		return RawRecord{}, fmt.Errorf("%s body at offset %d: %w", h.Type(), offset, err)
	}
	return RawRecord{Offset: offset, Header: h, Body: body, Order: order}, nil
}

// ReadAt decodes the record framed at offset of an uncompressed file
func ReadAt(ra io.ReaderAt, offset int64, order codec.ByteOrder) (record.Record, error) {
	raw, err := ReadRawAt(ra, offset, order)
	if err != nil {
		return nil, err
	}
	return raw.Decode()
}

func readFullAt(ra io.ReaderAt, b []byte, off int64) error {
	if len(b) == 0 {
		return nil
	}
	n, err := ra.ReadAt(b, off)
	if n == len(b) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: wanted %d bytes, got %d", ErrTruncated, len(b), n)
	}
	return err
}
