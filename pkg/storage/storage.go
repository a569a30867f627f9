// Package storage keeps a catalog of record offsets in pebble so single
// records of a large file can be decoded without reading it from the start.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/stream"
)

// Errors
var (
	ErrScanNotFound  = errors.New("scan not found")
	ErrEntryNotFound = errors.New("catalog entry not found")
)

// Key layout, all integers big endian:
//
//	's' <scan id>          scan metadata (JSON)
//	'e' <scan id> <seq u8> entry: offset u8, len u2, typ u1, sub u1
const (
	scanPrefix  = 's'
	entryPrefix = 'e'

	entrySize = 12
	batchSize = 4096
)

// Scan describes one indexed file
type Scan struct {
	ID          ksuid.KSUID `json:"-"`
	Path        string      `json:"path"`
	Order       string      `json:"order"`
	Compression string      `json:"compression"`
	Records     uint64      `json:"records"`
	Bytes       int64       `json:"bytes"`
}

// Created returns the time the scan was indexed
func (s Scan) Created() time.Time {
	return s.ID.Time()
}

// ByteOrder returns the byte order of the indexed file
func (s Scan) ByteOrder() (codec.ByteOrder, error) {
	return codec.ParseByteOrder(s.Order)
}

// Entry locates one record of a scan
type Entry struct {
	Seq    uint64
	Offset int64
	Header record.Header
}

// OperationRecorder receives the outcome of catalog operations
type OperationRecorder interface {
	RecordCatalogOperation(operation string, success bool, duration time.Duration)
}

// Option configures a Catalog
type Option func(*Catalog)

// WithRecorder reports operation outcomes, e.g. to metrics
func WithRecorder(r OperationRecorder) Option {
	return func(c *Catalog) {
		c.recorder = r
	}
}

// WithLogger sets the catalog logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// Catalog is an offset index over STDF files backed by pebble
type Catalog struct {
	db       *pebble.DB
	recorder OperationRecorder
	log      *zap.Logger
}

// Open opens or creates a catalog in dir
func Open(dir string, opts ...Option) (*Catalog, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", dir, err)
	}
	c := &Catalog{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close closes the underlying database
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) observe(op string, start time.Time, err error) {
	if c.recorder != nil {
		c.recorder.RecordCatalogOperation(op, err == nil, time.Since(start))
	}
}

// Index stores the offset of every record r returns under a new scan id.
// The reader should come from an uncompressed file for the offsets to be
// usable with stream.ReadAt.
func (c *Catalog) Index(r *stream.Reader, scan Scan) (s Scan, err error) {
	start := time.Now()
	defer func() { c.observe("index", start, err) }()

	scan.ID = ksuid.New()
	scan.Order = r.Order().String()
	scan.Records = 0

	batch := c.db.NewBatch()
	defer func() { _ = batch.Close() }()

	committed := false
	defer func() {
		// Entries of a failed scan have no metadata pointing at them
		if err != nil && committed {
			lo, hi := entryRange(scan.ID)
			_ = c.db.DeleteRange(lo, hi, pebble.NoSync)
		}
	}()

	for {
		raw, err := r.NextRaw()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Scan{}, err
		}
		if err := batch.Set(entryKey(scan.ID, scan.Records), encodeEntry(raw.Offset, raw.Header), nil); err != nil {
			return Scan{}, err
		}
		scan.Records++

		if batch.Count() >= batchSize {
			if err := batch.Commit(pebble.NoSync); err != nil {
				return Scan{}, err
			}
			committed = true
			batch.Reset()
		}
	}
	scan.Bytes = r.Offset()

	meta, err := json.Marshal(scan)
	if err != nil {
		return Scan{}, err
	}
	if err := batch.Set(scanKey(scan.ID), meta, nil); err != nil {
		return Scan{}, err
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return Scan{}, err
	}

	c.log.Info("indexed scan",
		zap.Stringer("scan", scan.ID),
		zap.String("path", scan.Path),
		zap.Uint64("records", scan.Records))
	return scan, nil
}

// Scan returns the metadata of a scan
func (c *Catalog) Scan(id ksuid.KSUID) (s Scan, err error) {
	start := time.Now()
	defer func() { c.observe("scan", start, err) }()

	data, closer, err := c.db.Get(scanKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return Scan{}, fmt.Errorf("%w: %s", ErrScanNotFound, id)
	}
	if err != nil {
		return Scan{}, err
	}
	defer closer.Close()

	if err := json.Unmarshal(data, &s); err != nil {
		return Scan{}, fmt.Errorf("scan %s: %w", id, err)
	}
	s.ID = id
	return s, nil
}

// Scans lists every scan, oldest first
func (c *Catalog) Scans() ([]Scan, error) {
	lower := []byte{scanPrefix}
	it, err := c.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: []byte{scanPrefix + 1}})
	if err != nil {
		return nil, fmt.Errorf("failed to create iterator: %w", err)
	}
	defer func() { _ = it.Close() }()

	var out []Scan
	for ok := it.First(); ok; ok = it.Next() {
		id, err := ksuid.FromBytes(it.Key()[1:])
		if err != nil {
			return nil, err
		}
		var s Scan
		if err := json.Unmarshal(it.Value(), &s); err != nil {
			return nil, fmt.Errorf("scan %s: %w", id, err)
		}
		s.ID = id
		out = append(out, s)
	}
	return out, it.Error()
}

// Lookup returns entry seq of a scan
func (c *Catalog) Lookup(id ksuid.KSUID, seq uint64) (e Entry, err error) {
	start := time.Now()
	defer func() { c.observe("lookup", start, err) }()

	data, closer, err := c.db.Get(entryKey(id, seq))
	if errors.Is(err, pebble.ErrNotFound) {
		return Entry{}, fmt.Errorf("%w: scan %s record %d", ErrEntryNotFound, id, seq)
	}
	if err != nil {
		return Entry{}, err
	}
	defer closer.Close()

	return decodeEntry(seq, data)
}

// Entries calls fn for each entry of a scan whose kind is in mask, in file order
func (c *Catalog) Entries(id ksuid.KSUID, mask record.Kind, fn func(Entry) error) error {
	prefix, hi := entryRange(id)
	it, err := c.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: hi})
	if err != nil {
		return fmt.Errorf("failed to create iterator: %w", err)
	}
	defer func() { _ = it.Close() }()

	for ok := it.First(); ok; ok = it.Next() {
		seq, err := codec.NewReader(it.Key()[len(prefix):], codec.BigEndian).U8()
		if err != nil {
			return fmt.Errorf("catalog key %x: %w", it.Key(), err)
		}
		e, err := decodeEntry(seq, it.Value())
		if err != nil {
			return err
		}
		if !e.Header.IsType(mask) {
			continue
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return it.Error()
}

// Delete removes a scan and its entries
func (c *Catalog) Delete(id ksuid.KSUID) (err error) {
	start := time.Now()
	defer func() { c.observe("delete", start, err) }()

	if _, err := c.Scan(id); err != nil {
		return err
	}
	prefix, hi := entryRange(id)

	batch := c.db.NewBatch()
	defer func() { _ = batch.Close() }()
	if err := batch.DeleteRange(prefix, hi, nil); err != nil {
		return err
	}
	if err := batch.Delete(scanKey(id), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

func scanKey(id ksuid.KSUID) []byte {
	return append([]byte{scanPrefix}, id.Bytes()...)
}

// entryRange returns the bounds of every entry key of a scan. The upper
// bound is the prefix's successor, so it sits above any 8 byte seq.
func entryRange(id ksuid.KSUID) ([]byte, []byte) {
	prefix := append([]byte{entryPrefix}, id.Bytes()...)
	return prefix, prefixSuccessor(prefix)
}

func prefixSuccessor(prefix []byte) []byte {
	hi := append([]byte{}, prefix...)
	for i := len(hi) - 1; i >= 0; i-- {
		hi[i]++
		if hi[i] != 0 {
			return hi[:i+1]
		}
	}
	return nil
}

func entryKey(id ksuid.KSUID, seq uint64) []byte {
	w := codec.NewWriter(codec.BigEndian)
	w.PutU1(entryPrefix)
	w.PutRaw(id.Bytes())
	w.PutU8(seq)
	return w.Bytes()
}

func encodeEntry(offset int64, h record.Header) []byte {
	w := codec.NewWriter(codec.BigEndian)
	w.PutU8(uint64(offset))
	w.PutU2(h.Len)
	w.PutU1(h.Typ)
	w.PutU1(h.Sub)
	return w.Bytes()
}

func decodeEntry(seq uint64, data []byte) (Entry, error) {
	if len(data) != entrySize {
		return Entry{}, fmt.Errorf("catalog entry %d: %d bytes, want %d", seq, len(data), entrySize)
	}
	r := codec.NewReader(data, codec.BigEndian)
	offset, _ := r.U8()
	n, _ := r.U2()
	typ, _ := r.U1()
	sub, _ := r.U1()
	return Entry{Seq: seq, Offset: int64(offset), Header: record.Header{Len: n, Typ: typ, Sub: sub}}, nil
}
