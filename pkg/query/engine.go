package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/stream"
)

// Engine matches records against a conjunction of field queries
type Engine struct {
	queries   []FieldQuery
	extractor FieldExtractor
}

// NewEngine creates a query engine. A nil extractor uses RecordFieldExtractor.
func NewEngine(extractor FieldExtractor, queries ...FieldQuery) (*Engine, error) {
	for i := range queries {
		if err := queries[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid query: %w", err)
		}
	}
	if extractor == nil {
		extractor = &RecordFieldExtractor{}
	}
	return &Engine{queries: queries, extractor: extractor}, nil
}

// Match reports whether r satisfies every query. Records without a queried
// field never match.
func (e *Engine) Match(r record.Record) bool {
	for _, q := range e.queries {
		f, err := e.extractor.Extract(r, q.Field)
		if err != nil {
			return false
		}
		if !compare(f, q) {
			return false
		}
	}
	return true
}

// Filter returns an iterator over the records of it that match
func (e *Engine) Filter(ctx context.Context, it stream.RecordIterator) QueryIterator {
	return &filterIterator{ctx: ctx, engine: e, inner: it}
}

func compare(f record.FieldValue, q FieldQuery) bool {
	switch want := q.Value.(type) {
	case float64:
		if got, ok := numeric(f.Value); ok {
			return compareOrdered(got, want, q.Operator)
		}
		if s, ok := text(f); ok {
			return compareOrdered(s, strconv.FormatFloat(want, 'f', -1, 64), q.Operator)
		}
	case string:
		if s, ok := text(f); ok {
			return compareOrdered(s, want, q.Operator)
		}
		if got, ok := numeric(f.Value); ok {
			w, err := strconv.ParseFloat(want, 64)
			return err == nil && compareOrdered(got, w, q.Operator)
		}
	}
	return false
}

func compareOrdered[T float64 | string](got, want T, op string) bool {
	switch op {
	case "=":
		return got == want
	case "!=":
		return got != want
	case ">":
		return got > want
	case ">=":
		return got >= want
	case "<":
		return got < want
	case "<=":
		return got <= want
	}
	return false
}

func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// text returns string and C1 fields as strings
func text(f record.FieldValue) (string, bool) {
	switch x := f.Value.(type) {
	case string:
		return strings.TrimRight(x, " "), true
	case uint8:
		if f.Type == record.C1 {
			return string(rune(x)), true
		}
	}
	return "", false
}

// filterIterator skips records that do not match
type filterIterator struct {
	ctx    context.Context
	engine *Engine
	inner  stream.RecordIterator
	err    error
}

func (it *filterIterator) Next() bool {
	for {
		if err := it.ctx.Err(); err != nil {
			it.err = err
			return false
		}
		if !it.inner.Next() {
			return false
		}
		if it.engine.Match(it.inner.Record()) {
			return true
		}
	}
}

func (it *filterIterator) Record() record.Record {
	return it.inner.Record()
}

func (it *filterIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.inner.Err()
}

func (it *filterIterator) Close() error {
	return it.inner.Close()
}
