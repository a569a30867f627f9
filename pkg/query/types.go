package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/gostdf/pkg/record"
)

// FieldExtractor defines how to extract field values from a record
type FieldExtractor interface {
	Extract(r record.Record, field string) (record.FieldValue, error)
}

// RecordFieldExtractor extracts fields through the record schema table
type RecordFieldExtractor struct{}

// Extract implements FieldExtractor for decoded records
func (e *RecordFieldExtractor) Extract(r record.Record, field string) (record.FieldValue, error) {
	for _, f := range record.Fields(r) {
		if f.Name == field {
			return f, nil
		}
	}
	return record.FieldValue{}, fmt.Errorf("field '%s' not found in %s", field, record.Name(r))
}

// FieldQuery represents a single field-based query condition
type FieldQuery struct {
	Field    string // Field name to query (e.g., "TEST_NUM", "SOFT_BIN")
	Operator string // Comparison operator: "=", "!=", ">", "<", ">=", "<="
	Value    any    // float64 or string
}

var validOps = map[string]bool{
	"=": true, "!=": true, ">": true, "<": true, ">=": true, "<=": true,
}

// Validate checks if the query is properly formed
func (q *FieldQuery) Validate() error {
	if q.Field == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if q.Operator == "" {
		return fmt.Errorf("operator cannot be empty")
	}
	if !validOps[q.Operator] {
		return fmt.Errorf("invalid operator: %s", q.Operator)
	}
	switch q.Value.(type) {
	case float64, string:
	default:
		return fmt.Errorf("unsupported value type %T", q.Value)
	}
	return nil
}

func (q FieldQuery) String() string {
	return fmt.Sprintf("%s%s%v", q.Field, q.Operator, q.Value)
}

// ParseFieldQuery parses expressions like "TEST_NUM>=100" or "PART_ID=12".
// Values that parse as numbers compare numerically.
func ParseFieldQuery(expr string) (FieldQuery, error) {
	// Two character operators first so ">=" is not read as ">"
	for _, op := range []string{">=", "<=", "!=", "=", ">", "<"} {
		i := strings.Index(expr, op)
		if i < 0 {
			continue
		}
		q := FieldQuery{
			Field:    strings.ToUpper(strings.TrimSpace(expr[:i])),
			Operator: op,
		}
		raw := strings.TrimSpace(expr[i+len(op):])
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			q.Value = f
		} else {
			q.Value = strings.Trim(raw, `"`)
		}
		if err := q.Validate(); err != nil {
			return FieldQuery{}, fmt.Errorf("invalid query %q: %w", expr, err)
		}
		return q, nil
	}
	return FieldQuery{}, fmt.Errorf("invalid query %q: no operator", expr)
}

// QueryIterator provides streaming access to matching records
type QueryIterator interface {
	Next() bool
	Record() record.Record
	Err() error
	Close() error
}
