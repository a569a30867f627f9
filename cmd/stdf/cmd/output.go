package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ssargent/gostdf/pkg/metrics"
	"github.com/ssargent/gostdf/pkg/record"
)

// recordPrinter writes one record per line, as text or JSON lines
type recordPrinter struct {
	w    io.Writer
	json bool
}

func newRecordPrinter(w io.Writer, format string) (*recordPrinter, error) {
	switch format {
	case "", "text":
		return &recordPrinter{w: w}, nil
	case "json":
		return &recordPrinter{w: w, json: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type jsonRecord struct {
	Offset int64          `json:"offset"`
	Record string         `json:"record"`
	Fields map[string]any `json:"fields,omitempty"`
	Body   string         `json:"body,omitempty"`
}

func (p *recordPrinter) print(offset int64, r record.Record) error {
	if p.json {
		return p.printJSON(offset, r)
	}
	return p.printText(offset, r)
}

func (p *recordPrinter) printText(offset int64, r record.Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%10d %-5s", offset, record.Name(r))
	if u, ok := r.(*record.Unknown); ok {
		fmt.Fprintf(&b, " len=%d body=%s", u.Header.Len, hex.EncodeToString(u.Body))
	}
	for _, f := range record.Fields(r) {
		fmt.Fprintf(&b, " %s=%s", f.Name, formatText(f))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *recordPrinter) printJSON(offset int64, r record.Record) error {
	out := jsonRecord{Offset: offset, Record: record.Name(r)}
	if u, ok := r.(*record.Unknown); ok {
		out.Body = hex.EncodeToString(u.Body)
	}
	fields := record.Fields(r)
	if len(fields) > 0 {
		out.Fields = make(map[string]any, len(fields))
		for _, f := range fields {
			out.Fields[f.Name] = jsonValue(f.Type, f.Value)
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = p.w.Write(data)
	return err
}

func formatText(f record.FieldValue) string {
	switch v := f.Value.(type) {
	case uint8:
		if f.Type == record.C1 {
			return fmt.Sprintf("%q", rune(v))
		}
		if f.Type == record.B1 {
			return fmt.Sprintf("0x%02x", v)
		}
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		if f.Type == record.Bn {
			return hex.EncodeToString(v)
		}
	case record.BitField:
		return fmt.Sprintf("%d:%s", v.Bits, hex.EncodeToString(v.Data))
	case []record.GenValue:
		parts := make([]string, len(v))
		for i, g := range v {
			parts[i] = fmt.Sprintf("%d:%v", g.Type, g.Value)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return fmt.Sprint(f.Value)
}

// jsonValue makes values encoding/json cannot represent printable
func jsonValue(ft record.FieldType, v any) any {
	switch x := v.(type) {
	case float32:
		return jsonFloat(float64(x))
	case float64:
		return jsonFloat(x)
	case []float32:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = jsonFloat(float64(f))
		}
		return out
	case []byte:
		if ft == record.Bn {
			return hex.EncodeToString(x)
		}
		// Numeric arrays, not base64
		out := make([]int, len(x))
		for i, b := range x {
			out[i] = int(b)
		}
		return out
	case record.BitField:
		return map[string]any{"bits": x.Bits, "data": hex.EncodeToString(x.Data)}
	case []record.GenValue:
		out := make([]any, len(x))
		for i, g := range x {
			ft := record.FieldType(0)
			if g.Type == record.GenBn {
				ft = record.Bn
			}
			out[i] = map[string]any{"type": g.Type, "value": jsonValue(ft, g.Value)}
		}
		return out
	}
	return v
}

func jsonFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	return f
}

// printSummary writes the record counts as a table
func printSummary(w io.Writer, s metrics.Summary, t tally) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	seen := make(map[string]struct{}, len(s.Records))
	for name := range s.Records {
		seen[name] = struct{}{}
	}
	for name := range s.Corrupt {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(tw, "RECORD\tCOUNT\tCORRUPT")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", name, s.Records[name], s.Corrupt[name])
	}
	fmt.Fprintf(tw, "unknown\t%d\t\n", s.Unknown)
	fmt.Fprintf(tw, "skipped\t%d\t\n", s.Skipped)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nparts: %d passed, %d failed\ntests: %d executions, %d failed\nbytes: %d\n",
		t.Passed, t.Failed, t.Tests, t.TestsFailed, t.Bytes)
	return err
}
