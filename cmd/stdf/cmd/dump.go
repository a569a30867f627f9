package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/gostdf/pkg/query"
	"github.com/ssargent/gostdf/pkg/record"
)

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the records of a file",
		Long: `Print every record of a file with its stream offset and fields.
Corrupt records are reported on stderr and skipped. --where conditions
must all hold; records without the named field are not printed.

Examples:
  stdf dump lot.stdf
  stdf dump --filter PTR,PRR --format json lot.stdf.gz
  stdf dump --filter PTR --where TEST_NUM=1000 --where "RESULT>1.2" lot.stdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			limit, _ := cmd.Flags().GetInt("limit")
			where, _ := cmd.Flags().GetStringArray("where")

			queries := make([]query.FieldQuery, 0, len(where))
			for _, expr := range where {
				q, err := query.ParseFieldQuery(expr)
				if err != nil {
					return err
				}
				queries = append(queries, q)
			}
			engine, err := query.NewEngine(nil, queries...)
			if err != nil {
				return err
			}

			printer, err := newRecordPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}

			in, err := container.OpenInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			n, corrupt := 0, 0
			for limit <= 0 || n < limit {
				rec, err := in.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				var ce *record.CorruptRecordError
				if errors.As(err, &ce) {
					corrupt++
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", ce)
					continue
				}
				if err != nil {
					return err
				}
				if !engine.Match(rec) {
					continue
				}
				if err := printer.print(in.RecordOffset(), rec); err != nil {
					return err
				}
				n++
			}

			container.Logger().Debug("dump finished",
				zap.String("path", args[0]),
				zap.Int("records", n),
				zap.Int("corrupt", corrupt))
			return nil
		},
	}

	dumpCmd.Flags().String("format", "text", "Output format: text or json")
	dumpCmd.Flags().IntP("limit", "n", 0, "Stop after this many records (0 prints all)")
	dumpCmd.Flags().StringArray("where", nil, "Field condition such as TEST_NUM>=100 (repeatable)")
	return dumpCmd
}
