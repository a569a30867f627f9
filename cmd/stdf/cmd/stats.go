package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/gostdf/pkg/metrics"
	"github.com/ssargent/gostdf/pkg/record"
)

// tally counts part and test outcomes across files
type tally struct {
	Passed      int   `json:"parts_passed"`
	Failed      int   `json:"parts_failed"`
	Tests       int   `json:"tests"`
	TestsFailed int   `json:"tests_failed"`
	Bytes       int64 `json:"bytes"`
}

type statsReport struct {
	Records  metrics.Summary `json:"records"`
	Outcomes tally           `json:"outcomes"`
}

func (t *tally) add(r record.Record) {
	switch rec := r.(type) {
	case *record.PRR:
		if rec.Passed() {
			t.Passed++
		} else {
			t.Failed++
		}
	case *record.PTR:
		t.Tests++
		if rec.Failed() {
			t.TestsFailed++
		}
	case *record.FTR:
		t.Tests++
		if rec.Failed() {
			t.TestsFailed++
		}
	}
}

func newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Count the records of one or more files",
		Long: `Count records by type and summarise part and test outcomes.

With --metrics-addr the counts stay available for prometheus at /metrics,
and as JSON at /api/v1/stats, until the command is interrupted.

Examples:
  stdf stats lot1.stdf lot2.stdf.gz
  stdf stats --metrics-addr=127.0.0.1:9090 lot.stdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			addr, _ := cmd.Flags().GetString("metrics-addr")
			if !cmd.Flags().Changed("metrics-addr") && container.Config().Metrics.Enabled {
				addr = container.Config().Metrics.Addr
			}

			var t tally
			for _, path := range args {
				if err := countFile(path, &t); err != nil {
					return err
				}
			}

			summary := container.Metrics().Snapshot()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(statsReport{Records: summary, Outcomes: t}); err != nil {
					return err
				}
			} else if err := printSummary(cmd.OutOrStdout(), summary, t); err != nil {
				return err
			}

			if addr == "" {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			router := metrics.NewRouter(container.Metrics(), container.Registry())
			return metrics.Serve(ctx, addr, router, container.Logger())
		},
	}

	statsCmd.Flags().Bool("json", false, "Print the summary as JSON")
	statsCmd.Flags().String("metrics-addr", "", "Serve metrics on this address after counting")
	return statsCmd
}

func countFile(path string, t *tally) error {
	in, err := container.OpenInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	for {
		rec, err := in.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var ce *record.CorruptRecordError
		if errors.As(err, &ce) {
			// Counted by the collector
			continue
		}
		if err != nil {
			return err
		}
		t.add(rec)
	}
	t.Bytes += in.Offset()

	container.Logger().Info("counted file", zap.String("path", path), zap.Int64("bytes", in.Offset()))
	return nil
}
