package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/stream"
)

func newRewriteCmd() *cobra.Command {
	rewriteCmd := &cobra.Command{
		Use:   "rewrite <input> <output>",
		Short: "Copy a file, optionally converting byte order and dropping records",
		Long: `Copy the records of a file to a new uncompressed file. Records kept by
--filter are written in the output byte order; the FAR is always written.
Records that cannot be decoded are dropped with a warning.

Examples:
  stdf rewrite --order big lot.stdf.gz lot-be.stdf
  stdf rewrite --filter PIR,PTR,PRR lot.stdf parts.stdf`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.Config()
			order, err := cfg.OutputOrder()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("order") {
				name, _ := cmd.Flags().GetString("order")
				if order, err = codec.ParseByteOrder(name); err != nil {
					return err
				}
			}
			kinds, err := cfg.FilterKinds()
			if err != nil {
				return err
			}

			in, err := container.OpenInput(args[0], stream.WithFilter(kinds|record.KindFAR))
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := stream.CreateFile(args[1], stream.WriterConfig{
				Order:      order,
				BufferSize: cfg.Output.BufferSize,
			})
			if err != nil {
				return err
			}

			n, dropped, err := copyRecords(cmd, in.Reader, out)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("rewrite %s: %w", args[0], err)
			}

			container.Logger().Info("rewrote file",
				zap.String("input", args[0]),
				zap.String("output", args[1]),
				zap.Stringer("order", order),
				zap.Int("records", n),
				zap.Int("dropped", dropped))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records (%d bytes) to %s\n", n, out.Size(), args[1])
			return nil
		},
	}

	rewriteCmd.Flags().String("order", "", "Output byte order: little or big (default from config)")
	return rewriteCmd
}

func copyRecords(cmd *cobra.Command, r *stream.Reader, w *stream.Writer) (written, dropped int, err error) {
	for {
		raw, err := r.NextRaw()
		if errors.Is(err, io.EOF) {
			return written, dropped, nil
		}
		if err != nil {
			return written, dropped, err
		}
		if _, err := w.WriteRaw(raw); err != nil {
			var ce *record.CorruptRecordError
			if !errors.As(err, &ce) {
				return written, dropped, err
			}
			dropped++
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: dropped %v\n", ce)
			continue
		}
		written++
	}
}
