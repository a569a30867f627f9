package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/gostdf/pkg/stream"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <scan-id> <seq>",
		Short: "Print one record of an indexed file",
		Long: `Read a single record by its position in an indexed file, seeking
directly to the offset stored in the catalog. Records are numbered from 0,
the FAR.

Examples:
  stdf show 2DJ8bR9qAHDWCfE4ZQGDzOJvDsL 42
  stdf show --format json 2DJ8bR9qAHDWCfE4ZQGDzOJvDsL 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			printer, err := newRecordPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}

			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid scan id %q: %w", args[0], err)
			}
			seq, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record number %q: %w", args[1], err)
			}

			catalog, err := container.OpenCatalog()
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer catalog.Close()

			scan, err := catalog.Scan(id)
			if err != nil {
				return err
			}
			entry, err := catalog.Lookup(id, seq)
			if err != nil {
				return err
			}
			order, err := scan.ByteOrder()
			if err != nil {
				return err
			}

			f, err := os.Open(scan.Path)
			if err != nil {
				return err
			}
			defer f.Close()

			rec, err := stream.ReadAt(f, entry.Offset, order)
			if err != nil {
				return fmt.Errorf("%s at offset %d: %w", scan.Path, entry.Offset, err)
			}
			return printer.print(entry.Offset, rec)
		},
	}

	showCmd.Flags().String("format", "text", "Output format: text or json")
	return showCmd
}
