package cmd

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
	"github.com/ssargent/gostdf/pkg/storage"
	"github.com/ssargent/gostdf/pkg/stream"
)

func newIndexCmd() *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index [file]",
		Short: "Record the offset of every record of a file in the catalog",
		Long: `Index an uncompressed file so single records can be read back with
"stdf show". Every record is indexed, whatever --filter says.

Examples:
  stdf index lot.stdf
  stdf index --list
  stdf index --delete 2DJ8bR9qAHDWCfE4ZQGDzOJvDsL`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetBool("list")
			del, _ := cmd.Flags().GetString("delete")
			if !list && del == "" && len(args) == 0 {
				return fmt.Errorf("a file to index is required")
			}

			catalog, err := container.OpenCatalog()
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer catalog.Close()

			if del != "" {
				id, err := ksuid.Parse(del)
				if err != nil {
					return fmt.Errorf("invalid scan id %q: %w", del, err)
				}
				if err := catalog.Delete(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted scan %s\n", id)
			}

			if len(args) == 1 {
				path, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				in, err := container.OpenInput(path, stream.WithFilter(record.KindAll))
				if err != nil {
					return err
				}
				defer in.Close()
				if in.File.Compression != source.CompressionNone {
					return fmt.Errorf("%s: cannot index a %s compressed file, decompress it first", args[0], in.File.Compression)
				}

				scan, err := catalog.Index(in.Reader, storage.Scan{
					Path:        path,
					Compression: string(in.File.Compression),
				})
				if err != nil {
					return fmt.Errorf("index %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "scan %s: %d records\n", scan.ID, scan.Records)
			}

			if !list {
				return nil
			}
			scans, err := catalog.Scans()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SCAN\tCREATED\tORDER\tRECORDS\tBYTES\tPATH")
			for _, s := range scans {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
					s.ID, s.Created().Format(time.RFC3339), s.Order, s.Records, s.Bytes, s.Path)
			}
			return tw.Flush()
		},
	}

	indexCmd.Flags().Bool("list", false, "List indexed scans")
	indexCmd.Flags().String("delete", "", "Remove a scan from the catalog")
	return indexCmd
}
