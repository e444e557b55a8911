package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/internal/logging"
	"github.com/vegasq/coursecat/output"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		out   string
		codec string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the (filtered) dataset to a Parquet file",
		Long: `Convert the loaded dataset to Parquet. The --where filter applies, so convert
can also extract a subset. Supported codecs: ` + strings.Join(output.Codecs, ", ") + `.`,
		Example: `  coursecat -d courses.csv convert --out courses.parquet --codec zstd`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if out == "" {
				return errors.New("--out is required")
			}

			an, err := a.analyzer()
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("failed to close output file: %w", cerr)
				}
			}()

			if err := output.WriteParquet(f, an.Courses(), codec); err != nil {
				return err
			}

			logging.Info().
				Str("out", out).
				Str("codec", codec).
				Int("rows", an.Len()).
				Msg("dataset converted")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", an.Len(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output Parquet file")
	cmd.Flags().StringVar(&codec, "codec", "snappy", "Compression codec")
	return cmd
}
