package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/output"
	"github.com/vegasq/coursecat/reader"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List the dataset columns and their types",
		Long: `List the columns of the dataset. For Parquet files the schema stored in the
file is reported; CSV files always use the fixed 23-column layout. When
--dataset is a glob the first matching file is inspected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := firstDatasetFile(a.cfg.Dataset.Path)
			if err != nil {
				return err
			}
			infos, err := reader.ExtractSchemaInfo(path)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.FromSchema(infos))
		},
	}
}

func firstDatasetFile(pattern string) (string, error) {
	if pattern == "" {
		return "", errors.New("no dataset given: use --dataset or set dataset.path")
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern, nil
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", reader.ErrNoFiles
	}
	return matches[0], nil
}
