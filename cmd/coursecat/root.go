package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/course"
	"github.com/vegasq/coursecat/internal/config"
	"github.com/vegasq/coursecat/internal/filter"
	"github.com/vegasq/coursecat/internal/logging"
	"github.com/vegasq/coursecat/output"
	"github.com/vegasq/coursecat/query"
	"github.com/vegasq/coursecat/reader"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath    string
	dataset       string
	format        string
	where         string
	skipMalformed bool
	logLevel      string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "coursecat",
		Short: "Query the HarvardX/MITx online courses dataset",
		Long: `coursecat loads an online-courses dataset (CSV or Parquet) into memory and
answers aggregate questions about it: participants per institution, courses
per instructor, top-ranked courses, filtered search and recommendations.

Settings come from coursecat.yaml, COURSECAT_* environment variables and
flags, in increasing order of priority.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.dataset, "dataset", "d", "", "Dataset file or glob (.csv or .parquet)")
	flags.StringVarP(&a.format, "format", "f", "", "Output format: table, csv, json, jsonl, yaml")
	flags.StringVarP(&a.where, "where", "w", "", "Row filter applied before the query (e.g. \"year = 1 and participants > 1000\")")
	flags.BoolVar(&a.skipMalformed, "skip-malformed", false, "Skip malformed CSV rows instead of failing")
	flags.StringVar(&a.configPath, "config", "", "Config file (default: ./coursecat.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled")

	rootCmd.AddCommand(
		newInstitutionsCmd(a),
		newSubjectsCmd(a),
		newInstructorsCmd(a),
		newTopCmd(a),
		newSearchCmd(a),
		newRecommendCmd(a),
		newSchemaCmd(a),
		newConvertCmd(a),
		newRowsCmd(a),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset.Path = a.dataset
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("skip-malformed") {
		cfg.Dataset.SkipMalformed = a.skipMalformed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logging.Init(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
	logging.SetLogger(logging.With().Str("run_id", uuid.NewString()).Logger())

	logging.Debug().
		Str("command", cmd.Name()).
		Str("dataset", cfg.Dataset.Path).
		Str("format", cfg.Output.Format).
		Msg("configuration resolved")
	return nil
}

// analyzer loads the dataset and applies the --where filter.
func (a *app) analyzer() (*query.Analyzer, error) {
	courses, err := a.load()
	if err != nil {
		return nil, err
	}
	an := query.New(courses)

	if a.where == "" {
		return an, nil
	}
	expr, err := filter.Parse(a.where)
	if err != nil {
		return nil, fmt.Errorf("invalid --where filter: %w", err)
	}
	filtered := an.Where(expr)
	logging.Info().
		Str("where", a.where).
		Int("rows", an.Len()).
		Int("matched", filtered.Len()).
		Msg("filter applied")
	return filtered, nil
}

func (a *app) load() ([]course.Course, error) {
	path := a.cfg.Dataset.Path
	if path == "" {
		return nil, errors.New("no dataset given: use --dataset or set dataset.path")
	}

	start := time.Now()
	courses, stats, err := reader.ReadMultipleFiles(path, reader.Options{SkipMalformed: a.cfg.Dataset.SkipMalformed})
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	logging.Info().
		Str("dataset", path).
		Int("files", stats.Files).
		Int("rows", stats.Rows).
		Int("skipped", stats.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")
	return courses, nil
}

// render writes t to w in the configured output format.
func (a *app) render(w io.Writer, t *output.Table) error {
	formatter, err := output.NewFormatter(a.cfg.Output.Format, w)
	if err != nil {
		return err
	}
	return formatter.Format(t)
}
