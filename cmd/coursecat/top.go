package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/internal/logging"
	"github.com/vegasq/coursecat/output"
	"github.com/vegasq/coursecat/query"
)

func newTopCmd(a *app) *cobra.Command {
	var (
		k  int
		by string
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Top distinct course titles by hours or participants",
		Example: `  coursecat -d courses.csv top
  coursecat -d courses.csv top --k 5 --by hours`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("k") {
				k = a.cfg.Top.K
			}
			if !cmd.Flags().Changed("by") {
				by = a.cfg.Top.By
			}
			if _, err := query.ParseRankKey(by); err != nil {
				logging.Warn().Err(err).Str("by", by).Msg("ranking by participants")
			}

			an, err := a.analyzer()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.FromTitles(an.TopCourses(k, by)))
		},
	}

	cmd.Flags().IntVar(&k, "k", 10, "Number of titles to return")
	cmd.Flags().StringVar(&by, "by", string(query.RankByParticipants), "Ranking column: hours or participants")
	return cmd
}
