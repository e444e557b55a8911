package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/output"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		subject    string
		minAudited float64
		maxHours   float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Titles matching a subject with audit and hours bounds",
		Long: `Search for courses whose subject contains --subject (case-insensitive), whose
percentage of audited participants is at least --min-audited and whose total
course hours (in thousands) are at most --max-hours. Bounds are inclusive.`,
		Example: `  coursecat -d courses.csv search --subject computer --min-audited 15 --max-hours 900`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := a.analyzer()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.FromTitles(an.SearchCourses(subject, minAudited, maxHours)))
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Substring of the course subject")
	cmd.Flags().Float64Var(&minAudited, "min-audited", 0, "Minimum % audited")
	cmd.Flags().Float64Var(&maxHours, "max-hours", math.MaxFloat64, "Maximum total course hours (thousands)")
	return cmd
}
