package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/output"
)

func newRowsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "rows",
		Short:   "Print dataset rows, optionally filtered with --where",
		Example: `  coursecat -d courses.csv -w "institution = 'MITx' and year = 2" rows --limit 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := a.analyzer()
			if err != nil {
				return err
			}
			courses := an.Courses()
			if limit > 0 && len(courses) > limit {
				courses = courses[:limit]
			}
			return a.render(cmd.OutOrStdout(), output.FromCourses(courses))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to print (0 = unlimited)")
	return cmd
}
