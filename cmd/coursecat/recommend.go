package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/internal/validation"
	"github.com/vegasq/coursecat/output"
	"github.com/vegasq/coursecat/query"
)

func newRecommendCmd(a *app) *cobra.Command {
	var p query.Profile

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Courses whose audience best matches a learner profile",
		Long: `Recommend up to 10 courses whose average audience is closest to the given
profile. --gender is 1 for male and 0 otherwise; --degree is 1 for a
bachelor's degree or higher and 0 otherwise.`,
		Example: `  coursecat -d courses.csv recommend --age 25 --gender 1 --degree 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateStruct(&p); err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			an, err := a.analyzer()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.FromTitles(an.RecommendCourses(p.Age, p.Gender, p.Degree)))
		},
	}

	cmd.Flags().IntVar(&p.Age, "age", 0, "Learner age")
	cmd.Flags().IntVar(&p.Gender, "gender", 0, "1 for male, 0 otherwise")
	cmd.Flags().IntVar(&p.Degree, "degree", 0, "1 for bachelor's degree or higher, 0 otherwise")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}
