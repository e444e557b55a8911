package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/output"
	"github.com/vegasq/coursecat/query"
)

func newInstructorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "instructors [name...]",
		Short: "Courses taught alone and co-taught, per instructor",
		Long: `List, for every instructor, the titles of courses they taught alone and the
titles of courses they taught together with others.

Pass one or more names to restrict the listing to those instructors. Names
are matched exactly after trimming spaces.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyzer()
			if err != nil {
				return err
			}
			result := an.InstructorCourses()
			if len(args) > 0 {
				result = selectInstructors(result, args)
			}
			return a.render(cmd.OutOrStdout(), output.FromInstructors(result))
		},
	}
}

func selectInstructors(all map[string]query.InstructorCourses, names []string) map[string]query.InstructorCourses {
	selected := make(map[string]query.InstructorCourses, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if ic, ok := all[name]; ok {
			selected[name] = ic
		}
	}
	return selected
}
