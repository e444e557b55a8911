package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/coursecat/output"
)

func newInstitutionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "institutions",
		Short: "Total participants per institution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := a.analyzer()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.FromCounts("institution", an.ParticipantsByInstitution()))
		},
	}
}

func newSubjectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "Total participants per institution and subject, largest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := a.analyzer()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.FromCounts("institution_subject", an.ParticipantsByInstitutionSubject()))
		},
	}
}
