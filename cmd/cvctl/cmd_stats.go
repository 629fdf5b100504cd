package main

import (
	"fmt"
	"strings"

	"portfolio/internal/usecase"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show portfolio statistics, top technologies and completeness",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := newRuntime(cmd)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			defer rt.Close()

			st, err := rt.Service.Statistics(ctx)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			techs, err := rt.Service.TopTechnologies(ctx, top)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			completeness := rt.Service.PortfolioCompleteness(ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Years of experience: %d\n", st.YearsOfExperience)
			fmt.Fprintf(out, "Total projects:      %d (%d featured)\n", st.TotalProjects, st.FeaturedProjects)
			fmt.Fprintf(out, "Companies:           %d\n", st.Companies)
			fmt.Fprintf(out, "Skills:              %d in %d categories\n", st.TotalSkills, st.SkillCategories)
			fmt.Fprintf(out, "Education:           %d\n", st.Education)
			fmt.Fprintf(out, "Achievements:        %d\n", st.Achievements)

			fmt.Fprintln(out, "\nTop technologies:")
			for _, tc := range techs {
				fmt.Fprintf(out, "  %-20s %d\n", tc.Name, tc.Count)
			}

			fmt.Fprintln(out)
			if completeness.Complete {
				fmt.Fprintln(out, "Portfolio is complete")
			} else {
				fmt.Fprintf(out, "Portfolio is incomplete, missing: %s\n", strings.Join(completeness.Missing, ", "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", usecase.DefaultTopTechnologies, "number of technologies to list")
	return cmd
}
