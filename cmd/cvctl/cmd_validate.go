package main

import (
	"errors"
	"fmt"
	"io"

	"portfolio/internal/model"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every section, then the composed CV, and report schema violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			failed := 0
			for _, section := range model.Sections {
				if _, err := rt.Repo.Load(cmd.Context(), section); err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %-13s %v\n", section, err)
					printViolations(out, err)
					continue
				}
				fmt.Fprintf(out, "ok    %s\n", section)
			}
			if failed > 0 {
				return fmt.Errorf("validate: %d of %d sections failed", failed, len(model.Sections))
			}

			cv, err := rt.Service.CompleteCV(cmd.Context())
			if err == nil {
				err = model.ValidateCV(cv)
			}
			if err != nil {
				fmt.Fprintf(out, "FAIL  %-13s %v\n", "cv", err)
				printViolations(out, err)
				return fmt.Errorf("validate: composed cv: %w", err)
			}
			fmt.Fprintln(out, "ok    cv")
			return nil
		},
	}
}

func printViolations(out io.Writer, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			fmt.Fprintf(out, "        - %s\n", v)
		}
	}
}
