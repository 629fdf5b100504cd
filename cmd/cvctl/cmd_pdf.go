package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func pdfCmd() *cobra.Command {
	var (
		output   string
		htmlOnly bool
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Render the printable CV to a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := newRuntime(cmd)
			if err != nil {
				return fmt.Errorf("pdf: %w", err)
			}
			defer rt.Close()

			var out []byte
			if htmlOnly {
				html, err := rt.Exporter.HTML(ctx)
				if err != nil {
					return fmt.Errorf("pdf: %w", err)
				}
				out = []byte(html)
			} else {
				out, err = rt.Exporter.PDF(ctx)
				if err != nil {
					return fmt.Errorf("pdf: %w", err)
				}
			}

			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("pdf: writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "cv.pdf", "output file")
	cmd.Flags().BoolVar(&htmlOnly, "html", false, "write the printable HTML instead of rendering it")
	return cmd
}
