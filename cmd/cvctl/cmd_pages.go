package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"portfolio/internal/book"

	"github.com/spf13/cobra"
)

func pagesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page plan of the book",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return fmt.Errorf("pages: %w", err)
			}
			defer rt.Close()

			data, err := rt.Loader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("pages: %w", err)
			}
			pages := book.Map(data.CVData, data.YearsOfExperience)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(pages)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAGE\tSIDE\tKIND\tID\tTITLE")
			for _, p := range pages {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.Number, p.Side(), p.Kind(), p.ID, p.Title)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d pages, %d chapters\n", len(pages), len(book.Chapters(pages)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print pages as JSON")
	return cmd
}
