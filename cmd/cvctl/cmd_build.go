package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"portfolio/internal/book"
	"portfolio/internal/theme"
	"portfolio/web"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var (
		outDir    string
		themeName string
		withPDF   bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Prerender the book as a static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			if _, ok := theme.ParsePreference(themeName); !ok {
				return fmt.Errorf("build: theme must be light, dark or system")
			}

			rt, err := newRuntime(cmd)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			defer rt.Close()

			data, err := rt.Loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			pages := book.Map(data.CVData, data.YearsOfExperience)

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("build: creating output dir: %w", err)
			}
			indexPath := filepath.Join(outDir, "index.html")
			f, err := os.Create(indexPath)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			defer f.Close()

			view := web.BookView{
				Cover:    book.CoverFor(data.CVData),
				Pages:    pages,
				Chapters: book.Chapters(pages),
				Theme:    theme.For(themeName, ""),
				Data:     data,
				Static:   true,
				PDF:      withPDF,
			}
			if err := web.RenderBook(rt.Templates, f, view); err != nil {
				return fmt.Errorf("build: rendering book: %w", err)
			}
			if err := copyFS(filepath.Join(outDir, "static"), web.Static()); err != nil {
				return fmt.Errorf("build: copying static assets: %w", err)
			}
			logger.Info("book written", "path", indexPath, "pages", len(pages))

			if withPDF {
				pdf, err := rt.Exporter.PDF(ctx)
				if err != nil {
					return fmt.Errorf("build: %w", err)
				}
				if err := os.WriteFile(filepath.Join(outDir, "cv.pdf"), pdf, 0o644); err != nil {
					return fmt.Errorf("build: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&themeName, "theme", string(theme.System), "theme baked into the page (light, dark, system)")
	cmd.Flags().BoolVar(&withPDF, "pdf", false, "also render cv.pdf (needs Chrome)")
	return cmd
}

func copyFS(dst string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		b, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, b, 0o644)
	})
}
