package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"portfolio/internal/model"
)

// Source returns the raw JSON document of one section.
type Source interface {
	ReadSection(ctx context.Context, section model.Section) ([]byte, error)
}

// FileSource reads <section>.json files from a data directory.
type FileSource struct {
	fsys fs.FS
}

// NewFileSource reads from the directory dir on disk.
func NewFileSource(dir string) *FileSource {
	return &FileSource{fsys: os.DirFS(dir)}
}

// NewFSSource reads from any fs.FS (embedded data, fstest.MapFS in tests).
func NewFSSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

func (s *FileSource) ReadSection(ctx context.Context, section model.Section) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(s.fsys, section.FileName())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrSectionNotFound, err)
		}
		return nil, err
	}
	return b, nil
}
