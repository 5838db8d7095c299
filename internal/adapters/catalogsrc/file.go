package catalogsrc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"travel_reco/internal/domain"
)

// File reads the dataset document from a path relative to the working directory.
type File struct{ path string }

var _ domain.CatalogSource = (*File)(nil)

func NewFile(path string) *File { return &File{path: path} }

func (f *File) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", f.path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return b, nil
}
