// Package filestore saves annotated trees as bracketed text files, one
// file per tree, named after the tree.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/store"
	"github.com/cognicore/treener/pkg/treener/tree"
)

type fileStore struct {
	dir  string
	view tree.View
}

// Open returns a store writing into dir, creating it if needed.
func Open(dir string, view tree.View) (store.Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty output directory", internalerr.ErrInvalidConfig)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	return &fileStore{dir: dir, view: view}, nil
}

func (s *fileStore) Close() error { return nil }

// Save writes the tree through a temp file so a failed write never leaves
// a truncated tree behind.
func (s *fileStore) Save(ctx context.Context, t *tree.Tree) error {
	if err := store.ValidateName(t.Name); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+t.Name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(t.String() + "\n"); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, t.Name))
}

func (s *fileStore) Load(ctx context.Context, name string) (*tree.Tree, error) {
	if err := store.ValidateName(name); err != nil {
		return nil, err
	}
	t, err := tree.ReadFile(filepath.Join(s.dir, name), s.view)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("tree %q: %w", name, internalerr.ErrNotFound)
	}
	return t, err
}

func (s *fileStore) List(ctx context.Context) ([]store.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []store.Record
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		t, err := s.Load(ctx, e.Name())
		if err != nil {
			return nil, err
		}
		rec := store.Record{ID: e.Name(), Name: e.Name(), SavedAt: info.ModTime().UTC()}
		out = append(out, store.Summarize(rec, store.LeafLabels(t, s.view)))
	}
	return out, nil
}

func (s *fileStore) Labels(ctx context.Context, name string) ([]store.LeafLabel, error) {
	t, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return store.LeafLabels(t, s.view), nil
}
