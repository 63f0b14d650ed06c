package memstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/store"
	"github.com/cognicore/treener/pkg/treener/tree"
)

type entry struct {
	id      string
	body    string
	savedAt time.Time
}

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	view   tree.View
	nextID int64
	trees  map[string]entry
}

// New creates a new in-memory store. view selects the word layer reported
// by Labels.
func New(view tree.View) *Store {
	return &Store{
		view:   view,
		nextID: 1,
		trees:  make(map[string]entry),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Save stores a rendered copy of t.
func (s *Store) Save(ctx context.Context, t *tree.Tree) error {
	if err := store.ValidateName(t.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trees[t.Name] = entry{
		id:      strconv.FormatInt(s.nextID, 10),
		body:    t.String(),
		savedAt: time.Now().UTC(),
	}
	s.nextID++
	return nil
}

// Load parses the stored copy, so callers never share nodes with the store.
func (s *Store) Load(ctx context.Context, name string) (*tree.Tree, error) {
	s.mu.RLock()
	e, ok := s.trees[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tree %q: %w", name, internalerr.ErrNotFound)
	}

	root, err := tree.Parse(e.body, s.view)
	if err != nil {
		return nil, err
	}
	return tree.New(name, root), nil
}

// List implements store.Store.
func (s *Store) List(ctx context.Context) ([]store.Record, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.trees))
	for name := range s.trees {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	out := make([]store.Record, 0, len(names))
	for _, name := range names {
		t, err := s.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		s.mu.RLock()
		e := s.trees[name]
		s.mu.RUnlock()
		rec := store.Record{ID: e.id, Name: name, SavedAt: e.savedAt}
		out = append(out, store.Summarize(rec, store.LeafLabels(t, s.view)))
	}
	return out, nil
}

// Labels implements store.Store.
func (s *Store) Labels(ctx context.Context, name string) ([]store.LeafLabel, error) {
	t, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return store.LeafLabels(t, s.view), nil
}
