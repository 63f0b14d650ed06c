// Package treener labels the leaves of parsed sentence trees with named
// entity categories and stores the annotated trees.
package treener

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/treener/pkg/treener/config"
	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/ner"
	"github.com/cognicore/treener/pkg/treener/store"
	"github.com/cognicore/treener/pkg/treener/store/filestore"
	"github.com/cognicore/treener/pkg/treener/store/sqlite"
	"github.com/cognicore/treener/pkg/treener/tree"
)

// Engine is the annotation facade
type Engine struct {
	recognizer *ner.Recognizer
	store      store.Store
	view       tree.View
	logger     *zap.Logger
}

// Options configures an Engine. The Recognizer is expected to save into
// Store when one is set.
type Options struct {
	Recognizer *ner.Recognizer
	Store      store.Store
	// View is the word view of the input trees; bare leaves are read
	// into it.
	View   tree.View
	Logger *zap.Logger
}

// New creates an Engine with the given dependencies
func New(opts Options) (*Engine, error) {
	if opts.Recognizer == nil {
		return nil, fmt.Errorf("%w: no recognizer", internalerr.ErrInvalidConfig)
	}
	if opts.View == "" {
		opts.View = tree.ViewTurkish
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Engine{
		recognizer: opts.Recognizer,
		store:      opts.Store,
		view:       opts.View,
		logger:     opts.Logger,
	}, nil
}

// Open wires an Engine from a configuration: gazetteers, lexical rules,
// the recognizer for the configured language and the configured store.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	comps, err := (&config.Loader{Config: cfg}).Load()
	if err != nil {
		return nil, err
	}
	res := comps.Resources
	res.Logger = logger.Named("ner")

	view := res.View
	if view == "" {
		view = DefaultView(comps.Language)
	}
	res.View = view

	st, err := OpenStore(ctx, cfg.Store, view)
	if err != nil {
		return nil, err
	}

	var saver ner.Saver
	if st != nil {
		saver = st
	}
	rec, err := ner.ForLanguage(comps.Language, res, saver)
	if err != nil {
		if st != nil {
			st.Close()
		}
		return nil, err
	}

	logger.Debug("engine ready",
		zap.String("language", comps.Language),
		zap.String("view", string(view)),
		zap.String("store", cfg.Store.Backend),
		zap.Strings("gazetteers", res.Gazetteers.Categories()))

	return New(Options{Recognizer: rec, Store: st, View: view, Logger: logger})
}

// DefaultView returns the word view used for a language tag.
func DefaultView(language string) tree.View {
	switch strings.ToLower(language) {
	case "en", "en-us", "en-gb":
		return tree.ViewEnglish
	}
	return tree.ViewTurkish
}

// OpenStore opens the store selected by cfg. The "none" backend returns a
// nil Store.
func OpenStore(ctx context.Context, cfg config.Store, view tree.View) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return filestore.Open(cfg.Path, view)
	case config.BackendSQLite:
		return sqlite.OpenSQLite(ctx, cfg.Path, view)
	case config.BackendNone, "":
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unknown store backend %q", internalerr.ErrInvalidConfig, cfg.Backend)
}

// Close cleanly shuts down the Engine
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Store returns the engine's store, nil when annotation results are not
// persisted.
func (e *Engine) Store() store.Store {
	return e.store
}

// Annotate labels an already parsed tree.
func (e *Engine) Annotate(ctx context.Context, t *tree.Tree) (ner.Stats, error) {
	return e.recognizer.Recognize(ctx, t)
}

// AnnotateFile reads a tree file, labels it and saves it under the file's
// base name.
func (e *Engine) AnnotateFile(ctx context.Context, path string) (ner.Stats, error) {
	t, err := tree.ReadFile(path, e.view)
	if err != nil {
		return ner.Stats{}, err
	}
	stats, err := e.Annotate(ctx, t)
	if err != nil {
		return ner.Stats{}, err
	}
	e.logger.Info("annotated",
		zap.String("tree", t.Name),
		zap.Int("leaves", stats.Leaves),
		zap.Int("entities", stats.Entities()))
	return stats, nil
}

// FileError records a file that could not be annotated.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", filepath.Base(e.Path), e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Report summarizes a batch of annotated files.
type Report struct {
	Trees  int
	Stats  ner.Stats
	Failed []FileError
}

// AnnotateFiles annotates each file in order. A file that fails is
// recorded in the report and the batch goes on; the returned error joins
// all failures. Cancellation stops the batch.
func (e *Engine) AnnotateFiles(ctx context.Context, paths []string) (Report, error) {
	var report Report
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		stats, err := e.AnnotateFile(ctx, path)
		if err != nil {
			fe := FileError{Path: path, Err: err}
			report.Failed = append(report.Failed, fe)
			errs = append(errs, fe)
			e.logger.Warn("annotate failed", zap.String("path", path), zap.Error(err))
			continue
		}
		report.Trees++
		report.Stats.Add(stats)
	}
	return report, errors.Join(errs...)
}
