package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/ner"
	"github.com/cognicore/treener/pkg/treener/tree"
)

func TestFileStoreSaveWritesRenderedTree(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")
	st, err := Open(dir, tree.ViewTurkish)
	require.NoError(t, err)

	root, err := tree.Parse(`(S (CD 90) (NN TL))`, tree.ViewTurkish)
	require.NoError(t, err)
	tr := tree.New("0001.train", root)

	r, err := ner.ForLanguage("tr", ner.Resources{}, st)
	require.NoError(t, err)
	_, err = r.Recognize(ctx, tr)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "0001.train"))
	require.NoError(t, err)
	assert.Equal(t, tr.String(), strings.TrimSpace(string(data)))
	assert.Contains(t, string(data), "{turkish=TL}{namedEntity=MONEY}")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestFileStoreLoadListLabels(t *testing.T) {
	ctx := context.Background()
	st, err := Open(t.TempDir(), tree.ViewTurkish)
	require.NoError(t, err)

	root, err := tree.Parse(`(S (NNP {turkish=Ankara}{namedEntity=LOCATION}) (VB {turkish=büyüdü}{namedEntity=NONE}))`, tree.ViewTurkish)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, tree.New("a", root)))

	loaded, err := st.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.Name)

	recs, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].Leaves)
	assert.Equal(t, 1, recs[0].Entities)

	labels, err := st.Labels(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, ner.Location, labels[0].Label)

	_, err = st.Load(ctx, "missing")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}

func TestFileStoreOpenErrors(t *testing.T) {
	_, err := Open("", tree.ViewTurkish)
	assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = Open(filepath.Join(file, "sub"), tree.ViewTurkish)
	assert.ErrorIs(t, err, internalerr.ErrStoreUnavailable)
}
