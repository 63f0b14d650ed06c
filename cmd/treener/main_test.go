package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// fixture writes a config with an sqlite store, a gazetteer file and one
// tree file, and returns the config and tree paths.
func fixture(t *testing.T, backend string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "gazetteers.yaml", `gazetteers:
  - name: location
    words: [Ankara]
`)
	cfg := writeFile(t, dir, "treener.yaml", `language: tr
gazetteers:
  yaml: gazetteers.yaml
store:
  backend: `+backend+`
  path: trees.db
`)
	src := writeFile(t, dir, "0001.train",
		"(S (NP (NNP Ankara'ya)) (NP (CD 5) (NN lira)) (VP (VB ödedi)))\n")
	return cfg, src
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAnnotateShowList(t *testing.T) {
	cfg, src := fixture(t, "sqlite")

	out, err := run(t, "annotate", "--config", cfg, src)
	require.NoError(t, err)
	assert.Regexp(t, `trees\s+1`, out)
	assert.Regexp(t, `MONEY\s+2`, out)
	assert.Regexp(t, `LOCATION\s+1`, out)

	out, err = run(t, "show", "--config", cfg, "0001.train")
	require.NoError(t, err)
	assert.Equal(t, "Ankara'ya\tLOCATION\n5\tMONEY\nlira\tMONEY\nödedi\tNONE\n", out)

	out, err = run(t, "list", "--config", cfg)
	require.NoError(t, err)
	fields := strings.Fields(out)
	assert.Equal(t, []string{"0001.train", "4", "3"}, fields)
}

func TestAnnotateReportsFailures(t *testing.T) {
	cfg, src := fixture(t, "sqlite")
	bad := writeFile(t, filepath.Dir(src), "bad.train", "(S (NN kitap)) )")

	out, err := run(t, "annotate", "--config", cfg, src, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, internalerr.ErrMalformedTree)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Regexp(t, `trees\s+1`, out)
}

func TestShowMissingTree(t *testing.T) {
	cfg, _ := fixture(t, "sqlite")

	_, err := run(t, "show", "--config", cfg, "nope")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}

func TestStoreBackendNone(t *testing.T) {
	cfg, src := fixture(t, "none")

	out, err := run(t, "annotate", "--config", cfg, src)
	require.NoError(t, err)
	assert.Regexp(t, `leaves\s+4`, out)

	_, err = run(t, "list", "--config", cfg)
	assert.ErrorIs(t, err, internalerr.ErrStoreUnavailable)
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "treener.yaml", "store:\n  backend: redis\n")

	_, err := run(t, "list", "--config", cfg)
	assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)
}

func TestArgs(t *testing.T) {
	_, err := run(t, "annotate")
	assert.Error(t, err)

	_, err = run(t, "show")
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"annotate", "show", "list", "--config", "--verbose"} {
		assert.Contains(t, out, sub)
	}
}
