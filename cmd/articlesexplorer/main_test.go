package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticlesExplorer/internal/catalog"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ARTICLES_EXPLORER_CONFIG", "")
	t.Setenv("ARTICLES_EXPLORER_DOTENV", filepath.Join(dir, "missing.env"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("STORAGE_PATH", filepath.Join(dir, "state.json"))
	t.Setenv("CATALOG_PATH", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "search", "osteo")
	require.NoError(t, err)
	assert.Contains(t, out, "/article/vertebrate-bone-loss")

	out, err = run(t, "search", "xyz-nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "No results found\n", out)

	out, err = run(t, "search", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "at least 2 characters")

	out, err = run(t, "search", "--json", "BONE")
	require.NoError(t, err)
	assert.Contains(t, out, `"state": "suggesting"`)
}

func TestStateCommandsPersistAcrossRuns(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "state", "highlight", "fungi-spores")
	require.NoError(t, err)
	assert.Equal(t, "fungi-spores: highlighted\n", out)

	out, err = run(t, "state", "mark", "plants-gravitropism")
	require.NoError(t, err)
	assert.Equal(t, "plants-gravitropism: read\n", out)

	out, err = run(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Highlighted (1)")
	assert.Contains(t, out, "/article/fungi-spores")
	assert.Contains(t, out, "Read (1)")
	assert.Contains(t, out, "/article/plants-gravitropism")

	out, err = run(t, "state", "read", "plants-gravitropism")
	require.NoError(t, err)
	assert.Equal(t, "plants-gravitropism: unread\n", out)

	out, err = run(t, "state", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fungi-spores"`)
	assert.NotContains(t, out, `"plants-gravitropism"`)

	_, err = run(t, "state", "clear")
	require.NoError(t, err)
	out, err = run(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Highlighted (0)")
}

func TestStateRejectsUnknownArticle(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "state", "read", "nope")
	assert.Error(t, err)
}

func TestCatalogExportRoundTrips(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "catalog.yaml")

	_, err := run(t, "catalog", "export", "--out", path)
	require.NoError(t, err)

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().All(), c.All())

	t.Setenv("CATALOG_PATH", path)
	out, err := run(t, "catalog", "topics")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
	assert.Contains(t, out, "human-cell-&-biomedical")
}

func TestBrowseLogsToFileNotStderr(t *testing.T) {
	dir := setupEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0o600))

	stderr, err := os.CreateTemp(dir, "stderr")
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = stderr
	t.Cleanup(func() { os.Stderr = orig })

	c := &cli{out: io.Discard}
	c.init()
	logPath := filepath.Join(dir, "browse.log")
	logger, closeLog, err := browseLogger(logPath, c.cfg.Logging.Level)
	require.NoError(t, err)
	c.logger = logger

	ctx := context.Background()
	a, err := c.open(ctx)
	require.NoError(t, err)
	_, err = a.Browser(ctx, "notty")
	require.NoError(t, err)
	_, err = a.Views().ToggleHighlight(ctx, a.State(ctx), "fungi-spores")
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, closeLog())

	os.Stderr = orig
	require.NoError(t, stderr.Close())
	written, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	assert.Empty(t, string(written))

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "state file is corrupt")
	assert.Contains(t, string(logged), "catalog loaded")
}

func TestBrowseLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := browseLogger("", "debug")
	require.NoError(t, err)
	logger.Warn("dropped")
	assert.NoError(t, closeLog())

	_, _, err = browseLogger(filepath.Join(t.TempDir(), "missing", "browse.log"), "info")
	assert.Error(t, err)
}
