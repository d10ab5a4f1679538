package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffAgainstMissingOutput(t *testing.T) {
	t.Parallel()

	changes, err := NewBuilder(Options{Clock: fixedClock}).Diff(context.Background(), testConfig(), filepath.Join(t.TempDir(), "public"))
	require.NoError(t, err)
	require.Len(t, changes, 3)
	for _, c := range changes {
		assert.Equal(t, ChangeAdded, c.Kind, c.Path)
		assert.Positive(t, c.Stats.Added)
		assert.Zero(t, c.Stats.Removed)
	}
	assert.Equal(t, "about-me/index.html", changes[0].Path)
}

func TestDiffAfterBuildIsEmpty(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "public")
	b := NewBuilder(Options{Clock: fixedClock})
	_, err := b.Build(context.Background(), testConfig(), out)
	require.NoError(t, err)

	changes, err := b.Diff(context.Background(), testConfig(), out)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestDiffReportsModifiedAndRemovedFiles(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "public")
	b := NewBuilder(Options{Clock: fixedClock})
	_, err := b.Build(context.Background(), testConfig(), out)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(out, "old.html"), []byte("<p>gone</p>"), 0o644))

	cfg := testConfig()
	cfg.Pages[0].Paragraphs[0].Text = "Welcome back."

	changes, err := b.Diff(context.Background(), cfg, out)
	require.NoError(t, err)
	require.Len(t, changes, 2)

	assert.Equal(t, "index.html", changes[0].Path)
	assert.Equal(t, ChangeModified, changes[0].Kind)
	assert.Equal(t, 1, changes[0].Stats.Added)
	assert.Equal(t, 1, changes[0].Stats.Removed)
	assert.Contains(t, changes[0].Patch, "--- published/index.html")
	assert.Contains(t, changes[0].Patch, "-Welcome.</p>")
	assert.Contains(t, changes[0].Patch, "+Welcome back.</p>")

	assert.Equal(t, "old.html", changes[1].Path)
	assert.Equal(t, ChangeRemoved, changes[1].Kind)
}
