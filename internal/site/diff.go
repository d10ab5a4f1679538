package site

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/pkg/diff"
)

// ChangeKind classifies how a published file differs from a fresh build.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// FileChange describes one output file that a build would change.
type FileChange struct {
	Path  string
	Kind  ChangeKind
	Stats diff.Stats
	// Patch is a unified diff. HTML is broken after each tag so that
	// single-line documents diff usefully.
	Patch string
}

// Diff renders the site in memory and compares it with the files currently
// in outDir (cfg.Build.OutDir when empty). A missing directory reports every
// file as added. Nothing is written.
func (b *Builder) Diff(ctx context.Context, cfg *config.Config, outDir string) ([]FileChange, error) {
	outDir, err := b.outputDir(cfg, outDir)
	if err != nil {
		return nil, err
	}

	_, fresh, err := b.memory(ctx, cfg)
	if err != nil {
		return nil, err
	}
	published, err := readTree(outDir)
	if err != nil {
		return nil, err
	}

	var changes []FileChange
	for p, next := range fresh {
		prev, ok := published[p]
		switch {
		case !ok:
			changes = append(changes, change(p, ChangeAdded, nil, next))
		case !bytes.Equal(prev, next):
			changes = append(changes, change(p, ChangeModified, prev, next))
		}
	}
	for p, prev := range published {
		if _, ok := fresh[p]; !ok {
			changes = append(changes, change(p, ChangeRemoved, prev, nil))
		}
	}

	slices.SortFunc(changes, func(a, b FileChange) int {
		return strings.Compare(a.Path, b.Path)
	})
	return changes, nil
}

func change(p string, kind ChangeKind, prev, next []byte) FileChange {
	if strings.HasSuffix(p, ".html") {
		prev, next = breakTags(prev), breakTags(next)
	}
	return FileChange{
		Path:  p,
		Kind:  kind,
		Stats: diff.Count(prev, next),
		Patch: diff.Unified(prev, next, "published/"+p, "build/"+p),
	}
}

func breakTags(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	out := bytes.ReplaceAll(data, []byte(">"), []byte(">\n"))
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out
}

// readTree loads every regular file under dir keyed by slash-separated
// relative path.
func readTree(dir string) (map[string][]byte, error) {
	files := map[string][]byte{}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = data
		return nil
	})
	return files, err
}
