package site

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// stage is a temporary output tree that replaces the real output directory
// on publish.
type stage struct {
	dir    string
	target string

	mu        sync.Mutex
	written   []string
	size      int64
	published bool
}

func newStage(target string) (*stage, error) {
	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create output parent: %w", err)
	}
	dir, err := os.MkdirTemp(parent, ".quill-stage-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	if err := os.Chmod(dir, 0o755); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &stage{dir: dir, target: target}, nil
}

// write stores data at the slash-separated rel path.
func (s *stage) write(rel string, data []byte) error {
	full := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, rel)
	s.size += int64(len(data))
	return nil
}

// publish swaps the staged tree into place. The previous output is moved
// aside first and only removed once the swap succeeded.
func (s *stage) publish() error {
	backup := ""
	if _, err := os.Stat(s.target); err == nil {
		backup = s.target + ".quill-old"
		if err := os.RemoveAll(backup); err != nil {
			return fmt.Errorf("clear backup: %w", err)
		}
		if err := os.Rename(s.target, backup); err != nil {
			return fmt.Errorf("move previous output: %w", err)
		}
	}

	if err := os.Rename(s.dir, s.target); err != nil {
		if backup != "" {
			_ = os.Rename(backup, s.target)
		}
		return fmt.Errorf("publish output: %w", err)
	}
	s.published = true

	if backup != "" {
		if err := os.RemoveAll(backup); err != nil {
			return fmt.Errorf("remove previous output: %w", err)
		}
	}
	return nil
}

// discard removes the staging tree unless it was published.
func (s *stage) discard() {
	if !s.published {
		_ = os.RemoveAll(s.dir)
	}
}

func (s *stage) files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.written)
	slices.Sort(out)
	return out
}

func (s *stage) bytes() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}
