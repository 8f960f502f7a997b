package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/arbor/internal/models"
)

// Logger receives walker diagnostics
type Logger interface {
	LogDebug(message string)
}

// WalkOptions configures the directory walk
type WalkOptions struct {
	// MaxDepth limits how deep directories are read; entries at this depth
	// are listed but not opened. Negative means unlimited.
	MaxDepth int
	// Dereference reports symlinks by their target's metadata and descends
	// into symlinked directories
	Dereference bool
	// Logger receives per-entry errors and skipped cycles; nil disables logging
	Logger Logger
}

// WalkResult contains the walked forest and any non-fatal errors
type WalkResult struct {
	// Entries are the direct children of the root, in filesystem order
	Entries []*models.Entry
	// Errors contains every per-entry error, also attached to its entry
	Errors []error
}

type walker struct {
	opts    WalkOptions
	result  *WalkResult
	visited map[string]bool // resolved paths of the directories being read
}

// Walk reads dir and its descendants into an entry forest
func Walk(dir string, opts WalkOptions) (*WalkResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	w := &walker{
		opts:    opts,
		result:  &WalkResult{Entries: make([]*models.Entry, 0), Errors: make([]error, 0)},
		visited: make(map[string]bool),
	}

	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		w.visited[resolved] = true
	}

	children, err := w.readDir(dir, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	w.result.Entries = children

	return w.result, nil
}

// readDir lists one directory; depth is the depth its children will have
func (w *walker) readDir(dir string, depth int) ([]*models.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := w.stat(filepath.Join(dir, de.Name()), de.Name())
		e.Depth = depth
		entries = append(entries, e)

		if e.Err != nil {
			continue
		}
		resolved, ok := w.shouldDescend(e)
		if !ok {
			continue
		}

		w.visited[resolved] = true
		children, err := w.readDir(e.Path, depth+1)
		delete(w.visited, resolved)
		if err != nil {
			w.fail(e, err)
			continue
		}
		for _, child := range children {
			e.AddChild(child)
		}
	}

	return entries, nil
}

// shouldDescend reports whether e is a directory to open, and its resolved path.
// A directory that resolves to one of its own ancestors is a cycle and is skipped.
func (w *walker) shouldDescend(e *models.Entry) (string, bool) {
	if w.opts.MaxDepth >= 0 && e.Depth >= w.opts.MaxDepth {
		return "", false
	}
	if e.EffectiveKind(w.opts.Dereference) != models.KindDirectory {
		return "", false
	}

	resolved, err := filepath.EvalSymlinks(e.Path)
	if err != nil {
		w.fail(e, err)
		return "", false
	}
	if w.visited[resolved] {
		if w.opts.Logger != nil {
			w.opts.Logger.LogDebug(fmt.Sprintf("skipping %s: cycle through %s", e.Path, resolved))
		}
		return "", false
	}
	return resolved, true
}

// stat builds the entry for one path. Errors are recorded on the entry.
func (w *walker) stat(path, name string) *models.Entry {
	e := &models.Entry{
		Name:   name,
		Path:   path,
		Hidden: strings.HasPrefix(name, "."),
	}
	if abs, err := filepath.Abs(path); err == nil {
		e.AbsPath = abs
	}

	info, err := os.Lstat(path)
	if err != nil {
		w.fail(e, err)
		return e
	}

	e.Kind = models.KindFromMode(info.Mode())
	e.Mode = info.Mode()
	e.Modified = info.ModTime()
	if e.Kind != models.KindDirectory {
		e.Size = models.KnownSize(uint64(info.Size()))
	}

	if e.Kind == models.KindSymlink {
		e.Target = w.resolve(path)
		if w.opts.Dereference && e.Target.Resolved {
			if target, err := os.Stat(path); err == nil {
				e.Mode = (e.Mode & os.ModeType) | target.Mode().Perm()
				e.Modified = target.ModTime()
				e.Size = models.Size{}
				if !target.IsDir() {
					e.Size = models.KnownSize(uint64(target.Size()))
				}
			}
		}
	}

	return e
}

// resolve reads a symlink target. Dangling links are not an entry error.
func (w *walker) resolve(path string) *models.Target {
	t := &models.Target{}

	dest, err := os.Readlink(path)
	if err != nil {
		return t
	}
	t.Path = dest

	info, err := os.Stat(path)
	if err != nil {
		return t
	}
	t.Kind = models.KindFromMode(info.Mode())
	t.Resolved = true
	return t
}

func (w *walker) fail(e *models.Entry, err error) {
	e.Err = err
	w.result.Errors = append(w.result.Errors, fmt.Errorf("error accessing %s: %w", e.Path, err))
	if w.opts.Logger != nil {
		w.opts.Logger.LogDebug(fmt.Sprintf("cannot read %s: %v", e.Path, err))
	}
}
