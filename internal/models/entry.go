package models

import (
	"io/fs"
	"time"
)

// Kind classifies a filesystem object
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
	KindOther
)

// String returns the display label used in long listings
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindSymlink:
		return "Symlink"
	default:
		return "Other"
	}
}

// KindFromMode maps file mode type bits to a Kind
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Target describes where a symlink points.
// Resolved is false for dangling or unreadable targets, in which case Kind is meaningless.
type Target struct {
	Path     string
	Kind     Kind
	Resolved bool
}

// Size is a byte count that may be absent.
// Directories carry an absent size unless recursive sizing was requested.
type Size struct {
	Bytes uint64
	Known bool
}

// KnownSize returns a present size of n bytes
func KnownSize(n uint64) Size {
	return Size{Bytes: n, Known: true}
}

// Entry is one filesystem object plus its (already collected) subtree.
//
// The walker fills everything except IsLast, which is set once sibling
// order is final. Children are owned by their parent and never shared.
type Entry struct {
	Name     string      // Display name, never empty
	Path     string      // Path as walked
	AbsPath  string      // Absolute path, used for hyperlinks and absolute display
	Kind     Kind        // Object kind as seen without dereferencing
	Target   *Target     // Symlink target, nil for non-symlinks
	Size     Size        // Byte size, absent for directories unless summed
	Modified time.Time   // Modification time
	Mode     fs.FileMode // Permission and type bits
	Depth    int         // 0 for direct children of the listing root
	Hidden   bool        // Name starts with a dot
	Err      error       // Per-entry read error reported by the walker

	Parent   *Entry
	Children []*Entry
	IsLast   bool
}

// IsDir reports whether the entry is a directory without following symlinks
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// EffectiveKind returns the kind used for counting and classification.
// When dereference is set, a resolved symlink reports its target's kind.
func (e *Entry) EffectiveKind(dereference bool) Kind {
	if dereference && e.Kind == KindSymlink && e.Target != nil && e.Target.Resolved {
		return e.Target.Kind
	}
	return e.Kind
}

// IsExecutable reports whether any execute bit is set on a regular file
func (e *Entry) IsExecutable() bool {
	return e.Kind == KindFile && e.Mode.Perm()&0o111 != 0
}

// AddChild appends child, fixing up its parent pointer and the depth of its whole subtree
func (e *Entry) AddChild(child *Entry) {
	child.Parent = e
	child.setDepth(e.Depth + 1)
	e.Children = append(e.Children, child)
}

func (e *Entry) setDepth(depth int) {
	e.Depth = depth
	for _, c := range e.Children {
		c.setDepth(depth + 1)
	}
}

// Walk visits e and its descendants in pre-order, stopping a branch when fn returns false
func (e *Entry) Walk(fn func(*Entry) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// Count returns the number of entries in the forest, descendants included
func Count(roots []*Entry) int {
	n := 0
	for _, root := range roots {
		root.Walk(func(*Entry) bool {
			n++
			return true
		})
	}
	return n
}

// SumSizes sets every directory's size to the sum of the known sizes below it.
// With dereference set, symlinks to directories are summed like directories.
// Entries with read errors contribute nothing.
func SumSizes(roots []*Entry, dereference bool) {
	for _, root := range roots {
		sumSize(root, dereference)
	}
}

func sumSize(e *Entry, dereference bool) uint64 {
	if e.EffectiveKind(dereference) != KindDirectory {
		if e.Err != nil || !e.Size.Known {
			return 0
		}
		return e.Size.Bytes
	}
	var total uint64
	for _, child := range e.Children {
		total += sumSize(child, dereference)
	}
	e.Size = KnownSize(total)
	return total
}
