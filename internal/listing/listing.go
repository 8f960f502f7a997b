// Package listing turns the walker's raw entry forest into the ordered,
// filtered and depth-limited forest that every renderer consumes.
//
// Prepare runs once per invocation. After it returns, sibling order and
// IsLast flags are final and the forest is treated as read-only.
package listing

import (
	"sort"
	"strings"

	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/models"
)

// Prepare filters, sorts and depth-limits the forest, then marks last siblings.
// Filtering happens before sorting and before the depth decision, so every
// later pass only sees entries that will be displayed.
func Prepare(roots []*models.Entry, cfg *config.DisplayConfig) []*models.Entry {
	return prepareLevel(roots, cfg)
}

func prepareLevel(entries []*models.Entry, cfg *config.DisplayConfig) []*models.Entry {
	kept := Filter(entries, cfg)
	Sort(kept, cfg.SortBy, cfg.Reverse)

	for i, e := range kept {
		e.IsLast = i == len(kept)-1
		if cfg.DepthLimited(e.Depth) {
			e.Children = nil
			continue
		}
		e.Children = prepareLevel(e.Children, cfg)
	}

	return kept
}

// Filter returns the entries that pass the hidden and pattern checks.
// Directories are exempt from the pattern so matching descendants stay reachable.
func Filter(entries []*models.Entry, cfg *config.DisplayConfig) []*models.Entry {
	kept := make([]*models.Entry, 0, len(entries))
	for _, e := range entries {
		if Keep(e, cfg) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Keep reports whether a single entry survives filtering
func Keep(e *models.Entry, cfg *config.DisplayConfig) bool {
	if e.Hidden && !cfg.ShowHidden {
		return false
	}
	if cfg.Match != nil && e.EffectiveKind(cfg.Dereference) != models.KindDirectory {
		return cfg.Match(e.Name)
	}
	return true
}

// Sort orders siblings in place by key.
// Size sorts largest first with absent sizes last; time sorts newest first.
// Both break ties by name, so the order is total and sorting twice is a no-op.
func Sort(entries []*models.Entry, key config.SortKey, reverse bool) {
	less := byName
	switch key {
	case config.SortBySize:
		less = bySize
	case config.SortByTime:
		less = byTime
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}

func byName(a, b *models.Entry) bool {
	return strings.Compare(a.Name, b.Name) < 0
}

func bySize(a, b *models.Entry) bool {
	if a.Size.Known != b.Size.Known {
		return a.Size.Known
	}
	if a.Size.Bytes != b.Size.Bytes {
		return a.Size.Bytes > b.Size.Bytes
	}
	return byName(a, b)
}

func byTime(a, b *models.Entry) bool {
	if !a.Modified.Equal(b.Modified) {
		return a.Modified.After(b.Modified)
	}
	return byName(a, b)
}

// Visible returns the entries the configured mode emits, in emission order.
// Tree mode and recursive flat modes walk the forest pre-order; flat modes
// without recursion emit only the top level.
func Visible(roots []*models.Entry, cfg *config.DisplayConfig) []*models.Entry {
	if cfg.Mode != config.ModeTree && !cfg.Recurse {
		out := make([]*models.Entry, len(roots))
		copy(out, roots)
		return out
	}

	out := make([]*models.Entry, 0, models.Count(roots))
	for _, root := range roots {
		root.Walk(func(e *models.Entry) bool {
			out = append(out, e)
			return true
		})
	}
	return out
}
