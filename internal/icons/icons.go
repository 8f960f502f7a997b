// Package icons maps entries to the glyph shown in front of their name.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/harrison/arbor/internal/models"
)

// Glyphs for entries that are not matched by extension
const (
	Directory = "📁"
	Symlink   = "🔗"
	Default   = "📄"
)

var byExtension = map[string]string{
	".txt":  "📄",
	".rs":   "🦀",
	".go":   "🐹",
	".py":   "🐍",
	".js":   "🟨",
	".ts":   "🟦",
	".html": "🌐",
	".css":  "🎨",
	".json": "🔧",
	".yaml": "🔧",
	".yml":  "🔧",
	".toml": "🔧",
	".md":   "📝",
	".png":  "📷",
	".jpg":  "📷",
	".jpeg": "📷",
	".gif":  "📷",
	".svg":  "📷",
	".mp3":  "🎵",
	".wav":  "🎵",
	".ogg":  "🎵",
	".flac": "🎵",
	".mp4":  "🎥",
	".avi":  "🎥",
	".mkv":  "🎥",
	".pdf":  "📚",
	".zip":  "📦",
	".tar":  "📦",
	".gz":   "📦",
	".xz":   "📦",
	".exe":  "🔨",
	".sh":   "🐚",
}

// For returns the icon for an entry. Directories (and symlinks to directories
// when dereferencing) get the folder glyph; files are matched case-insensitively
// by extension.
func For(e *models.Entry, dereference bool) string {
	switch e.EffectiveKind(dereference) {
	case models.KindDirectory:
		return Directory
	case models.KindSymlink:
		return Symlink
	}

	if icon, ok := byExtension[strings.ToLower(filepath.Ext(e.Name))]; ok {
		return icon
	}
	return Default
}
