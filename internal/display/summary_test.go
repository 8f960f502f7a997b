package display

import (
	"errors"
	"testing"

	"github.com/harrison/arbor/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Add(t *testing.T) {
	linkToDir := &models.Entry{
		Name:   "link",
		Kind:   models.KindSymlink,
		Size:   models.KnownSize(4),
		Target: &models.Target{Path: "lib", Kind: models.KindDirectory, Resolved: true},
	}
	broken := file("locked", 999)
	broken.Err = errors.New("permission denied")
	summed := dir("lib")
	summed.Size = models.KnownSize(5000)

	tests := []struct {
		name        string
		dereference bool
		wantDirs    int
		wantFiles   int
		wantSize    uint64
	}{
		{name: "symlink counted as itself", dereference: false, wantDirs: 1, wantFiles: 3, wantSize: 1024 + 4},
		{name: "symlink counted as target", dereference: true, wantDirs: 2, wantFiles: 2, wantSize: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := NewSummary(tt.dereference)
			for _, e := range []*models.Entry{file("a", 1024), summed, linkToDir, broken} {
				sum.Add(e)
			}

			assert.Equal(t, tt.wantDirs, sum.Dirs)
			assert.Equal(t, tt.wantFiles, sum.Files)
			assert.Equal(t, tt.wantSize, sum.TotalSize)
			assert.Equal(t, 4, sum.Entries())
		})
	}
}

func TestSummary_Lines(t *testing.T) {
	tests := []struct {
		name  string
		dirs  int
		files int
		size  uint64
		base  models.SizeBase
		want  []string
	}{
		{
			name: "binary",
			dirs: 0, files: 2, size: 3072,
			base: models.SizeBaseBinary,
			want: []string{"0 directories, 2 files", "Total size: 3.00 KiB"},
		},
		{
			name: "decimal",
			dirs: 0, files: 2, size: 3072,
			base: models.SizeBaseDecimal,
			want: []string{"0 directories, 2 files", "Total size: 3.07 KB"},
		},
		{
			name: "singular",
			dirs: 1, files: 1, size: 0,
			base: models.SizeBaseBinary,
			want: []string{"1 directory, 1 file", "Total size: 0.00 B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := &Summary{Dirs: tt.dirs, Files: tt.files, TotalSize: tt.size}
			assert.Equal(t, tt.want, sum.Lines(tt.base, NewPalette(false)))
		})
	}
}

func TestSummary_LinesColored(t *testing.T) {
	sum := &Summary{Dirs: 1, Files: 1}
	lines := sum.Lines(models.SizeBaseBinary, NewPalette(true))

	assert.Contains(t, lines[0], "\x1b[")
	assert.Contains(t, lines[0], "1 directory, 1 file")
	assert.Contains(t, lines[1], "\x1b[")
}
