package display

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/models"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func file(name string, size uint64) *models.Entry {
	return &models.Entry{
		Name:     name,
		Path:     name,
		Kind:     models.KindFile,
		Size:     models.KnownSize(size),
		Modified: base,
		Mode:     0o644,
		Hidden:   name[0] == '.',
	}
}

func dir(name string, children ...*models.Entry) *models.Entry {
	d := &models.Entry{
		Name:     name,
		Path:     name,
		Kind:     models.KindDirectory,
		Modified: base,
		Mode:     fs.ModeDir | 0o755,
		Hidden:   name[0] == '.',
	}
	for _, c := range children {
		d.AddChild(c)
	}
	return d
}

// plain returns a colorless, decoration-free config in the given mode
func plain(mode config.Mode, mutate func(*config.DisplayConfig)) *config.DisplayConfig {
	cfg := &config.DisplayConfig{
		Mode:     mode,
		MaxDepth: config.Unbounded,
		Classify: config.SwitchNever,
		Width:    80,
		Now:      base,
	}
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func render(t *testing.T, roots []*models.Entry, cfg *config.DisplayConfig, root string) ([]string, *Summary) {
	t.Helper()

	var buf bytes.Buffer
	sum, err := Render(&buf, roots, cfg, root)
	require.NoError(t, err)

	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil, sum
	}
	return strings.Split(out, "\n"), sum
}
