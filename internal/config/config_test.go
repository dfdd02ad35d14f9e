package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 200, cfg.Data.PreviewLimit)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
data:
  source_path: other.csv
  preview_limit: 50
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "other.csv", cfg.Data.SourcePath)
	assert.Equal(t, 50, cfg.Data.PreviewLimit)
	// Untouched sections keep defaults
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("GRIDVIEW_SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "invalid port", env: map[string]string{"GRIDVIEW_SERVER_PORT": "0"}},
		{name: "invalid preview limit", env: map[string]string{"GRIDVIEW_DATA_PREVIEW_LIMIT": "-1"}},
		{name: "missing source path", env: map[string]string{"GRIDVIEW_DATA_SOURCE_PATH": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestSourceIsXLSX(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.SourceIsXLSX())

	cfg.Data.SourcePath = "data/Report.XLSX"
	assert.True(t, cfg.SourceIsXLSX())
}
