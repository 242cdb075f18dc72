package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/formschema-home")
	cfg := Default()

	assert.Equal(t, "/tmp/formschema-home/sessions.db", cfg.Database.Path)
	assert.Equal(t, "default", cfg.Session.Name)
	assert.True(t, cfg.Validation.OrderContiguity)
	assert.Equal(t, 20, cfg.Validation.MaxInputs)
	assert.True(t, cfg.Normalize)
	require.NoError(t, cfg.Validate())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
session:
  name: drafts
validation:
  order_contiguity: false
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, "drafts", cfg.Session.Name)
	assert.Equal(t, 100, cfg.Session.HistoryLimit)
	assert.False(t, cfg.Validation.OrderContiguity)
	assert.Equal(t, 20, cfg.Validation.MaxInputs)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Len(t, cfg.ValidatorOptions(), 2)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default().Session, cfg.Session)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "sessions:\n  name: x\n",
		"bad level":     "logging:\n  level: loud\n",
		"bad format":    "logging:\n  format: xml\n",
		"negative":      "session:\n  history_limit: -1\n",
		"zero inputs":   "validation:\n  max_inputs: 0\n",
		"empty session": "session:\n  name: \"\"\n",
		"syntax":        "session: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOptional(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Session.Name)

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("normalize: false\n"), 0o644))
	cfg, err = LoadOptional(path)
	require.NoError(t, err)
	assert.False(t, cfg.Normalize)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
