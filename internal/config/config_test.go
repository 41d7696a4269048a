package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BugHunterPhilosopher/phonemizer"
)

func TestLoad(t *testing.T) {
	t.Run("explicit marks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "punctuate.toml")
		require.NoError(t, os.WriteFile(path, []byte(`marks = ",.!"`), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ",.!", cfg.Marks)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "punctuate.toml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "punctuate.toml")
		require.NoError(t, os.WriteFile(path, []byte(`marks = [`), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestSample(t *testing.T) {
	// the shipped sample must parse and describe the defaults
	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(Sample()), &cfg))
	assert.Equal(t, phonemizer.DefaultMarks(), cfg.Marks)
}
