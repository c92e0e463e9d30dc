package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/cdeps/internal/config"
	"github.com/Sumatoshi-tech/cdeps/pkg/srcpair"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, srcpair.SourceExtensions, cfg.SourceExtensions)
	assert.Equal(t, srcpair.HeaderExtensions, cfg.HeaderExtensions)
	assert.Equal(t, srcpair.DefaultExcludeDirs, cfg.ExcludeDirs)
	assert.Empty(t, cfg.IncludeDirs)
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cdeps.yaml")
	content := `workers: 2
include_dirs:
  - include
  - third_party
source_extensions:
  - .c
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"include", "third_party"}, cfg.IncludeDirs)
	assert.Equal(t, []string{".c"}, cfg.SourceExtensions)
	// Unset keys keep their defaults.
	assert.Equal(t, srcpair.HeaderExtensions, cfg.HeaderExtensions)
}

func TestLoadConfigInvalidWorkers(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cdeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 0\n"), 0o644))

	_, err := config.LoadConfig(path)

	assert.ErrorIs(t, err, config.ErrInvalidWorkers)
}

func TestLoadConfigInvalidExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cdeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header_extensions: [hpp]\n"), 0o644))

	_, err := config.LoadConfig(path)

	assert.ErrorIs(t, err, config.ErrInvalidExtension)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
