package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.MaxChainDepth)
	assert.True(t, cfg.Passes.ControlLoop)
	assert.True(t, cfg.Passes.RemoteEntry)
	assert.Equal(t, 90, cfg.Confidence.Monitors)
	assert.Equal(t, 60, cfg.Confidence.IncompleteLoop)
	assert.Equal(t, 70, cfg.Confidence.SwitchFirewall)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.MaxChainDepth = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Confidence.Monitors = 101
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Confidence.SafetyFunction = -1
	assert.Error(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	data := []byte(`
max_chain_depth: 3
passes:
  control_loop: true
  network_topology: false
  process_hierarchy: true
  operator_access: true
  safety: true
  remote_entry: true
confidence:
  monitors: 80
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxChainDepth)
	assert.False(t, cfg.Passes.NetworkTopology)
	assert.Equal(t, 80, cfg.Confidence.Monitors)
	// Untouched values keep their defaults.
	assert.Equal(t, 90, cfg.Confidence.Controls)
}

func TestLoad_InvalidFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_chain_depth: -2\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
