/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the config variables for the duration of the test.
func clearEnv(t *testing.T) {
	for _, k := range []string{EnvRegularHCA, EnvPlayoffHCA} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 69.0, cfg.RegularSeasonHCA)
	assert.Equal(t, 93.0, cfg.PlayoffHCA)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlayoffHCA, " 101.5 ")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 69.0, cfg.RegularSeasonHCA)
	assert.Equal(t, 101.5, cfg.PlayoffHCA)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlayoffHCA, "90")

	path := filepath.Join(t.TempDir(), "hoopelo.env")
	err := os.WriteFile(path,
		[]byte(EnvRegularHCA+"=55\n"+EnvPlayoffHCA+"=120\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv(EnvRegularHCA) })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 55.0, cfg.RegularSeasonHCA)
	// already set in the environment, so the file does not override it
	assert.Equal(t, 90.0, cfg.PlayoffHCA)
}

func TestLoadConfig_Malformed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRegularHCA, "sixty-nine")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRegularHCA)
}
