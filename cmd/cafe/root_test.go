package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

// execute runs a fresh root command with an isolated config directory and
// returns stdout.
func execute(t *testing.T, configDir, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsSession(t *testing.T) {
	for _, backend := range []string{types.BackendMemory, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			out, err := execute(t, t.TempDir(),
				"Ada\nadd\nmenu\ndrinks\nMocha\n3.5\nsearch\nmenu\nmocha\nstop\n",
				"--backend", backend)
			require.NoError(t, err)
			assert.Contains(t, out, "Welcoming Ada to Lory's Cafe Management System!")
			assert.Contains(t, out, "mocha has been added to drinks.")
			assert.Contains(t, out, "Item \"Mocha\" found in Drinks!")
		})
	}
}

func TestRootEndOfInputIsClean(t *testing.T) {
	_, err := execute(t, t.TempDir(), "")
	assert.NoError(t, err)
}

func TestRootRejectsUnknownBackend(t *testing.T) {
	_, err := execute(t, t.TempDir(), "Ada\nq\n", "--backend", "postgres")
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestRootRejectsUnknownBackendFromEnv(t *testing.T) {
	t.Setenv("CAFE_BACKEND", "bogus")
	_, err := execute(t, t.TempDir(), "Ada\nq\n")
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, t.TempDir(), "Ada\nq\n", "--log-level", "loud")
	assert.Error(t, err)
}

func TestRootNoSeed(t *testing.T) {
	out, err := execute(t, t.TempDir(), "Ada\nsearch\nrecords\n123\nq\n", "--no-seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer Record for ID 123 does not exist.")
}

func TestRootReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "backend: sqlite\nseed: false\ncafe_name: Test Cafe\nlog_level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(cfg), 0o644))

	out, err := execute(t, dir, "Ada\nsearch\nmenu\nwater\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcoming Ada to Test Cafe Management System!")
	assert.Contains(t, out, "\"Water\" does not exist.")
}

func TestRootFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("cafe_name: File Cafe\n"), 0o644))

	out, err := execute(t, dir, "Ada\nq\n", "--cafe-name", "Flag Cafe")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcoming Ada to Flag Cafe Management System!")
}

func TestRootRejectsMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: [unclosed\n"), 0o644))

	_, err := execute(t, dir, "Ada\nq\n")
	assert.Error(t, err)
}

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	out, err := execute(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: memory")
	assert.Contains(t, string(data), "seed: true")

	out, err = execute(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already exists")

	// The written file is loadable.
	out, err = execute(t, dir, "Ada\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Lory's Cafe")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cafe v"+version)
	assert.Contains(t, out, modulePath)
}

func TestCodedError(t *testing.T) {
	err := sysError(types.ErrStoreDetached)
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	var ce *codedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, exitSysError, ce.code)
}
