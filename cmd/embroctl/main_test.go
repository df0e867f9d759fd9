package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "database:\n  driver: sqlite\n  path: " + filepath.Join(dir, "embroidery.db") +
		"\nauth:\n  bcrypt_cost: 4\njwt:\n  secret: test\nsettings:\n  path: " + filepath.Join(dir, "theme.json") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_SchemaRegisterLogin(t *testing.T) {
	cfg := writeConfig(t)
	t.Setenv("CONFIG_PATH", cfg)

	out, err := run(t, "schema", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "schema ready (sqlite)")

	t.Setenv(passwordEnv, "pw1")
	out, err = run(t, "register", "alice", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "registered alice")

	t.Setenv(passwordEnv, "pw2")
	_, err = run(t, "register", "alice", "-c", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already exists")

	t.Setenv(passwordEnv, "pw1")
	out, err = run(t, "login", "alice", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "token:")
	assert.Contains(t, out, "theme:   dark")

	t.Setenv(passwordEnv, "anything")
	_, err = run(t, "login", "bob", "-c", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestCLI_Theme(t *testing.T) {
	cfg := writeConfig(t)
	t.Setenv("CONFIG_PATH", cfg)

	out, err := run(t, "theme", "get", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "dark", strings.TrimSpace(out))

	out, err = run(t, "theme", "toggle", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "light", strings.TrimSpace(out))

	_, err = run(t, "theme", "set", "sepia", "-c", cfg)
	assert.Error(t, err)
}

func TestCLI_PasswordFromStdin(t *testing.T) {
	cfg := writeConfig(t)
	t.Setenv("CONFIG_PATH", cfg)
	t.Setenv(passwordEnv, "")

	out, err := runWithInput(t, "s3cret\n", "register", "carol", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "registered carol")

	out, err = runWithInput(t, "s3cret\n", "login", "carol", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "token:")

	_, err = runWithInput(t, "wrong\n", "login", "carol", "-c", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestCLI_NoPasswordFlag(t *testing.T) {
	assert.Nil(t, registerCmd.Flags().Lookup("password"))
	assert.Nil(t, loginCmd.Flags().Lookup("password"))
}
