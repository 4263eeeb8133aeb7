package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	content := "# comment\nFOO_KEY=bar\nQUOTED_KEY=\"quoted value\"\n\nBROKEN LINE\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte(content), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("FOO_KEY", "")
	os.Unsetenv("FOO_KEY")
	t.Setenv("QUOTED_KEY", "")
	os.Unsetenv("QUOTED_KEY")

	require.NoError(t, LoadEnv("test"))
	assert.Equal(t, "bar", os.Getenv("FOO_KEY"))
	assert.Equal(t, "quoted value", os.Getenv("QUOTED_KEY"))
}

func TestLoadEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.override"), []byte("SET_KEY=file\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("SET_KEY", "env")
	require.NoError(t, LoadEnv("override"))
	assert.Equal(t, "env", os.Getenv("SET_KEY"))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("UTIL_STR", "hello")
	t.Setenv("UTIL_INT", "42")
	t.Setenv("UTIL_BOOL", "true")

	assert.Equal(t, "hello", GetEnv("UTIL_STR"))
	assert.Equal(t, "hello", GetEnvDefault("UTIL_STR", "def"))
	assert.Equal(t, "def", GetEnvDefault("UTIL_UNSET", "def"))
	assert.EqualValues(t, 42, GetIntEnv("UTIL_INT"))
	assert.EqualValues(t, 0, GetIntEnv("UTIL_UNSET"))
	assert.True(t, GetBoolEnv("UTIL_BOOL"))
	assert.False(t, GetBoolEnv("UTIL_UNSET"))
}
