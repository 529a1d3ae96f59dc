package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/site-server/internal/option"
)

func writeEnvFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewSnapshotCopiesInput(t *testing.T) {
	values := map[string]string{"PORT": "1"}
	snap := NewSnapshot(values)
	values["PORT"] = "2"

	assert.Equal(t, "1", snap.Lookup("PORT").Value(""))
	assert.Equal(t, 1, snap.Len())
}

func TestFromEnviron(t *testing.T) {
	snap := FromEnviron([]string{"A=1", "B=", "C=x=y", "=hidden", "NOEQUALS"})

	assert.Equal(t, "1", snap.Lookup("A").Value(""))
	assert.True(t, snap.Has("B"))
	assert.Equal(t, "x=y", snap.Lookup("C").Value(""))
	assert.False(t, snap.Has("NOEQUALS"))
	assert.Equal(t, 3, snap.Len())
}

func TestNilSnapshotLookup(t *testing.T) {
	var snap *Snapshot
	assert.True(t, snap.Lookup("PORT").IsNone())
	assert.Equal(t, 0, snap.Len())
}

func TestLoadSnapshotReadsFilesAndPrefersProcessEnv(t *testing.T) {
	dir := t.TempDir()
	first := writeEnvFile(t, dir, ".env.local", "SITE_TEST_A=local\n")
	second := writeEnvFile(t, dir, ".env", "SITE_TEST_A=base\nSITE_TEST_B=base\nSITE_TEST_C=file\nSITE_TEST_EMPTY=\n")
	t.Setenv("SITE_TEST_C", "process")

	snap, err := LoadSnapshot(first, filepath.Join(dir, "missing.env"), second)
	require.NoError(t, err)

	assert.Equal(t, "local", snap.Lookup("SITE_TEST_A").Value(""))
	assert.Equal(t, "base", snap.Lookup("SITE_TEST_B").Value(""))
	assert.Equal(t, "process", snap.Lookup("SITE_TEST_C").Value(""))
	assert.True(t, snap.Has("SITE_TEST_EMPTY"))

	_, inProcess := os.LookupEnv("SITE_TEST_B")
	assert.False(t, inProcess, "loading must not mutate the process environment")
}

func TestLoadSnapshotWithoutFiles(t *testing.T) {
	t.Setenv("SITE_TEST_ONLY_PROCESS", "yes")

	snap, err := LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, "yes", snap.Lookup("SITE_TEST_ONLY_PROCESS").Value(""))
}

func TestLoadSnapshotDirectoryIsError(t *testing.T) {
	_, err := LoadSnapshot(t.TempDir())
	assert.Error(t, err)
}

func TestLoadSnapshotKeepsPositionalPlaceholders(t *testing.T) {
	dir := t.TempDir()
	file := writeEnvFile(t, dir, ".env", "SITE_TEST_BASE=base\n"+
		"MOCK_GREETING=Hello $0, welcome to $1 $$\n"+
		"SITE_TEST_QUOTED=\"$12 and $$0\"\n"+
		"SITE_TEST_SINGLE='$0'\n"+
		"SITE_TEST_EXPANDED=$SITE_TEST_BASE/$0\n")
	t.Setenv("MOCK_GREETING", "")
	require.NoError(t, os.Unsetenv("MOCK_GREETING"))

	snap, err := LoadSnapshot(file)
	require.NoError(t, err)

	assert.Equal(t, "Hello $0, welcome to $1 $$", snap.Lookup("MOCK_GREETING").Value(""))
	assert.Equal(t, "$12 and $$0", snap.Lookup("SITE_TEST_QUOTED").Value(""))
	assert.Equal(t, "$0", snap.Lookup("SITE_TEST_SINGLE").Value(""))
	assert.Equal(t, "base/$0", snap.Lookup("SITE_TEST_EXPANDED").Value(""))
	assert.False(t, snap.Has("0"))
	assert.False(t, snap.Has("12"))

	greeting, err := NewBuildConfig(snap).GetValue(KeyMockGreeting, option.None[string](), "Ann", "site")
	require.NoError(t, err)
	assert.Equal(t, "Hello Ann, welcome to site $", greeting)
}

func TestParseEnvFileWithoutPlaceholders(t *testing.T) {
	values, err := parseEnvFile([]byte("A=1\nB=$A-2\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "1-2"}, values)
}

func TestParseEnvFileMalformed(t *testing.T) {
	_, err := parseEnvFile([]byte("BAD KEY!=1\n"))
	assert.Error(t, err)
}
