package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/spec-kit/hr-service/internal/service"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "hr.db"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	exportXLSX = false
	cfgFile = ""
	err := rootCmd.Execute()
	return out.String(), err
}

func TestImportExportSummary(t *testing.T) {
	dir := setupEnv(t)

	src := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(src, []byte("שם מלא,שימור\nDana,אדום\nAvi,ירוק\n,none\n"), 0o600))

	out, err := run(t, "import", src)
	require.NoError(t, err)
	var summary service.ImportSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	assert.Equal(t, service.ImportSummary{Added: 2, Unnamed: 1, Total: 2}, summary)

	out, err = run(t, "import", src)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.Duplicates)
	assert.Equal(t, 0, summary.Added)

	dst := filepath.Join(dir, "out.csv")
	_, err = run(t, "export", dst)
	require.NoError(t, err)
	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "\n"))

	_, err = run(t, "export", "--xlsx", filepath.Join(dir, "out.xlsx"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "out.xlsx"))

	out, err = run(t, "summary")
	require.NoError(t, err)
	var dash struct {
		Summary struct {
			Total             int `yaml:"total"`
			CriticalRetention int `yaml:"criticalRetention"`
		} `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &dash))
	assert.Equal(t, 2, dash.Summary.Total)
	assert.Equal(t, 1, dash.Summary.CriticalRetention)
}

func TestImportRejectsEmptyFile(t *testing.T) {
	dir := setupEnv(t)
	src := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	_, err := run(t, "import", src)
	assert.Error(t, err)
}

func TestSettingsShowRedactsPasswords(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "settings", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "maya2024")
	assert.NotContains(t, out, "passwords")
	assert.Contains(t, out, "statusOptions")
}

func TestConfigFileProvidesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("LOG_LEVEL", "error")

	dbPath := filepath.Join(dir, "from-file.db")
	cfg := filepath.Join(dir, "hrctl.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("storage_backend = \"sqlite\"\nsqlite_path = \""+filepath.ToSlash(dbPath)+"\"\n"), 0o600))

	src := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(src, []byte("שם מלא\nDana\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", cfg, "import", src})
	require.NoError(t, rootCmd.Execute())
	cfgFile = ""

	assert.FileExists(t, dbPath)
}
