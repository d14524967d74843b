package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args plus a config path inside a
// temp dir, so tests never touch the user's real configuration.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalOutput := outputPath
	originalBackup := doBackup
	originalConfig := configPath
	originalManager := cfgManager
	t.Cleanup(func() {
		outputPath = originalOutput
		doBackup = originalBackup
		configPath = originalConfig
		cfgManager = originalManager
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.toml")))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "latex-cleanup <input>", rootCmd.Use)
}

func TestRootCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRootCmd_MissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.tex")

	out, err := execute(t, missing)

	require.Error(t, err)
	assert.Equal(t, "Input file not found: "+missing, err.Error())
	assert.NotContains(t, out, "Cleanup summary")
}

func TestRootCmd_CleansDocument(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "paper.tex")
	require.NoError(t, os.WriteFile(input, []byte("\\begin{quote}Hello ℝ\\end{quote}"), 0644))

	out, err := execute(t, input)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "paper.clean.tex"))
	require.NoError(t, err)
	assert.Equal(t, "Hello \\mathbb{R}", string(data))

	assert.Contains(t, out, "Cleanup summary:")
	assert.Contains(t, out, "- Removed quote blocks: 1")
	assert.Contains(t, out, "- Unicode replacements: 1")
	assert.Contains(t, out, "- Simplified longtables: 0")
	assert.Contains(t, out, "- Normalized bibliography items: 0")
	assert.Contains(t, out, "Saved cleaned file to: "+filepath.Join(dir, "paper.clean.tex"))
}

func TestRootCmd_OutputFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "paper.tex")
	target := filepath.Join(dir, "custom.tex")
	require.NoError(t, os.WriteFile(input, []byte("plain text"), 0644))

	out, err := execute(t, input, "-o", target)
	require.NoError(t, err)

	_, statErr := os.Stat(target)
	assert.NoError(t, statErr)
	assert.Contains(t, out, "Saved cleaned file to: "+target)
}

func TestRootCmd_BackupFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "paper.tex")
	output := filepath.Join(dir, "paper.clean.tex")
	require.NoError(t, os.WriteFile(input, []byte("new content"), 0644))
	require.NoError(t, os.WriteFile(output, []byte("old content"), 0644))

	out, err := execute(t, input, "--backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Backed up existing output to: ")

	matches, err := filepath.Glob(output + ".backup_*")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	backed, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, "old content", string(backed))
}

func TestRootCmd_NoBackupByDefault(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "paper.tex")
	output := filepath.Join(dir, "paper.clean.tex")
	require.NoError(t, os.WriteFile(input, []byte("new content"), 0644))
	require.NoError(t, os.WriteFile(output, []byte("old content"), 0644))

	_, err := execute(t, input)
	require.NoError(t, err)

	matches, err := filepath.Glob(output + ".backup_*")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
