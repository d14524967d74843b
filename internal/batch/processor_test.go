package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latex-cleanup/internal/cleaner"
)

const exampleDoc = "\\begin{quote}Hello ℝ\\end{quote}"

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRunAggregatesStats(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.tex":          exampleDoc,
		"sub/b.tex":      exampleDoc,
		"sub/c.tex":      exampleDoc,
		"notes.txt":      exampleDoc,
		"done.clean.tex": "already cleaned",
	})

	p := &Processor{Concurrency: 2}
	result, err := p.Run(root)
	require.NoError(t, err)

	assert.Len(t, result.Files, 3)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, cleaner.Stats{RemovedQuoteBlocks: 3, UnicodeReplacements: 3}, result.Stats)

	for _, fr := range result.Files {
		data, err := os.ReadFile(fr.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, "Hello \\mathbb{R}", string(data))
	}
}

func TestRunSequentialWhenConcurrencyUnset(t *testing.T) {
	root := writeTree(t, map[string]string{"a.tex": exampleDoc})

	p := &Processor{}
	result, err := p.Run(root)
	require.NoError(t, err)
	assert.Len(t, result.Files, 1)
	assert.Equal(t, 1, result.Stats.RemovedQuoteBlocks)
}

func TestRunRecordsFileFailures(t *testing.T) {
	root := writeTree(t, map[string]string{
		"good.tex": exampleDoc,
	})
	// Undecodable bytes: the file fails, the batch does not.
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.tex"), []byte{0xC0, 0x01, 0xFF}, 0644))

	p := &Processor{Concurrency: 2}
	result, err := p.Run(root)
	require.NoError(t, err)

	assert.Len(t, result.Files, 2)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Stats.RemovedQuoteBlocks)
}

func TestRunCustomExtension(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ltx": exampleDoc,
		"b.tex": exampleDoc,
	})

	p := &Processor{Extension: ".ltx"}
	result, err := p.Run(root)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(root, "a.ltx"), result.Files[0].InputPath)
}

func TestRunMissingRoot(t *testing.T) {
	p := &Processor{}
	_, err := p.Run(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
