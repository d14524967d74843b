// Package batch cleans every LaTeX document under a directory tree.
// Documents share no state, so each one runs through the cleanup pipeline
// in its own goroutine, bounded by a semaphore.
package batch

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"latex-cleanup/internal/cleaner"
	"latex-cleanup/internal/config"
	"latex-cleanup/internal/logger"
	"latex-cleanup/internal/texio"
	"latex-cleanup/internal/types"
)

// DefaultExtension selects the files cleaned by default.
const DefaultExtension = ".tex"

// Processor runs the cleanup pipeline over a directory of documents.
type Processor struct {
	// Concurrency bounds the number of documents cleaned in parallel.
	Concurrency int
	// OutputSuffix replaces each input file's extension.
	OutputSuffix string
	// Extension selects input files; empty means DefaultExtension.
	Extension string
}

// FileResult records the outcome for a single document.
type FileResult struct {
	InputPath  string
	OutputPath string
	Stats      cleaner.Stats
	Err        error
}

// Result aggregates a whole batch run.
type Result struct {
	Files  []FileResult
	Stats  cleaner.Stats
	Failed int
}

// Run cleans every matching file under root and returns the aggregate
// result. Individual file failures are recorded, not fatal. Files that
// already carry the output suffix are skipped so a second run does not
// re-clean its own output.
func (p *Processor) Run(root string) (*Result, error) {
	ext := p.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	suffix := p.OutputSuffix
	if suffix == "" {
		suffix = config.DefaultOutputSuffix
	}
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var inputs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}
		if strings.HasSuffix(path, suffix) {
			return nil
		}
		inputs = append(inputs, path)
		return nil
	})
	if err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrInvalidInput, "failed to scan directory", root, err)
	}

	logger.Info("starting batch cleanup",
		logger.String("root", root),
		logger.Int("files", len(inputs)),
		logger.Int("concurrency", concurrency))

	result := &Result{Files: make([]FileResult, len(inputs))}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, input := range inputs {
		wg.Add(1)
		go func(idx int, input string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fr := p.cleanFile(input, suffix)

			mu.Lock()
			result.Files[idx] = fr
			if fr.Err != nil {
				result.Failed++
			} else {
				result.Stats.Add(fr.Stats)
			}
			mu.Unlock()
		}(i, input)
	}
	wg.Wait()

	logger.Info("batch cleanup finished",
		logger.Int("files", len(inputs)),
		logger.Int("failed", result.Failed),
		logger.Int("totalChanges", result.Stats.Total()))

	return result, nil
}

func (p *Processor) cleanFile(input, suffix string) FileResult {
	fr := FileResult{
		InputPath:  input,
		OutputPath: strings.TrimSuffix(input, filepath.Ext(input)) + suffix,
	}

	text, err := texio.ReadDocument(input)
	if err != nil {
		logger.Error("failed to read document", err, logger.String("path", input))
		fr.Err = err
		return fr
	}

	cleaned, stats := cleaner.Cleanup(text)
	fr.Stats = stats

	if err := texio.WriteDocument(fr.OutputPath, cleaned); err != nil {
		logger.Error("failed to write document", err, logger.String("path", fr.OutputPath))
		fr.Err = err
	}
	return fr
}
