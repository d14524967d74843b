package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"latex-cleanup/internal/batch"
)

var (
	batchExtension   string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Clean every LaTeX file under a directory",
	Long: `Walks the directory tree and runs the cleanup pipeline over every
matching file, writing each result next to its input. Files that already
carry the output suffix are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchExtension, "ext", batch.DefaultExtension, "extension of the files to clean")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "files cleaned in parallel (default from config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	manager := configManager()

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = manager.GetConcurrency()
	}

	p := &batch.Processor{
		Concurrency:  concurrency,
		OutputSuffix: manager.GetOutputSuffix(),
		Extension:    batchExtension,
	}

	result, err := p.Run(args[0])
	if err != nil {
		return err
	}

	for _, fr := range result.Files {
		if fr.Err != nil {
			cmd.Printf("FAILED %s: %v\n", fr.InputPath, fr.Err)
			continue
		}
		cmd.Printf("Cleaned %s -> %s (%d changes)\n", fr.InputPath, fr.OutputPath, fr.Stats.Total())
	}

	cmd.Printf("Processed %d file(s)\n", len(result.Files))
	printSummary(cmd, result.Stats)

	if result.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", result.Failed)
	}
	return nil
}
