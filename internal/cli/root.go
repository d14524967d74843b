// Package cli wires the cleanup pipeline to the command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"latex-cleanup/internal/cleaner"
	"latex-cleanup/internal/config"
	"latex-cleanup/internal/logger"
	"latex-cleanup/internal/texio"
)

// version is set at build time via -ldflags.
var version = "1.0.0"

var (
	configPath string
	outputPath string
	doBackup   bool

	cfgManager *config.Manager
)

var rootCmd = &cobra.Command{
	Use:   "latex-cleanup <input>",
	Short: "Clean up LaTeX exported from word processors",
	Long: `Normalizes LaTeX documents produced by DOCX-to-LaTeX converters:
removes quote-block wrappers, replaces Unicode math symbols with their
LaTeX macros, strips minipage wrappers out of longtables, and normalizes
bibliography items.`,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runClean,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default ~/.config/latex-cleanup/config.toml)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: input with "+config.DefaultOutputSuffix+")")
	rootCmd.Flags().BoolVar(&doBackup, "backup", false, "back up an existing output file before overwriting it")
}

// setup loads the configuration and initializes logging before any
// command runs.
func setup(cmd *cobra.Command, _ []string) error {
	manager, err := config.NewManager(configPath)
	if err != nil {
		return err
	}
	if err := manager.Load(); err != nil {
		return err
	}
	cfgManager = manager

	cfg := manager.GetConfig()
	if cfg.LogFile != "" {
		logConfig := logger.DefaultConfig()
		logConfig.LogFilePath = cfg.LogFile
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		if err := logger.Init(logConfig); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize log file: %v\n", err)
		}
	}
	return nil
}

// configManager returns the loaded configuration manager, falling back
// to defaults when setup has not run.
func configManager() *config.Manager {
	if cfgManager == nil {
		manager, err := config.NewManager(configPath)
		if err == nil {
			cfgManager = manager
		}
	}
	return cfgManager
}

func runClean(cmd *cobra.Command, args []string) error {
	input := args[0]

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("Input file not found: %s", input)
	}

	text, err := texio.ReadDocument(input)
	if err != nil {
		return err
	}

	cleaned, stats := cleaner.Cleanup(text)

	output := outputPath
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + configManager().GetOutputSuffix()
	}

	backup := doBackup || configManager().GetConfig().Backup
	if backup {
		if _, err := os.Stat(output); err == nil {
			backupPath, err := texio.CreateBackup(output)
			if err != nil {
				return err
			}
			cmd.Printf("Backed up existing output to: %s\n", backupPath)
		}
	}

	if err := texio.WriteDocument(output, cleaned); err != nil {
		return err
	}

	printSummary(cmd, stats)
	cmd.Printf("Saved cleaned file to: %s\n", output)
	return nil
}

func printSummary(cmd *cobra.Command, stats cleaner.Stats) {
	cmd.Println("Cleanup summary:")
	cmd.Printf("- Removed quote blocks: %d\n", stats.RemovedQuoteBlocks)
	cmd.Printf("- Unicode replacements: %d\n", stats.UnicodeReplacements)
	cmd.Printf("- Simplified longtables: %d\n", stats.SimplifiedLongtables)
	cmd.Printf("- Normalized bibliography items: %d\n", stats.NormalizedBibliographyItems)
}

// Execute runs the root command.
func Execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}
