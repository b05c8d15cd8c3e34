package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/echopraxium/syslang/internal/config"
	"github.com/echopraxium/syslang/internal/library"
)

var (
	// Global flags
	verbose    bool
	output     string
	libraryDir string
	cfgFile    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "syslang",
	Short: "DSL for transdisciplinary systemic analysis",
	Long: `syslang loads system model documents, validates them against a
reference library of principles, and synthesizes testable, falsifiable
hypotheses from the declared principles.

Core Commands:
  check        Validate a model file
  analyze      Generate hypotheses for a model
  principles   List or show library principles
  patterns     List or show distribution patterns
  new          Scaffold a new model document`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		syncConfigFlagToEnv()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Report format (text, json)")
	rootCmd.PersistentFlags().StringVar(&libraryDir, "library", "", "Directory of replacement reference catalogs")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.syslang/config.yaml)")
}

// loadConfig resolves configuration with flag overrides applied.
func loadConfig() *config.Config {
	overrides := &config.Config{
		Output:     output,
		LibraryDir: libraryDir,
		Verbose:    verbose,
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// loadLibrary constructs the reference library once per invocation. A corrupt
// library is fatal: every subcommand aborts on error here.
func loadLibrary(cfg *config.Config) (*library.Library, error) {
	if cfg.LibraryDir != "" {
		verbosePrintf("loading reference library from %s\n", cfg.LibraryDir)
		return library.Load(cfg.LibraryDir)
	}
	return library.LoadEmbedded()
}

// verbosePrintf prints only when verbose mode is enabled.
func verbosePrintf(format string, args ...any) {
	if verbose {
		fmt.Printf(format, args...)
	}
}

func syncConfigFlagToEnv() {
	path := strings.TrimSpace(cfgFile)
	if path == "" {
		return
	}
	_ = os.Setenv("SYSLANG_CONFIG", path)
}
