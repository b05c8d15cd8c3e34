package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/echopraxium/syslang/internal/formatter"
	"github.com/echopraxium/syslang/internal/hypothesis"
	"github.com/echopraxium/syslang/internal/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Generate testable hypotheses for a model",
	Long: `Run the full pipeline: load the model, synthesize one falsifiable
hypothesis per declared principle from the reference library templates, and
render the report.

The narrative (text) form is meant for humans; the structured (json) form
carries the same content for machine consumption.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg := loadConfig()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return fmt.Errorf("reference library: %w", err)
	}

	m, err := model.LoadFile(path)
	if err != nil {
		return err
	}

	verbosePrintf("synthesizing hypotheses for %d principles\n", len(m.Principles))
	hypotheses := hypothesis.Synthesize(m, lib)
	report := formatter.New(m, hypotheses)

	return report.Render(os.Stdout, formatter.Format(cfg.Output))
}
