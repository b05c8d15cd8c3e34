package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/echopraxium/syslang/internal/hypothesis"
	"github.com/echopraxium/syslang/internal/model"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a syslang model file",
	Long: `Load and normalize a model document, cross-reference its declared
principles against the reference library, and flag declared pairs the
compatibility catalog marks incompatible or conditional.

Unknown principles and compatibility findings are warnings, not errors:
only a document that fails to load exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg := loadConfig()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return fmt.Errorf("reference library: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if cfg.ValidateModels {
		if err := model.ValidateDocument(data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
		}
	}

	m, err := model.Load(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	warnings := 0
	for _, p := range m.Principles {
		if _, ok := lib.Principle(p.Name); !ok {
			fmt.Fprintf(os.Stderr, "warning: principle %q not in reference library\n", p.Name)
			warnings++
		}
	}

	for _, c := range hypothesis.Conflicts(m, lib) {
		if c.Condition != "" {
			fmt.Fprintf(os.Stderr, "warning: %s and %s are %s: compatible only when %s\n",
				c.A, c.B, c.Relation, c.Condition)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %s and %s are %s\n", c.A, c.B, c.Relation)
		}
		warnings++
	}

	fmt.Printf("%s: ok (%d principles", path, len(m.Principles))
	if warnings > 0 {
		fmt.Printf(", %d warnings", warnings)
	}
	fmt.Println(")")
	return nil
}
