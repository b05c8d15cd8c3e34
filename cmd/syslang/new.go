package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echopraxium/syslang/internal/model"
	"github.com/echopraxium/syslang/internal/types"
)

var (
	newName   string
	newDomain string
	newScale  string
	newOut    string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new model document",
	Long: `Create a starter model document with one example principle and a
refutability section to fill in.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "System name (required)")
	newCmd.Flags().StringVar(&newDomain, "domain", model.DefaultDomain, "System domain")
	newCmd.Flags().StringVar(&newScale, "scale", model.DefaultScale, "System scale")
	newCmd.Flags().StringVar(&newOut, "out", "system.syslang.yml", "Output file")
	_ = newCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	m := &types.SystemModel{
		Name:        newName,
		Domain:      newDomain,
		Scale:       newScale,
		Description: "",
		Principles: []types.Principle{
			{
				Name: "Modularity",
				Parameters: map[string]any{
					"module_count": 3,
					"coupling":     "loose",
				},
				Confidence: model.DefaultConfidence,
			},
		},
		Tests: map[string]any{
			"refutable": "State the observation that would refute this model",
			"metrics":   []any{"modularity_index"},
		},
	}

	if err := model.SaveFile(newOut, m); err != nil {
		return err
	}
	fmt.Printf("created %s\n", newOut)
	return nil
}
