package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/echopraxium/syslang/internal/library"
)

var principlesCmd = &cobra.Command{
	Use:   "principles [NAME]",
	Short: "List library principles, or show one definition",
	Long: `Without arguments, list the reference library's principles grouped
by category. With a name, show the full definition including its parameter
schema and hypothesis template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrinciples,
}

func init() {
	rootCmd.AddCommand(principlesCmd)
}

func runPrinciples(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	lib, err := loadLibrary(cfg)
	if err != nil {
		return fmt.Errorf("reference library: %w", err)
	}

	if len(args) == 1 {
		return showPrinciple(lib, args[0])
	}

	fmt.Println("Available Principles:")
	for _, cat := range lib.Categories() {
		fmt.Printf("\n%s: %s\n", cat.Name, cat.Description)
		for _, name := range lib.PrinciplesInCategory(cat.Name) {
			def, _ := lib.Principle(name)
			switch {
			case def.MetaPrinciple:
				fmt.Printf("  ~ %s\n", name)
			case def.Operator:
				fmt.Printf("  * %s\n", name)
			default:
				fmt.Printf("  - %s\n", name)
			}
		}
	}
	return nil
}

func showPrinciple(lib *library.Library, name string) error {
	def, ok := lib.Principle(name)
	if !ok {
		return fmt.Errorf("principle %q not found", name)
	}

	fmt.Printf("%s\n", def.Name)
	fmt.Printf("Description: %s\n", def.Description)
	fmt.Printf("Category: %s\n", def.Category)

	if len(def.Parameters) > 0 {
		fmt.Println("\nParameters:")
		names := make([]string, 0, len(def.Parameters))
		for p := range def.Parameters {
			names = append(names, p)
		}
		sort.Strings(names)
		for _, p := range names {
			spec := def.Parameters[p]
			fmt.Printf("  %s: %s\n", p, spec.Description)
			if len(spec.Values) > 0 {
				fmt.Printf("    values: %v\n", spec.Values)
			}
		}
	}

	if def.HypothesisTemplate != "" {
		fmt.Printf("\nHypothesis template: %s\n", def.HypothesisTemplate)
	}
	if def.DefaultThreshold != nil {
		fmt.Printf("Default threshold: %v\n", def.DefaultThreshold)
	}
	return nil
}
