package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/echopraxium/syslang/internal/formatter"
	"github.com/echopraxium/syslang/internal/library"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [NAME]",
	Short: "List distribution patterns, or show one definition",
	Long: `Without arguments, list the library's distribution patterns. With a
name, show the pattern's parent principle and specific parameters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	lib, err := loadLibrary(cfg)
	if err != nil {
		return fmt.Errorf("reference library: %w", err)
	}

	if len(args) == 1 {
		return showPattern(lib, args[0])
	}

	table := formatter.NewTable(os.Stdout, "PATTERN", "PARENT", "DESCRIPTION")
	for _, name := range lib.PatternNames() {
		def, _ := lib.Pattern(name)
		table.AddRow(name, def.ParentPrinciple, def.Description)
	}
	return table.Render()
}

func showPattern(lib *library.Library, name string) error {
	def, ok := lib.Pattern(name)
	if !ok {
		return fmt.Errorf("pattern %q not found", name)
	}

	fmt.Printf("Distribution Pattern: %s\n", def.Name)
	fmt.Printf("Description: %s\n", def.Description)
	fmt.Printf("Parent principle: %s\n", def.ParentPrinciple)

	if len(def.SpecificParameters) > 0 {
		fmt.Println("\nSpecific Parameters:")
		names := make([]string, 0, len(def.SpecificParameters))
		for p := range def.SpecificParameters {
			names = append(names, p)
		}
		sort.Strings(names)
		for _, p := range names {
			fmt.Printf("  %s: %s\n", p, def.SpecificParameters[p].Description)
		}
	}
	return nil
}
