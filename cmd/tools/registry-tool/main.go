// cmd/tools/registry-tool/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"soundproofing-calculator/internal/catalog"
	"soundproofing-calculator/pkg/registry"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validatePath := validateCmd.String("path", "configs/solution-registry.json", "Path to registry file")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listPath := listCmd.String("path", "configs/solution-registry.json", "Path to registry file")

	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	initPath := initCmd.String("path", "configs/solution-registry.json", "Path to write the starter registry")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.LoadRegistry(*validatePath)
		if err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry validation passed (%d solutions).\n", len(reg.Solutions))

	case "list":
		listCmd.Parse(os.Args[2:])
		reg, err := registry.LoadRegistry(*listPath)
		if err != nil {
			fmt.Printf("Error loading registry: %v\n", err)
			os.Exit(1)
		}
		for _, sol := range reg.Solutions {
			fmt.Printf("%-28s %-8s STC %.0f  %s\n", sol.CodeName, sol.SurfaceType, sol.STCRating, sol.DisplayName)
		}

	case "init":
		initCmd.Parse(os.Args[2:])
		if err := writeStarter(*initPath); err != nil {
			fmt.Printf("Error writing starter registry: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote starter registry with %d solutions to %s\n", len(catalog.SeedSolutions), *initPath)

	case "help":
		fallthrough
	default:
		help()
	}
}

// writeStarter dumps the embedded seed set as an editable registry file.
func writeStarter(path string) error {
	reg := registry.SolutionRegistry{
		Version:     "1.0.0",
		LastUpdated: time.Now().Format(time.RFC3339),
		Solutions:   catalog.SeedSolutions,
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	// Round trip through the validator so a broken starter never ships.
	_, err = registry.ParseRegistry(data)
	return err
}

func help() {
	fmt.Println(`Usage: registry-tool <command> [flags]

Commands:
  validate  Validate a solution registry file against the schema
  list      List the solutions in a registry file
  init      Write a starter registry from the embedded seed solutions`)
}
