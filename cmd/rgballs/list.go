package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgballs/internal/levels"
	"github.com/vovakirdan/rgballs/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels and level building blocks",
	Long: `Shows the levels of the configured level directory, followed by the
entity kinds, door conditions and event effects level files can name.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loader, err := openLevels(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-7s  %-6s  %s\n", "#", "File", "Size", "Steps", "Name")
	fmt.Printf("  %-4s  %-10s  %-7s  %-6s  %s\n", "-", "----", "----", "-----", "----")
	for i, file := range loader.Files() {
		lvl, err := loader.Load(i)
		if err != nil {
			fmt.Printf("  %-4d  %-10s  %s\n", i+1, file, err)
			continue
		}
		size := "-"
		if tiles := lvl.File.Tiles; len(tiles) > 0 {
			size = fmt.Sprintf("%dx%d", len(tiles[0]), len(tiles))
		}
		fmt.Printf("  %-4d  %-10s  %-7s  %-6d  %s\n", i+1, file, size, lvl.Budget(), lvl.Name())
	}

	printRegistry("Entity kinds", levels.Kinds.List())
	printRegistry("Door conditions", levels.Conditions.List())
	printRegistry("Event effects", levels.Effects.List())

	fmt.Println()
	fmt.Println("Run 'rgballs play <#>' to play a level.")
	return nil
}

func printRegistry(title string, infos []registry.Info) {
	fmt.Println()
	fmt.Printf("%s:\n", title)

	// Calculate column width
	maxLen := 4
	for _, info := range infos {
		maxLen = max(maxLen, len(info.Name))
	}
	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxLen, info.Name, info.Title)
	}
}
