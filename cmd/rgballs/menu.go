package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/levels"
	"github.com/vovakirdan/rgballs/internal/platform/tui"
	"github.com/vovakirdan/rgballs/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level picker",
	Long: `Start rgballs in interactive menu mode. This is also what running
rgballs without a command does.

Winning a level unlocks the next one. After a level ends you can retry
it, go on to the next one or return to the menu.

Controls:
  Left/Right   - Previous/next level
  PgUp/PgDn    - Skip 5 levels
  Enter/Space  - Play
  Tab          - Results table
  Q            - Quit

Examples:
  rgballs menu
  rgballs menu --levels ./my-levels --db ./progress.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer := newLogger(cfg)
	defer closer.Close()

	loader, err := openLevels(cfg)
	if err != nil {
		return err
	}
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	rc := runtimeConfig(cfg)

	index := -1 // start on the highest unlocked level
	for {
		entries, unlocked := levelEntries(loader, store)
		if index < 0 {
			index = unlocked
		}

		menu, err := tui.RunMenu(entries, unlocked, index, rc)
		if err != nil {
			return err
		}
		rc = menu.Config

		if menu.Quit {
			return nil
		}
		if menu.WantsScoreboard {
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name
			}
			goBack, err := tui.RunScoreboard(store, names, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			index = menu.Level
			continue
		}

		index = menu.Level

	play:
		for {
			run, err := playLevel(loader, index, store, rc, logger)
			if errors.Is(err, levels.ErrLevelNotFound) {
				index = max(0, index-1)
				break
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				logger.Error("level failed", "level", index, "err", err)
				break
			}

			switch run.result.Outcome {
			case engine.OutcomeRetry:
				continue
			case engine.OutcomeAborted:
				break play
			}

			choice, err := tui.RunSummary(run.result, index, run.name, run.saved, rc.ScreenW)
			if err != nil {
				return err
			}
			switch choice {
			case tui.ChoiceRetry:
				continue
			case tui.ChoiceNext:
				index++
			default:
				break play
			}
		}
	}
}

// levelEntries lists every level with its stored rating. Without a
// database nothing can be unlocked permanently, so every level is open.
func levelEntries(loader *levels.Loader, store *storage.Store) ([]tui.LevelEntry, int) {
	best := make(map[int]storage.LevelResult)
	unlocked := loader.Count() - 1
	if store != nil {
		if results, err := store.Results(); err == nil {
			for _, r := range results {
				best[r.Level] = r
			}
		}
		if n, err := store.Unlocked(); err == nil {
			unlocked = n
		}
	}

	entries := make([]tui.LevelEntry, loader.Count())
	for i := range entries {
		entries[i] = tui.LevelEntry{Index: i, Name: fmt.Sprintf("Level %d", i+1)}
		if lvl, err := loader.Load(i); err == nil {
			entries[i].Name = lvl.Name()
		}
		if r, ok := best[i]; ok {
			entries[i].Stars = r.Stars
			entries[i].Won = true
		}
	}
	return entries, min(unlocked, loader.Count()-1)
}
