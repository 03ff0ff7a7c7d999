package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/levels"
	"github.com/vovakirdan/rgballs/internal/platform/tui"
	"github.com/vovakirdan/rgballs/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Play the level with the given number, ignoring which levels are
unlocked. Results are recorded as in the menu.

Controls:
  WASD/Arrows  - Move, push balls and boxes
  Space        - Use the selected item
  Z/X          - Select previous/next item
  H            - Cycle HUD: off, counters, inventory
  Enter        - Dismiss a message
  R            - Restart the level
  Q/Esc        - Leave the level
  Ctrl+S       - Save a text screenshot (Ctrl+P for PNG)

Examples:
  rgballs play 1
  rgballs play 4 --fps 30`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
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
	index, err := levelArg(args[0], loader)
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	rc := runtimeConfig(cfg)

	for {
		run, err := playLevel(loader, index, store, rc, logger)
		if err != nil {
			return err
		}
		if run.result.Outcome == engine.OutcomeRetry {
			continue
		}
		if run.result.Outcome == engine.OutcomeAborted {
			return nil
		}

		choice, err := tui.RunSummary(run.result, index, run.name, run.saved, rc.ScreenW)
		if err != nil {
			return err
		}
		switch choice {
		case tui.ChoiceRetry:
			continue
		case tui.ChoiceNext:
			if index+1 >= loader.Count() {
				fmt.Println("That was the last level.")
				return nil
			}
			index++
		default:
			return nil
		}
	}
}

// levelRun is one finished attempt as seen by the driver loop.
type levelRun struct {
	name   string
	result engine.Result
	saved  bool // a new best result was stored
}

// playLevel builds a fresh world for the level, runs it and records the
// outcome. A missing level yields levels.ErrLevelNotFound.
func playLevel(loader *levels.Loader, index int, store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) (levelRun, error) {
	lvl, err := loader.Load(index)
	if err != nil {
		return levelRun{result: engine.Result{Outcome: engine.OutcomeLevelNotFound}}, err
	}
	w, err := lvl.Build(engine.WithLogger(logger))
	if err != nil {
		return levelRun{name: lvl.Name()}, err
	}

	session := engine.NewSession(w, lvl.Budget())
	logger.Info("level started", "level", index, "name", lvl.Name(), "run", session.RunID)

	result, err := tui.RunPlay(session, index, lvl.Name(), rc, logger)
	if err != nil {
		return levelRun{name: lvl.Name()}, err
	}
	run := levelRun{name: lvl.Name(), result: result}

	if store == nil {
		return run, nil
	}
	if _, err := store.RecordAttempt(storage.Attempt{
		RunID:   session.RunID,
		Level:   index,
		Outcome: result.Outcome,
		Stars:   result.Stars,
		Steps:   result.Steps,
	}); err != nil {
		logger.Error("cannot record attempt", "level", index, "err", err)
	}
	if result.Outcome == engine.OutcomeWin {
		saved, err := store.RecordWin(index, result.Stars, result.Steps)
		if err != nil {
			logger.Error("cannot record win", "level", index, "err", err)
		}
		run.saved = saved
	}
	return run, nil
}
