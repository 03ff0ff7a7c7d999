// rgballs is a terminal tile puzzle: push colored balls onto their pads
// while dodging cannons, devils and ghosts.
//
// Usage:
//
//	rgballs                     - Level menu (same as rgballs menu)
//	rgballs play <level>        - Play one level directly
//	rgballs list                - List levels and the building blocks levels can use
//	rgballs scores [level]      - Show stored results and the attempt log
//	rgballs validate [dir]      - Load and build every level, reporting errors
//	rgballs preview <level>     - Draw a level to a PNG image
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.rgballs/config.yaml, ./configs/rgballs.yaml)
//	--fps <rate>        - Tick rate
//	--db <path>         - Progress database
//	--levels <dir>      - Level directory (default: built-in levels)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rgballs/internal/config"
	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/levels"
	"github.com/vovakirdan/rgballs/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rgballs",
	Short: "RGBalls - push colored balls onto their pads",
	Long: `RGBalls is a tile puzzle for the terminal. Push every red, green and
blue ball onto a pad of its color to finish a level. Collect the diamonds
and stay within the step budget to earn all three stars.

Available commands:
  menu      - Level picker (default)
  play      - Play a level directly
  list      - Show levels and level building blocks
  scores    - View stored results
  validate  - Check a level directory
  preview   - Render a level to PNG

Examples:
  rgballs
  rgballs play 3
  rgballs --levels ./my-levels validate
  rgballs preview 1 -o level1.png`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with NNNN.yaml level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if flags.Changed("levels") {
		cfg.Game.LevelsDir = flagLevelsDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger opens the log file named in the config. Bubble Tea owns the
// terminal while a level runs, so nothing is logged to stderr.
func newLogger(cfg config.Config) (*log.Logger, io.Closer) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if cfg.Log.File != "" {
		path := config.ExpandHome(cfg.Log.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rgballs",
		Level:           cfg.LogLevel(),
	})
	return logger, closer
}

// openLevels returns the loader for the configured level directory.
func openLevels(cfg config.Config) (*levels.Loader, error) {
	loader, err := levels.Open(config.ExpandHome(cfg.Game.LevelsDir))
	if err != nil {
		return nil, err
	}
	if loader.Count() == 0 {
		return nil, fmt.Errorf("no levels found in %q", cfg.Game.LevelsDir)
	}
	return loader, nil
}

// openStore opens the progress database. The game still runs without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(config.ExpandHome(cfg.Storage.DB))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		logger.Warn("progress database unavailable", "db", cfg.Storage.DB, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the front end settings for the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Game.TickRate
	rc.HoldFrames = cfg.Input.HoldFrames
	rc.HUD = cfg.Display.HUD
	rc.ViewW = cfg.Display.ViewportW
	rc.ViewH = cfg.Display.ViewportH
	return rc
}

// levelArg parses a 1-based level number from the command line.
func levelArg(arg string, loader *levels.Loader) (int, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid level number %q", arg)
	}
	if n < 1 || n > loader.Count() {
		return 0, fmt.Errorf("%w: level %d (have %d)", levels.ErrLevelNotFound, n, loader.Count())
	}
	return n - 1, nil
}
