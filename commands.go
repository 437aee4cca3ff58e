package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/progress"
	"github.com/milk9111/platformer/sim"
	"github.com/spf13/cobra"
)

var (
	flagDebug bool
	flagWatch bool
	flagTicks int
	flagMoveX float64
	flagJump  bool
	flagReset bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level in a window",
	Long: `Open a window and play a level.

Controls:
  A/D, Left/Right - Move
  W/S, Up/Down    - Climb ladders
  Space           - Jump
  P/Esc           - Pause
  R               - Restart the level
  N               - Next level (after completing one)
  F3              - Toggle debug overlay

Examples:
  platformer play
  platformer play --level 2
  platformer play --file ./my-level.json --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a level and print its diagnostics",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a level headless with fixed input and print its signals",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show unlocked levels",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload when level or prefab files change")

	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of fixed steps to run")
	simulateCmd.Flags().Float64Var(&flagMoveX, "move", 0, "Horizontal input held for the whole run (-1..1)")
	simulateCmd.Flags().BoolVar(&flagJump, "jump", false, "Hold jump for the whole run")

	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget all progress")
}

func runPlay(cmd *cobra.Command, args []string) error {
	store, err := progress.Open(flagDBPath)
	if err != nil {
		log.Warn("play: progress disabled", "err", err)
	}
	if store != nil {
		defer store.Close()
		if flagLevel > 0 && flagFile == "" {
			ok, err := store.IsUnlocked(flagLevel)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("level %d is locked", flagLevel)
			}
		}
	}

	var watcher *prefabs.Watcher
	if flagWatch {
		dirs := []string{"prefabs", "levels"}
		if flagFile != "" {
			dirs = append(dirs, filepath.Dir(flagFile))
		}
		watcher, err = prefabs.NewWatcher(existingDirs(dirs)...)
		if err != nil {
			return fmt.Errorf("play: watch: %w", err)
		}
		defer watcher.Close()
	}

	game, err := NewGame(flagLevel, flagFile, flagDebug, store, watcher)
	if err != nil {
		return err
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")
	return ebiten.RunGame(game)
}

func runValidate(cmd *cobra.Command, args []string) error {
	lvl, index, err := loadSelectedLevel(flagLevel, flagFile)
	if err != nil {
		return err
	}
	opts := entity.DefaultLoadOptions()
	opts.LevelIndex = index

	report, err := entity.LoadLevelToWorld(ecs.NewWorld(), lvl, opts)
	if err != nil {
		return err
	}
	fmt.Printf("objects: %d  entities: %d  world: %.0fx%.0f\n", len(lvl.Objects), len(report.Entities), lvl.WorldWidth, lvl.WorldHeight)
	if len(report.Diagnostics) == 0 {
		fmt.Println("no problems found")
		return nil
	}
	for _, d := range report.Diagnostics {
		fmt.Println("  " + d.String())
	}
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	lvl, index, err := loadSelectedLevel(flagLevel, flagFile)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printf := func(tick *uint64, format string, a ...any) {
		fmt.Fprintf(out, "[%5d] %s\n", *tick, fmt.Sprintf(format, a...))
	}

	var tick uint64
	s, err := sim.New(lvl, simOptions(index), sim.Hooks{
		LevelComplete: func(i int) { printf(&tick, "level %d complete", i) },
		GameOver:      func() { printf(&tick, "game over") },
		LivesChanged:  func(r, m int) { printf(&tick, "lives %d/%d", r, m) },
		CheckpointActivated: func(x, y float64) {
			printf(&tick, "checkpoint at (%.0f, %.0f)", x, y)
		},
		Death:      func(cause string) { printf(&tick, "death: %s", cause) },
		Diagnostic: func(d levels.Diagnostic) { printf(&tick, "diagnostic: %s", d) },
	})
	if err != nil {
		return err
	}

	s.SetInput(component.Input{MoveX: flagMoveX, Jump: flagJump})
	for i := 0; i < flagTicks; i++ {
		tick = uint64(i + 1)
		if !s.Step(0) {
			break
		}
	}

	snap := s.Snapshot()
	fmt.Fprintf(out, "ticks: %d  player: (%.1f, %.1f)  support: %s  lives: %d/%d  deaths: %d\n",
		snap.Tick, snap.PlayerX, snap.PlayerY, snap.Support.Kind, snap.Lives, snap.MaxLives, snap.Deaths)
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	store, err := progress.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Println("progress reset")
	}

	ids, err := store.Unlocked()
	if err != nil {
		return err
	}
	manifest, err := levels.LoadManifest()
	if err != nil {
		return err
	}

	unlocked := make(map[int]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "ID", "Name", "Status", "Best")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "--", "----", "------", "----")
	for _, entry := range manifest.Levels {
		status := "locked"
		if unlocked[entry.ID] {
			status = "open"
		}
		best := "-"
		if runs, err := store.Completions(entry.ID); err == nil && len(runs) > 0 {
			best = fmt.Sprintf("%d deaths", runs[0].Deaths)
		}
		fmt.Printf("  %-4d  %-20s  %-8s  %s\n", entry.ID, entry.Name, status, best)
	}
	return nil
}

func existingDirs(dirs []string) []string {
	out := dirs[:0]
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
