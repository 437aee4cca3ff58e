// platformer runs and inspects levels built with the level editor.
//
// Usage:
//
//	platformer play [--level N | --file path]   - Play a level in a window
//	platformer validate [--level N | --file path] - Print load diagnostics
//	platformer simulate [--level N | --file path] - Run a level headless
//	platformer progress                          - Show unlocked levels
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/sim"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagDBPath   string
	flagLevel    int
	flagFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Play and inspect platformer levels",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Level id from the manifest (0 = built-in default map)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "Path to a level JSON file exported by the editor")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(progressCmd)
}

// loadSelectedLevel resolves --file, then --level, then the default map.
func loadSelectedLevel(id int, file string) (*levels.Level, int, error) {
	if file != "" {
		lvl, err := levels.LoadFile(file)
		if err != nil {
			return nil, 0, err
		}
		return lvl, id, nil
	}
	if id <= 0 {
		return levels.DefaultLevel(), 0, nil
	}
	manifest, err := levels.LoadManifest()
	if err != nil {
		return nil, 0, err
	}
	lvl, err := manifest.Load(id)
	if err != nil {
		return nil, 0, err
	}
	return lvl, id, nil
}

func simOptions(levelIndex int) sim.Options {
	opts := sim.DefaultOptions()
	opts.LevelIndex = levelIndex
	return opts
}
