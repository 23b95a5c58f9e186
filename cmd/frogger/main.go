// frogger is a road crossing arcade game for the terminal.
//
// Usage:
//
//	frogger                  - Play
//	frogger play             - Play (same as above)
//	frogger sprites          - List sprites and their visible bounds
//	frogger config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--sprites <dir>      - Directory with sprite overrides
//	--log-file <path>    - Write logs to a file
//	--debug              - Debug logging and collision boxes
//
// FROGGER_CONFIG, FROGGER_SPRITES and FROGGER_LOG provide defaults for
// --config, --sprites and --log-file; they may be set in a .env file.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	loadDotEnv(os.Stderr, ".env")
	applyEnvDefaults()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road in your terminal",
	Long: `Frogger is a terminal arcade game: guide the hero across rows of
bugs to the far side. Each crossing scores a bonus; each hit costs a life.

Available commands:
  play     - Play the game (default)
  sprites  - List sprites and their visible bounds
  config   - Print the effective configuration

Examples:
  frogger
  frogger --difficulty hard
  frogger --seed 42 --fps 30
  frogger sprites --sprites ./my-sprites`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Directory with sprite overrides (YAML, PNG or BMP)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision boxes")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadDotEnv loads environment defaults from the given files. A missing file
// is fine; any other problem is reported to w before the game takes over the
// terminal.
func loadDotEnv(w io.Writer, filenames ...string) {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "Warning: could not load .env: %v\n", err)
	}
}

// applyEnvDefaults seeds flag defaults from the environment. Flags given on
// the command line still win.
func applyEnvDefaults() {
	for name, env := range map[string]string{
		"config":   "FROGGER_CONFIG",
		"sprites":  "FROGGER_SPRITES",
		"log-file": "FROGGER_LOG",
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			f := rootCmd.PersistentFlags().Lookup(name)
			//nolint:errcheck // string flags accept any value
			f.Value.Set(v)
			f.DefValue = v
		}
	}
}

// newLogger returns a logger writing to --log-file, or a discarding logger.
// The terminal belongs to the game while it runs, so logs never go to stderr.
// The returned close function must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
