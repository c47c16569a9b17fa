package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/amizrahi/overlap/formats"
	"github.com/amizrahi/overlap/history"
	"github.com/amizrahi/overlap/ingest"
	"github.com/amizrahi/overlap/match"
)

var rootCmd = &cobra.Command{
	Use:   "overlap FILE_A FILE_B",
	Short: "Find the longest common substring of two text files",
	Long: "Overlap identifies the longest contiguous run of characters that appears,\n" +
		"unbroken, in both input files. File contents are normalized first: runs of\n" +
		"whitespace collapse to single spaces.",
	Args:         cobra.ExactArgs(2),
	RunE:         runFind,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bindFlags(cmd.Flags())
		return initLogging(viper.GetString("log-level"))
	},
}

// findCmd is the explicit spelling of the root command's default behavior;
// both run the same comparison.
var findCmd = &cobra.Command{
	Use:   "find FILE_A FILE_B",
	Short: "Find the longest common substring of two text files",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("history-file", "", "path to the run history file")
	addFindFlags(rootCmd.Flags())
	addFindFlags(findCmd.Flags())

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(historyCmd)
}

// addFindFlags defines the comparison flags. They are local to the command
// that runs a comparison, so they live on both the root command and the
// find subcommand.
func addFindFlags(fs *pflag.FlagSet) {
	fs.StringP("format", "f", "text", "output format (text, json, yaml)")
	fs.Int("max-display", 0, "truncate the printed match to this many characters (0 = full)")
	fs.Bool("no-history", false, "do not record this run in the history file")
}

// initConfig wires the optional config file and OVERLAP_* environment
// variables into viper. Flag values are bound per-command in
// PersistentPreRunE so later-registered flags are covered too.
func initConfig() {
	viper.SetConfigName("overlap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.overlap")
	viper.SetEnvPrefix("OVERLAP")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// bindFlags registers every flag of the set with viper, so precedence is
// flag > environment > config file > default.
func bindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

func runFind(cmd *cobra.Command, args []string) error {
	format, err := formats.Get(viper.GetString("format"))
	if err != nil {
		return err
	}

	docA, err := ingest.ReadFile(args[0])
	if err != nil {
		return err
	}
	docB, err := ingest.ReadFile(args[1])
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	slog.Debug("comparison started",
		"run_id", runID,
		"source_a", args[0],
		"source_b", args[1],
		"len_a", len(docA),
		"len_b", len(docB))

	start := time.Now()
	result, err := match.Find(docA, docB)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	slog.Debug("comparison finished",
		"run_id", runID,
		"length", result.Length,
		"elapsed", elapsed)

	report := formats.Report{
		RunID:   runID,
		SourceA: args[0],
		SourceB: args[1],
		Length:  result.Length,
		Text:    result.Text,
		Elapsed: elapsed,
	}
	out, err := format.Render(report.Truncate(viper.GetInt("max-display")))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	// Recording the run is best-effort: a broken history file must not
	// fail a comparison that already succeeded.
	if !viper.GetBool("no-history") {
		store := history.New(historyPath())
		err := store.Append(history.Run{
			ID:      runID,
			SourceA: args[0],
			SourceB: args[1],
			Length:  result.Length,
			Text:    result.Text,
			Elapsed: elapsed,
		})
		if err != nil {
			slog.Warn("failed to record run", "run_id", runID, "error", err)
		}
	}
	return nil
}

// historyPath resolves the history file location: flag/config value first,
// then an XDG-style per-user default.
func historyPath() string {
	if p := viper.GetString("history-file"); p != "" {
		return p
	}
	return filepath.Join(dataDir(), "history.json")
}

// dataDir returns the per-user directory for overlap's own files.
func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "overlap")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Last resort - use temp directory
		return filepath.Join(os.TempDir(), "overlap")
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir, "Library", "Application Support", "overlap")
	}

	return filepath.Join(homeDir, ".local", "share", "overlap")
}
