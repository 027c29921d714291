package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlasser/regia/pkg/regia"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "regia",
	Short: "A personal record keeper for tasks and notes",
	Long: `Regia tracks your tasks and notes in a single database file.
Tasks carry a priority, an optional due date or repetition, and may depend
on other tasks; notes are plain annotated text.`,
	// Execute prints the error itself; without this cobra would print it too.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/regia/default.yml)")
}

// loadConfig resolves the active configuration. An explicit --config must
// exist; the default location may be absent.
func loadConfig() regia.Config {
	if configPath != "" {
		cfg, err := regia.LoadConfig(regia.ExpandTilde(configPath))
		if err != nil {
			fatal("Failed to load config", err)
		}
		return cfg
	}

	cfg, err := regia.LoadConfig(regia.DefaultConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return regia.Config{}
		}
		fatal("Failed to load config", err)
	}
	return cfg
}

// openService loads the database named by the configuration, starting from
// an empty one when the file does not exist yet.
func openService(cfg regia.Config) *regia.Service {
	svc, err := regia.Open(cfg.DatabasePath(), regia.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to open database", err)
	}
	return svc
}
