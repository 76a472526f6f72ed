package main

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"showrank/internal/logging"
	"showrank/internal/pipeline"
	"showrank/pkg/config"
	"showrank/pkg/database"
)

var (
	cfgFile  string
	dbPath   string
	logLevel string
	cfg      *config.Config
	logger   hclog.Logger
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "showctl",
		Short: "showctl maintains the showrank database",
		Long: `showctl seeds and maintains the showrank SQLite database.

Typical order:
  - seed: replace shows from the CSV and spots from the seed list
  - ranks: stamp canonical absolute ranks from the rankings file
  - covers: fetch cover art, TVMaze ids and ratings
  - episodes: fetch episode lists for matched shows

Configuration precedence (highest to lowest):
  1. CLI flags (--db, --log-level)
  2. Environment variables (SHOWRANK_*)
  3. Config file (showrank.yaml)
  4. Built-in defaults`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return &configError{err: fmt.Errorf("failed to load configuration: %w", err)}
			}
			if dbPath != "" {
				loaded.Database.Path = dbPath
			}
			if logLevel != "" {
				loaded.Log.Level = logLevel
			}
			cfg = loaded
			logger = logging.New("showctl", cfg.Log)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./showrank.yaml or ~/.config/showrank/showrank.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace/debug/info/warn/error)")

	rootCmd.AddCommand(
		getSeedCmd(),
		getRanksCmd(),
		getCoversCmd(),
		getEpisodesCmd(),
		getExportCmd(),
		getListCmd(),
		getWatchCmd(),
	)
	return rootCmd
}

// openRunner opens and migrates the database. Stages that write take the
// per-database lock first, so two maintenance runs never interleave. The
// returned func releases everything.
func openRunner(write bool) (*pipeline.Runner, func(), error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	unlock := func() {}
	if write {
		unlock, err = database.LockWriter(cfg.Database)
		if errors.Is(err, database.ErrLocked) {
			_ = db.Close()
			return nil, nil, fmt.Errorf("another showctl run holds %s", cfg.Database.LockPath())
		}
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	done := func() {
		unlock()
		_ = db.Close()
	}

	if err := database.Migrate(db); err != nil {
		done()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return pipeline.New(db, *cfg, logger), done, nil
}
