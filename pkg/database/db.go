// Package database opens the showrank SQLite store and applies its schema.
package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path string `mapstructure:"path" yaml:"path"`
	// BusyTimeout is how long a writer waits on a locked database.
	BusyTimeout time.Duration `mapstructure:"busy_timeout" yaml:"busy_timeout"`
	// MaxOpenConns caps the pool; 0 leaves database/sql's default.
	MaxOpenConns int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
}

func DefaultConfig() Config {
	cfg := Config{BusyTimeout: 5 * time.Second}

	// Docker / env override
	if p := os.Getenv("SHOWRANK_DATABASE_PATH"); p != "" {
		cfg.Path = p
		return cfg
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	cfg.Path = filepath.Join(home, ".showrank", "showrank.db")
	return cfg
}

// DSN is the go-sqlite3 connection string for cfg. Pragmas travel in the
// DSN so every pooled connection gets them.
func (c Config) DSN() string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_journal_mode", "WAL")
	if c.BusyTimeout > 0 {
		q.Set("_busy_timeout", strconv.FormatInt(c.BusyTimeout.Milliseconds(), 10))
	}
	return "file:" + c.Path + "?" + q.Encode()
}

// Open creates the parent directory if needed and returns a pinged handle.
func Open(cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("open sqlite: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", cfg.Path, err)
	}
	return db, nil
}
