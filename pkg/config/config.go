// Package config loads showrank settings.
//
// Precedence (highest to lowest): CLI flags > env vars > showrank.yaml > defaults.
//
// Environment variables use the SHOWRANK_ prefix with underscores for nesting:
//
//	SHOWRANK_DATABASE_PATH=/data/showrank.db
//	SHOWRANK_HTTP_ADDR=:8080
//	SHOWRANK_TVMAZE_CONCURRENCY=4
//	SHOWRANK_LOG_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"showrank/pkg/database"
)

type Config struct {
	Database database.Config `mapstructure:"database" yaml:"database"`
	HTTP     HTTPConfig      `mapstructure:"http"     yaml:"http"`
	GRPC     GRPCConfig      `mapstructure:"grpc"     yaml:"grpc"`
	Seed     SeedConfig      `mapstructure:"seed"     yaml:"seed"`
	Rankings RankingsConfig  `mapstructure:"rankings" yaml:"rankings"`
	TVMaze   TVMazeConfig    `mapstructure:"tvmaze"   yaml:"tvmaze"`
	Admin    AdminConfig     `mapstructure:"admin"    yaml:"admin"`
	Log      LogConfig       `mapstructure:"log"      yaml:"log"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

type GRPCConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// SeedConfig points at the hand-maintained input files.
type SeedConfig struct {
	ShowsCSV     string `mapstructure:"shows_csv"    yaml:"shows_csv"`
	Descriptions string `mapstructure:"descriptions" yaml:"descriptions"`
	Spots        string `mapstructure:"spots"        yaml:"spots"`
	// DefaultYear is used when the CSV has no year column or a blank cell.
	DefaultYear int `mapstructure:"default_year" yaml:"default_year"`
}

type RankingsConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type TVMazeConfig struct {
	BaseURL   string        `mapstructure:"base_url"   yaml:"base_url"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"    yaml:"timeout"`
	// Delay is the pause between request windows.
	Delay       time.Duration `mapstructure:"delay"       yaml:"delay"`
	Concurrency int           `mapstructure:"concurrency" yaml:"concurrency"`
}

// AdminConfig guards the admin HTTP routes. An empty PasswordHash disables
// admin login entirely.
type AdminConfig struct {
	PasswordHash string        `mapstructure:"password_hash" yaml:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"    yaml:"jwt_secret"`
	JWTIssuer    string        `mapstructure:"jwt_issuer"    yaml:"jwt_issuer"`
	JWTTTL       time.Duration `mapstructure:"jwt_ttl"       yaml:"jwt_ttl"`
}

type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level"  yaml:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults returns a valid configuration.
func Defaults() Config {
	return Config{
		Database: database.DefaultConfig(),
		HTTP:     HTTPConfig{Addr: ":8080"},
		GRPC:     GRPCConfig{Addr: ":9090"},
		Seed: SeedConfig{
			ShowsCSV:     "data/shows.csv",
			Descriptions: "data/descriptions.json",
			Spots:        "data/spots.yaml",
			DefaultYear:  2025,
		},
		Rankings: RankingsConfig{Path: "data/rankings.yaml"},
		TVMaze: TVMazeConfig{
			BaseURL:     "https://api.tvmaze.com",
			UserAgent:   "showrank-fetch/1.0",
			Timeout:     12 * time.Second,
			Delay:       300 * time.Millisecond,
			Concurrency: 4,
		},
		Admin: AdminConfig{
			// dev default (change for production)
			JWTSecret: "dev-secret-change-me",
			JWTIssuer: "showrank",
			JWTTTL:    24 * time.Hour,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from configPath, or from ./showrank.yaml or
// ~/.config/showrank/showrank.yaml when configPath is empty. A missing
// default file is not an error; a missing explicit file is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SHOWRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults must be registered so AutomaticEnv knows every key
	d := Defaults()
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.busy_timeout", d.Database.BusyTimeout)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("grpc.addr", d.GRPC.Addr)
	v.SetDefault("seed.shows_csv", d.Seed.ShowsCSV)
	v.SetDefault("seed.descriptions", d.Seed.Descriptions)
	v.SetDefault("seed.spots", d.Seed.Spots)
	v.SetDefault("seed.default_year", d.Seed.DefaultYear)
	v.SetDefault("rankings.path", d.Rankings.Path)
	v.SetDefault("tvmaze.base_url", d.TVMaze.BaseURL)
	v.SetDefault("tvmaze.user_agent", d.TVMaze.UserAgent)
	v.SetDefault("tvmaze.timeout", d.TVMaze.Timeout)
	v.SetDefault("tvmaze.delay", d.TVMaze.Delay)
	v.SetDefault("tvmaze.concurrency", d.TVMaze.Concurrency)
	v.SetDefault("admin.password_hash", d.Admin.PasswordHash)
	v.SetDefault("admin.jwt_secret", d.Admin.JWTSecret)
	v.SetDefault("admin.jwt_issuer", d.Admin.JWTIssuer)
	v.SetDefault("admin.jwt_ttl", d.Admin.JWTTTL)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("showrank")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "showrank"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipelines cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("config: database.path is required")
	}
	if c.Seed.DefaultYear < 2000 || c.Seed.DefaultYear > 2100 {
		return fmt.Errorf("config: seed.default_year %d outside 2000-2100", c.Seed.DefaultYear)
	}
	if c.TVMaze.Concurrency < 1 {
		return fmt.Errorf("config: tvmaze.concurrency must be >= 1, got %d", c.TVMaze.Concurrency)
	}
	if c.TVMaze.Delay < 0 {
		return errors.New("config: tvmaze.delay must not be negative")
	}
	return nil
}
