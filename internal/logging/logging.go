// Package logging builds the hclog root logger shared by the servers and
// the showctl pipelines.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"showrank/pkg/config"
)

// New returns a root logger writing to stderr.
func New(name string, cfg config.LogConfig) hclog.Logger {
	return NewWithOutput(name, cfg, os.Stderr)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(name string, cfg config.LogConfig, w io.Writer) hclog.Logger {
	level := hclog.LevelFromString(strings.TrimSpace(cfg.Level))
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     w,
		JSONFormat: strings.EqualFold(cfg.Format, "json"),
	})
}

// StdWriter adapts l for libraries that take a plain io.Writer,
// such as gin's default writer.
func StdWriter(l hclog.Logger) io.Writer {
	return l.StandardWriter(&hclog.StandardLoggerOptions{InferLevels: true})
}
