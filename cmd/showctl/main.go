// Package main provides showctl, the data maintenance CLI: seeding shows
// and spots, reconciling canonical ranks, TVMaze enrichment and export.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"showrank/internal/ingest"
	"showrank/internal/ranking"
)

var (
	// Version is set by build flags
	Version = "dev"
)

const (
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := getRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// configError marks failures to load settings.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps configuration and input problems to 2 and everything else
// to 1.
func exitCode(err error) int {
	var ce *configError
	if errors.As(err, &ce) {
		return exitConfig
	}
	switch ingest.KindOf(err) {
	case ingest.KindInput, ingest.KindEmpty, ingest.KindHeader, ingest.KindDescriptions:
		return exitConfig
	}
	if ranking.KindOf(err) == ranking.KindConfig {
		return exitConfig
	}
	return exitFailure
}
