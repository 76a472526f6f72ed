package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"showrank/internal/shows"
)

func getExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes stored shows back out as a seed CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := openRunner(false)
			if err != nil {
				return err
			}
			defer done()

			all, err := runner.Shows.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return err
				}
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := shows.WriteCSV(w, all); err != nil {
				return fmt.Errorf("export shows: %w", err)
			}
			if outPath != "" && outPath != "-" {
				logger.Info("exported shows", "count", len(all), "path", outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output CSV path (default stdout)")
	return cmd
}
