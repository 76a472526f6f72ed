package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func getSeedCmd() *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replaces all shows and spots from the seed files",
		Long: `Replaces every stored show with the rows of the shows CSV and every
spot with the spots seed list. Input files are validated first; on any
input error nothing is written. Invalid rows are skipped and counted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath != "" {
				cfg.Seed.ShowsCSV = csvPath
			}
			runner, done, err := openRunner(true)
			if err != nil {
				return err
			}
			defer done()

			res, err := runner.Seed(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded %s shows (%s rows skipped).\n",
				humanize.Comma(int64(res.Shows.Accepted)), humanize.Comma(int64(res.Shows.RejectedTotal())))
			reasons := make([]string, 0, len(res.Shows.Rejected))
			for reason := range res.Shows.Rejected {
				reasons = append(reasons, reason)
			}
			sort.Strings(reasons)
			for _, reason := range reasons {
				fmt.Fprintf(out, "  invalid %s: %d\n", reason, res.Shows.Rejected[reason])
			}
			fmt.Fprintf(out, "Seeded %d spots.\n", res.Spots)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "shows CSV path (overrides seed.shows_csv)")
	return cmd
}
