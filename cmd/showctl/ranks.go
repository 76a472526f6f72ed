package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getRanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "Stamps canonical absolute ranks onto stored shows",
		Long: `Reads the rankings file and, year by year in ascending order, sets each
listed show's absolute rank to its list position. Names that match no
stored show are reported and skipped. Running it twice gives the same
ranks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := openRunner(true)
			if err != nil {
				return err
			}
			defer done()

			reports, err := runner.Ranks(cmd.Context())
			out := cmd.OutOrStdout()
			for _, rep := range reports {
				fmt.Fprintf(out, "[%d] ranked %d shows\n", rep.Year, rep.Matched)
				for _, m := range rep.Misses {
					fmt.Fprintf(out, "  [%d] no show found for rank %d: %q (DB name: %q)\n", rep.Year, m.Rank, m.Display, m.Lookup)
				}
				for _, name := range rep.Shadowed {
					fmt.Fprintf(out, "  [%d] duplicate name %q, only the first row was ranked\n", rep.Year, name)
				}
			}
			return err
		},
	}
}
