package main

import (
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"showrank/internal/enrich"
)

// barProgress shows enrichment progress on the terminal.
type barProgress struct {
	prefix string
	bar    *pb.ProgressBar
}

func (p *barProgress) Start(total int) {
	p.bar = pb.Full.Start(total)
	p.bar.Set("prefix", p.prefix)
	p.bar.Set(pb.CleanOnFinish, true)
}

func (p *barProgress) Tick() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

func getCoversCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "covers",
		Short: "Fetches cover art, TVMaze ids and ratings",
		Long: `Searches TVMaze for every show without a cover (all shows with --force)
and stores the first hit's image, id and rating. Shows without a match are
skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := openRunner(true)
			if err != nil {
				return err
			}
			defer done()
			runner.Progress = &barProgress{prefix: "covers "}

			st, err := runner.Covers(cmd.Context(), force)
			printStats(cmd, st)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "refetch covers for every show")
	return cmd
}

func getEpisodesCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "Fetches episode lists for shows matched on TVMaze",
		Long: `Fetches the episode list of every show that has a TVMaze id and no
episodes yet (all matched shows with --force). Run covers first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := openRunner(true)
			if err != nil {
				return err
			}
			defer done()
			runner.Progress = &barProgress{prefix: "episodes "}

			st, err := runner.SyncEpisodes(cmd.Context(), force)
			printStats(cmd, st)
			if err == nil && st.Written > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Upserted %s episodes.\n", humanize.Comma(int64(st.Written)))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "refetch episodes for every matched show")
	return cmd
}

func printStats(cmd *cobra.Command, st enrich.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(), "Done. Updated %d, skipped %d, failed %d of %d.\n",
		st.Updated, st.Skipped, st.Failed, st.Total)
}
