package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"showrank/internal/events"
)

func getWatchCmd() *cobra.Command {
	var (
		url    string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Prints change events from a running api-server",
		Long: `Connects to the api-server WebSocket feed and prints every event
(shows.reseeded, ranks.updated) as JSON. Reconnects after a second when
the connection drops; stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			emit := func(e events.Event) {
				var b []byte
				if pretty {
					b, _ = json.MarshalIndent(e, "", "  ")
				} else {
					b, _ = json.Marshal(e)
				}
				fmt.Fprintln(out, string(b))
			}

			for {
				err := events.Subscribe(ctx, url, emit)
				if ctx.Err() != nil {
					return nil
				}
				logger.Warn("disconnected", "url", url, "error", err)
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(time.Second):
				}
			}
		},
	}
	cmd.Flags().StringVar(&url, "url", "ws://localhost:8080/ws", "event feed URL")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}
