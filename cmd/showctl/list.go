package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"showrank/internal/shows"
	"showrank/pkg/models"
)

func getListCmd() *cobra.Command {
	var (
		q     shows.ListQuery
		tiers string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Prints stored shows as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := openRunner(false)
			if err != nil {
				return err
			}
			defer done()

			q.Tiers = shows.SplitList(tiers)
			items, err := runner.Shows.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderShows(items))
			return nil
		},
	}
	cmd.Flags().IntVar(&q.Year, "year", 0, "only this production year")
	cmd.Flags().StringVar(&q.Category, "category", "", "tv or movies")
	cmd.Flags().StringVar(&tiers, "tier", "", "comma separated tiers")
	cmd.Flags().StringVar(&q.Sort, "sort", shows.SortAbsoluteRank, "absolute_rank, score or tier,score")
	cmd.Flags().StringVar(&q.Order, "order", "asc", "asc or desc")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "maximum rows (0 = all)")
	return cmd
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderShows(items []models.Show) string {
	headers := []string{"Rank", "Name", "Season", "Network", "Tier", "Score", "Year", "Tags"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rank := "-"
		if s.AbsoluteRank != nil {
			rank = strconv.Itoa(*s.AbsoluteRank)
		}
		rows = append(rows, []string{
			rank,
			s.Name,
			strconv.Itoa(s.Season),
			s.Network,
			s.Tier,
			strconv.FormatFloat(s.Score, 'f', 1, 64),
			strconv.Itoa(s.Year),
			strings.Join(s.Tags, ", "),
		})
	}
	return renderTable(headers, rows, aligns)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
