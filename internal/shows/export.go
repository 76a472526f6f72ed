package shows

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"showrank/pkg/models"
)

// ExportHeader is the column order WriteCSV emits. It is a valid ingest
// header.
var ExportHeader = []string{"name", "season", "network", "tags", "score", "tier", "year", "category"}

// WriteCSV writes shows in the ingest format. Tags are pipe-joined so the
// tags cell never needs quoting.
func WriteCSV(w io.Writer, shows []models.Show) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range shows {
		if err := cw.Write([]string{
			s.Name,
			strconv.Itoa(s.Season),
			s.Network,
			strings.Join(s.Tags, "|"),
			strconv.FormatFloat(s.Score, 'f', -1, 64),
			s.Tier,
			strconv.Itoa(s.Year),
			s.Category,
		}); err != nil {
			return fmt.Errorf("write %q: %w", s.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
