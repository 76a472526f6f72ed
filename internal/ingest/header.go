package ingest

import "strings"

// NotFound is returned by ResolveColumn when no alias matches.
const NotFound = -1

// Columns holds the accepted header aliases for every logical column.
// Matching is case-insensitive and exact after trimming.
type Columns struct {
	Name     []string `yaml:"name"`
	Season   []string `yaml:"season"`
	Network  []string `yaml:"network"`
	Tags     []string `yaml:"tags"`
	Score    []string `yaml:"score"`
	Tier     []string `yaml:"tier"`
	Year     []string `yaml:"year"`
	Category []string `yaml:"category"`
}

func DefaultColumns() Columns {
	return Columns{
		Name:     []string{"name", "show"},
		Season:   []string{"season"},
		Network:  []string{"network"},
		Tags:     []string{"tags"},
		Score:    []string{"score"},
		Tier:     []string{"tier"},
		Year:     []string{"year"},
		Category: []string{"category", "type"},
	}
}

// requiredColumnsMsg lists the minimum header a shows CSV needs.
const requiredColumnsMsg = "CSV must have columns: name (or show), season, network, tags, score, tier"

// ResolveColumn returns the index of the first alias present in header,
// trying aliases in order, or NotFound.
func ResolveColumn(header []string, aliases []string) int {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}
	for _, alias := range aliases {
		want := strings.ToLower(strings.TrimSpace(alias))
		for i, h := range lower {
			if h == want {
				return i
			}
		}
	}
	return NotFound
}

// layout is the resolved position of every column for one file.
type layout struct {
	name, season, network, tags, score, tier int
	year, category                           int
}

// resolveLayout resolves all columns and reports the required ones that
// are missing.
func resolveLayout(header []string, cols Columns) (layout, []string) {
	l := layout{
		name:     ResolveColumn(header, cols.Name),
		season:   ResolveColumn(header, cols.Season),
		network:  ResolveColumn(header, cols.Network),
		tags:     ResolveColumn(header, cols.Tags),
		score:    ResolveColumn(header, cols.Score),
		tier:     ResolveColumn(header, cols.Tier),
		year:     ResolveColumn(header, cols.Year),
		category: ResolveColumn(header, cols.Category),
	}

	var missing []string
	for _, req := range []struct {
		key string
		idx int
	}{
		{"name", l.name},
		{"season", l.season},
		{"network", l.network},
		{"tags", l.tags},
		{"score", l.score},
		{"tier", l.tier},
	} {
		if req.idx == NotFound {
			missing = append(missing, req.key)
		}
	}
	return l, missing
}
