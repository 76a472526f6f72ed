package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"showrank/pkg/models"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// ParseSeason returns the first non-negative integer at the start of raw.
// "27, 28" is 27; empty, signed-negative or non-numeric input is 0.
func ParseSeason(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// ParseTags accepts comma or pipe delimited tags. Order is kept, empty
// pieces are dropped, nothing is deduplicated or case-folded.
func ParseTags(raw string) []string {
	pieces := strings.Split(strings.ReplaceAll(raw, "|", ","), ",")
	tags := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// ParseScore parses the numeric prefix of raw ("8.5" and "8.5/10" are both
// 8.5). ok is false when there is no number or it falls outside [0, 10].
func ParseScore(raw string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	score, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(score) || score < 0 || score > 10 {
		return 0, false
	}
	return score, true
}

// ParseYear clamps the leading integer of raw to [MinYear, MaxYear].
// Blank, unparseable and zero values fall back to def.
func ParseYear(raw string, def int) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n == 0 {
		n = def
	}
	return min(MaxYear, max(MinYear, n))
}

// ParseCategory maps "movies" (any case) to movies and everything else to tv.
func ParseCategory(raw string) string {
	if strings.ToLower(strings.TrimSpace(raw)) == models.CategoryMovies {
		return models.CategoryMovies
	}
	return models.CategoryTV
}

func parseLeadingInt(raw string) (int, bool) {
	m := leadingInt.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
