package shows

import (
	"strconv"
	"strings"

	"showrank/pkg/models"
)

const (
	SortAbsoluteRank = "absolute_rank"
	SortScore        = "score"
	SortTierScore    = "tier,score"
)

// ListQuery filters and orders the show list. Empty slices and zero values
// match everything.
type ListQuery struct {
	Tiers    []string
	Networks []string
	Tags     []string // any-match
	Year     int
	Category string
	Sort     string // SortAbsoluteRank (default), SortScore or SortTierScore
	Order    string // asc (default) or desc; ignored for SortAbsoluteRank
	Limit    int    // 0 = no limit
	Offset   int
}

// buildListSQL builds either COUNT(*) or the SELECT list. Ties always break
// by name so the order is deterministic.
func buildListSQL(q ListQuery, tiers models.TierOrder, countOnly bool) (string, []any) {
	baseSelect := `SELECT ` + showColumns + ` FROM shows`
	if countOnly {
		baseSelect = `SELECT COUNT(*) FROM shows`
	}

	var where []string
	var args []any

	if in, inArgs := inClause(q.Tiers); in != "" {
		where = append(where, "tier IN "+in)
		args = append(args, inArgs...)
	}
	if in, inArgs := inClause(q.Networks); in != "" {
		where = append(where, "network IN "+in)
		args = append(args, inArgs...)
	}
	if in, inArgs := inClause(q.Tags); in != "" {
		where = append(where, "EXISTS (SELECT 1 FROM json_each(shows.tags) WHERE json_each.value IN "+in+")")
		args = append(args, inArgs...)
	}
	if q.Year != 0 {
		where = append(where, "year = ?")
		args = append(args, q.Year)
	}
	if c := strings.TrimSpace(q.Category); c != "" {
		where = append(where, "category = ?")
		args = append(args, strings.ToLower(c))
	}

	sqlStr := baseSelect
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}
	if countOnly {
		return sqlStr, args
	}

	sqlStr += " ORDER BY " + orderClause(q, tiers)
	if q.Limit > 0 {
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		sqlStr += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, offset)
	}
	return sqlStr, args
}

func orderClause(q ListQuery, tiers models.TierOrder) string {
	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(q.Order), "desc") {
		dir = "DESC"
	}

	switch strings.TrimSpace(q.Sort) {
	case "", SortAbsoluteRank:
		return "absolute_rank IS NULL, absolute_rank ASC, name ASC"
	case SortTierScore:
		return tierRankExpr(tiers) + " ASC, score " + dir + ", name ASC"
	default:
		return "score " + dir + ", name ASC"
	}
}

// tierRankExpr maps tier to its position in tiers; unknown tiers sort last.
func tierRankExpr(tiers models.TierOrder) string {
	var b strings.Builder
	b.WriteString("CASE tier")
	for i, t := range tiers {
		b.WriteString(" WHEN '" + strings.ReplaceAll(t, "'", "''") + "' THEN " + strconv.Itoa(i))
	}
	b.WriteString(" ELSE " + strconv.Itoa(len(tiers)) + " END")
	return b.String()
}

func inClause(values []string) (string, []any) {
	var args []any
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			args = append(args, v)
		}
	}
	if len(args) == 0 {
		return "", nil
	}
	return "(" + strings.TrimSuffix(strings.Repeat("?,", len(args)), ",") + ")", args
}

// SplitList splits a comma separated query value, dropping empty pieces.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
