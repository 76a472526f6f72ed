package ingest

import "strings"

// ParseRow splits one CSV line into trimmed fields.
//
// A double quote toggles quoted mode, in which commas and newlines are
// literal. Outside quotes a comma ends the field and a newline ends the row.
// A doubled quote ("") is not an escape: both quotes toggle the mode and
// neither is kept. Rows that rely on embedded quotes are not representable.
//
// The last field is kept only if it accumulated at least one character, so
// "a,b," yields two fields.
func ParseRow(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case (c == ',' || c == '\n') && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
			if c == '\n' {
				return fields
			}
		default:
			current.WriteRune(c)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, strings.TrimSpace(current.String()))
	}
	return fields
}

// fieldAt returns the trimmed field at idx, or "" when the row is short or
// the column was not resolved.
func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
