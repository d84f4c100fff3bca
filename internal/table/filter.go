package table

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps the records whose searchable fields, rendered and joined with
// a single space, contain the trimmed, lower-cased query. An empty query
// returns records unchanged.
func (e *Engine[R]) Filter(records []R, query string) []R {
	lower := cases.Lower(e.opts.Locale)
	q := lower.String(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	out := make([]R, 0, len(records))
	var sb strings.Builder
	for _, r := range records {
		sb.Reset()
		e.writeSearchText(&sb, r)
		if strings.Contains(lower.String(sb.String()), q) {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine[R]) writeSearchText(sb *strings.Builder, r R) {
	first := true
	for _, f := range e.schema.fields {
		if !f.Searchable {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(e.Display(f, r))
	}
}
