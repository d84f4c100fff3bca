package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

var ErrInvalidDirection = errors.New("sort direction must be asc or desc")

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// SortConfig selects the sort field and direction. An empty Key disables
// sorting.
type SortConfig struct {
	Key       string
	Direction Direction
}

type sortKey struct {
	text  string
	at    time.Time
	valid bool
}

type keyed[R any] struct {
	rec R
	key sortKey
}

// Sort returns a new slice ordered by cfg. The sort is stable in both
// directions: Descending negates the comparison, it does not reverse the
// output. Unparsable timestamps order after all parsable ones when
// ascending. An empty or unknown key returns records unchanged.
func (e *Engine[R]) Sort(records []R, cfg SortConfig) []R {
	if cfg.Key == "" {
		return records
	}
	f, ok := e.schema.Field(cfg.Key)
	if !ok {
		return records
	}

	items := make([]keyed[R], len(records))
	for i, r := range records {
		items[i] = keyed[R]{rec: r, key: e.sortKey(f, r)}
	}

	compare := e.comparator(f)
	slices.SortStableFunc(items, func(a, b keyed[R]) int {
		c := compare(a, b)
		if cfg.Direction == Descending {
			return -c
		}
		return c
	})

	out := make([]R, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

func (e *Engine[R]) sortKey(f Field[R], r R) sortKey {
	switch f.Kind {
	case Number:
		return sortKey{valid: true}
	case Timestamp:
		at, ok := e.opts.ParseTimestamp(f.text(r))
		return sortKey{at: at, valid: ok}
	default:
		return sortKey{text: f.text(r), valid: true}
	}
}

func (e *Engine[R]) comparator(f Field[R]) func(a, b keyed[R]) int {
	switch f.Kind {
	case Number:
		return func(a, b keyed[R]) int { return f.compare(a.rec, b.rec) }
	case Timestamp:
		return func(a, b keyed[R]) int { return compareInstants(a.key, b.key) }
	default:
		coll := collate.New(e.opts.Locale)
		return func(a, b keyed[R]) int { return coll.CompareString(a.key.text, b.key.text) }
	}
}

func compareInstants(a, b sortKey) int {
	switch {
	case a.valid && b.valid:
		return a.at.Compare(b.at)
	case a.valid:
		return -1
	case b.valid:
		return 1
	}
	return 0
}
