package table

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// DefaultTimeLayout mirrors the en-US "M/D/YYYY, h:mm:ss AM" rendering.
	DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

	// DefaultDateLayout is the en-US short date used by date-only fields.
	DefaultDateLayout = "1/2/2006"

	dateOnlyLayout = "2006-01-02"

	// InvalidTimestamp is the display form of an unparsable timestamp.
	InvalidTimestamp = "Invalid Date"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Options carry the locale inputs of the pipeline. Collation and case
// folding follow Locale; timestamps are rendered with TimeLayout in Location,
// date-only fields with DateLayout.
type Options struct {
	Locale     language.Tag
	Location   *time.Location
	TimeLayout string
	DateLayout string
}

func DefaultOptions() Options {
	return Options{
		Locale:     language.AmericanEnglish,
		Location:   time.UTC,
		TimeLayout: DefaultTimeLayout,
		DateLayout: DefaultDateLayout,
	}
}

func (o Options) normalized() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.TimeLayout == "" {
		o.TimeLayout = DefaultTimeLayout
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	return o
}

// ParseTimestamp parses a stored date/time string. A bare date is midnight
// UTC; a date-time without a zone offset is read in o.Location.
func (o Options) ParseTimestamp(raw string) (time.Time, bool) {
	o = o.normalized()
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, o.Location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (o Options) FormatTimestamp(raw string) string {
	return o.format(raw, o.normalized().TimeLayout)
}

// FormatDate renders only the calendar date of raw in o.Location.
func (o Options) FormatDate(raw string) string {
	return o.format(raw, o.normalized().DateLayout)
}

func (o Options) format(raw, layout string) string {
	o = o.normalized()
	t, ok := o.ParseTimestamp(raw)
	if !ok {
		return InvalidTimestamp
	}
	return t.In(o.Location).Format(layout)
}

// Engine runs the filter and sort stages for one schema.
type Engine[R any] struct {
	schema *Schema[R]
	opts   Options
}

func NewEngine[R any](schema *Schema[R], opts Options) *Engine[R] {
	return &Engine[R]{schema: schema, opts: opts.normalized()}
}

func (e *Engine[R]) Schema() *Schema[R] {
	return e.schema
}

func (e *Engine[R]) Options() Options {
	return e.opts
}

// Display renders the value of f in r in its natural display form.
func (e *Engine[R]) Display(f Field[R], r R) string {
	switch f.Kind {
	case Number:
		return f.format(r)
	case Timestamp:
		if f.dateOnly {
			return e.opts.FormatDate(f.text(r))
		}
		return e.opts.FormatTimestamp(f.text(r))
	default:
		return f.text(r)
	}
}

// Cells renders every schema field of r, in schema order.
func (e *Engine[R]) Cells(r R) []string {
	cells := make([]string, len(e.schema.fields))
	for i, f := range e.schema.fields {
		cells[i] = e.Display(f, r)
	}
	return cells
}
