package table

import "slices"

const DefaultPageSize = 10

// PageSizeOptions are the page sizes offered by the listing views.
var PageSizeOptions = []int{5, 10, 20, 50}

// Page is one slice of an ordered sequence plus the metadata needed to
// render "showing X to Y of Z" and page controls.
type Page[R any] struct {
	Items      []R
	Page       int // effective page, always in [1, TotalPages]
	PageSize   int
	TotalPages int
	Total      int
	// WindowStart is the 1-based position of the first item, 0 when Total is 0.
	WindowStart int
	WindowEnd   int
}

func (p Page[R]) HasPrev() bool { return p.Page > 1 }
func (p Page[R]) HasNext() bool { return p.Page < p.TotalPages }

// Paginate clamps page into [1, TotalPages] and slices records accordingly.
// A non-positive pageSize falls back to DefaultPageSize.
func Paginate[R any](records []R, pageSize, page int) Page[R] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	totalPages = max(1, totalPages)
	page = min(max(page, 1), totalPages)

	start := (page - 1) * pageSize
	end := start + min(pageSize, total-start)

	p := Page[R]{
		Items:      slices.Clip(records[start:end]),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
		WindowEnd:  end,
	}
	if total > 0 {
		p.WindowStart = start + 1
	}
	return p
}
