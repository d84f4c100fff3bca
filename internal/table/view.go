package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// State is the interaction state of one listing view.
type State struct {
	Query    string
	Sort     SortConfig
	PageSize int
	Page     int
}

// NewState returns the initial state: sort by defaultKey ascending, first
// page of DefaultPageSize.
func NewState(defaultKey string) State {
	return State{
		Sort:     SortConfig{Key: defaultKey, Direction: Ascending},
		PageSize: DefaultPageSize,
		Page:     1,
	}
}

// Result is the derived output of one pipeline run. State.Page is the
// effective page of Page. Cells holds the display strings of Page.Items,
// one column per schema field.
type Result[R any] struct {
	State State
	Page  Page[R]
	Cells [][]string
}

// View binds an engine to an immutable record store. Every transition takes
// the current state and returns the next state with the freshly recomputed
// pipeline output; View itself holds no interaction state and may be shared.
type View[R any] struct {
	engine  *Engine[R]
	records []R
}

func NewView[R any](engine *Engine[R], records []R) *View[R] {
	return &View[R]{engine: engine, records: records}
}

func (v *View[R]) Engine() *Engine[R] { return v.engine }
func (v *View[R]) Records() []R       { return v.records }

// Ordered runs the filter and sort stages only.
func (v *View[R]) Ordered(s State) []R {
	return v.engine.Sort(v.engine.Filter(v.records, s.Query), s.Sort)
}

// Render runs filter, sort and paginate for s.
func (v *View[R]) Render(s State) Result[R] {
	page := Paginate(v.Ordered(s), s.PageSize, s.Page)
	s.PageSize = page.PageSize
	s.Page = page.Page

	cells := make([][]string, len(page.Items))
	for i, r := range page.Items {
		cells[i] = v.engine.Cells(r)
	}
	return Result[R]{State: s, Page: page, Cells: cells}
}

func (v *View[R]) SetQuery(s State, q string) Result[R] {
	s.Query = q
	s.Page = 1
	return v.Render(s)
}

// ToggleSort flips the direction when field is already the sort key and
// otherwise sorts by field ascending. Unknown fields leave s unchanged.
func (v *View[R]) ToggleSort(s State, field string) Result[R] {
	if !v.engine.schema.Has(field) {
		return v.Render(s)
	}
	if s.Sort.Key == field {
		s.Sort.Direction = s.Sort.Direction.Reverse()
	} else {
		s.Sort = SortConfig{Key: field, Direction: Ascending}
	}
	s.Page = 1
	return v.Render(s)
}

// SetPageSize ignores n < 1.
func (v *View[R]) SetPageSize(s State, n int) Result[R] {
	if n >= 1 {
		s.PageSize = n
		s.Page = 1
	}
	return v.Render(s)
}

// GoToPage accepts any n; the pagination stage clamps it.
func (v *View[R]) GoToPage(s State, n int) Result[R] {
	s.Page = n
	return v.Render(s)
}

// JumpToPage is GoToPage for raw user input. Empty or non-numeric input is
// ignored and the current page kept.
func (v *View[R]) JumpToPage(s State, input string) Result[R] {
	if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
		s.Page = n
	}
	return v.Render(s)
}

func (v *View[R]) FirstPage(s State) Result[R] {
	s.Page = 1
	return v.Render(s)
}

func (v *View[R]) PrevPage(s State) Result[R] {
	cur := v.position(s)
	s.Page = max(1, cur.Page-1)
	return v.Render(s)
}

func (v *View[R]) NextPage(s State) Result[R] {
	cur := v.position(s)
	s.Page = min(cur.TotalPages, cur.Page+1)
	return v.Render(s)
}

func (v *View[R]) LastPage(s State) Result[R] {
	s.Page = v.position(s).TotalPages
	return v.Render(s)
}

// position is the effective page of s. Sorting does not change counts, so
// only the filter stage runs.
func (v *View[R]) position(s State) Page[R] {
	return Paginate(v.engine.Filter(v.records, s.Query), s.PageSize, s.Page)
}

type ActionKind string

const (
	ActionSetQuery    ActionKind = "setQuery"
	ActionToggleSort  ActionKind = "toggleSort"
	ActionSetPageSize ActionKind = "setPageSize"
	ActionGoToPage    ActionKind = "goToPage"
	ActionFirstPage   ActionKind = "firstPage"
	ActionPrevPage    ActionKind = "prevPage"
	ActionNextPage    ActionKind = "nextPage"
	ActionLastPage    ActionKind = "lastPage"
)

var ErrUnknownAction = errors.New("unknown view action")

// Action is a serialised controller transition. Only the argument matching
// Kind is read; Page is raw input as typed into a page box.
type Action struct {
	Kind     ActionKind
	Query    string
	Field    string
	PageSize int
	Page     string
}

func (v *View[R]) Apply(s State, a Action) (Result[R], error) {
	switch a.Kind {
	case ActionSetQuery:
		return v.SetQuery(s, a.Query), nil
	case ActionToggleSort:
		return v.ToggleSort(s, a.Field), nil
	case ActionSetPageSize:
		return v.SetPageSize(s, a.PageSize), nil
	case ActionGoToPage:
		return v.JumpToPage(s, a.Page), nil
	case ActionFirstPage:
		return v.FirstPage(s), nil
	case ActionPrevPage:
		return v.PrevPage(s), nil
	case ActionNextPage:
		return v.NextPage(s), nil
	case ActionLastPage:
		return v.LastPage(s), nil
	}
	return Result[R]{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
}
