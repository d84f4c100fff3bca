package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeJump
)

// listing is one table view on screen. All pipeline work goes through the
// controller; listing only tracks the column cursor and the input box.
type listing[R any] struct {
	title  string
	empty  string
	ctrl   *table.Controller[R]
	column int
	mode   inputMode
	input  textinput.Model
}

func newListing[R any](title, empty string, view *table.View[R], s table.State) *listing[R] {
	ti := textinput.New()
	ti.CharLimit = 64
	return &listing[R]{
		title: title,
		empty: empty,
		ctrl:  table.NewController(view, s),
		input: ti,
	}
}

func (l *listing[R]) capturing() bool { return l.mode != modeBrowse }

func (l *listing[R]) refresh(view *table.View[R]) { l.ctrl.Refresh(view) }

func (l *listing[R]) fields() []table.Field[R] {
	return l.ctrl.View().Engine().Schema().Fields()
}

func (l *listing[R]) update(msg tea.KeyMsg) tea.Cmd {
	if l.capturing() {
		return l.updateInput(msg)
	}

	switch {
	case key.Matches(msg, keys.Search):
		l.mode = modeSearch
		l.input.Prompt = "search: "
		l.input.SetValue(l.ctrl.State().Query)
		l.input.CursorEnd()
		return l.input.Focus()
	case key.Matches(msg, keys.Jump):
		l.mode = modeJump
		l.input.Prompt = "page: "
		l.input.SetValue("")
		return l.input.Focus()
	case key.Matches(msg, keys.Left):
		l.column = max(0, l.column-1)
	case key.Matches(msg, keys.Right):
		l.column = min(len(l.fields())-1, l.column+1)
	case key.Matches(msg, keys.Sort):
		l.ctrl.ToggleSort(l.fields()[l.column].Name)
	case key.Matches(msg, keys.Next):
		l.ctrl.NextPage()
	case key.Matches(msg, keys.Prev):
		l.ctrl.PrevPage()
	case key.Matches(msg, keys.First):
		l.ctrl.FirstPage()
	case key.Matches(msg, keys.Last):
		l.ctrl.LastPage()
	case key.Matches(msg, keys.Bigger):
		l.ctrl.SetPageSize(stepPageSize(l.ctrl.State().PageSize, 1))
	case key.Matches(msg, keys.Smaller):
		l.ctrl.SetPageSize(stepPageSize(l.ctrl.State().PageSize, -1))
	}
	return nil
}

// updateInput runs while the search or page box has focus. Search is
// applied on every edit; the page box only on enter.
func (l *listing[R]) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		if l.mode == modeJump {
			l.ctrl.JumpToPage(l.input.Value())
		}
		l.closeInput()
		return nil
	case tea.KeyEsc:
		if l.mode == modeSearch {
			l.ctrl.SetQuery("")
		}
		l.closeInput()
		return nil
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	if l.mode == modeSearch && l.input.Value() != l.ctrl.State().Query {
		l.ctrl.SetQuery(l.input.Value())
	}
	return cmd
}

func (l *listing[R]) closeInput() {
	l.mode = modeBrowse
	l.input.Blur()
	l.input.SetValue("")
}

// stepPageSize moves to the neighbouring entry of table.PageSizeOptions.
func stepPageSize(current, dir int) int {
	opts := table.PageSizeOptions
	i, found := slices.BinarySearch(opts, current)
	switch {
	case dir > 0 && found:
		i++
	case dir < 0:
		i--
	}
	next := opts[min(max(i, 0), len(opts)-1)]
	if (dir > 0 && next < current) || (dir < 0 && next > current) {
		return current
	}
	return next
}

func (l *listing[R]) view() string {
	res := l.ctrl.Result()
	fields := l.fields()

	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Label
		if res.State.Sort.Key == f.Name {
			if res.State.Sort.Direction == table.Ascending {
				headers[i] += " ▲"
			} else {
				headers[i] += " ▼"
			}
		}
	}
	widths := columnWidths(headers, res.Cells)

	var b strings.Builder
	b.WriteString(titleStyle.Render(l.title))
	if q := res.State.Query; q != "" && l.mode != modeSearch {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  filter: %q", q)))
	}
	b.WriteString("\n\n")

	row := make([]string, len(headers))
	for i, h := range headers {
		style := headerStyle
		if i == l.column {
			style = selectedHeaderStyle
		}
		row[i] = style.Width(widths[i]).Render(h)
	}
	b.WriteString(strings.Join(row, "  "))
	b.WriteString("\n")

	if len(res.Cells) == 0 {
		b.WriteString(mutedStyle.Render(l.empty))
		b.WriteString("\n")
	}
	for _, cells := range res.Cells {
		for i, c := range cells {
			row[i] = lipgloss.NewStyle().Width(widths[i]).Render(c)
		}
		b.WriteString(strings.Join(row, "  "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(footer(res.Page)))
	if l.capturing() {
		b.WriteString("\n")
		b.WriteString(l.input.View())
	}
	return b.String()
}

func footer[R any](p table.Page[R]) string {
	return fmt.Sprintf("Showing %d to %d of %d entries · page %d of %d · %d per page",
		p.WindowStart, p.WindowEnd, p.Total, p.Page, p.TotalPages, p.PageSize)
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, cells := range rows {
		for i, c := range cells {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	return widths
}
