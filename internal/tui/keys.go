package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView key.Binding
	Search   key.Binding
	Jump     key.Binding
	Left     key.Binding
	Right    key.Binding
	Sort     key.Binding
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Refresh  key.Binding
	Logout   key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Search, k.Sort, k.Next, k.Prev, k.Jump, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.Refresh, k.Logout, k.Quit},
		{k.Search, k.Left, k.Right, k.Sort},
		{k.First, k.Prev, k.Next, k.Last, k.Jump},
		{k.Smaller, k.Bigger},
	}
}

var keys = keyMap{
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "go to page"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "column"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "column"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "prev page"),
	),
	First: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	Last: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	Bigger: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more rows"),
	),
	Smaller: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer rows"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Logout: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "logout"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
