// Package tui is the terminal front end of the console: login gate,
// navigation shell, dashboard and the two listing views.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

type Backend interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context, token string)
	Summary(ctx context.Context) (models.Summary, error)
	Navigation(ctx context.Context) []models.NavItem
	RecordsView(ctx context.Context) (*table.View[models.Record], error)
	UsersView(ctx context.Context) (*table.View[models.User], error)
	DefaultState() table.State
}

type screen string

const (
	screenLogin     screen = "login"
	screenDashboard screen = "dashboard"
	screenUsers     screen = "users"
	screenRecords   screen = "records"
)

type loginMsg struct {
	session models.Session
	err     error
}

type dataMsg struct {
	summary models.Summary
	records *table.View[models.Record]
	users   *table.View[models.User]
	err     error
}

// Model is the root bubbletea model. It must only be used from the
// bubbletea event loop.
type Model struct {
	ctx     context.Context
	backend Backend

	screen  screen
	nav     []models.NavItem
	session models.Session

	email    textinput.Model
	password textinput.Model
	loginErr string

	summary models.Summary
	records *listing[models.Record]
	users   *listing[models.User]
	loadErr error

	help help.Model
}

func New(ctx context.Context, backend Backend) Model {
	email := textinput.New()
	email.Placeholder = "admin@example.com"
	email.Prompt = "Email     "
	email.Focus()

	password := textinput.New()
	password.Prompt = "Password  "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		ctx:      ctx,
		backend:  backend,
		screen:   screenLogin,
		nav:      backend.Navigation(ctx),
		email:    email,
		password: password,
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case loginMsg:
		if msg.err != nil {
			m.loginErr = msg.err.Error()
			m.password.SetValue("")
			return m, nil
		}
		m.session = msg.session
		m.loginErr = ""
		m.screen = screenDashboard
		m.email.Blur()
		m.password.Blur()
		return m, m.load()

	case dataMsg:
		m.loadErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.summary = msg.summary
		if m.records == nil {
			m.records = newListing("Records", "No records found", msg.records, m.backend.DefaultState())
			m.users = newListing("Users", "No users found", msg.users, m.backend.DefaultState())
		} else {
			m.records.refresh(msg.records)
			m.users.refresh(msg.users)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenLogin {
			return m.updateLogin(msg)
		}
		return m.updateShell(msg)
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		cmd := m.toggleLoginFocus()
		return m, cmd
	case tea.KeyEnter:
		if m.email.Focused() {
			cmd := m.toggleLoginFocus()
			return m, cmd
		}
		return m, m.login(m.email.Value(), m.password.Value())
	}

	var cmd tea.Cmd
	if m.email.Focused() {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleLoginFocus() tea.Cmd {
	if m.email.Focused() {
		m.email.Blur()
		return m.password.Focus()
	}
	m.password.Blur()
	return m.email.Focus()
}

func (m Model) updateShell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if p := m.activeListing(); p != nil && p.capturing() {
		return m, p.update(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextView):
		m.screen = m.nextScreen()
		return m, nil
	case key.Matches(msg, keys.Refresh):
		return m, m.load()
	case key.Matches(msg, keys.Logout):
		m.backend.Logout(m.ctx, m.session.Token)
		m.session = models.Session{}
		m.screen = screenLogin
		m.email.SetValue("")
		m.password.SetValue("")
		m.password.Blur()
		cmd := m.email.Focus()
		return m, cmd
	}

	if p := m.activeListing(); p != nil {
		return m, p.update(msg)
	}
	return m, nil
}

// pane is the screen-agnostic face of a listing.
type pane interface {
	update(tea.KeyMsg) tea.Cmd
	view() string
	capturing() bool
}

func (m Model) activeListing() pane {
	switch {
	case m.screen == screenUsers && m.users != nil:
		return m.users
	case m.screen == screenRecords && m.records != nil:
		return m.records
	}
	return nil
}

func (m Model) nextScreen() screen {
	for i, item := range m.nav {
		if screen(item.ID) == m.screen {
			return screen(m.nav[(i+1)%len(m.nav)].ID)
		}
	}
	return screenDashboard
}

func (m Model) login(email, password string) tea.Cmd {
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		sess, err := backend.Login(ctx, email, password)
		return loginMsg{session: sess, err: err}
	}
}

func (m Model) load() tea.Cmd {
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		var msg dataMsg
		if msg.summary, msg.err = backend.Summary(ctx); msg.err != nil {
			return msg
		}
		if msg.records, msg.err = backend.RecordsView(ctx); msg.err != nil {
			return msg
		}
		msg.users, msg.err = backend.UsersView(ctx)
		return msg
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.screen == screenLogin {
		return m.viewLogin()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(errStyle.Render("load failed: " + m.loadErr.Error()))
	case m.screen == screenDashboard:
		b.WriteString(m.viewDashboard())
	case m.activeListing() != nil:
		b.WriteString(m.activeListing().view())
	default:
		b.WriteString(mutedStyle.Render("Loading..."))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Admin Console"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Sign in to continue"))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	if m.loginErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errStyle.Render(m.loginErr))
	}
	return loginBoxStyle.Render(b.String()) + "\n"
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.nav)+1)
	for _, item := range m.nav {
		style := tabStyle
		if screen(item.ID) == m.screen {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(item.Label))
	}
	tabs = append(tabs, mutedStyle.Render("  "+m.session.Email))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	card := func(label string, n int) string {
		return cardStyle.Render(fmt.Sprintf("%s\n%s", mutedStyle.Render(label), titleStyle.Render(fmt.Sprint(n))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total users", m.summary.Users),
		card("Active users", m.summary.ActiveUsers),
		card("Inactive users", m.summary.InactiveUsers),
		card("Records", m.summary.Records),
	)
}
