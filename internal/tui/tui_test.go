package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

// --- fake backend ---

type fakeBackend struct {
	users     []models.User
	loggedOut string
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (models.Session, error) {
	if email != "admin@example.com" || password != "admin123" {
		return models.Session{}, errors.New("invalid email or password")
	}
	return models.Session{Token: "tok", Email: email}, nil
}

func (f *fakeBackend) Logout(_ context.Context, token string) { f.loggedOut = token }

func (f *fakeBackend) Summary(context.Context) (models.Summary, error) {
	return models.Summary{Users: len(f.users), ActiveUsers: 11, InactiveUsers: 4, Records: 15}, nil
}

func (f *fakeBackend) Navigation(context.Context) []models.NavItem { return models.Navigation() }

func (f *fakeBackend) RecordsView(context.Context) (*table.View[models.Record], error) {
	return table.NewView(table.NewEngine(models.RecordSchema, table.DefaultOptions()), models.SampleRecords()), nil
}

func (f *fakeBackend) UsersView(context.Context) (*table.View[models.User], error) {
	return table.NewView(table.NewEngine(models.UserSchema, table.DefaultOptions()), f.users), nil
}

func (f *fakeBackend) DefaultState() table.State { return table.NewState(models.FieldID) }

func newBackend() *fakeBackend { return &fakeBackend{users: models.SampleUsers()} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func usersListing() *listing[models.User] {
	b := newBackend()
	v, _ := b.UsersView(context.Background())
	return newListing("Users", "No users found", v, b.DefaultState())
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// loggedIn drives the login form and runs the resulting commands.
func loggedIn(t *testing.T, b *fakeBackend) Model {
	t.Helper()
	m := New(context.Background(), b)
	m = send(t, m, runes("admin@example.com"), keyOf(tea.KeyEnter), runes("admin123"))

	next, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	next, cmd = next.Update(cmd())
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())
	return next.(Model)
}

// =================================================================
// page size stepping
// =================================================================

func TestStepPageSize(t *testing.T) {
	tests := []struct {
		current, dir, want int
	}{
		{10, 1, 20},
		{10, -1, 5},
		{5, -1, 5},
		{50, 1, 50},
		{7, 1, 10},
		{7, -1, 5},
		{100, 1, 100},
		{3, -1, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stepPageSize(tt.current, tt.dir), "current=%d dir=%d", tt.current, tt.dir)
	}
}

// =================================================================
// listing
// =================================================================

func TestListing_LiveSearch(t *testing.T) {
	l := usersListing()

	l.update(runes("/"))
	require.True(t, l.capturing())
	l.update(runes("admin"))

	assert.Equal(t, "admin", l.ctrl.State().Query)
	assert.Equal(t, 4, l.ctrl.Result().Page.Total)

	l.update(keyOf(tea.KeyEnter))
	assert.False(t, l.capturing())
	assert.Equal(t, "admin", l.ctrl.State().Query)
}

func TestListing_EscClearsSearch(t *testing.T) {
	l := usersListing()

	l.update(runes("/"))
	l.update(runes("zzz"))
	assert.Equal(t, 0, l.ctrl.Result().Page.Total)
	assert.Contains(t, l.view(), "No users found")

	l.update(keyOf(tea.KeyEsc))
	assert.Empty(t, l.ctrl.State().Query)
	assert.Equal(t, 15, l.ctrl.Result().Page.Total)
}

func TestListing_PageNavigation(t *testing.T) {
	l := usersListing()

	l.update(runes("n"))
	assert.Equal(t, 2, l.ctrl.State().Page)
	l.update(runes("n"))
	assert.Equal(t, 2, l.ctrl.State().Page)
	l.update(runes("g"))
	assert.Equal(t, 1, l.ctrl.State().Page)
	l.update(runes("G"))
	assert.Equal(t, 2, l.ctrl.State().Page)
	l.update(runes("p"))
	assert.Equal(t, 1, l.ctrl.State().Page)
}

func TestListing_JumpToPage(t *testing.T) {
	l := usersListing()

	l.update(runes(":"))
	l.update(runes("9"))
	l.update(keyOf(tea.KeyEnter))
	assert.Equal(t, 2, l.ctrl.State().Page, "page input is clamped")

	l.update(runes(":"))
	l.update(runes("x"))
	l.update(keyOf(tea.KeyEnter))
	assert.Equal(t, 2, l.ctrl.State().Page, "garbage keeps the current page")
}

func TestListing_SortSelectedColumn(t *testing.T) {
	l := usersListing()

	l.update(runes("l"))
	l.update(runes("s"))
	assert.Equal(t, table.SortConfig{Key: models.FieldName, Direction: table.Ascending}, l.ctrl.State().Sort)
	assert.Equal(t, "Alice Brown", l.ctrl.Result().Page.Items[0].Name)

	l.update(runes("s"))
	assert.Equal(t, table.Descending, l.ctrl.State().Sort.Direction)
	assert.Equal(t, "Mike Hall", l.ctrl.Result().Page.Items[0].Name)
	assert.Contains(t, l.view(), "Name ▼")
}

func TestListing_PageSize(t *testing.T) {
	l := usersListing()

	l.update(runes("+"))
	assert.Equal(t, 20, l.ctrl.State().PageSize)
	assert.Equal(t, 1, l.ctrl.Result().Page.TotalPages)

	l.update(runes("-"))
	l.update(runes("-"))
	assert.Equal(t, 5, l.ctrl.State().PageSize)
	assert.Contains(t, l.view(), "Showing 1 to 5 of 15 entries")
}

// =================================================================
// model
// =================================================================

func TestModel_LoginRejected(t *testing.T) {
	m := New(context.Background(), newBackend())
	m = send(t, m, runes("admin@example.com"), keyOf(tea.KeyTab), runes("wrong"))

	next, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m = send(t, next.(Model), cmd())

	assert.Equal(t, screenLogin, m.screen)
	assert.Contains(t, m.View(), "invalid email or password")
	assert.Empty(t, m.password.Value())
}

func TestModel_LoginLoadsViews(t *testing.T) {
	m := loggedIn(t, newBackend())

	assert.Equal(t, screenDashboard, m.screen)
	require.NotNil(t, m.users)
	require.NotNil(t, m.records)
	assert.Equal(t, 15, m.summary.Users)
	assert.Contains(t, m.View(), "Active users")
}

func TestModel_TabCyclesNavigation(t *testing.T) {
	m := loggedIn(t, newBackend())

	m = send(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, screenUsers, m.screen)
	m = send(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, screenRecords, m.screen)
	m = send(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, screenDashboard, m.screen)
}

func TestModel_ListingCapturesKeys(t *testing.T) {
	m := loggedIn(t, newBackend())
	m = send(t, m, keyOf(tea.KeyTab), runes("/"), runes("q"))

	assert.Equal(t, screenUsers, m.screen)
	assert.Equal(t, "q", m.users.ctrl.State().Query, "q is typed into the search box, not quit")
}

func TestModel_RefreshKeepsState(t *testing.T) {
	b := newBackend()
	m := loggedIn(t, b)
	m = send(t, m, keyOf(tea.KeyTab), runes("n"))
	require.Equal(t, 2, m.users.ctrl.State().Page)

	b.users = b.users[:8]
	next, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	m = send(t, next.(Model), cmd())

	assert.Equal(t, 1, m.users.ctrl.State().Page, "page is clamped against the smaller store")
	assert.Equal(t, 8, m.users.ctrl.Result().Page.Total)
}

func TestModel_Logout(t *testing.T) {
	b := newBackend()
	m := loggedIn(t, b)

	m = send(t, m, runes("o"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "tok", b.loggedOut)
	assert.True(t, m.email.Focused())
}
