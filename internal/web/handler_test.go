package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/darulriyan/aplikasi-dashboard/api/v1"
	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/service"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
	"github.com/darulriyan/aplikasi-dashboard/internal/web"
)

// --- mock service ---

type mockService struct {
	login         func(ctx context.Context, email, password string) (models.Session, error)
	logout        func(ctx context.Context, token string)
	session       func(ctx context.Context, token string) (models.Session, error)
	summary       func(ctx context.Context) (models.Summary, error)
	listRecords   func(ctx context.Context, p models.ListParams) (models.RecordListing, error)
	listUsers     func(ctx context.Context, p models.ListParams) (models.UserListing, error)
	applyRecords  func(ctx context.Context, state table.State, a table.Action) (models.RecordListing, error)
	applyUsers    func(ctx context.Context, state table.State, a table.Action) (models.UserListing, error)
	exportRecords func(ctx context.Context, p models.ListParams) ([]byte, error)
	exportUsers   func(ctx context.Context, p models.ListParams) ([]byte, error)
}

func (m *mockService) Login(ctx context.Context, email, password string) (models.Session, error) {
	return m.login(ctx, email, password)
}
func (m *mockService) Logout(ctx context.Context, token string) { m.logout(ctx, token) }
func (m *mockService) Session(ctx context.Context, token string) (models.Session, error) {
	if m.session == nil {
		return validSession(ctx, token)
	}
	return m.session(ctx, token)
}
func (m *mockService) Navigation(context.Context) []models.NavItem { return models.Navigation() }
func (m *mockService) Summary(ctx context.Context) (models.Summary, error) {
	return m.summary(ctx)
}
func (m *mockService) ListRecords(ctx context.Context, p models.ListParams) (models.RecordListing, error) {
	return m.listRecords(ctx, p)
}
func (m *mockService) ListUsers(ctx context.Context, p models.ListParams) (models.UserListing, error) {
	return m.listUsers(ctx, p)
}
func (m *mockService) ApplyRecords(ctx context.Context, state table.State, a table.Action) (models.RecordListing, error) {
	return m.applyRecords(ctx, state, a)
}
func (m *mockService) ApplyUsers(ctx context.Context, state table.State, a table.Action) (models.UserListing, error) {
	return m.applyUsers(ctx, state, a)
}
func (m *mockService) ExportRecords(ctx context.Context, p models.ListParams) ([]byte, error) {
	return m.exportRecords(ctx, p)
}
func (m *mockService) ExportUsers(ctx context.Context, p models.ListParams) ([]byte, error) {
	return m.exportUsers(ctx, p)
}

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

const testToken = "cnv1q2ks4k1g00bk3d2g"

var testSession = models.Session{
	Token:     testToken,
	Email:     "admin@example.com",
	CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	ExpiresAt: time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC),
}

func validSession(_ context.Context, token string) (models.Session, error) {
	if token != testToken {
		return models.Session{}, service.ErrUnauthorized
	}
	return testSession, nil
}

func newServer(svc *mockService) http.Handler {
	h := web.NewHandler(svc, testLogger)
	return web.NewServer(h)
}

func doRequest(t *testing.T, srv http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: web.SessionCookie, Value: testToken})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func doAnonymous(t *testing.T, srv http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func userListing(s table.State) models.UserListing {
	engine := table.NewEngine(models.UserSchema, table.DefaultOptions())
	return table.NewView(engine, models.SampleUsers()).Render(s)
}

func recordListing(s table.State) models.RecordListing {
	engine := table.NewEngine(models.RecordSchema, table.DefaultOptions())
	return table.NewView(engine, models.SampleRecords()).Render(s)
}

// =================================================================
// Session gate
// =================================================================

func TestSessionGate_401_WithoutCookie(t *testing.T) {
	srv := newServer(&mockService{})

	for _, url := range []string{"/api/v1/users", "/api/v1/records", "/api/v1/dashboard", "/api/v1/nav", "/api/v1/session"} {
		rr := doAnonymous(t, srv, http.MethodGet, url, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, url)
	}
}

func TestSessionGate_BearerToken(t *testing.T) {
	srv := newServer(&mockService{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()

	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestID_EchoedOrGenerated(t *testing.T) {
	srv := newServer(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nav", nil)
	req.Header.Set(web.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	assert.Equal(t, "req-42", rr.Header().Get(web.RequestIDHeader))

	rr = doAnonymous(t, srv, http.MethodGet, "/api/v1/nav", "")
	assert.NotEmpty(t, rr.Header().Get(web.RequestIDHeader))
}

func TestMetrics_Public(t *testing.T) {
	rr := doAnonymous(t, newServer(&mockService{}), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

// =================================================================
// POST /api/v1/login, /api/v1/logout, GET /api/v1/session
// =================================================================

func TestLogin_200_SetsCookie(t *testing.T) {
	svc := &mockService{
		login: func(_ context.Context, email, password string) (models.Session, error) {
			assert.Equal(t, "admin@example.com", email)
			assert.Equal(t, "admin123", password)
			return testSession, nil
		},
	}

	rr := doAnonymous(t, newServer(svc), http.MethodPost, "/api/v1/login", `{"email":"admin@example.com","password":"admin123"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.SessionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "admin@example.com", resp.Email)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, web.SessionCookie, cookies[0].Name)
	assert.Equal(t, testToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_400_InvalidBody(t *testing.T) {
	srv := newServer(&mockService{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"missing password", `{"email":"admin@example.com"}`},
		{"not an email", `{"email":"admin","password":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doAnonymous(t, srv, http.MethodPost, "/api/v1/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestLogin_401_InvalidCredentials(t *testing.T) {
	svc := &mockService{
		login: func(context.Context, string, string) (models.Session, error) {
			return models.Session{}, service.ErrInvalidCredentials
		},
	}

	rr := doAnonymous(t, newServer(svc), http.MethodPost, "/api/v1/login", `{"email":"admin@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, service.ErrInvalidCredentials.Error(), resp.Error)
}

func TestLogout_204_ClearsCookie(t *testing.T) {
	var closed string
	svc := &mockService{logout: func(_ context.Context, token string) { closed = token }}

	rr := doRequest(t, newServer(svc), http.MethodPost, "/api/v1/logout", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, testToken, closed)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestGetSession_200(t *testing.T) {
	rr := doRequest(t, newServer(&mockService{}), http.MethodGet, "/api/v1/session", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.SessionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, testSession.ExpiresAt, resp.ExpiresAt)
}

// =================================================================
// GET /api/v1/nav, /api/v1/dashboard
// =================================================================

func TestGetNav_200(t *testing.T) {
	rr := doRequest(t, newServer(&mockService{}), http.MethodGet, "/api/v1/nav", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.NavResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "/users", resp.Items[1].Path)
}

func TestGetDashboard_200(t *testing.T) {
	svc := &mockService{
		summary: func(context.Context) (models.Summary, error) {
			return models.Summary{Users: 15, ActiveUsers: 11, InactiveUsers: 4, Records: 15}, nil
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/dashboard", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.DashboardResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, api.DashboardResponse{Users: 15, ActiveUsers: 11, InactiveUsers: 4, Records: 15}, resp)
}

func TestGetDashboard_500_InternalError(t *testing.T) {
	svc := &mockService{
		summary: func(context.Context) (models.Summary, error) {
			return models.Summary{}, errors.New("connection refused")
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/dashboard", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "internal server error", resp.Error)
}

// =================================================================
// GET /api/v1/users, /api/v1/records
// =================================================================

func TestListUsers_200(t *testing.T) {
	svc := &mockService{
		listUsers: func(_ context.Context, p models.ListParams) (models.UserListing, error) {
			assert.Equal(t, models.ListParams{}, p)
			return userListing(table.NewState(models.FieldID)), nil
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/users", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp api.UsersResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, api.Pagination{Page: 1, Limit: 10, Total: 15, TotalPages: 2, WindowStart: 1, WindowEnd: 10}, resp.Pagination)
	require.Len(t, resp.Items, 10)
	assert.Equal(t, "John Doe", resp.Items[0].Name)
	assert.Equal(t, api.Active, resp.Items[0].Status)
	assert.Equal(t, "1/15/2024", resp.Items[0].Cells[4])
	require.Len(t, resp.Columns, 6)
	assert.False(t, resp.Columns[5].Searchable)
	assert.Equal(t, api.ViewState{Sort: "id", Dir: api.Asc, Page: 1, Limit: 10}, resp.State)
}

func TestListUsers_QueryParams(t *testing.T) {
	var captured models.ListParams
	svc := &mockService{
		listUsers: func(_ context.Context, p models.ListParams) (models.UserListing, error) {
			captured = p
			return userListing(table.NewState(models.FieldID)), nil
		},
	}

	doRequest(t, newServer(svc), http.MethodGet, "/api/v1/users?q=admin&sort=name&dir=desc&page=2&limit=5", "")

	assert.Equal(t, models.ListParams{Query: "admin", Sort: "name", Dir: "desc", Page: 2, Limit: 5}, captured)
}

func TestListRecords_400_MalformedLimit(t *testing.T) {
	rr := doRequest(t, newServer(&mockService{}), http.MethodGet, "/api/v1/records?limit=ten", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "limit")
}

func TestListRecords_400_ServiceValidation(t *testing.T) {
	for _, err := range []error{service.ErrInvalidLimit, service.ErrUnknownField, service.ErrInvalidDirection} {
		svc := &mockService{
			listRecords: func(context.Context, models.ListParams) (models.RecordListing, error) {
				return models.RecordListing{}, err
			},
		}

		rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/records?limit=999", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code, err.Error())
	}
}

func TestListRecords_500_InternalError(t *testing.T) {
	svc := &mockService{
		listRecords: func(context.Context, models.ListParams) (models.RecordListing, error) {
			return models.RecordListing{}, errors.New("unexpected db error")
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/records", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestListRecords_EmptyResult(t *testing.T) {
	svc := &mockService{
		listRecords: func(context.Context, models.ListParams) (models.RecordListing, error) {
			s := table.NewState(models.FieldID)
			s.Query = "no such thing"
			return recordListing(s), nil
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/records?q=no+such+thing", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.RecordsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, api.Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 1, WindowStart: 0, WindowEnd: 0}, resp.Pagination)
}

// =================================================================
// POST /api/v1/{users,records}/actions
// =================================================================

func TestApplyUsersAction_200(t *testing.T) {
	svc := &mockService{
		applyUsers: func(_ context.Context, state table.State, a table.Action) (models.UserListing, error) {
			assert.Equal(t, table.State{
				Query:    "admin",
				Sort:     table.SortConfig{Key: "name", Direction: table.Descending},
				PageSize: 5,
				Page:     1,
			}, state)
			assert.Equal(t, table.Action{Kind: table.ActionGoToPage, Page: "3"}, a)
			return userListing(table.NewState(models.FieldID)), nil
		},
	}
	body := `{"state":{"q":"admin","sort":"name","dir":"desc","page":1,"limit":5},"action":{"type":"goToPage","page":"3"}}`

	rr := doRequest(t, newServer(svc), http.MethodPost, "/api/v1/users/actions", body)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestApplyRecordsAction_400(t *testing.T) {
	svc := &mockService{
		applyRecords: func(context.Context, table.State, table.Action) (models.RecordListing, error) {
			return models.RecordListing{}, service.ErrUnknownAction
		},
	}
	srv := newServer(svc)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `[`},
		{"bad direction", `{"state":{"dir":"up","page":1,"limit":10},"action":{"type":"nextPage"}}`},
		{"unknown action", `{"state":{"dir":"asc","page":1,"limit":10},"action":{"type":"shuffle"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, srv, http.MethodPost, "/api/v1/records/actions", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

// =================================================================
// GET /api/v1/{users,records}/export
// =================================================================

func TestExportUsers_200(t *testing.T) {
	svc := &mockService{
		exportUsers: func(_ context.Context, p models.ListParams) ([]byte, error) {
			assert.Equal(t, models.ListParams{Query: "admin", Sort: "email"}, p)
			return []byte("%PDF-1.3 test"), nil
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/users/export?q=admin&sort=email&page=4", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "users.pdf")
	assert.Equal(t, "%PDF-1.3 test", rr.Body.String())
}

func TestExportRecords_400(t *testing.T) {
	svc := &mockService{
		exportRecords: func(context.Context, models.ListParams) ([]byte, error) {
			return nil, service.ErrUnknownField
		},
	}

	rr := doRequest(t, newServer(svc), http.MethodGet, "/api/v1/records/export?sort=salary", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
