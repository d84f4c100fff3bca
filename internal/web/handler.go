package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	api "github.com/darulriyan/aplikasi-dashboard/api/v1"
	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/service"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

// SessionCookie carries the session token between the browser and the API.
const SessionCookie = "console_session"

var errInvalidBody = errors.New("invalid request body")

type ServiceAPI interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context, token string)
	Session(ctx context.Context, token string) (models.Session, error)
	Navigation(ctx context.Context) []models.NavItem
	Summary(ctx context.Context) (models.Summary, error)
	ListRecords(ctx context.Context, p models.ListParams) (models.RecordListing, error)
	ListUsers(ctx context.Context, p models.ListParams) (models.UserListing, error)
	ApplyRecords(ctx context.Context, state table.State, a table.Action) (models.RecordListing, error)
	ApplyUsers(ctx context.Context, state table.State, a table.Action) (models.UserListing, error)
	ExportRecords(ctx context.Context, p models.ListParams) ([]byte, error)
	ExportUsers(ctx context.Context, p models.ListParams) ([]byte, error)
}

type Handler struct {
	svc      ServiceAPI
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(svc ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Login implements api.ServerInterface. On success the session token is
// returned in the console_session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.handleError(w, r, errInvalidBody)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		h.handleError(w, r, fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}

	sess, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := sessionFrom(r.Context()); ok {
		h.svc.Logout(r.Context(), sess.Token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		h.handleError(w, r, service.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) GetNav(w http.ResponseWriter, r *http.Request) {
	nav := h.svc.Navigation(r.Context())
	resp := api.NavResponse{Items: make([]api.NavItem, 0, len(nav))}
	for _, item := range nav {
		resp.Items = append(resp.Items, api.NavItem{Id: item.ID, Label: item.Label, Path: item.Path})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.DashboardResponse{
		Users:         sum.Users,
		ActiveUsers:   sum.ActiveUsers,
		InactiveUsers: sum.InactiveUsers,
		Records:       sum.Records,
	})
}

// ListRecords implements api.ServerInterface for GET /api/v1/records.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request, params api.ListRecordsParams) {
	p := listParams(params.Q, params.Sort, params.Dir, params.Page, params.Limit)
	res, err := h.svc.ListRecords(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordsResponse(res))
}

func (h *Handler) ApplyRecordsAction(w http.ResponseWriter, r *http.Request) {
	state, action, err := decodeAction(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	res, err := h.svc.ApplyRecords(r.Context(), state, action)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordsResponse(res))
}

func (h *Handler) ExportRecords(w http.ResponseWriter, r *http.Request, params api.ExportRecordsParams) {
	p := listParams(params.Q, params.Sort, params.Dir, nil, nil)
	doc, err := h.svc.ExportRecords(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writePDF(w, "records.pdf", doc)
}

// ListUsers implements api.ServerInterface for GET /api/v1/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request, params api.ListUsersParams) {
	p := listParams(params.Q, params.Sort, params.Dir, params.Page, params.Limit)
	res, err := h.svc.ListUsers(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsersResponse(res))
}

func (h *Handler) ApplyUsersAction(w http.ResponseWriter, r *http.Request) {
	state, action, err := decodeAction(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	res, err := h.svc.ApplyUsers(r.Context(), state, action)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsersResponse(res))
}

func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request, params api.ExportUsersParams) {
	p := listParams(params.Q, params.Sort, params.Dir, nil, nil)
	doc, err := h.svc.ExportUsers(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writePDF(w, "users.pdf", doc)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, service.ErrUnknownField),
		errors.Is(err, service.ErrInvalidDirection),
		errors.Is(err, service.ErrUnknownAction):
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})

	default:
		h.logger.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// paramError reports query parameters the generated wrapper failed to bind.
func (h *Handler) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writePDF(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
