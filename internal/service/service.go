package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

// SortNone in ListParams.Sort disables sorting.
const SortNone = "none"

type RecordSource interface {
	Records(ctx context.Context) ([]models.Record, error)
	Users(ctx context.Context) ([]models.User, error)
}

type Settings struct {
	Options       table.Options
	PageSize      int
	MaxPageSize   int
	AdminEmail    string
	AdminPassword string
	SessionTTL    time.Duration
}

type Service struct {
	src      RecordSource
	logger   *slog.Logger
	settings Settings

	records  *table.Engine[models.Record]
	users    *table.Engine[models.User]
	sessions *sessionStore
}

func New(src RecordSource, settings Settings, logger *slog.Logger) *Service {
	if settings.PageSize < 1 {
		settings.PageSize = table.DefaultPageSize
	}
	if settings.MaxPageSize < settings.PageSize {
		settings.MaxPageSize = max(100, settings.PageSize)
	}
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = 8 * time.Hour
	}
	return &Service{
		src:      src,
		logger:   logger,
		settings: settings,
		records:  table.NewEngine(models.RecordSchema, settings.Options),
		users:    table.NewEngine(models.UserSchema, settings.Options),
		sessions: newSessionStore(time.Now),
	}
}

func (s *Service) RecordsView(ctx context.Context) (*table.View[models.Record], error) {
	records, err := s.src.Records(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load records failed", slog.String("error", err.Error()))
		return nil, err
	}
	return table.NewView(s.records, records), nil
}

func (s *Service) UsersView(ctx context.Context) (*table.View[models.User], error) {
	users, err := s.src.Users(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load users failed", slog.String("error", err.Error()))
		return nil, err
	}
	return table.NewView(s.users, users), nil
}

// DefaultState is the initial state of a view with the configured page size.
func (s *Service) DefaultState() table.State {
	st := table.NewState(models.FieldID)
	st.PageSize = s.settings.PageSize
	return st
}

func (s *Service) ListRecords(ctx context.Context, p models.ListParams) (models.RecordListing, error) {
	state, err := s.stateFromParams(models.RecordSchema.Has, p)
	if err != nil {
		return models.RecordListing{}, err
	}
	v, err := s.RecordsView(ctx)
	if err != nil {
		return models.RecordListing{}, err
	}
	return observe("records", v.Render(state)), nil
}

func (s *Service) ListUsers(ctx context.Context, p models.ListParams) (models.UserListing, error) {
	state, err := s.stateFromParams(models.UserSchema.Has, p)
	if err != nil {
		return models.UserListing{}, err
	}
	v, err := s.UsersView(ctx)
	if err != nil {
		return models.UserListing{}, err
	}
	return observe("users", v.Render(state)), nil
}

func (s *Service) ApplyRecords(ctx context.Context, state table.State, a table.Action) (models.RecordListing, error) {
	if err := s.validateTransition(models.RecordSchema.Has, state, a); err != nil {
		return models.RecordListing{}, err
	}
	v, err := s.RecordsView(ctx)
	if err != nil {
		return models.RecordListing{}, err
	}
	res, err := v.Apply(state, a)
	if err != nil {
		return models.RecordListing{}, mapActionError(err)
	}
	return observe("records", res), nil
}

func (s *Service) ApplyUsers(ctx context.Context, state table.State, a table.Action) (models.UserListing, error) {
	if err := s.validateTransition(models.UserSchema.Has, state, a); err != nil {
		return models.UserListing{}, err
	}
	v, err := s.UsersView(ctx)
	if err != nil {
		return models.UserListing{}, err
	}
	res, err := v.Apply(state, a)
	if err != nil {
		return models.UserListing{}, mapActionError(err)
	}
	return observe("users", res), nil
}

func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	users, err := s.src.Users(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load users failed", slog.String("error", err.Error()))
		return models.Summary{}, err
	}
	records, err := s.src.Records(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load records failed", slog.String("error", err.Error()))
		return models.Summary{}, err
	}

	sum := models.Summary{Users: len(users), Records: len(records)}
	for _, u := range users {
		if u.Status == models.StatusActive {
			sum.ActiveUsers++
		} else {
			sum.InactiveUsers++
		}
	}
	return sum, nil
}

func (s *Service) Navigation(context.Context) []models.NavItem {
	return models.Navigation()
}

func (s *Service) stateFromParams(known func(string) bool, p models.ListParams) (table.State, error) {
	state := s.DefaultState()
	state.Query = p.Query

	if p.Limit != 0 {
		if err := s.checkLimit(p.Limit); err != nil {
			return table.State{}, err
		}
		state.PageSize = p.Limit
	}
	if p.Page != 0 {
		state.Page = p.Page
	}

	switch key := strings.TrimSpace(p.Sort); key {
	case "":
	case SortNone:
		state.Sort.Key = ""
	default:
		if !known(key) {
			return table.State{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		state.Sort.Key = key
	}

	dir, err := table.ParseDirection(p.Dir)
	if err != nil {
		return table.State{}, fmt.Errorf("%w: %q", ErrInvalidDirection, p.Dir)
	}
	state.Sort.Direction = dir
	return state, nil
}

func (s *Service) validateTransition(known func(string) bool, state table.State, a table.Action) error {
	if err := s.checkLimit(state.PageSize); err != nil {
		return err
	}
	if state.Sort.Key != "" && !known(state.Sort.Key) {
		return fmt.Errorf("%w: %q", ErrUnknownField, state.Sort.Key)
	}
	switch a.Kind {
	case table.ActionToggleSort:
		if !known(a.Field) {
			return fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
		}
	case table.ActionSetPageSize:
		if err := s.checkLimit(a.PageSize); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkLimit(n int) error {
	if n < 1 || n > s.settings.MaxPageSize {
		return fmt.Errorf("%w: got %d, maximum %d", ErrInvalidLimit, n, s.settings.MaxPageSize)
	}
	return nil
}

func mapActionError(err error) error {
	if errors.Is(err, table.ErrUnknownAction) {
		return fmt.Errorf("%w: %w", ErrUnknownAction, err)
	}
	return err
}
