package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	api "github.com/darulriyan/aplikasi-dashboard/api/v1"
	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/service"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func listParams(q, sort *string, dir *api.SortDirection, page, limit *int) models.ListParams {
	return models.ListParams{
		Query: deref(q),
		Sort:  deref(sort),
		Dir:   string(deref(dir)),
		Page:  deref(page),
		Limit: deref(limit),
	}
}

func decodeAction(r *http.Request) (table.State, table.Action, error) {
	var body api.ViewActionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return table.State{}, table.Action{}, errInvalidBody
	}
	state, err := fromViewState(body.State)
	if err != nil {
		return table.State{}, table.Action{}, err
	}
	a := body.Action
	return state, table.Action{
		Kind:     table.ActionKind(a.Type),
		Query:    deref(a.Query),
		Field:    deref(a.Field),
		PageSize: deref(a.PageSize),
		Page:     deref(a.Page),
	}, nil
}

func fromViewState(vs api.ViewState) (table.State, error) {
	dir, err := table.ParseDirection(string(vs.Dir))
	if err != nil {
		return table.State{}, fmt.Errorf("%w: %q", service.ErrInvalidDirection, vs.Dir)
	}
	return table.State{
		Query:    vs.Q,
		Sort:     table.SortConfig{Key: vs.Sort, Direction: dir},
		PageSize: vs.Limit,
		Page:     vs.Page,
	}, nil
}

func toViewState(s table.State) api.ViewState {
	return api.ViewState{
		Q:     s.Query,
		Sort:  s.Sort.Key,
		Dir:   api.SortDirection(s.Sort.Direction.String()),
		Page:  s.Page,
		Limit: s.PageSize,
	}
}

func toPagination[R any](p table.Page[R]) api.Pagination {
	return api.Pagination{
		Page:        p.Page,
		Limit:       p.PageSize,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		WindowStart: p.WindowStart,
		WindowEnd:   p.WindowEnd,
	}
}

func toColumns[R any](schema *table.Schema[R]) []api.Column {
	fields := schema.Fields()
	cols := make([]api.Column, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, api.Column{
			Key:        f.Name,
			Label:      f.Label,
			Kind:       api.ColumnKind(f.Kind.String()),
			Searchable: f.Searchable,
		})
	}
	return cols
}

func toRecordsResponse(res models.RecordListing) api.RecordsResponse {
	resp := api.RecordsResponse{
		Columns:    toColumns(models.RecordSchema),
		Items:      make([]api.Record, 0, len(res.Page.Items)),
		Pagination: toPagination(res.Page),
		State:      toViewState(res.State),
	}
	for i, rec := range res.Page.Items {
		resp.Items = append(resp.Items, api.Record{
			Id:        rec.ID,
			Name:      rec.Name,
			Email:     rec.Email,
			Role:      rec.Role,
			CreatedAt: rec.CreatedAt,
			Cells:     res.Cells[i],
		})
	}
	return resp
}

func toUsersResponse(res models.UserListing) api.UsersResponse {
	resp := api.UsersResponse{
		Columns:    toColumns(models.UserSchema),
		Items:      make([]api.User, 0, len(res.Page.Items)),
		Pagination: toPagination(res.Page),
		State:      toViewState(res.State),
	}
	for i, u := range res.Page.Items {
		resp.Items = append(resp.Items, api.User{
			Id:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
			Status:    api.UserStatus(u.Status),
			Cells:     res.Cells[i],
		})
	}
	return resp
}

func toSessionResponse(s models.Session) api.SessionResponse {
	return api.SessionResponse{Email: s.Email, ExpiresAt: s.ExpiresAt}
}
