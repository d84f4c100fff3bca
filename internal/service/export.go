package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/service/pdf"
	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

var (
	recordWidths = []int{8, 22, 32, 14, 24}
	userWidths   = []int{7, 20, 28, 12, 21, 12}
)

// ExportRecords renders every filtered and sorted record of the view as a
// PDF table. Pagination parameters are ignored.
func (s *Service) ExportRecords(ctx context.Context, p models.ListParams) ([]byte, error) {
	state, err := s.stateFromParams(models.RecordSchema.Has, p)
	if err != nil {
		return nil, err
	}
	v, err := s.RecordsView(ctx)
	if err != nil {
		return nil, err
	}
	return exportPDF(ctx, s.logger, "Records", v, state, recordWidths)
}

func (s *Service) ExportUsers(ctx context.Context, p models.ListParams) ([]byte, error) {
	state, err := s.stateFromParams(models.UserSchema.Has, p)
	if err != nil {
		return nil, err
	}
	v, err := s.UsersView(ctx)
	if err != nil {
		return nil, err
	}
	return exportPDF(ctx, s.logger, "Users", v, state, userWidths)
}

func exportPDF[R any](ctx context.Context, log *slog.Logger, title string, v *table.View[R], state table.State, widths []int) ([]byte, error) {
	fields := v.Engine().Schema().Fields()
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Label
	}

	cfg, err := pdf.GetConfig(headers, widths)
	if err != nil {
		return nil, fmt.Errorf("pdf config: %w", err)
	}

	ordered := v.Ordered(state)
	rows := make([][]string, len(ordered))
	for i, r := range ordered {
		rows[i] = v.Engine().Cells(r)
	}

	h := pdf.NewHandler(cfg)
	h.AddTitleAndHeader(title)
	h.AddDataRows(rows)
	footer := fmt.Sprintf("%d entries", len(rows))
	if state.Query != "" {
		footer = fmt.Sprintf("%d entries matching %q", len(rows), state.Query)
	}
	h.AddFooter(footer)

	doc, err := h.Generate()
	if err != nil {
		log.ErrorContext(ctx, "generate pdf failed", slog.String("view", title), slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
