package pdf

import (
	"errors"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GridSize is the width every column set must add up to.
const GridSize = 100

var ErrBadColumns = errors.New("pdf columns do not fit the grid")

type customConf struct {
	Colours struct {
		Black     *props.Cell
		LightGray *props.Cell
		DarkGray  *props.Cell
		White     *props.Cell
	}
	Widths  []int
	Headers []string
}

type Config struct {
	pdfConf    *entity.Config
	customConf customConf
}

type Handler struct {
	m core.Maroto

	cfg customConf
}

// GetConfig builds a landscape A4 layout for the given columns. widths must
// have one entry per header and sum to GridSize.
func GetConfig(headers []string, widths []int) (*Config, error) {
	if len(headers) == 0 || len(headers) != len(widths) {
		return nil, fmt.Errorf("%w: %d headers, %d widths", ErrBadColumns, len(headers), len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != GridSize {
		return nil, fmt.Errorf("%w: widths sum to %d", ErrBadColumns, sum)
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		WithPageNumber().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(GridSize).
		Build()

	whiteCell := &props.Cell{BackgroundColor: &props.WhiteColor, BorderType: border.Left | border.Right}
	lightGrayCell := &props.Cell{BackgroundColor: &props.Color{Red: 241, Green: 245, Blue: 249}, BorderType: border.Left | border.Right}
	darkGrayCell := &props.Cell{BackgroundColor: &props.Color{Red: 226, Green: 232, Blue: 240}, BorderType: border.Left | border.Right}
	blackCell := &props.Cell{BackgroundColor: &props.Color{Red: 30, Green: 41, Blue: 59}, BorderType: border.Left | border.Right}

	c := &Config{pdfConf: cfg}
	c.customConf.Colours.Black = blackCell
	c.customConf.Colours.LightGray = lightGrayCell
	c.customConf.Colours.DarkGray = darkGrayCell
	c.customConf.Colours.White = whiteCell
	c.customConf.Widths = widths
	c.customConf.Headers = headers
	return c, nil
}

func NewHandler(cfg *Config) *Handler {
	return &Handler{
		m:   maroto.New(cfg.pdfConf),
		cfg: cfg.customConf,
	}
}

func (h *Handler) AddTitleAndHeader(title string) {
	h.m.AddRow(
		10,
		text.NewCol(GridSize, title, props.Text{
			Size:  14,
			Align: align.Center,
			Top:   2,
			Style: fontstyle.Bold,
			Color: &props.WhiteColor,
		}).WithStyle(h.cfg.Colours.Black),
	)
	hs := make([]core.Col, 0, len(h.cfg.Headers))
	for i, header := range h.cfg.Headers {
		hs = append(hs, text.NewCol(h.cfg.Widths[i], header, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   2,
			Left:  1,
			Right: 1,
		}).WithStyle(h.cfg.Colours.White))
	}
	h.m.AddRows(row.New(8).Add(hs...))
}

// AddDataRows appends striped rows; each row must have one cell per header.
func (h *Handler) AddDataRows(batch [][]string) {
	for i, content := range batch {
		var cell *props.Cell
		if i&1 == 0 {
			cell = h.cfg.Colours.DarkGray
		} else {
			cell = h.cfg.Colours.LightGray
		}
		cs := make([]core.Col, 0, len(content))
		for j, c := range content {
			if j >= len(h.cfg.Widths) {
				break
			}
			cs = append(cs, text.NewCol(h.cfg.Widths[j], c, props.Text{
				Size:  9,
				Style: fontstyle.Normal,
				Top:   2,
				Left:  1,
				Right: 1,
			}).WithStyle(cell))
		}
		h.m.AddRows(row.New(8).Add(cs...))
	}
}

// AddFooter writes a single muted line, e.g. "Showing 1 to 10 of 15".
func (h *Handler) AddFooter(line string) {
	h.m.AddRow(8, text.NewCol(GridSize, line, props.Text{
		Size:  8,
		Top:   2,
		Style: fontstyle.Italic,
		Color: &props.Color{Red: 100, Green: 116, Blue: 139},
	}))
}

func (h *Handler) Generate() (core.Document, error) {
	return h.m.Generate()
}
