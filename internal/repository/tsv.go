package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
)

var (
	tsvRecordHeaders = []string{models.FieldID, models.FieldName, models.FieldEmail, models.FieldRole, models.FieldCreatedAt}
	tsvUserHeaders   = append(append([]string(nil), tsvRecordHeaders...), models.FieldStatus)
)

// ParseTSV reads a tab separated export with a header line. With a status
// column every line is a user and the records view gets the same rows
// without status; otherwise the file only feeds the records view.
func ParseTSV(r io.Reader) (*FileSource, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	hs, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return newFileSource(nil, nil)
		}
		return nil, fmt.Errorf("read tsv headers: %w", err)
	}
	withStatus, ok := tsvHeaders(hs)
	if !ok {
		return nil, ErrTSVHeaders
	}
	want := len(tsvRecordHeaders)
	if withStatus {
		want++
	}

	var (
		records []models.Record
		users   []models.User
	)
	for lineNo := 2; ; lineNo++ {
		line, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tsv line %d: %w", lineNo, err)
		}
		rec, errFields := parseTSVLine(line, want)
		if len(errFields) > 0 {
			return nil, fmt.Errorf("%w %d: %s", ErrTSVLine, lineNo, strings.Join(errFields, "; "))
		}
		records = append(records, rec)
		if withStatus {
			users = append(users, models.User{Record: rec, Status: models.Status(strings.ToLower(strings.TrimSpace(line[5])))})
		}
	}
	return newFileSource(records, users)
}

func tsvHeaders(hs []string) (withStatus, ok bool) {
	match := func(expected []string) bool {
		if len(hs) != len(expected) {
			return false
		}
		for i, h := range hs {
			if !strings.EqualFold(strings.TrimSpace(h), expected[i]) {
				return false
			}
		}
		return true
	}
	if match(tsvUserHeaders) {
		return true, true
	}
	return false, match(tsvRecordHeaders)
}

// parseTSVLine collects every problem of a line instead of stopping at the
// first one.
func parseTSVLine(line []string, want int) (models.Record, []string) {
	for i := range line {
		line[i] = strings.TrimSpace(line[i])
	}
	if len(line) != want {
		return models.Record{}, []string{fmt.Sprintf("got %d fields, want %d", len(line), want)}
	}

	var errFields []string
	id, err := strconv.Atoi(line[0])
	if err != nil {
		errFields = append(errFields, fmt.Sprintf("id given: %s", line[0]))
	}
	if line[1] == "" {
		errFields = append(errFields, "empty name")
	}
	if len(errFields) > 0 {
		return models.Record{}, errFields
	}
	return models.Record{
		ID:        id,
		Name:      line[1],
		Email:     line[2],
		Role:      line[3],
		CreatedAt: line[4],
	}, nil
}
