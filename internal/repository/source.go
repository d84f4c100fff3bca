package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
)

// SampleSource serves the built-in data set.
type SampleSource struct{}

func (SampleSource) Records(context.Context) ([]models.Record, error) {
	return models.SampleRecords(), nil
}

func (SampleSource) Users(context.Context) ([]models.User, error) {
	return models.SampleUsers(), nil
}

type dataFile struct {
	Records []models.Record `yaml:"records"`
	Users   []models.User   `yaml:"users"`
}

// FileSource serves record stores decoded once from a YAML, JSON or TSV file.
type FileSource struct {
	records []models.Record
	users   []models.User
}

func LoadFile(path string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return ParseTSV(bytes.NewReader(raw))
	}
	return ParseFile(raw)
}

// ParseFile decodes a data file. JSON input is accepted as YAML.
func ParseFile(raw []byte) (*FileSource, error) {
	var f dataFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	return newFileSource(f.Records, f.Users)
}

func newFileSource(records []models.Record, users []models.User) (*FileSource, error) {
	if err := uniqueIDs(records, func(r models.Record) int { return r.ID }); err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	if err := uniqueIDs(users, func(u models.User) int { return u.ID }); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	for _, u := range users {
		if !u.Status.Valid() {
			return nil, fmt.Errorf("user %d: %w: %q", u.ID, ErrInvalidStatus, u.Status)
		}
	}
	return &FileSource{records: records, users: users}, nil
}

func (s *FileSource) Records(context.Context) ([]models.Record, error) {
	return s.records, nil
}

func (s *FileSource) Users(context.Context) ([]models.User, error) {
	return s.users, nil
}

func uniqueIDs[T any](items []T, id func(T) int) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		n := id(it)
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}
