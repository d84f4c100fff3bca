package repository

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darulriyan/aplikasi-dashboard/config"
	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/repository/db"
)

const yamlFile = `
records:
  - id: 1
    name: John Doe
    email: john@example.com
    role: Admin
    createdAt: "2024-01-15"
users:
  - id: 7
    name: Edward Davis
    email: edward@example.com
    role: Editor
    createdAt: "2024-01-21T08:30:00Z"
    status: active
`

func TestParseFile_YAML(t *testing.T) {
	src, err := ParseFile([]byte(yamlFile))
	require.NoError(t, err)

	records, err := src.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Record{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin", CreatedAt: "2024-01-15"}, records[0])

	users, err := src.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 7, users[0].ID)
	assert.Equal(t, "Editor", users[0].Role)
	assert.Equal(t, models.StatusActive, users[0].Status)
}

func TestParseFile_JSON(t *testing.T) {
	raw := `{"records": [{"id": 2, "name": "Jane", "email": "jane@example.com", "role": "User", "createdAt": "2024-01-16"}]}`

	src, err := ParseFile([]byte(raw))
	require.NoError(t, err)

	records, _ := src.Records(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "Jane", records[0].Name)
}

func TestParseFile_InvalidStatus(t *testing.T) {
	raw := `users: [{id: 1, name: a, status: banned}]`

	_, err := ParseFile([]byte(raw))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseFile_DuplicateID(t *testing.T) {
	raw := `records: [{id: 1, name: a}, {id: 1, name: b}]`

	_, err := ParseFile([]byte(raw))

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlFile), 0644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	users, _ := src.Users(context.Background())
	assert.Len(t, users, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSampleSource(t *testing.T) {
	users, err := SampleSource{}.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 15)

	records, err := SampleSource{}.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 15)
	assert.Equal(t, users[0].Record, records[0])
}

func TestToUser(t *testing.T) {
	created := time.Date(2024, 1, 15, 3, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	u, err := toUser(db.User{ID: 3, Name: "Bob", Email: "bob@example.com", Role: "Editor", CreatedAt: created, Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-14T20:00:00Z", u.CreatedAt)
	assert.Equal(t, models.StatusInactive, u.Status)

	_, err = toUser(db.User{ID: 4, Status: "unknown"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOpen_SelectsSource(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	src, closeFn, err := Open(ctx, config.Config{}, log)
	require.NoError(t, err)
	closeFn()
	assert.IsType(t, SampleSource{}, src)

	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlFile), 0644))
	cfg := config.Config{Console: config.Console{RecordsFile: path}}

	src, closeFn, err = Open(ctx, cfg, log)
	require.NoError(t, err)
	closeFn()
	records, err := src.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	cfg.Console.RecordsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, closeFn, err = Open(ctx, cfg, log)
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
