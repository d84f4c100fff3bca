package models

import "github.com/darulriyan/aplikasi-dashboard/internal/table"

// Field names shared by both views.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldRole      = "role"
	FieldCreatedAt = "createdAt"
	FieldStatus    = "status"
)

// RecordSchema searches every column.
var RecordSchema = table.MustSchema(FieldID,
	table.NumberField(FieldID, "ID", func(r Record) int { return r.ID }),
	table.TextField(FieldName, "Name", func(r Record) string { return r.Name }),
	table.TextField(FieldEmail, "Email", func(r Record) string { return r.Email }),
	table.TextField(FieldRole, "Role", func(r Record) string { return r.Role }),
	table.TimestampField(FieldCreatedAt, "Created at", func(r Record) string { return r.CreatedAt }),
)

// UserSchema searches name, email and role only and shows the join date
// without a time.
var UserSchema = table.MustSchema(FieldID,
	table.NumberField(FieldID, "ID", func(u User) int { return u.ID }).Unsearchable(),
	table.TextField(FieldName, "Name", func(u User) string { return u.Name }),
	table.TextField(FieldEmail, "Email", func(u User) string { return u.Email }),
	table.TextField(FieldRole, "Role", func(u User) string { return u.Role }),
	table.TimestampField(FieldCreatedAt, "Created At", func(u User) string { return u.CreatedAt }).DateOnly().Unsearchable(),
	table.TextField(FieldStatus, "Status", func(u User) string { return string(u.Status) }).Unsearchable(),
)

// Navigation is the static menu of the console shell.
func Navigation() []NavItem {
	return []NavItem{
		{ID: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{ID: "users", Label: "Users", Path: "/users"},
		{ID: "records", Label: "Records", Path: "/records"},
	}
}
