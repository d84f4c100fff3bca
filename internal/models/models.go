package models

import (
	"time"

	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

// Record is the generic row shape of the records view. CreatedAt keeps the
// stored date/time string; it is compared by instant, not lexically.
type Record struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email" yaml:"email"`
	Role      string `json:"role" yaml:"role"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type User struct {
	Record `yaml:",inline"`
	Status Status `json:"status" yaml:"status"`
}

type (
	RecordListing = table.Result[Record]
	UserListing   = table.Result[User]
)

type Summary struct {
	Users         int
	ActiveUsers   int
	InactiveUsers int
	Records       int
}

type NavItem struct {
	ID    string
	Label string
	Path  string
}

type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ListParams are the raw listing inputs of one request. Sort "none"
// disables sorting; an empty Sort keeps the schema default.
type ListParams struct {
	Query string
	Sort  string
	Dir   string
	Page  int
	Limit int
}
