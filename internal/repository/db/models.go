package db

import (
	"time"
)

type Record struct {
	ID        int32
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

type User struct {
	ID        int32
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
	Status    string
}
