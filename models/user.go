package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SeedUser is one record of the seed file.
type SeedUser struct {
	Name  string
	Email string
}
