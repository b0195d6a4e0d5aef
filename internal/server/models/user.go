// Package models contains the persistent record types shared by the
// server-side repositories and services.
package models

import "time"

type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
