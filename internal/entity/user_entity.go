package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

// User is a login principal. Content curation endpoints require role "admin".
type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
