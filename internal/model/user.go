package model

import (
	"time"

	"github.com/pcourtois/media-vault-go/internal/db"
)

// User is an account record. PasswordHash never leaves the server.
type User struct {
	ID           db.UUID   `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
