package entity

import "time"

// User usuario de la aplicación. Username es único.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
