package user

import "time"

// User is the single persisted entity: an account created at signup.
// Records are never updated or deleted.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}
