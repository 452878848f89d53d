package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Email        *string   `gorm:"uniqueIndex"`
	CreatedAt    time.Time `gorm:"not null"`
}

// Account is the identity handed back to callers after register/login.
// It never carries the password hash.
type Account struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

func (user *User) Account() Account {
	return Account{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
