package models

import (
	"time"
)

// User is an application operator. Usernames are informally unique: the
// login flow takes the first match and nothing at the storage level
// enforces uniqueness.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"index"`
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "user" }
