package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated portal account. Council accounts carry the council
// they belong to; RICD accounts have no council.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	FirstName    string
	LastName     string
	PasswordHash string `json:"-"`
	Role         Role
	CouncilID    *uuid.UUID `gorm:"type:uuid"`
	IsActive     bool       `gorm:"default:true"`
	CreatedAt    time.Time

	Council *Council `gorm:"foreignKey:CouncilID"`
}

func (User) TableName() string { return "users" }

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role, CouncilID: u.CouncilID}
}
