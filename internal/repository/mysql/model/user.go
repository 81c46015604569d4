package model

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Bio          string    `gorm:"type:text"`
	Image        string    `gorm:"type:varchar(512)"`
	PasswordHash string    `gorm:"column:password_hash;type:char(128);not null"`
	PasswordSalt string    `gorm:"column:password_salt;type:char(32);not null"`
	CreatedAt    time.Time `gorm:"type:datetime"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Bio:          m.Bio,
		Image:        m.Image,
		PasswordHash: m.PasswordHash,
		PasswordSalt: m.PasswordSalt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Bio:          u.Bio,
		Image:        u.Image,
		PasswordHash: u.PasswordHash,
		PasswordSalt: u.PasswordSalt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
