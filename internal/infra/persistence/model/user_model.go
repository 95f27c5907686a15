// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are assigned by the repository
// before insert; the table default only covers manual inserts.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;uniqueIndex:users_email_key;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Telephones []TelephoneModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// TelephoneModel mirrors the 'telephones' table. UserID references users.id.
type TelephoneModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AreaCode string    `gorm:"column:area_code;type:varchar(2);not null"`
	Number   string    `gorm:"type:varchar(11);not null"`
}

// TableName explicitly sets the table name for GORM.
func (TelephoneModel) TableName() string {
	return "telephones"
}
