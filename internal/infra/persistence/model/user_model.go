// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Status       string `gorm:"type:varchar(20);not null;default:Active"`
	Verified     string `gorm:"type:varchar(10)"`
	RoleID       int64  `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
