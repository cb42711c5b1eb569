package model

import "time"

// RoleModel mirrors the 'roles' table. Permissions and Modules are stored
// as JSON documents on the row, matching the catalogue shape the frontend
// consumes.
type RoleModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);uniqueIndex;not null"`
	NormalizedName string `gorm:"type:varchar(100)"`
	Permissions    string `gorm:"type:jsonb"`
	Modules        string `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
