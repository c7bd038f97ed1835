package model

import "time"

// UserModel mirrors the 'entity_user' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_entity_user_username"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "entity_user"
}
