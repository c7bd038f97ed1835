package model

import "time"

// MovieModel mirrors the 'entity_movie' table.
type MovieModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:varchar(255);not null"`
	ReleasedAt time.Time `gorm:"type:date;not null"`
	IsActive   bool      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "entity_movie"
}
