// Package model holds the GORM persistence models. Each model mirrors one table.
package model

import "time"

// PersonModel mirrors the 'entity_person' table.
type PersonModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`

	Aliases []AliasModel `gorm:"foreignKey:PersonID"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "entity_person"
}

// AliasModel mirrors the 'entity_person_alias' table. Values are unique across all people.
type AliasModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PersonID  int64     `gorm:"not null;index"`
	Value     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_entity_person_alias_value"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AliasModel) TableName() string {
	return "entity_person_alias"
}
