package model

import (
	"time"

	"catalog/internal/domain/entity"
)

// RoleModel mirrors one row of the 'movie_actor', 'movie_director' and
// 'movie_producer' join tables, which share this layout. Queries pick the
// table with RoleTable.
type RoleModel struct {
	PersonID  int64     `gorm:"primaryKey;autoIncrement:false"`
	MovieID   int64     `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"not null"`
}

var roleTables = map[entity.RoleKind]string{
	entity.RoleActor:    "movie_actor",
	entity.RoleDirector: "movie_director",
	entity.RoleProducer: "movie_producer",
}

// RoleTable returns the join table of kind, and false for unknown kinds.
func RoleTable(kind entity.RoleKind) (string, bool) {
	table, ok := roleTables[kind]

	return table, ok
}
