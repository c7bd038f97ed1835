// Package entity contains the core business objects of the project.
package entity

import "time"

// RoleKind is the type of credit a person holds on a movie.
type RoleKind string

const (
	// RoleActor credits a person as an actor.
	RoleActor RoleKind = "actor"
	// RoleDirector credits a person as a director.
	RoleDirector RoleKind = "director"
	// RoleProducer credits a person as a producer.
	RoleProducer RoleKind = "producer"
)

// RoleKinds lists every kind in presentation order.
var RoleKinds = []RoleKind{RoleActor, RoleDirector, RoleProducer}

// String returns the string representation of the RoleKind.
func (k RoleKind) String() string {
	return string(k)
}

// IsValid checks if the RoleKind is a known value.
func (k RoleKind) IsValid() bool {
	switch k {
	case RoleActor, RoleDirector, RoleProducer:
		return true
	default:
		return false
	}
}

// Role is a join row crediting a person on a movie. The pair is unique per kind.
type Role struct {
	Kind      RoleKind
	PersonID  int64
	MovieID   int64
	CreatedAt time.Time
}

// Filmography groups the active movies a person is credited on, by kind.
type Filmography map[RoleKind][]*Movie

// Credits groups the active people credited on a movie, by kind.
type Credits map[RoleKind][]*Person
