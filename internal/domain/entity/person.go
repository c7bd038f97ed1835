// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Person is anyone credited on a movie: an actor, a director or a producer.
type Person struct {
	ID        int64     // Storage-assigned identifier.
	FirstName string    // Given name, 5 to 255 characters.
	LastName  string    // Family name, 5 to 255 characters.
	IsActive  bool      // Soft-delete flag; inactive people are hidden from lookups.
	CreatedAt time.Time // Set once when the person is created.
	Aliases   []*Alias  // Alternate names owned by this person, in insertion order.
}

// Alias is an alternate name uniquely bound to one Person.
type Alias struct {
	ID        int64     // Storage-assigned identifier.
	PersonID  int64     // Owner of the alias.
	Value     string    // Globally unique alias, 5 to 255 characters.
	CreatedAt time.Time // Set once when the alias is attached.
}

// AliasValues returns the alias strings in order.
func (p *Person) AliasValues() []string {
	values := make([]string, 0, len(p.Aliases))
	for _, alias := range p.Aliases {
		values = append(values, alias.Value)
	}

	return values
}

// OwnsAlias reports whether value is already one of the person's aliases.
func (p *Person) OwnsAlias(value string) bool {
	for _, alias := range p.Aliases {
		if alias.Value == value {
			return true
		}
	}

	return false
}
