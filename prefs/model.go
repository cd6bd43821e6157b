package prefs

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// A Model is the essential data points for primary ID-based records,
// indicating when a record was created, last updated and soft deleted.
type Model struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt DeletedTime
}

// Exists asserts whether the record has been stored.
func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }

// DeletedTime is a nullable timestamp marking a record as soft deleted.
type DeletedTime struct {
	sql.NullTime
}

// IsDeleted asserts whether the record is soft deleted.
func (dt DeletedTime) IsDeleted() bool { return dt.Valid }

// A Profile is one named collection of stored option values a user
// switches between, such as one tuned for reading and one for
// proofreading.
//
// A Profile has many Settings.
type Profile struct {
	Model
	ExternalID uuid.UUID
	Name       string

	// Associations
	Settings []Setting
}

// Values flattens the Profile's settings into a Values map.
func (p Profile) Values() Values {
	vs := make(Values, len(p.Settings))
	for _, s := range p.Settings {
		vs[Key(s.Key)] = s.Value
	}

	return vs
}

// A Setting is one stored option value belonging to a Profile.
type Setting struct {
	Model
	ProfileID uint
	Key       string
	Value     string
}
