package domain

import "time"

// Member is one intake booking tracked on the board.
// ID and Stage are system-assigned; the remaining fields only enter
// through a validated candidate (see Validate).
type Member struct {
	ID    string
	Title Salutation
	Name  string
	Age   int
	Email string
	Phone string
	Stage Stage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyFields replaces the five editable fields with validated values
// and stamps UpdatedAt. ID, Stage and CreatedAt are never touched.
func (m *Member) ApplyFields(f Fields, now time.Time) {
	m.Title = f.Title
	m.Name = f.Name
	m.Age = f.Age
	m.Email = f.Email
	m.Phone = f.Phone
	m.UpdatedAt = now
}

// DisplayID returns a short identifier for display, truncating the
// UUID to 8 characters.
func (m *Member) DisplayID() string {
	if len(m.ID) >= 8 {
		return m.ID[:8]
	}
	return m.ID
}
