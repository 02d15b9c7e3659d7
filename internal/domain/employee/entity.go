package employee

import "time"

type Employee struct {
	ID        string
	UserID    *string
	Code      string // human-readable ID, e.g. OIJODO20250001
	FirstName string
	LastName  string
	Position  *string
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
