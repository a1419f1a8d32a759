package domain

import "time"

// Experience is a job or internship record owned by a user and scoped to a university.
type Experience struct {
	ID        string
	Company   string
	Role      string
	Location  string
	Summary   string
	Status    string
	UID       string
	UnivID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether uid is the experience's owner.
func (e *Experience) OwnedBy(uid string) bool {
	return uid != "" && e.UID == uid
}
