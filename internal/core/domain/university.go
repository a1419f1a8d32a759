package domain

import "strings"

// University is a tenant. It is created out of band and read-only to the API.
type University struct {
	ID           string   `json:"id"           bson:"_id"`
	Name         string   `json:"name"         bson:"name"`
	Logo         string   `json:"logo"         bson:"logo"`
	EmailDomains []string `json:"emailDomains" bson:"emailDomains"`
}

// AcceptsEmail reports whether email ends with one of the university's domains.
func (u *University) AcceptsEmail(email string) bool {
	for _, d := range u.EmailDomains {
		if d != "" && strings.HasSuffix(email, d) {
			return true
		}
	}
	return false
}
