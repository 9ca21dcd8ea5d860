package model

import "time"

// ServiceOptions are the interests a prospective member can pick on the
// join form. The empty string (no selection) is also accepted.
var ServiceOptions = []string{
	"Ashtanga Yoga",
	"Kundalini Meditation",
	"Spiritual Events",
	"Kirtans & Bhajans",
	"Sanatan Gurukul",
	"Spiritual Yatras",
	"Ramayan & Gita",
	"Upanishads Discourse",
}

// IsValidService reports whether service is empty or one of ServiceOptions.
func IsValidService(service string) bool {
	if service == "" {
		return true
	}
	for _, opt := range ServiceOptions {
		if service == opt {
			return true
		}
	}
	return false
}

// Lead is a prospective member's contact submission from the join form.
type Lead struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	ContactNumber string    `db:"contact_number" json:"contact_number"`
	Service       string    `db:"service" json:"service"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
