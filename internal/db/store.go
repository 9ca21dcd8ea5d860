// exposes a Store interface that is passed to API modules
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
)

type Store interface {
	// lead functions
	CreateLead(name, contactNumber, service string) (model.Lead, error)
	ListLeads() ([]model.Lead, error)

	// newsletter functions
	CreateSubscriber(email string) (model.NewsletterSubscriber, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	return &pgStore{db: database}
}
