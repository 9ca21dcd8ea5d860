package db

import (
	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
)

// inserts a captured lead and returns the stored row.
func (s *pgStore) CreateLead(name, contactNumber, service string) (model.Lead, error) {
	var l model.Lead
	query := `
	INSERT INTO leads (name, contact_number, service, created_at)
	VALUES ($1, $2, $3, now())
	RETURNING id, name, contact_number, service, created_at;
	`
	if err := s.db.Get(&l, query, name, contactNumber, service); err != nil {
		log.Error().Msg("failed to create lead")
		return model.Lead{}, err
	}
	return l, nil
}

// lists captured leads, newest first.
func (s *pgStore) ListLeads() ([]model.Lead, error) {
	var leads []model.Lead
	query := `
	SELECT id, name, contact_number, service, created_at
	FROM leads
	ORDER BY created_at DESC;
	`
	if err := s.db.Select(&leads, query); err != nil {
		log.Error().Msg("failed to list leads")
		return nil, err
	}
	return leads, nil
}
