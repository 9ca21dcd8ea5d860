package db

import (
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
)

// ErrDuplicateSubscriber is returned when the email is already on the list.
var ErrDuplicateSubscriber = errors.New("email already subscribed")

// unique_violation per the PostgreSQL error code table
const pqUniqueViolation = "23505"

// inserts a newsletter subscriber. Returns ErrDuplicateSubscriber when the
// email is already present so callers can show the friendly message.
func (s *pgStore) CreateSubscriber(email string) (model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	query := `
	INSERT INTO newsletter_subscribers (email, subscribed_at)
	VALUES ($1, now())
	RETURNING id, email, subscribed_at;
	`
	if err := s.db.Get(&sub, query, email); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return model.NewsletterSubscriber{}, ErrDuplicateSubscriber
		}
		log.Error().Msg("failed to create newsletter subscriber")
		return model.NewsletterSubscriber{}, err
	}
	return sub, nil
}
