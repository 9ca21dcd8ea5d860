package model

import "time"

// NewsletterSubscriber is an email captured by the newsletter form.
// Emails are unique; a repeat insert is reported as already subscribed.
type NewsletterSubscriber struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}
