package packets

// JoinRequest carries the join-form fields. Required-ness is checked in the
// handler after trimming, so whitespace-only values get the same message as
// empty ones.
type JoinRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Service       string `json:"service"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
