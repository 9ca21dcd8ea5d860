package model

// Event categories as shown on the site filter bar.
const (
	CategoryYoga       = "Yoga"
	CategoryMeditation = "Meditation"
	CategoryDiscourse  = "Discourse"
	CategoryFestival   = "Festival"
	CategoryYatra      = "Yatra"
)

const (
	EventStatusUpcoming = "upcoming"
	EventStatusPast     = "past"
)

// Categories lists every valid event category, in display order.
func Categories() []string {
	return []string{
		CategoryYoga,
		CategoryMeditation,
		CategoryDiscourse,
		CategoryFestival,
		CategoryYatra,
	}
}

// Event is a single gathering, sourced either from the curated baseline
// list or the hosted table store.
type Event struct {
	ID               string `db:"id" json:"id"`
	Title            string `db:"title" json:"title"`
	Date             string `db:"date" json:"date"`
	Time             string `db:"time" json:"time"`
	Venue            string `db:"venue" json:"venue"`
	Description      string `db:"description" json:"description"`
	Category         string `db:"category" json:"category"`
	ImageURL         string `db:"image_url" json:"image_url"`
	RegistrationLink string `db:"registration_link" json:"registration_link"`
	IsFeatured       bool   `db:"is_featured" json:"is_featured"`
	Status           string `db:"status" json:"status"`
}
