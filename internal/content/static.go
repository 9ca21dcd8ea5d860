package content

import "github.com/simplystudent09/sanatan-spirituality/internal/model"

// Stock images substituted when an event carries no image of its own.
const (
	featuredPlaceholderImage = "https://images.pexels.com/photos/3822622/pexels-photo-3822622.jpeg"
	eventPlaceholderImage    = "https://images.pexels.com/photos/3822621/pexels-photo-3822621.jpeg"
)

// staticEvents is the curated baseline: always available, shown even when
// the hosted store is unconfigured or down. IDs are stable so a record
// migrated into the store supersedes its static twin during the merge.
var staticEvents = []model.Event{
	{
		ID:          "static-mahashivratri-2026",
		Title:       "Mahashivratri 2026",
		Date:        "2026-02-15",
		Time:        "6:00 PM onwards",
		Venue:       "SSF Centre, London",
		Description: "Night-long vigil with Rudra Abhishek, kirtans and guided Kundalini meditation.",
		Category:    model.CategoryFestival,
		IsFeatured:  true,
		Status:      model.EventStatusUpcoming,
	},
	{
		ID:          "static-kundalini-workshop",
		Title:       "Kundalini Meditation Workshop",
		Date:        "2026-03-07",
		Time:        "10:00 AM - 1:00 PM",
		Venue:       "Community Hall, Leicester",
		Description: "Introductory workshop on awakening practices, open to all levels.",
		Category:    model.CategoryMeditation,
		Status:      model.EventStatusUpcoming,
	},
	{
		ID:          "static-gita-discourse",
		Title:       "Bhagavad Gita Discourse",
		Date:        "2026-03-21",
		Time:        "5:30 PM",
		Venue:       "Online Satsang",
		Description: "Weekly discourse series on the Gita with Acharya Abhiyogi.",
		Category:    model.CategoryDiscourse,
		Status:      model.EventStatusUpcoming,
	},
}

// StaticEvents returns a copy of the baseline list so callers can't mutate
// the package data.
func StaticEvents() []model.Event {
	out := make([]model.Event, len(staticEvents))
	copy(out, staticEvents)
	return out
}

// staticStatistics backs the accomplishments counters when the store has
// nothing for us.
var staticStatistics = []model.Statistic{
	{ID: "static-members", Label: "members", Value: 10000},
	{ID: "static-events-conducted", Label: "events_conducted", Value: 50},
	{ID: "static-people-impacted", Label: "people_impacted", Value: 25000},
}

func StaticStatistics() []model.Statistic {
	out := make([]model.Statistic, len(staticStatistics))
	copy(out, staticStatistics)
	return out
}
