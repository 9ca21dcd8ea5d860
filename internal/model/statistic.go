package model

// Statistic is a single counter shown on the accomplishments page,
// looked up by label ("members", "events_conducted", "people_impacted").
type Statistic struct {
	ID    string `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
	Value int    `db:"value" json:"value"`
}
