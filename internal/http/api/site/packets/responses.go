package packets

import "github.com/simplystudent09/sanatan-spirituality/internal/model"

type EventsResponse struct {
	Featured *model.Event  `json:"featured,omitempty"`
	Events   []model.Event `json:"events"`
}

type TeamResponse struct {
	Groups []model.TeamGroup `json:"groups"`
}

type StatisticsResponse struct {
	Statistics []model.Statistic `json:"statistics"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
