package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
	"github.com/simplystudent09/sanatan-spirituality/internal/tablestore"
)

const (
	statisticsTable    = "statistics"
	statisticsCacheKey = "site:statistics"
)

// Statistics returns the accomplishment counters, falling back to the
// compiled-in numbers when the store is unconfigured, failing, or empty.
func (s *Service) Statistics(ctx context.Context) []model.Statistic {
	if s.store == nil {
		return StaticStatistics()
	}

	var stats []model.Statistic
	if s.cache.Get(ctx, statisticsCacheKey, &stats) {
		return stats
	}

	if err := s.store.Select(ctx, statisticsTable, tablestore.Query{}, &stats); err != nil {
		log.Error().Err(err).Msg("failed to fetch statistics from table store")
		return StaticStatistics()
	}
	if len(stats) == 0 {
		return StaticStatistics()
	}

	s.cache.Set(ctx, statisticsCacheKey, stats)
	return stats
}
