package content

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
	"github.com/simplystudent09/sanatan-spirituality/internal/tablestore"
)

const (
	teamTable    = "team_members"
	teamCacheKey = "site:team"
)

// Team returns members grouped by hierarchy tier, founders first. Without a
// configured store (or on fetch failure) the result is empty; the team page
// shows its own empty state.
func (s *Service) Team(ctx context.Context) []model.TeamGroup {
	if s.store == nil {
		return nil
	}

	var members []model.TeamMember
	if !s.cache.Get(ctx, teamCacheKey, &members) {
		err := s.store.Select(ctx, teamTable, tablestore.Query{
			Order: "hierarchy_level",
			Asc:   true,
		}, &members)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch team members from table store")
			return nil
		}
		s.cache.Set(ctx, teamCacheKey, members)
	}

	return GroupMembers(members)
}

// GroupMembers sorts by hierarchy level then display order and buckets
// members into one group per level.
func GroupMembers(members []model.TeamMember) []model.TeamGroup {
	if len(members) == 0 {
		return nil
	}

	sorted := make([]model.TeamMember, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].HierarchyLevel != sorted[j].HierarchyLevel {
			return sorted[i].HierarchyLevel < sorted[j].HierarchyLevel
		}
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	var groups []model.TeamGroup
	for _, m := range sorted {
		if len(groups) == 0 || groups[len(groups)-1].Level != m.HierarchyLevel {
			groups = append(groups, model.TeamGroup{Level: m.HierarchyLevel})
		}
		last := &groups[len(groups)-1]
		last.Members = append(last.Members, m)
	}
	return groups
}
