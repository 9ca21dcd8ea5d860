package content

import (
	"context"
	"testing"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
)

func TestGroupMembersSortsAndBuckets(t *testing.T) {
	members := []model.TeamMember{
		{ID: "c", Name: "C", HierarchyLevel: 2, DisplayOrder: 1},
		{ID: "a", Name: "A", HierarchyLevel: 1, DisplayOrder: 2},
		{ID: "b", Name: "B", HierarchyLevel: 1, DisplayOrder: 1},
	}

	groups := GroupMembers(members)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Level != 1 || groups[1].Level != 2 {
		t.Fatalf("group levels = [%d %d], want [1 2]", groups[0].Level, groups[1].Level)
	}
	if groups[0].Members[0].ID != "b" || groups[0].Members[1].ID != "a" {
		t.Errorf("level 1 order = [%s %s], want [b a]", groups[0].Members[0].ID, groups[0].Members[1].ID)
	}
	if groups[1].Members[0].ID != "c" {
		t.Errorf("level 2 member = %s, want c", groups[1].Members[0].ID)
	}
}

func TestGroupMembersEmpty(t *testing.T) {
	if groups := GroupMembers(nil); groups != nil {
		t.Errorf("GroupMembers(nil) = %+v, want nil", groups)
	}
}

func TestTeamWithoutStoreIsEmpty(t *testing.T) {
	svc := NewService(nil, nil)
	if groups := svc.Team(context.Background()); groups != nil {
		t.Errorf("Team without a store = %+v, want nil", groups)
	}
}

func TestStatisticsFallsBackWithoutStore(t *testing.T) {
	svc := NewService(nil, nil)
	stats := svc.Statistics(context.Background())
	if len(stats) != len(StaticStatistics()) {
		t.Fatalf("got %d statistics, want the %d static ones", len(stats), len(StaticStatistics()))
	}
}
