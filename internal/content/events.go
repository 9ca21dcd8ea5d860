// Package content reconciles the site's content collections: a curated
// baseline compiled into the binary, plus whatever the hosted table store
// currently holds. The store is an optional enhancement; every collection
// renders meaningfully without it.
package content

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/cache"
	"github.com/simplystudent09/sanatan-spirituality/internal/model"
	"github.com/simplystudent09/sanatan-spirituality/internal/tablestore"
)

const (
	eventsTable    = "events"
	eventsCacheKey = "site:events:upcoming"
)

// CategoryAll passes every event through the filter.
const CategoryAll = "All"

type Service struct {
	store *tablestore.Client
	cache *cache.Cache
}

// NewService builds the content service. Both collaborators may be nil:
// a nil store means fallback-only content, a nil cache disables caching.
func NewService(store *tablestore.Client, c *cache.Cache) *Service {
	return &Service{store: store, cache: c}
}

// Events returns the featured event (if any) and the merged upcoming event
// list, filtered by category. The featured pick comes from the unfiltered
// merged list, so it survives a filter that excludes its category.
func (s *Service) Events(ctx context.Context, category string) (*model.Event, []model.Event) {
	merged := MergeEvents(StaticEvents(), s.fetchRemoteEvents(ctx))
	featured := FeaturedEvent(merged)
	return featured, FilterByCategory(merged, category)
}

// fetchRemoteEvents pulls upcoming events from the table store, going
// through the cache first. Any failure degrades to nil; the baseline list
// keeps the page populated.
func (s *Service) fetchRemoteEvents(ctx context.Context) []model.Event {
	if s.store == nil {
		return nil
	}

	var events []model.Event
	if s.cache.Get(ctx, eventsCacheKey, &events) {
		return events
	}

	err := s.store.Select(ctx, eventsTable, tablestore.Query{
		Filters: map[string]string{"status": model.EventStatusUpcoming},
		Order:   "date",
		Asc:     true,
	}, &events)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch events from table store")
		return nil
	}

	s.cache.Set(ctx, eventsCacheKey, events)
	return events
}

// MergeEvents unions the baseline and remote lists, deduplicated by ID with
// the remote record winning, and re-sorts by date as calendar instants.
// Events whose dates don't parse sort last, keeping their input order.
func MergeEvents(static, remote []model.Event) []model.Event {
	remoteIDs := make(map[string]struct{}, len(remote))
	for _, ev := range remote {
		remoteIDs[ev.ID] = struct{}{}
	}

	merged := make([]model.Event, 0, len(static)+len(remote))
	for _, ev := range static {
		if _, dup := remoteIDs[ev.ID]; dup {
			continue
		}
		merged = append(merged, withPlaceholderImage(ev))
	}
	for _, ev := range remote {
		merged = append(merged, withPlaceholderImage(ev))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ti, iOK := parseEventDate(merged[i].Date)
		tj, jOK := parseEventDate(merged[j].Date)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.Before(tj)
	})
	return merged
}

// FilterByCategory keeps only events whose category exactly matches.
// Empty and "All" pass everything through.
func FilterByCategory(events []model.Event, category string) []model.Event {
	if category == "" || category == CategoryAll {
		return events
	}
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.Category == category {
			out = append(out, ev)
		}
	}
	return out
}

// FeaturedEvent returns the first flagged event, or nil.
func FeaturedEvent(events []model.Event) *model.Event {
	for i := range events {
		if events[i].IsFeatured {
			ev := events[i]
			if ev.ImageURL == eventPlaceholderImage {
				ev.ImageURL = featuredPlaceholderImage
			}
			return &ev
		}
	}
	return nil
}

var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseEventDate(raw string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func withPlaceholderImage(ev model.Event) model.Event {
	if ev.ImageURL == "" {
		ev.ImageURL = eventPlaceholderImage
	}
	return ev
}
