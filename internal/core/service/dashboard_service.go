package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

const activityFeedSize = 5

// StatsCache is a read-through cache for the dashboard figure block (Redis).
// Get returns (nil, nil) on a miss. All failures are advisory; the service
// falls back to the store.
type StatsCache interface {
	Get(ctx context.Context, consultant string, year, month int) (*ports.DashboardStats, error)
	Set(ctx context.Context, consultant string, year, month int, stats *ports.DashboardStats) error
	StatsInvalidator
}

// DashboardService derives the consultant dashboard from the entry and deal
// stores.
type DashboardService struct {
	entries ports.EntryRepository
	deals   ports.DealRepository
	cache   StatsCache
	log     zerolog.Logger
}

func NewDashboardService(entries ports.EntryRepository, deals ports.DealRepository, cache StatsCache, log zerolog.Logger) *DashboardService {
	return &DashboardService{entries: entries, deals: deals, cache: cache, log: log}
}

// Stats computes today's hours, month hours, utilization and the distinct
// active-client count for the calling consultant.
func (s *DashboardService) Stats(ctx context.Context, caller ports.Identity, now time.Time) (*ports.DashboardStats, error) {
	if err := requireConsultant(caller); err != nil {
		return nil, err
	}

	date := domain.NewEntryDate(now)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, caller.Username, date.Year, date.MonthNo)
		if err != nil {
			s.log.Warn().Err(err).Str("consultant", caller.Username).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	todayHours, err := s.entries.SumHoursForDay(ctx, caller.Username, date.Year, date.MonthNo, date.Day)
	if err != nil {
		return nil, err
	}
	monthHours, err := s.entries.SumHoursForMonth(ctx, caller.Username, date.Year, date.MonthNo)
	if err != nil {
		return nil, err
	}
	activeClients, err := s.entries.CountDistinctClients(ctx, caller.Username, date.Year, date.MonthNo)
	if err != nil {
		return nil, err
	}

	dealDays := domain.DefaultDealDays
	deal, err := s.deals.FindDeal(ctx, caller.Username, date.Year, date.MonthNo)
	switch {
	case err == nil:
		dealDays = deal.DealDays
	case errors.Is(err, domain.ErrDealNotFound):
		// fall back to the default allotment
	default:
		return nil, err
	}

	stats := &ports.DashboardStats{
		TodayHours:    round1(todayHours),
		MonthHours:    round1(monthHours),
		Utilization:   round1(domain.Utilization(monthHours, dealDays)),
		ActiveClients: activeClients,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, caller.Username, date.Year, date.MonthNo, stats); err != nil {
			s.log.Warn().Err(err).Str("consultant", caller.Username).Msg("stats cache write failed")
		}
	}

	return stats, nil
}

// TodayEntries returns the caller's entries for the current day, newest first.
func (s *DashboardService) TodayEntries(ctx context.Context, caller ports.Identity, now time.Time) ([]domain.TimeEntry, error) {
	if err := requireConsultant(caller); err != nil {
		return nil, err
	}
	date := domain.NewEntryDate(now)
	return s.entries.ListForDay(ctx, caller.Username, date.Year, date.MonthNo, date.Day)
}

// RecentActivity returns the feed of the caller's most recently touched
// entries. An entry whose updated_at differs from created_at reads as
// "Updated", otherwise "Added".
func (s *DashboardService) RecentActivity(ctx context.Context, caller ports.Identity) ([]ports.ActivityItem, error) {
	if err := requireConsultant(caller); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListRecent(ctx, caller.Username, activityFeedSize)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ActivityItem, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		item := ports.ActivityItem{
			ID:          e.ID,
			Type:        ports.ActivityEntryAdded,
			Description: e.ActivityDescription(),
			Timestamp:   e.CreatedAt,
			User:        caller.Username,
		}
		if e.WasUpdated() {
			item.Type = ports.ActivityEntryUpdated
			item.Timestamp = e.UpdatedAt
		}
		items = append(items, item)
	}
	return items, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
