package ports

import (
	"context"
	"time"

	"github.com/forefront/clientplus/internal/core/domain"
)

// DashboardStats is the headline figure block on the consultant dashboard.
type DashboardStats struct {
	TodayHours    float64 `json:"today_hours"`
	MonthHours    float64 `json:"month_hours"`
	Utilization   float64 `json:"utilization"`
	ActiveClients int64   `json:"active_clients"`
}

const (
	ActivityEntryAdded   = "entry_added"
	ActivityEntryUpdated = "entry_updated"
)

// ActivityItem is one line of the recent-activity feed.
type ActivityItem struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user"`
}

// DashboardService derives consultant-facing statistics from the entry and
// deal stores.
type DashboardService interface {
	Stats(ctx context.Context, caller Identity, now time.Time) (*DashboardStats, error)
	TodayEntries(ctx context.Context, caller Identity, now time.Time) ([]domain.TimeEntry, error)
	RecentActivity(ctx context.Context, caller Identity) ([]ActivityItem, error)
}
