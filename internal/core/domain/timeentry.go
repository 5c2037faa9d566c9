package domain

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// SourceClientPlus tags entries logged for the current day.
	SourceClientPlus = "Client Plus"
	// SourceExceptional tags backdated entries.
	SourceExceptional = "Exceptional Entry"

	// ActivityTypeClient is the only activity type produced by write paths.
	ActivityTypeClient = "Client"

	// MaxDailyHours bounds a single entry's working hours.
	MaxDailyHours = 24
)

// TimeEntry is a single logged unit of billable work. The domain, subdomain,
// scope and client fields are text snapshots taken at submission time so that
// later renames of the reference data never rewrite history.
type TimeEntry struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Source       string    `json:"source" gorm:"size:50;not null"`
	Year         int       `json:"year" gorm:"not null;index:idx_hist_data_consultant_date,priority:2"`
	MonthNo      int       `json:"month_no" gorm:"not null;index:idx_hist_data_consultant_date,priority:3"`
	Day          int       `json:"day" gorm:"not null"`
	Month        string    `json:"month" gorm:"size:20;not null"`
	ConsultantID int64     `json:"consultant_id" gorm:"not null;index"`
	Consultant   string    `json:"consultant" gorm:"size:100;not null;index:idx_hist_data_consultant_date,priority:1"`
	Client       string    `json:"client" gorm:"size:200;not null"`
	ActivityType string    `json:"activity_type" gorm:"size:10;not null"`
	WorkingHours float64   `json:"working_hours" gorm:"not null"`
	Notes        string    `json:"notes"`
	Domain       string    `json:"domain" gorm:"size:200;not null"`
	Subdomain    string    `json:"subdomain" gorm:"size:200;not null"`
	Scope        string    `json:"scope" gorm:"size:200;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (TimeEntry) TableName() string { return "hist_data" }

// WasUpdated reports whether the entry was edited after creation.
func (e *TimeEntry) WasUpdated() bool {
	return !e.UpdatedAt.Equal(e.CreatedAt)
}

// ActivityDescription synthesizes the dashboard feed line for this entry,
// e.g. `Added ElAbd entry - 3.5h`.
func (e *TimeEntry) ActivityDescription() string {
	verb := "Added"
	if e.WasUpdated() {
		verb = "Updated"
	}
	return fmt.Sprintf("%s %s entry - %sh", verb, e.Client, strconv.FormatFloat(e.WorkingHours, 'f', -1, 64))
}

// EntryDate holds the denormalized date components stored on every entry.
// All four fields derive from one calendar date and stay mutually consistent.
type EntryDate struct {
	Year    int
	MonthNo int
	Day     int
	Month   string
}

// NewEntryDate derives the stored date components from t.
func NewEntryDate(t time.Time) EntryDate {
	return EntryDate{
		Year:    t.Year(),
		MonthNo: int(t.Month()),
		Day:     t.Day(),
		Month:   t.Month().String(),
	}
}
