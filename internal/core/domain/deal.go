package domain

const (
	// DefaultDealDays is assumed when no deal row exists for a month.
	DefaultDealDays = 22
	// ExpectedHoursPerDay converts contracted days into expected hours.
	ExpectedHoursPerDay = 8
)

// ConsultantDeal is the contracted working-day allotment for one consultant
// in one month. It is the sole denominator input to utilization.
type ConsultantDeal struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Year         int    `json:"year" gorm:"not null;uniqueIndex:idx_consultant_deals_month"`
	Month        int    `json:"month" gorm:"not null;uniqueIndex:idx_consultant_deals_month"`
	ConsultantID int64  `json:"consultant_id" gorm:"not null"`
	Consultant   string `json:"consultant" gorm:"size:100;not null;uniqueIndex:idx_consultant_deals_month"`
	DealDays     int    `json:"deal_days" gorm:"not null"`
	Role         string `json:"role" gorm:"size:20"`
}

func (ConsultantDeal) TableName() string { return "consultant_deals" }

// ConsultantVacation records vacation days taken in a month. Admin-maintained
// input for reporting; not consumed by the dashboard formulas.
type ConsultantVacation struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Consultant string `json:"consultant" gorm:"size:100;not null;uniqueIndex:idx_consultant_vacations_month"`
	Days       int    `json:"days" gorm:"not null"`
	Year       int    `json:"year" gorm:"not null;uniqueIndex:idx_consultant_vacations_month"`
	Month      int    `json:"month" gorm:"not null;uniqueIndex:idx_consultant_vacations_month"`
}

func (ConsultantVacation) TableName() string { return "consultant_vacations" }

// Utilization returns logged hours as a percentage of the hours expected from
// dealDays contracted days. The value is intentionally uncapped: logging more
// than the contract yields a figure above 100.
func Utilization(monthHours float64, dealDays int) float64 {
	expected := float64(dealDays) * ExpectedHoursPerDay
	if expected <= 0 {
		return 0
	}
	return monthHours / expected * 100
}
