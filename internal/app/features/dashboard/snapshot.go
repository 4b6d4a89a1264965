// internal/app/features/dashboard/snapshot.go
package dashboard

import (
	"time"

	"github.com/dalemusser/tourdash/internal/app/system/timebucket"
)

// Snapshot is the complete output of one aggregation pass. It is built
// fresh for every request, never mutated afterwards, and discarded once
// rendered. Field names are part of the contract with the dashboard UI;
// cards, tables, and charts bind to them directly.
type Snapshot struct {
	SessionsByDay    []DayCount     `json:"sessionsByDay"`
	UserSegmentation map[string]int `json:"userSegmentation"`

	TotalRevenue    float64 `json:"totalRevenue"`
	RevenueDeltaPct float64 `json:"revenueDeltaPct"`

	SystemStatus StatusInfo `json:"systemStatus"`

	TotalResumes int64 `json:"totalResumes"`
	TotalAnswers int64 `json:"totalAnswers"`

	RecentUsers  []RecentUser `json:"recentUsers"`
	RecentLogins []RecentUser `json:"recentLogins"`

	TotalUsers        int     `json:"totalUsers"`
	PremiumUsers      int     `json:"premiumUsers"`
	UnusedTrialUsers  int     `json:"unusedTrialUsers"`
	ActiveTrialUsers  int     `json:"activeTrialUsers"`
	TrialAdoptionPct  float64 `json:"trialAdoptionPct"`
	ResumeAdoptionPct float64 `json:"resumeAdoptionPct"`
}

// DayCount is one bar of the 7-day sessions chart.
type DayCount struct {
	Label string `json:"label"` // short weekday name, e.g. "Fri"
	Count int    `json:"count"`
}

// StatusInfo is the last-known system status badge.
type StatusInfo struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RecentUser is one row of the recent signups / recent logins tables.
type RecentUser struct {
	Email       string     `json:"email"`
	FullName    string     `json:"fullName,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// Default status shown when the system_status collection is empty.
const (
	defaultStatus        = "operational"
	defaultStatusMessage = "All systems running smoothly"
)

// errorSnapshot is returned when a source read fails: every counter zero,
// the 7-day chart zero-filled for the reference window, and a visible
// "error" badge instead of a blank or crashed page.
func errorSnapshot(ref time.Time) Snapshot {
	return Snapshot{
		SessionsByDay:    zeroFilledWeek(ref),
		UserSegmentation: map[string]int{},
		SystemStatus: StatusInfo{
			Status:  "error",
			Message: "Dashboard data is temporarily unavailable",
		},
		RecentUsers:  []RecentUser{},
		RecentLogins: []RecentUser{},
	}
}

// zeroFilledWeek returns the 7-day window ending on ref's UTC day with
// every count at zero.
func zeroFilledWeek(ref time.Time) []DayCount {
	keys := timebucket.Last7DayKeys(ref)
	out := make([]DayCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, DayCount{Label: timebucket.DayLabel(k)})
	}
	return out
}
