// Package trust builds per-campaign trust dashboards from on-chain
// donation and withdrawal activity.
package trust

import (
	"time"
)

// CampaignStats is the on-chain input for one dashboard
type CampaignStats struct {
	Title       string    `json:"title"`
	Deadline    time.Time `json:"deadline"`
	Active      bool      `json:"active"`
	Donations   int       `json:"donations"`
	Withdrawals int       `json:"withdrawals"`
}

// Report is a campaign trust dashboard
type Report struct {
	Score           int     `json:"score"` // 0-100 composite
	Grade           string  `json:"grade"`
	ActivityScore   int     `json:"activity_score"`   // 0-50
	DisciplineScore int     `json:"discipline_score"` // 0-30
	StatusScore     int     `json:"status_score"`     // 0-20
	WithdrawalRatio float64 `json:"withdrawal_ratio"`
	DeadlinePassed  bool    `json:"deadline_passed"`
	Narrative       string  `json:"narrative,omitempty"`
}

// BuildReport scores a campaign from its registered activity.
//
// Activity rewards donation volume, discipline rewards a low
// withdrawal-to-donation ratio, and status rewards campaigns that are
// still active inside their deadline.
func BuildReport(stats CampaignStats, now time.Time) Report {
	report := Report{
		DeadlinePassed: now.After(stats.Deadline),
	}

	// Activity: two points per donation, capped at 50
	report.ActivityScore = stats.Donations * 2
	if report.ActivityScore > 50 {
		report.ActivityScore = 50
	}

	// Discipline: fewer withdrawals per donation scores higher
	if stats.Donations > 0 {
		report.WithdrawalRatio = float64(stats.Withdrawals) / float64(stats.Donations)
	} else if stats.Withdrawals > 0 {
		// Withdrawals with no donations on record is the worst signal
		report.WithdrawalRatio = 1
	}
	report.DisciplineScore = int(30 * (1 - report.WithdrawalRatio))
	if report.DisciplineScore < 0 {
		report.DisciplineScore = 0
	}

	// Status: active within deadline scores full marks
	switch {
	case stats.Active && !report.DeadlinePassed:
		report.StatusScore = 20
	case stats.Active:
		report.StatusScore = 10
	default:
		report.StatusScore = 5
	}

	report.Score = report.ActivityScore + report.DisciplineScore + report.StatusScore
	report.Grade = gradeFor(report.Score)
	return report
}

func gradeFor(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "E"
	}
}
