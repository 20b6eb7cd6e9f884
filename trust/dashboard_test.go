package trust

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuildReportHealthyCampaign(t *testing.T) {
	report := BuildReport(CampaignStats{
		Title:       "Clean Water",
		Deadline:    now.Add(30 * 24 * time.Hour),
		Active:      true,
		Donations:   30,
		Withdrawals: 3,
	}, now)

	assert.Equal(t, 50, report.ActivityScore)
	assert.Equal(t, 27, report.DisciplineScore)
	assert.Equal(t, 20, report.StatusScore)
	assert.Equal(t, 97, report.Score)
	assert.Equal(t, "A", report.Grade)
	assert.False(t, report.DeadlinePassed)
}

func TestBuildReportActivityCap(t *testing.T) {
	report := BuildReport(CampaignStats{
		Deadline:  now.Add(time.Hour),
		Active:    true,
		Donations: 1000,
	}, now)
	assert.Equal(t, 50, report.ActivityScore)
}

func TestBuildReportWithdrawalsWithoutDonations(t *testing.T) {
	report := BuildReport(CampaignStats{
		Deadline:    now.Add(time.Hour),
		Active:      true,
		Withdrawals: 5,
	}, now)

	assert.Equal(t, 1.0, report.WithdrawalRatio)
	assert.Equal(t, 0, report.DisciplineScore)
	assert.Equal(t, 0, report.ActivityScore)
	assert.Equal(t, 20, report.Score)
	assert.Equal(t, "E", report.Grade)
}

func TestBuildReportDisciplineFloor(t *testing.T) {
	// More withdrawals than donations must not go negative
	report := BuildReport(CampaignStats{
		Deadline:    now.Add(time.Hour),
		Active:      true,
		Donations:   2,
		Withdrawals: 10,
	}, now)
	assert.Equal(t, 0, report.DisciplineScore)
}

func TestBuildReportStatusScores(t *testing.T) {
	activeInside := BuildReport(CampaignStats{Deadline: now.Add(time.Hour), Active: true}, now)
	assert.Equal(t, 20, activeInside.StatusScore)

	activePast := BuildReport(CampaignStats{Deadline: now.Add(-time.Hour), Active: true}, now)
	assert.Equal(t, 10, activePast.StatusScore)
	assert.True(t, activePast.DeadlinePassed)

	closed := BuildReport(CampaignStats{Deadline: now.Add(time.Hour), Active: false}, now)
	assert.Equal(t, 5, closed.StatusScore)
}

func TestGradeBoundaries(t *testing.T) {
	cases := map[int]string{
		100: "A", 85: "A",
		84: "B", 70: "B",
		69: "C", 55: "C",
		54: "D", 40: "D",
		39: "E", 0: "E",
	}
	for score, grade := range cases {
		assert.Equal(t, grade, gradeFor(score), "score=%d", score)
	}
}
