package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, time.April, 20, 12, 0, 0, 0, time.UTC)

func timedRecord(status models.ApplicationStatus, daysAgo int) models.Application {
	return models.Application{
		Company:       "Acme",
		Role:          "Engineer",
		Source:        "LinkedIn",
		ResumeVersion: "v1",
		Status:        status,
		AppliedAt:     testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestResponseTimeAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze(nil)

	assert.Empty(t, report.Averages)
	assert.Empty(t, report.Fastest)
	assert.Empty(t, report.Slowest)
	assert.Contains(t, report.Narrative, "No completed applications found yet")
}

func TestResponseTimeAnalyzer_SingleInterview(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusInterview, 10),
	})

	require.Len(t, report.Averages, 1)
	assert.Equal(t, 10, report.Averages[models.StatusInterview])
	assert.Equal(t, models.StatusInterview, report.Fastest)
	assert.Equal(t, models.StatusInterview, report.Slowest)
}

func TestResponseTimeAnalyzer_ExcludesNonTerminalStatuses(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusApplied, 30),
		timedRecord(models.StatusWithdrawn, 25),
		timedRecord(models.StatusInterview, 10),
	})

	require.Len(t, report.Averages, 1)
	assert.Equal(t, 10, report.Averages[models.StatusInterview])
	assert.NotContains(t, report.Averages, models.StatusApplied)
	assert.NotContains(t, report.Averages, models.StatusWithdrawn)
	assert.Contains(t, report.Narrative, "(1 applications with responses)")
}

func TestResponseTimeAnalyzer_ExcludesUnrecognizedStatuses(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusInterview, 10),
		timedRecord(models.ApplicationStatus("Ghosted"), 50),
	})

	require.Len(t, report.Averages, 1)
	assert.Equal(t, 10, report.Averages[models.StatusInterview])
	assert.NotContains(t, report.Averages, models.ApplicationStatus("Ghosted"))
	assert.Contains(t, report.Narrative, "(1 applications with responses)")
}

func TestResponseTimeAnalyzer_OnlyNonTerminalRecords(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusApplied, 3),
		timedRecord(models.StatusWithdrawn, 8),
	})

	assert.Empty(t, report.Averages)
	assert.Contains(t, report.Narrative, "No completed applications found yet")
}

func TestResponseTimeAnalyzer_AveragesPerStatus(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusInterview, 4),
		timedRecord(models.StatusInterview, 8),
		timedRecord(models.StatusOffer, 20),
		timedRecord(models.StatusRejected, 30),
		timedRecord(models.StatusRejected, 40),
	})

	require.Len(t, report.Averages, 3)
	assert.Equal(t, 6, report.Averages[models.StatusInterview])
	assert.Equal(t, 20, report.Averages[models.StatusOffer])
	assert.Equal(t, 35, report.Averages[models.StatusRejected])
	assert.Equal(t, models.StatusInterview, report.Fastest)
	assert.Equal(t, models.StatusRejected, report.Slowest)
}

func TestResponseTimeAnalyzer_RoundsToNearestDay(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	// 10 days and 9 hours elapsed rounds down to 10.
	record := timedRecord(models.StatusOffer, 10)
	record.AppliedAt = record.AppliedAt.Add(-9 * time.Hour)

	report := analyzer.Analyze([]models.Application{record})

	assert.Equal(t, 10, report.Averages[models.StatusOffer])
}

func TestResponseTimeAnalyzer_TieKeepsEarlierStatusInScanOrder(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusInterview, 12),
		timedRecord(models.StatusOffer, 12),
	})

	// Equal averages: Interview precedes Offer in the scan order, so it is
	// reported as both fastest and slowest.
	assert.Equal(t, models.StatusInterview, report.Fastest)
	assert.Equal(t, models.StatusInterview, report.Slowest)
}

func TestResponseTimeAnalyzer_NarrativeListsStatusesInFixedOrder(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	report := analyzer.Analyze([]models.Application{
		timedRecord(models.StatusRejected, 10),
		timedRecord(models.StatusOffer, 20),
		timedRecord(models.StatusInterview, 30),
	})

	interviewLine := strings.Index(report.Narrative, "- Interview:")
	offerLine := strings.Index(report.Narrative, "- Offer:")
	rejectedLine := strings.Index(report.Narrative, "- Rejected:")
	require.NotEqual(t, -1, interviewLine)
	assert.Less(t, interviewLine, offerLine)
	assert.Less(t, offerLine, rejectedLine)
}

func TestResponseTimeAnalyzer_NarrativeConditionals(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})

	t.Run("fast interviews and offers", func(t *testing.T) {
		report := analyzer.Analyze([]models.Application{
			timedRecord(models.StatusInterview, 5),
			timedRecord(models.StatusOffer, 10),
		})

		assert.Contains(t, report.Narrative, "👍 Interviews come your way in under a week")
		assert.Contains(t, report.Narrative, "🌟 Offers arrive in under two weeks")
	})

	t.Run("quick rejections", func(t *testing.T) {
		report := analyzer.Analyze([]models.Application{
			timedRecord(models.StatusRejected, 3),
		})

		assert.Contains(t, report.Narrative, "🚨 Rejections arrive within 5 days")
	})

	t.Run("slow interviews", func(t *testing.T) {
		report := analyzer.Analyze([]models.Application{
			timedRecord(models.StatusInterview, 30),
		})

		assert.Contains(t, report.Narrative, "📬 Interviews take over three weeks on average")
		assert.NotContains(t, report.Narrative, "👍")
	})
}

func TestResponseTimeAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewResponseTimeAnalyzer(fixedClock{now: testNow})
	records := []models.Application{
		timedRecord(models.StatusInterview, 12),
		timedRecord(models.StatusRejected, 4),
		timedRecord(models.StatusOffer, 18),
	}

	first := analyzer.Analyze(records)
	second := analyzer.Analyze(records)

	assert.Equal(t, first.Averages, second.Averages)
	assert.Equal(t, first.Narrative, second.Narrative)
}
