package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

// ResponseTimeAnalyzer measures how long applications sit before reaching a
// terminal status. Elapsed time is clock-now minus applied-at for whatever
// status the record holds today; there is no transition log to consult.
type ResponseTimeAnalyzer interface {
	Analyze(records []models.Application) *models.ResponseTimeReport
}

type responseTimeAnalyzer struct {
	clock Clock
}

func NewResponseTimeAnalyzer(clock Clock) ResponseTimeAnalyzer {
	return &responseTimeAnalyzer{clock: clock}
}

func (a *responseTimeAnalyzer) Analyze(records []models.Application) *models.ResponseTimeReport {
	report := &models.ResponseTimeReport{
		Averages: map[models.ApplicationStatus]int{},
	}

	now := a.clock.Now()
	totals := map[models.ApplicationStatus]float64{}
	counts := map[models.ApplicationStatus]int{}
	qualifying := 0

	for _, record := range records {
		if !record.Status.Terminal() {
			continue
		}
		days := now.Sub(record.AppliedAt).Hours() / 24
		totals[record.Status] += days
		counts[record.Status]++
		qualifying++
	}

	if qualifying == 0 {
		report.Narrative = "📭 No completed applications found yet — keep applying!"
		return report
	}

	// A status with no qualifying records stays out of Averages entirely.
	for _, status := range models.TerminalStatuses {
		if counts[status] == 0 {
			continue
		}
		report.Averages[status] = int(math.Round(totals[status] / float64(counts[status])))
	}

	// Scan in TerminalStatuses order with strict comparison so the earlier
	// status wins ties.
	seeded := false
	for _, status := range models.TerminalStatuses {
		avg, ok := report.Averages[status]
		if !ok {
			continue
		}
		if !seeded {
			report.Fastest, report.Slowest = status, status
			seeded = true
			continue
		}
		if avg < report.Averages[report.Fastest] {
			report.Fastest = status
		}
		if avg > report.Averages[report.Slowest] {
			report.Slowest = status
		}
	}

	report.Narrative = a.renderNarrative(report, qualifying)
	return report
}

func (a *responseTimeAnalyzer) renderNarrative(report *models.ResponseTimeReport, qualifying int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "⏱️ Response Time Analysis (%d applications with responses)\n\n", qualifying)
	fmt.Fprintf(&b, "🚀 Fastest outcome: %s (avg %d days)\n", report.Fastest, report.Averages[report.Fastest])
	fmt.Fprintf(&b, "🐢 Slowest outcome: %s (avg %d days)\n", report.Slowest, report.Averages[report.Slowest])

	b.WriteString("\nAverage days from application to current status:\n")
	for _, status := range models.TerminalStatuses {
		if avg, ok := report.Averages[status]; ok {
			fmt.Fprintf(&b, "- %s: %d days\n", status, avg)
		}
	}

	if avg, ok := report.Averages[models.StatusInterview]; ok && avg < 7 {
		b.WriteString("👍 Interviews come your way in under a week — your profile is landing.\n")
	}
	if avg, ok := report.Averages[models.StatusOffer]; ok && avg < 14 {
		b.WriteString("🌟 Offers arrive in under two weeks — excellent momentum.\n")
	}
	if avg, ok := report.Averages[models.StatusRejected]; ok && avg < 5 {
		b.WriteString("🚨 Rejections arrive within 5 days — automated filters may be screening you out.\n")
	}
	if avg, ok := report.Averages[models.StatusInterview]; ok && avg > 21 {
		b.WriteString("📬 Interviews take over three weeks on average — follow up on pending applications.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
