package services

import (
	"fmt"
	"strings"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

// SourceAnalyzer groups applications by source and reports where rejections
// concentrate. It is a pure function of its input: no storage, no clock.
type SourceAnalyzer interface {
	Analyze(records []models.Application) *models.SourceRejectionReport
}

type sourceAnalyzer struct{}

func NewSourceAnalyzer() SourceAnalyzer {
	return &sourceAnalyzer{}
}

func (a *sourceAnalyzer) Analyze(records []models.Application) *models.SourceRejectionReport {
	report := &models.SourceRejectionReport{
		Insights: []models.SourceStats{},
	}

	if len(records) == 0 {
		report.Narrative = "📭 No application data available for source analysis."
		return report
	}

	// Group in first-seen order so the breakdown is stable across runs.
	order := []string{}
	groups := map[string]*models.SourceStats{}
	for _, record := range records {
		stats, ok := groups[record.Source]
		if !ok {
			stats = &models.SourceStats{
				Source:       record.Source,
				StatusCounts: map[models.ApplicationStatus]int{},
			}
			groups[record.Source] = stats
			order = append(order, record.Source)
		}
		stats.Total++
		stats.StatusCounts[record.Status]++
	}

	for _, source := range order {
		stats := groups[source]
		stats.RejectionRate = percent(stats.StatusCounts[models.StatusRejected], stats.Total)
		stats.SuccessRate = 100 - stats.RejectionRate
		report.Insights = append(report.Insights, *stats)
	}

	// Fold with strict comparison: the first group wins ties, including the
	// all-zero dataset where every rate is equal.
	highest := &report.Insights[0]
	lowest := &report.Insights[0]
	for i := range report.Insights {
		if report.Insights[i].RejectionRate > highest.RejectionRate {
			highest = &report.Insights[i]
		}
		if report.Insights[i].RejectionRate < lowest.RejectionRate {
			lowest = &report.Insights[i]
		}
	}
	report.HighestRejection = highest
	report.LowestRejection = lowest

	report.Narrative = a.renderNarrative(report, len(records))
	return report
}

func (a *sourceAnalyzer) renderNarrative(report *models.SourceRejectionReport, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Source Rejection Analysis (%d applications tracked)\n\n", total)
	fmt.Fprintf(&b, "✅ Best source: %s (%d%% success rate)\n",
		report.LowestRejection.Source, report.LowestRejection.SuccessRate)
	fmt.Fprintf(&b, "⚠️ Worst source: %s (%d%% rejection rate)\n",
		report.HighestRejection.Source, report.HighestRejection.RejectionRate)

	if report.HighestRejection.RejectionRate > 50 {
		fmt.Fprintf(&b, "🚨 %s rejects over half of your applications — rethink how you use this channel.\n",
			report.HighestRejection.Source)
	}
	if report.LowestRejection.SuccessRate > 70 {
		fmt.Fprintf(&b, "🎉 %s is working well for you — keep it up!\n",
			report.LowestRejection.Source)
	}

	b.WriteString("\nBreakdown by source:\n")
	for _, stats := range report.Insights {
		fmt.Fprintf(&b, "- %s: %d applications, %d%% rejected, %d%% success\n",
			stats.Source, stats.Total, stats.RejectionRate, stats.SuccessRate)
	}

	return strings.TrimRight(b.String(), "\n")
}
