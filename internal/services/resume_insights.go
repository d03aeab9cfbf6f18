package services

import (
	"fmt"
	"strings"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

// ResumeAnalyzer groups applications by resume version and ranks versions by
// how often they convert into interviews or offers. Success here is
// (interview + offer) / total, a different formula from the source analyzer,
// so success and rejection do not have to sum to 100.
type ResumeAnalyzer interface {
	Analyze(records []models.Application) *models.ResumePerformanceReport
}

type resumeAnalyzer struct{}

func NewResumeAnalyzer() ResumeAnalyzer {
	return &resumeAnalyzer{}
}

func (a *resumeAnalyzer) Analyze(records []models.Application) *models.ResumePerformanceReport {
	report := &models.ResumePerformanceReport{
		Versions: []models.VersionStats{},
	}

	if len(records) == 0 {
		report.Narrative = "📭 No application data available for resume version analysis."
		return report
	}

	order := []string{}
	groups := map[string]*models.VersionStats{}
	for _, record := range records {
		stats, ok := groups[record.ResumeVersion]
		if !ok {
			stats = &models.VersionStats{
				Version:      record.ResumeVersion,
				StatusCounts: map[models.ApplicationStatus]int{},
			}
			groups[record.ResumeVersion] = stats
			order = append(order, record.ResumeVersion)
		}
		stats.Total++
		stats.StatusCounts[record.Status]++
	}

	for _, version := range order {
		stats := groups[version]
		interviews := stats.StatusCounts[models.StatusInterview]
		offers := stats.StatusCounts[models.StatusOffer]
		stats.SuccessRate = percent(interviews+offers, stats.Total)
		stats.InterviewRate = percent(interviews, stats.Total)
		stats.OfferRate = percent(offers, stats.Total)
		stats.RejectionRate = percent(stats.StatusCounts[models.StatusRejected], stats.Total)
		report.Versions = append(report.Versions, *stats)
	}

	// Selection is by success rate only; rejection rate is carried for the
	// narrative warnings but never drives best/worst.
	best := &report.Versions[0]
	worst := &report.Versions[0]
	for i := range report.Versions {
		if report.Versions[i].SuccessRate > best.SuccessRate {
			best = &report.Versions[i]
		}
		if report.Versions[i].SuccessRate < worst.SuccessRate {
			worst = &report.Versions[i]
		}
	}
	report.Best = best
	report.Worst = worst

	report.Narrative = a.renderNarrative(report, len(records))
	return report
}

func (a *resumeAnalyzer) renderNarrative(report *models.ResumePerformanceReport, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📄 Resume Version Performance (%d applications tracked)\n\n", total)
	fmt.Fprintf(&b, "🏆 Best version: %s — %d%% success, %d%% interview, %d%% offer (%d applications)\n",
		report.Best.Version, report.Best.SuccessRate, report.Best.InterviewRate,
		report.Best.OfferRate, report.Best.Total)
	fmt.Fprintf(&b, "📉 Worst version: %s — %d%% success, %d%% interview, %d%% offer (%d applications)\n",
		report.Worst.Version, report.Worst.SuccessRate, report.Worst.InterviewRate,
		report.Worst.OfferRate, report.Worst.Total)

	if report.Best.SuccessRate > report.Worst.SuccessRate+20 {
		fmt.Fprintf(&b, "💡 Version %s outperforms %s by more than 20 points — favor it for upcoming applications.\n",
			report.Best.Version, report.Worst.Version)
	}
	if report.Worst.RejectionRate > 60 {
		fmt.Fprintf(&b, "🚨 Version %s has a rejection rate above 60%% — a revision is overdue.\n",
			report.Worst.Version)
	}

	b.WriteString("\nBreakdown by version:\n")
	for _, stats := range report.Versions {
		fmt.Fprintf(&b, "- %s: %d applications, %d%% success, %d%% interview, %d%% offer, %d%% rejected\n",
			stats.Version, stats.Total, stats.SuccessRate, stats.InterviewRate,
			stats.OfferRate, stats.RejectionRate)
	}

	return strings.TrimRight(b.String(), "\n")
}
