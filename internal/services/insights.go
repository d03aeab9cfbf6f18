package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/repositories"
)

// InsightService runs the analyzers over a storage snapshot. Comprehensive
// pulls the snapshot once and hands the same slice to all three analyzers,
// so a report never mixes two states of the table.
type InsightService interface {
	SourceRejection(ctx context.Context) (*models.SourceRejectionReport, error)
	ResumePerformance(ctx context.Context) (*models.ResumePerformanceReport, error)
	ResponseTime(ctx context.Context) (*models.ResponseTimeReport, error)
	Comprehensive(ctx context.Context) (*models.ComprehensiveReport, error)
}

type insightService struct {
	appRepo        repositories.ApplicationRepository
	sourceAnalyzer SourceAnalyzer
	resumeAnalyzer ResumeAnalyzer
	responseTimes  ResponseTimeAnalyzer
}

func NewInsightService(appRepo repositories.ApplicationRepository, clock Clock) InsightService {
	return &insightService{
		appRepo:        appRepo,
		sourceAnalyzer: NewSourceAnalyzer(),
		resumeAnalyzer: NewResumeAnalyzer(),
		responseTimes:  NewResponseTimeAnalyzer(clock),
	}
}

func (s *insightService) SourceRejection(ctx context.Context) (*models.SourceRejectionReport, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.sourceAnalyzer.Analyze(records), nil
}

func (s *insightService) ResumePerformance(ctx context.Context) (*models.ResumePerformanceReport, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.resumeAnalyzer.Analyze(records), nil
}

func (s *insightService) ResponseTime(ctx context.Context) (*models.ResponseTimeReport, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.responseTimes.Analyze(records), nil
}

func (s *insightService) Comprehensive(ctx context.Context) (*models.ComprehensiveReport, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	detailed := models.DetailedReports{
		SourceRejection:   s.sourceAnalyzer.Analyze(records),
		ResumePerformance: s.resumeAnalyzer.Analyze(records),
		ResponseTime:      s.responseTimes.Analyze(records),
	}

	return &models.ComprehensiveReport{
		Narrative: renderComprehensiveNarrative(detailed),
		Detailed:  detailed,
	}, nil
}

func (s *insightService) snapshot() ([]models.Application, error) {
	records, err := s.appRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load application snapshot: %w", err)
	}
	return records, nil
}

func renderComprehensiveNarrative(detailed models.DetailedReports) string {
	var b strings.Builder

	source := detailed.SourceRejection
	resume := detailed.ResumePerformance
	response := detailed.ResponseTime
	empty := len(source.Insights) == 0 && len(resume.Versions) == 0 && len(response.Averages) == 0

	b.WriteString("============================================\n")
	b.WriteString("   📈 JOB SEARCH INSIGHTS REPORT\n")
	b.WriteString("============================================\n\n")

	b.WriteString("🔑 Key Findings:\n")
	if source.LowestRejection != nil {
		fmt.Fprintf(&b, "- Best performing source: %s (%d%% success rate)\n",
			source.LowestRejection.Source, source.LowestRejection.SuccessRate)
	}
	if resume.Best != nil {
		fmt.Fprintf(&b, "- Best resume version: %s (%d%% success rate)\n",
			resume.Best.Version, resume.Best.SuccessRate)
	}
	if avg, ok := response.Averages[models.StatusInterview]; ok {
		fmt.Fprintf(&b, "- Average time to interview: %d days\n", avg)
	}
	if avg, ok := response.Averages[models.StatusOffer]; ok {
		fmt.Fprintf(&b, "- Average time to offer: %d days\n", avg)
	}
	if empty {
		b.WriteString("- 📭 No applications tracked yet — add your first application to unlock insights.\n")
	}

	b.WriteString("\n💡 Recommendations:\n")
	fired := false
	for _, stats := range source.Insights {
		if stats.RejectionRate > 50 {
			fmt.Fprintf(&b, "- Your %s rejection rate is above 50%% — rework how you source applications there.\n",
				stats.Source)
			fired = true
		}
	}
	for _, stats := range resume.Versions {
		if stats.SuccessRate < 30 {
			fmt.Fprintf(&b, "- Resume version %s converts below 30%% — revise it before your next application.\n",
				stats.Version)
			fired = true
		}
	}
	if avg, ok := response.Averages[models.StatusInterview]; ok && avg > 14 {
		b.WriteString("- Interviews average over two weeks out — schedule follow-ups for pending applications.\n")
		fired = true
	}
	if !fired && !empty {
		b.WriteString("- Keep doing what you're doing — no red flags in this report.\n")
	}

	b.WriteString("\n📋 Detailed Analysis:\n\n")
	b.WriteString(source.Narrative)
	b.WriteString("\n\n")
	b.WriteString(resume.Narrative)
	b.WriteString("\n\n")
	b.WriteString(response.Narrative)

	return b.String()
}
