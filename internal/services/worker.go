package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/repositories"
)

// DigestWorker drains queued digests and emails the comprehensive report.
// The report is always built in full before any mail call happens.
type DigestWorker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueDigest(digestID uuid.UUID)
}

type digestWorker struct {
	digestRepo     repositories.DigestRepository
	insightService InsightService
	mailer         Mailer
	concurrency    int
	maxRetries     int
	pollInterval   time.Duration
	jobQueue       chan uuid.UUID
	wg             sync.WaitGroup
	stopChan       chan struct{}
}

func NewDigestWorker(
	digestRepo repositories.DigestRepository,
	insightService InsightService,
	mailer Mailer,
	concurrency int,
	maxRetries int,
	pollInterval time.Duration,
) DigestWorker {
	return &digestWorker{
		digestRepo:     digestRepo,
		insightService: insightService,
		mailer:         mailer,
		concurrency:    concurrency,
		maxRetries:     maxRetries,
		pollInterval:   pollInterval,
		jobQueue:       make(chan uuid.UUID, 100),
		stopChan:       make(chan struct{}),
	}
}

// Start implements DigestWorker.
func (w *digestWorker) Start(ctx context.Context) {
	log.Printf("🚀 Starting digest worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Digest worker started successfully")
}

// Stop implements DigestWorker.
func (w *digestWorker) Stop() {
	log.Println("🛑 Stopping digest worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Digest worker stopped")
}

// EnqueueDigest implements DigestWorker.
func (w *digestWorker) EnqueueDigest(digestID uuid.UUID) {
	select {
	case w.jobQueue <- digestID:
		log.Printf("📥 Digest %s enqueued\n", digestID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue digest %s\n", digestID)
	}
}

func (w *digestWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Digest worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Digest worker #%d stopped\n", workerID)
			return
		case digestID := <-w.jobQueue:
			log.Printf("👷 Digest worker #%d processing %s\n", workerID, digestID)
			if err := w.dispatchDigest(ctx, digestID); err != nil {
				log.Printf("❌ Digest worker #%d failed to process %s: %v\n", workerID, digestID, err)
			} else {
				log.Printf("✅ Digest worker #%d completed %s\n", workerID, digestID)
			}
		}
	}
}

func (w *digestWorker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting pending digests poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending digests poller stopped")
			return
		case <-ticker.C:
			pending, err := w.digestRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending digests: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d pending digests\n", len(pending))
			}

			for _, digest := range pending {
				w.EnqueueDigest(digest.ID)
			}
		}
	}
}

func (w *digestWorker) dispatchDigest(ctx context.Context, digestID uuid.UUID) error {
	if err := w.digestRepo.UpdateStatus(digestID, models.DigestSending); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	digest, err := w.digestRepo.FindByID(digestID)
	if err != nil {
		w.digestRepo.MarkFailed(digestID, err.Error())
		return fmt.Errorf("failed to get digest: %w", err)
	}

	log.Printf("📊 Building insights report for digest %s\n", digestID)
	report, err := w.insightService.Comprehensive(ctx)
	if err != nil {
		w.digestRepo.MarkFailed(digestID, err.Error())
		return fmt.Errorf("failed to build insights report: %w", err)
	}

	subject, body := renderDigestEmail(report)

	messageID, err := w.sendWithRetry(ctx, digest.Recipient, subject, body)
	if err != nil {
		w.digestRepo.MarkFailed(digestID, err.Error())
		return fmt.Errorf("failed to send digest: %w", err)
	}

	if err := w.digestRepo.MarkSent(digestID, messageID); err != nil {
		return fmt.Errorf("failed to mark digest sent: %w", err)
	}

	log.Printf("📧 Digest %s sent to %s\n", digestID, digest.Recipient)
	return nil
}

func (w *digestWorker) sendWithRetry(ctx context.Context, to, subject, body string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		messageID, err := w.mailer.Send(ctx, to, subject, body)
		if err == nil {
			return messageID, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < w.maxRetries {
			log.Printf("⚠️  Mail attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", w.maxRetries, lastErr)
}

// renderDigestEmail is a pure formatting step over an already-built report.
// The narrative is preformatted text, so it ships inside a <pre> block.
func renderDigestEmail(report *models.ComprehensiveReport) (string, string) {
	subject := "📈 Your Weekly Job Search Insights"

	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h2>Weekly Job Search Insights</h2>")
	b.WriteString(`<pre style="font-family: monospace; white-space: pre-wrap;">`)
	b.WriteString(html.EscapeString(report.Narrative))
	b.WriteString("</pre>")
	b.WriteString("<p>Sent by AI Job Tracker.</p>")
	b.WriteString("</body></html>")

	return subject, b.String()
}
