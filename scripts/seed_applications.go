package main

import (
	"log"
	"time"

	"github.com/swapitsneil/ai-job-tracker/internal/config"
	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/repositories"
)

func main() {
	log.Println("🚀 Seeding sample applications...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	appRepo := repositories.NewApplicationRepository(db)

	existing, err := appRepo.FindAll()
	if err != nil {
		log.Fatalf("❌ Failed to check existing applications: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("⚠️  Found %d existing applications, skipping seed", len(existing))
		return
	}

	now := time.Now()
	daysAgo := func(d int) time.Time {
		return now.AddDate(0, 0, -d)
	}

	samples := []models.Application{
		{Company: "Stripe", Role: "Backend Engineer", Status: models.StatusInterview, Source: "Referral", ResumeVersion: "v2", AppliedAt: daysAgo(5)},
		{Company: "Datadog", Role: "Platform Engineer", Status: models.StatusInterview, Source: "Direct", ResumeVersion: "v2", AppliedAt: daysAgo(7)},
		{Company: "Vercel", Role: "Systems Engineer", Status: models.StatusOffer, Source: "Referral", ResumeVersion: "v2", AppliedAt: daysAgo(10)},
		{Company: "Shopify", Role: "Backend Engineer", Status: models.StatusRejected, Source: "LinkedIn", ResumeVersion: "v1", AppliedAt: daysAgo(21)},
		{Company: "Airbnb", Role: "Software Engineer", Status: models.StatusRejected, Source: "LinkedIn", ResumeVersion: "v1", AppliedAt: daysAgo(30)},
		{Company: "Netflix", Role: "Senior Backend Engineer", Status: models.StatusRejected, Source: "LinkedIn", ResumeVersion: "v1", AppliedAt: daysAgo(40)},
		{Company: "Figma", Role: "Product Engineer", Status: models.StatusApplied, Source: "LinkedIn", ResumeVersion: "v3", AppliedAt: daysAgo(3)},
		{Company: "Notion", Role: "Backend Engineer", Status: models.StatusInterview, Source: "LinkedIn", ResumeVersion: "v2", AppliedAt: daysAgo(6)},
		{Company: "Linear", Role: "Software Engineer", Status: models.StatusRejected, Source: "Indeed", ResumeVersion: "v1", AppliedAt: daysAgo(25)},
		{Company: "Render", Role: "Infrastructure Engineer", Status: models.StatusApplied, Source: "Indeed", ResumeVersion: "v3", AppliedAt: daysAgo(4)},
		{Company: "Temporal", Role: "Backend Engineer", Status: models.StatusWithdrawn, Source: "Indeed", ResumeVersion: "v2", AppliedAt: daysAgo(15)},
		{Company: "Supabase", Role: "Database Engineer", Status: models.StatusApplied, Source: "Referral", ResumeVersion: "v3", AppliedAt: daysAgo(2)},
		{Company: "Fly.io", Role: "Platform Engineer", Status: models.StatusApplied, Source: "Direct", ResumeVersion: "v3", AppliedAt: daysAgo(8)},
	}

	successCount := 0
	for _, sample := range samples {
		record := sample
		if err := appRepo.Create(&record); err != nil {
			log.Printf("❌ Failed to insert %s at %s: %v", sample.Role, sample.Company, err)
			continue
		}
		successCount++
	}

	log.Printf("✅ Seeded %d/%d applications", successCount, len(samples))
	log.Println("📊 Try GET /api/v1/insights to see the full report")
}
