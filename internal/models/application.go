package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffer     ApplicationStatus = "Offer"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusWithdrawn ApplicationStatus = "Withdrawn"
)

// Defaults applied by the storage layer when a record arrives without a
// source or resume version, so grouping never sees an empty key.
const (
	DefaultSource        = "Unknown"
	DefaultResumeVersion = "v1"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// TerminalStatuses are the statuses measured by response-time analysis, in
// narrative order. Withdrawn is a stable outcome but not a company response,
// so it stays out.
var TerminalStatuses = []ApplicationStatus{StatusInterview, StatusOffer, StatusRejected}

func (s ApplicationStatus) Terminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

type Application struct {
	ID            uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Company       string            `gorm:"type:text;not null" json:"company"`
	Role          string            `gorm:"type:text;not null" json:"role"`
	Status        ApplicationStatus `gorm:"type:varchar(20);not null;default:'Applied'" json:"status"`
	Source        string            `gorm:"type:text;not null" json:"source"`
	ResumeVersion string            `gorm:"type:text;not null" json:"resume_version"`
	AppliedAt     time.Time         `gorm:"not null" json:"applied_at"`
	CreatedAt     time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}

// Normalize fills the defaults the storage layer owns: blank labels and a
// missing applied-at timestamp. Every write path must apply it so grouping
// never sees an empty key.
func (a *Application) Normalize() {
	if strings.TrimSpace(a.Source) == "" {
		a.Source = DefaultSource
	}
	if strings.TrimSpace(a.ResumeVersion) == "" {
		a.ResumeVersion = DefaultResumeVersion
	}
	if a.Status == "" {
		a.Status = StatusApplied
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
}

// BeforeSave applies the defaults on struct-based writes.
func (a *Application) BeforeSave(_ *gorm.DB) error {
	a.Normalize()
	return nil
}
