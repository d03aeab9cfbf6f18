package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatus_Valid(t *testing.T) {
	valid := []ApplicationStatus{
		StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn,
	}
	for _, status := range valid {
		assert.True(t, status.Valid(), "%s should be valid", status)
	}

	assert.False(t, ApplicationStatus("Ghosted").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatus_Terminal(t *testing.T) {
	assert.True(t, StatusInterview.Terminal())
	assert.True(t, StatusOffer.Terminal())
	assert.True(t, StatusRejected.Terminal())

	assert.False(t, StatusApplied.Terminal())
	assert.False(t, StatusWithdrawn.Terminal())
}

func TestApplication_BeforeSave_FillsDefaults(t *testing.T) {
	app := &Application{
		Company: "Acme",
		Role:    "Engineer",
	}

	require.NoError(t, app.BeforeSave(nil))

	assert.Equal(t, DefaultSource, app.Source)
	assert.Equal(t, DefaultResumeVersion, app.ResumeVersion)
	assert.Equal(t, StatusApplied, app.Status)
	assert.False(t, app.AppliedAt.IsZero())
	assert.WithinDuration(t, time.Now(), app.AppliedAt, time.Minute)
}

func TestApplication_BeforeSave_KeepsProvidedValues(t *testing.T) {
	appliedAt := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	app := &Application{
		Company:       "Acme",
		Role:          "Engineer",
		Status:        StatusInterview,
		Source:        "Referral",
		ResumeVersion: "v3",
		AppliedAt:     appliedAt,
	}

	require.NoError(t, app.BeforeSave(nil))

	assert.Equal(t, "Referral", app.Source)
	assert.Equal(t, "v3", app.ResumeVersion)
	assert.Equal(t, StatusInterview, app.Status)
	assert.Equal(t, appliedAt, app.AppliedAt)
}

func TestApplication_BeforeSave_TreatsWhitespaceAsBlank(t *testing.T) {
	app := &Application{
		Company:       "Acme",
		Role:          "Engineer",
		Source:        "   ",
		ResumeVersion: "\t",
	}

	require.NoError(t, app.BeforeSave(nil))

	assert.Equal(t, DefaultSource, app.Source)
	assert.Equal(t, DefaultResumeVersion, app.ResumeVersion)
}
