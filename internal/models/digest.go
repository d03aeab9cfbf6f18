package models

import (
	"time"

	"github.com/google/uuid"
)

type DigestStatus string

const (
	DigestQueued  DigestStatus = "queued"
	DigestSending DigestStatus = "sending"
	DigestSent    DigestStatus = "sent"
	DigestFailed  DigestStatus = "failed"
)

// Digest is one queued dispatch of the comprehensive insights report to an
// email recipient.
type Digest struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Recipient    string       `gorm:"type:text;not null" json:"recipient"`
	Status       DigestStatus `gorm:"not null;default:'queued'" json:"status"`
	MessageID    *string      `gorm:"type:text" json:"message_id,omitempty"`
	ErrorMessage *string      `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Digest) TableName() string {
	return "digests"
}
