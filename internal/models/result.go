package models

import "time"

type CreateApplicationRequest struct {
	Company       string     `json:"company" validate:"required"`
	Role          string     `json:"role" validate:"required"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	ResumeVersion string     `json:"resume_version"`
	AppliedAt     *time.Time `json:"applied_at"`
}

// UpdateApplicationRequest uses pointers so absent fields leave the stored
// record untouched.
type UpdateApplicationRequest struct {
	Company       *string    `json:"company"`
	Role          *string    `json:"role"`
	Status        *string    `json:"status"`
	Source        *string    `json:"source"`
	ResumeVersion *string    `json:"resume_version"`
	AppliedAt     *time.Time `json:"applied_at"`
}

type DigestRequest struct {
	Recipient string `json:"recipient"`
}

type DigestResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type DigestStatusResponse struct {
	ID           string  `json:"id"`
	Recipient    string  `json:"recipient"`
	Status       string  `json:"status"`
	MessageID    *string `json:"message_id,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}
