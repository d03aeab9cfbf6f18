package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Mailer delivers a rendered digest through an HTTP mail API.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) (string, error)
}

type restyMailer struct {
	client *resty.Client
	apiURL string
	apiKey string
	from   string
}

func NewRestyMailer(apiURL, apiKey, from string) Mailer {
	return &restyMailer{
		client: resty.New(),
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
	}
}

// Send posts the message and returns the provider's message id.
func (m *restyMailer) Send(ctx context.Context, to, subject, html string) (string, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+m.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"from":    m.from,
			"to":      []string{to},
			"subject": subject,
			"html":    html,
		}).
		Post(m.apiURL)
	if err != nil {
		return "", fmt.Errorf("failed to call mail API: %w", err)
	}

	if resp.IsError() {
		message := gjson.Get(resp.String(), "message").String()
		if message == "" {
			message = resp.String()
		}
		return "", fmt.Errorf("mail API returned %d: %s", resp.StatusCode(), message)
	}

	return gjson.Get(resp.String(), "id").String(), nil
}
