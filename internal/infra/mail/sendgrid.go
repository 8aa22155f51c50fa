package mail

import (
	"context"
	"net/http"
	"time"

	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const SendGridURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridSender posts messages to the SendGrid v3 mail API.
type SendGridSender struct {
	HTTPClient *http.Client
	APIKey     string
	URL        string
}

func NewSendGridSender(apiKey string, timeout time.Duration) *SendGridSender {
	return &SendGridSender{
		HTTPClient: integration.NewHTTPClient(timeout),
		APIKey:     apiKey,
		URL:        SendGridURL,
	}
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []struct {
		To []sendGridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendGridAddress   `json:"from"`
	Subject string            `json:"subject"`
	Content []sendGridContent `json:"content"`
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if s.APIKey == "" {
		return integration.ErrNotConfigured
	}
	if msg.To == "" {
		return ErrNoRecipient
	}

	req := sendGridRequest{
		From:    sendGridAddress{Email: msg.From},
		Subject: msg.Subject,
	}
	req.Personalizations = make([]struct {
		To []sendGridAddress `json:"to"`
	}, 1)
	req.Personalizations[0].To = []sendGridAddress{{Email: msg.To}}

	// SendGrid requires text/plain before text/html.
	if msg.Text != "" {
		req.Content = append(req.Content, sendGridContent{Type: "text/plain", Value: msg.Text})
	}
	if msg.HTML != "" {
		req.Content = append(req.Content, sendGridContent{Type: "text/html", Value: msg.HTML})
	}

	headers := map[string]string{"Authorization": "Bearer " + s.APIKey}
	return integration.DoJSON(ctx, s.HTTPClient, "sendgrid", http.MethodPost, s.URL, headers, req, nil)
}
