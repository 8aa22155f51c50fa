// Package taskmagic forwards form events to the TaskMagic automation
// webhook.
package taskmagic

import (
	"context"
	"net/http"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const (
	service   = "taskmagic"
	userAgent = "LIV8Solar-Webhook/1.0"
)

type FormType string

const (
	FormLeadSubmission        FormType = "lead_submission"
	FormSolarCalculation      FormType = "solar_calculation"
	FormConsultationScheduled FormType = "consultation_scheduled"
	FormOpenSolarUpdate       FormType = "opensolar_project_update"
)

type Payload struct {
	integration.LeadRecord
	FormType           FormType `json:"formType"`
	OpenSolarProjectID string   `json:"openSolarProjectId,omitempty"`
}

type Client struct {
	HTTPClient *http.Client
	WebhookURL string
}

func NewClient(webhookURL string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient: integration.NewHTTPClient(timeout),
		WebhookURL: webhookURL,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.WebhookURL != ""
}

func (c *Client) Send(ctx context.Context, p Payload) error {
	if !c.Configured() {
		return integration.ErrNotConfigured
	}
	headers := map[string]string{"User-Agent": userAgent}
	return integration.DoJSON(ctx, c.HTTPClient, service, http.MethodPost, c.WebhookURL, headers, p, nil)
}

// SendLead posts lead under formType. A nil lead is sent as the anonymous
// placeholder used for calculator submissions.
func (c *Client) SendLead(ctx context.Context, formType string, lead *entity.Lead, calc *entity.SolarCalculation) error {
	if lead == nil {
		lead = anonymousLead(time.Now())
	}
	return c.Send(ctx, Payload{
		LeadRecord: integration.NewLeadRecord(lead, calc),
		FormType:   FormType(formType),
	})
}

// SendProjectUpdate relays an OpenSolar project change.
func (c *Client) SendProjectUpdate(ctx context.Context, openSolarProjectID string) error {
	placeholder := &entity.Lead{FirstName: "OpenSolar", LastName: "Update", CreatedAt: time.Now()}
	return c.Send(ctx, Payload{
		LeadRecord:         integration.NewLeadRecord(placeholder, nil),
		FormType:           FormOpenSolarUpdate,
		OpenSolarProjectID: openSolarProjectID,
	})
}

func anonymousLead(now time.Time) *entity.Lead {
	return &entity.Lead{
		FirstName: "Anonymous",
		LastName:  "User",
		Email:     "unknown@email.com",
		Phone:     "unknown",
		CreatedAt: now,
	}
}
