// Package sheets posts lead rows to a Google Apps Script webhook that
// appends them to a spreadsheet.
package sheets

import (
	"context"
	"net/http"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const service = "google_sheets"

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

// ExportLead appends one row. calc may be nil.
func (c *Client) ExportLead(ctx context.Context, lead *entity.Lead, calc *entity.SolarCalculation) error {
	if !c.Configured() {
		return integration.ErrNotConfigured
	}
	row := integration.NewLeadRecord(lead, calc)
	return integration.DoJSON(ctx, c.HTTPClient, service, http.MethodPost, c.WebhookURL, nil, row, nil)
}
