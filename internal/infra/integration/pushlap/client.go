// Package pushlap tracks affiliate referrals and sales with Push Lap Growth.
package pushlap

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const (
	service = "pushlap"

	DefaultBaseURL        = "https://www.pushlapgrowth.com/api/v1"
	DefaultPlan           = "solar_lead"
	DefaultStatus         = "new_referral"
	DefaultCommissionRate = 0.10
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient: integration.NewHTTPClient(timeout),
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

func (c *Client) setHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.APIKey}
}

func (c *Client) TrackReferral(ctx context.Context, in ReferralInput) (*Result, error) {
	if !c.Configured() {
		return nil, integration.ErrNotConfigured
	}
	if in.Plan == "" {
		in.Plan = DefaultPlan
	}
	if in.Status == "" {
		in.Status = DefaultStatus
	}

	var out Result
	url := strings.TrimRight(c.BaseURL, "/") + "/referrals"
	if err := integration.DoJSON(ctx, c.HTTPClient, service, http.MethodPost, url, c.setHeaders(), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TrackSale(ctx context.Context, in SaleInput) (*Result, error) {
	if !c.Configured() {
		return nil, integration.ErrNotConfigured
	}
	if in.CommissionRate == 0 {
		in.CommissionRate = DefaultCommissionRate
	}

	var out Result
	url := strings.TrimRight(c.BaseURL, "/") + "/sales"
	if err := integration.DoJSON(ctx, c.HTTPClient, service, http.MethodPost, url, c.setHeaders(), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrackProjectSale records a completed project against the referral made
// with leadEmail.
func (c *Client) TrackProjectSale(ctx context.Context, leadEmail string, projectValue float64, projectID string) error {
	_, err := c.TrackSale(ctx, SaleInput{
		ReferralID:        leadEmail,
		ExternalID:        projectID,
		ExternalInvoiceID: "INV-" + projectID,
		TotalEarned:       projectValue,
		CommissionRate:    DefaultCommissionRate,
	})
	return err
}
