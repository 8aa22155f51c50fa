// Package integration holds what the vendor clients share: the HTTP client
// with a bounded timeout, the JSON round trip and the error types.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

const DefaultTimeout = 10 * time.Second

// ErrNotConfigured is returned by a client called without credentials.
var ErrNotConfigured = errors.New("integration not configured")

// StatusError is a non-2xx response from a vendor API.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, e.Body)
}

func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// DoJSON sends body (if non-nil) as JSON and decodes a 2xx response into
// out (if non-nil). Non-2xx responses become *StatusError.
func DoJSON(ctx context.Context, client *http.Client, service, method, url string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", service, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Service: service, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: decode response: %w", service, err)
	}
	return nil
}

type CalculationData struct {
	MonthlySavings    string `json:"monthlySavings,omitempty"`
	YearOneSavings    string `json:"yearOneSavings,omitempty"`
	TwentyYearSavings string `json:"twentyYearSavings,omitempty"`
	SystemSize        string `json:"systemSize,omitempty"`
}

// LeadRecord is the flattened lead row the spreadsheet and automation
// webhooks both receive.
type LeadRecord struct {
	LeadID          int64            `json:"leadId"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Address         *string          `json:"address,omitempty"`
	MonthlyBill     *string          `json:"monthlyBill,omitempty"`
	HomeSize        *int             `json:"homeSize,omitempty"`
	RoofType        *string          `json:"roofType,omitempty"`
	EnergyGoals     *string          `json:"energyGoals,omitempty"`
	LeadSource      string           `json:"leadSource"`
	Status          string           `json:"status"`
	SubmittedAt     string           `json:"submittedAt"`
	CalculationData *CalculationData `json:"calculationData,omitempty"`
}

// NewLeadRecord flattens lead and, when given, its calculation.
func NewLeadRecord(lead *entity.Lead, calc *entity.SolarCalculation) LeadRecord {
	rec := LeadRecord{
		LeadID:      lead.ID,
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Address:     lead.Address,
		MonthlyBill: lead.MonthlyBill,
		HomeSize:    lead.HomeSize,
		RoofType:    lead.RoofType,
		EnergyGoals: lead.EnergyGoals,
		LeadSource:  orDefault(lead.LeadSource, entity.DefaultLeadSource),
		Status:      orDefault(lead.Status, entity.DefaultLeadStatus),
		SubmittedAt: lead.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if calc != nil {
		rec.CalculationData = &CalculationData{
			MonthlySavings:    calc.MonthlySavings,
			YearOneSavings:    calc.YearOneSavings,
			TwentyYearSavings: calc.TwentyYearSavings,
			SystemSize:        calc.SystemSize,
		}
	}
	return rec
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
