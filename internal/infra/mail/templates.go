package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

const (
	notProvided     = "Not provided"
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

var (
	newLeadTmpl = template.Must(template.New("new_lead").Parse(`
<h2>New Lead Submission</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Address:</strong> {{.Address}}</p>
<p><strong>Monthly Bill:</strong> {{.MonthlyBill}}</p>
<p><strong>Home Size:</strong> {{.HomeSize}}</p>
<p><strong>Roof Type:</strong> {{.RoofType}}</p>
<p><strong>Energy Goals:</strong> {{.EnergyGoals}}</p>
<p><strong>Lead Source:</strong> {{.LeadSource}}</p>
<p><strong>Submitted:</strong> {{.Timestamp}}</p>
`))

	calculationTmpl = template.Must(template.New("solar_calculation").Parse(`
<h2>Solar Calculation Performed</h2>
<p><strong>Monthly Bill:</strong> ${{.MonthlyBill}}</p>
<p><strong>Home Size:</strong> {{.HomeSize}} sq ft</p>
<p><strong>Roof Type:</strong> {{.RoofType}}</p>
<hr>
<h3>Estimated Savings:</h3>
<p><strong>Monthly Savings:</strong> ${{.MonthlySavings}}</p>
<p><strong>Year One Savings:</strong> ${{.YearOneSavings}}</p>
<p><strong>20-Year Savings:</strong> ${{.TwentyYearSavings}}</p>
<p><strong>System Size:</strong> {{.SystemSize}}</p>
<p><strong>Calculated:</strong> {{.Timestamp}}</p>
`))

	consultationTmpl = template.Must(template.New("consultation").Parse(`
<h2>Consultation Scheduled</h2>
<p><strong>Client:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Notes:</strong> {{.Notes}}</p>
<p><strong>Status:</strong> {{.Status}}</p>
<p><strong>Scheduled:</strong> {{.Timestamp}}</p>
<hr>
<p>Please follow up with the client within 24 hours to confirm the appointment.</p>
`))
)

type newLeadData struct {
	FirstName, LastName, Email, Phone string
	Address, MonthlyBill, HomeSize    string
	RoofType, EnergyGoals, LeadSource string
	Timestamp                         string
}

type calculationData struct {
	*entity.SolarCalculation
	Timestamp string
}

type consultationData struct {
	FirstName, LastName, Email, Phone string
	Notes, Status, Timestamp          string
}

// NewLeadMessage renders the new-lead notification. Addressing is left to
// the caller.
func NewLeadMessage(lead *entity.Lead, now time.Time) (Message, error) {
	data := newLeadData{
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Address:     valueOr(lead.Address, notProvided),
		MonthlyBill: notProvided,
		HomeSize:    notProvided,
		RoofType:    valueOr(lead.RoofType, notProvided),
		EnergyGoals: valueOr(lead.EnergyGoals, notProvided),
		LeadSource:  lead.LeadSource,
		Timestamp:   now.Format(timestampLayout),
	}
	if lead.MonthlyBill != nil && *lead.MonthlyBill != "" {
		data.MonthlyBill = "$" + *lead.MonthlyBill
	}
	if lead.HomeSize != nil && *lead.HomeSize > 0 {
		data.HomeSize = strconv.Itoa(*lead.HomeSize) + " sq ft"
	}
	if data.LeadSource == "" {
		data.LeadSource = entity.DefaultLeadSource
	}

	html, err := render(newLeadTmpl, data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("🌟 New Lead Submission - %s %s", lead.FirstName, lead.LastName),
		HTML:    html,
		Text:    fmt.Sprintf("New Lead: %s %s (%s) - %s", lead.FirstName, lead.LastName, lead.Email, lead.Phone),
	}, nil
}

func SolarCalculationMessage(calc *entity.SolarCalculation, now time.Time) (Message, error) {
	html, err := render(calculationTmpl, calculationData{SolarCalculation: calc, Timestamp: now.Format(timestampLayout)})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("💡 Solar Calculation Performed - Potential %s/month savings", calc.MonthlySavings),
		HTML:    html,
		Text:    fmt.Sprintf("Solar Calculation: $%s bill → $%s/month savings", calc.MonthlyBill, calc.MonthlySavings),
	}, nil
}

func ConsultationMessage(consultation *entity.Consultation, lead *entity.Lead, now time.Time) (Message, error) {
	data := consultationData{
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Notes:     valueOr(consultation.Notes, notProvided),
		Status:    consultation.Status,
		Timestamp: now.Format(timestampLayout),
	}
	html, err := render(consultationTmpl, data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("📅 Consultation Scheduled - %s %s", lead.FirstName, lead.LastName),
		HTML:    html,
		Text:    fmt.Sprintf("Consultation scheduled for %s %s (%s)", lead.FirstName, lead.LastName, lead.Email),
	}, nil
}

func render(t *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("mail: render %s: %w", t.Name(), err)
	}
	return body.String(), nil
}

func valueOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
