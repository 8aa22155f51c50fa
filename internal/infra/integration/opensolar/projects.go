package opensolar

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/liv8solar/solar-leads/internal/infra/phone"
)

const DefaultLeadSource = "LIV8 Solar Website"

var DefaultWebhookPayloadFields = []string{
	"project.address",
	"project.contacts_data",
	"project.systems.price_including_tax",
	"project.systems.modules",
	"project.systems.inverters",
	"project.systems.batteries",
	"project.systems.kw_stc",
	"project.systems.output_annual_kwh",
}

// CreateProspect opens a residential project for a new lead.
func (c *Client) CreateProspect(ctx context.Context, in ProspectInput) (*Project, error) {
	body := BuildProspect(in, c.now().UnixMilli())

	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects/", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// BuildProspect maps lead data to the project payload. stamp makes the
// identifier unique.
func BuildProspect(in ProspectInput, stamp int64) ProjectCreate {
	leadSource := in.LeadSource
	if leadSource == "" {
		leadSource = DefaultLeadSource
	}

	p := ProjectCreate{
		Identifier:    fmt.Sprintf("LIV8-%d", stamp),
		IsResidential: "1",
		LeadSource:    leadSource,
		Notes:         buildNotes(in),
		Address:       in.Address,
		Locality:      in.City,
		State:         in.State,
		CountryISO2:   "US",
		Zip:           in.Zip,
		ContactsNew: []Contact{{
			FirstName:  in.FirstName,
			FamilyName: in.LastName,
			Email:      in.Email,
			Phone:      phone.NormalizeE164(in.Phone),
		}},
	}
	if in.Latitude != nil && in.Longitude != nil {
		p.Lat = strconv.FormatFloat(*in.Latitude, 'f', -1, 64)
		p.Lon = strconv.FormatFloat(*in.Longitude, 'f', -1, 64)
	}
	return p
}

func buildNotes(in ProspectInput) string {
	lines := []string{"Submitted via LIV8 Solar website"}
	if in.MonthlyBill != "" {
		lines = append(lines, "Monthly electric bill: $"+in.MonthlyBill)
	}
	if in.HomeSize > 0 {
		lines = append(lines, fmt.Sprintf("Home size: %d sq ft", in.HomeSize))
	}
	if in.RoofType != "" {
		lines = append(lines, "Roof type: "+in.RoofType)
	}
	if in.EnergyGoals != "" {
		lines = append(lines, "Energy goals: "+in.EnergyGoals)
	}
	return strings.Join(lines, "\n")
}

func (c *Client) GetProject(ctx context.Context, id int64) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, updates ProjectCreate) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d/", id), updates, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	if err := c.list(ctx, "/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetSystemDetails(ctx context.Context, projectID int64) ([]SystemDetails, error) {
	systems := []SystemDetails{}
	if err := c.list(ctx, fmt.Sprintf("/projects/%d/systems/details/", projectID), &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

// SystemImageURL is the rendered roof image of one system.
func (c *Client) SystemImageURL(projectID int64, systemUUID string, width, height int) string {
	return fmt.Sprintf("%s/api/orgs/%s/projects/%d/systems/%s/image/?width=%d&height=%d",
		strings.TrimRight(c.BaseURL, "/"), c.OrgID, projectID, systemUUID, width, height)
}

// CreateWebhook subscribes endpoint to project stage changes.
func (c *Client) CreateWebhook(ctx context.Context, endpoint string, triggerFields, payloadFields []string) (*Webhook, error) {
	if len(triggerFields) == 0 {
		triggerFields = []string{"project.stage"}
	}
	if len(payloadFields) == 0 {
		payloadFields = DefaultWebhookPayloadFields
	}

	in := Webhook{
		Endpoint:      endpoint,
		Enabled:       true,
		Debug:         false,
		TriggerFields: triggerFields,
		PayloadFields: payloadFields,
	}
	var out Webhook
	if err := c.do(ctx, http.MethodPost, "/webhooks/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
