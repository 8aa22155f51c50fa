package opensolar

type Contact struct {
	FirstName  string `json:"first_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// ProjectCreate is the body of POST /projects/ and PATCH /projects/{id}/.
type ProjectCreate struct {
	Identifier    string    `json:"identifier,omitempty"`
	IsResidential string    `json:"is_residential,omitempty"`
	LeadSource    string    `json:"lead_source,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Lat           string    `json:"lat,omitempty"`
	Lon           string    `json:"lon,omitempty"`
	Address       string    `json:"address,omitempty"`
	Locality      string    `json:"locality,omitempty"`
	State         string    `json:"state,omitempty"`
	CountryISO2   string    `json:"country_iso2,omitempty"`
	Zip           string    `json:"zip,omitempty"`
	ContactsNew   []Contact `json:"contacts_new,omitempty"`
}

type Project struct {
	ID            int64    `json:"id"`
	URL           string   `json:"url"`
	OrgID         int64    `json:"org_id"`
	Identifier    string   `json:"identifier"`
	Address       string   `json:"address"`
	Lat           any      `json:"lat"`
	Lon           any      `json:"lon"`
	Locality      string   `json:"locality"`
	State         string   `json:"state"`
	Zip           string   `json:"zip"`
	LeadSource    string   `json:"lead_source"`
	Notes         string   `json:"notes"`
	Contacts      []string `json:"contacts"`
	Systems       []string `json:"systems"`
	Stage         int      `json:"stage"`
	IsResidential any      `json:"is_residential"`
}

type Component struct {
	ManufacturerName string  `json:"manufacturer_name"`
	Code             string  `json:"code"`
	Quantity         int     `json:"quantity"`
	MaxPowerRating   float64 `json:"max_power_rating,omitempty"`
}

type SystemDetails struct {
	UUID                        string      `json:"uuid"`
	ID                          int64       `json:"id"`
	Name                        string      `json:"name"`
	KwStc                       float64     `json:"kw_stc"`
	OutputAnnualKwh             float64     `json:"output_annual_kwh"`
	ConsumptionOffsetPercentage float64     `json:"consumption_offset_percentage"`
	ModuleQuantity              int         `json:"module_quantity"`
	BatteryTotalKwh             float64     `json:"battery_total_kwh"`
	PriceIncludingTax           float64     `json:"price_including_tax"`
	PriceExcludingTax           float64     `json:"price_excluding_tax"`
	Modules                     []Component `json:"modules"`
	Inverters                   []Component `json:"inverters"`
	Batteries                   []Component `json:"batteries"`
	ImageURL                    string      `json:"imageUrl,omitempty"`
}

type Webhook struct {
	ID            int64    `json:"id,omitempty"`
	Endpoint      string   `json:"endpoint"`
	Enabled       bool     `json:"enabled"`
	Debug         bool     `json:"debug"`
	TriggerFields []string `json:"trigger_fields"`
	PayloadFields []string `json:"payload_fields"`
}

type ProjectSummary struct {
	Address               string   `json:"address"`
	Stage                 int      `json:"stage"`
	SystemCount           int      `json:"systemCount"`
	TotalCapacityKw       float64  `json:"totalCapacityKw"`
	TotalPanels           int      `json:"totalPanels"`
	TotalBatteryKwh       float64  `json:"totalBatteryKwh"`
	EstimatedAnnualOutput int64    `json:"estimatedAnnualOutput"`
	EstimatedPrice        int64    `json:"estimatedPrice"`
	PanelManufacturers    []string `json:"panelManufacturers"`
	InverterManufacturers []string `json:"inverterManufacturers"`
	BatteryManufacturers  []string `json:"batteryManufacturers"`
}

type ProjectOverview struct {
	Project *Project        `json:"project"`
	Systems []SystemDetails `json:"systems"`
	Summary ProjectSummary  `json:"summary"`
}

// ProspectInput is the lead data a new prospect is built from.
type ProspectInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	MonthlyBill string
	HomeSize    int
	RoofType    string
	EnergyGoals string
	LeadSource  string
	Latitude    *float64
	Longitude   *float64
	City        string
	State       string
	Zip         string
}
