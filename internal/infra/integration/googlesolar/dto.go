package googlesolar

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Money struct {
	CurrencyCode string `json:"currencyCode"`
	Units        string `json:"units"`
}

type Savings struct {
	SavingsYear1    *Money `json:"savingsYear1"`
	SavingsYear20   *Money `json:"savingsYear20"`
	SavingsLifetime *Money `json:"savingsLifetime"`
}

type FinancialDetails struct {
	InitialAcKwhPerYear float64 `json:"initialAcKwhPerYear"`
	FederalIncentive    *Money  `json:"federalIncentive"`
	StateIncentive      *Money  `json:"stateIncentive"`
	UtilityIncentive    *Money  `json:"utilityIncentive"`
	NetMeteringAllowed  bool    `json:"netMeteringAllowed"`
	SolarPercentage     float64 `json:"solarPercentage"`
}

type CashPurchaseSavings struct {
	OutOfPocketCost *Money   `json:"outOfPocketCost"`
	UpfrontCost     *Money   `json:"upfrontCost"`
	RebateValue     *Money   `json:"rebateValue"`
	PaybackYears    float64  `json:"paybackYears"`
	Savings         *Savings `json:"savings"`
}

type FinancedPurchaseSavings struct {
	AnnualLoanPayment *Money   `json:"annualLoanPayment"`
	LoanInterestRate  float64  `json:"loanInterestRate"`
	Savings           *Savings `json:"savings"`
}

type LeasingSavings struct {
	LeasesAllowed     bool     `json:"leasesAllowed"`
	AnnualLeasingCost *Money   `json:"annualLeasingCost"`
	Savings           *Savings `json:"savings"`
}

type FinancialAnalysis struct {
	MonthlyBill             *Money                   `json:"monthlyBill"`
	DefaultBill             bool                     `json:"defaultBill"`
	PanelConfigIndex        int                      `json:"panelConfigIndex"`
	FinancialDetails        *FinancialDetails        `json:"financialDetails"`
	LeasingSavings          *LeasingSavings          `json:"leasingSavings"`
	CashPurchaseSavings     *CashPurchaseSavings     `json:"cashPurchaseSavings"`
	FinancedPurchaseSavings *FinancedPurchaseSavings `json:"financedPurchaseSavings"`
}

type SolarPanelConfig struct {
	PanelsCount       int     `json:"panelsCount"`
	YearlyEnergyDcKwh float64 `json:"yearlyEnergyDcKwh"`
}

type RoofSegmentStats struct {
	PitchDegrees   float64 `json:"pitchDegrees"`
	AzimuthDegrees float64 `json:"azimuthDegrees"`
	Center         LatLng  `json:"center"`
}

type SolarPotential struct {
	MaxArrayPanelsCount        int                 `json:"maxArrayPanelsCount"`
	MaxArrayAreaMeters2        float64             `json:"maxArrayAreaMeters2"`
	MaxSunshineHoursPerYear    float64             `json:"maxSunshineHoursPerYear"`
	CarbonOffsetFactorKgPerMwh float64             `json:"carbonOffsetFactorKgPerMwh"`
	PanelCapacityWatts         float64             `json:"panelCapacityWatts"`
	RoofSegmentStats           []RoofSegmentStats  `json:"roofSegmentStats"`
	SolarPanelConfigs          []SolarPanelConfig  `json:"solarPanelConfigs"`
	FinancialAnalyses          []FinancialAnalysis `json:"financialAnalyses"`
}

// BuildingInsights is the subset of buildingInsights:findClosest read here.
type BuildingInsights struct {
	Name           string         `json:"name"`
	Center         LatLng         `json:"center"`
	PostalCode     string         `json:"postalCode"`
	RegionCode     string         `json:"regionCode"`
	ImageryQuality string         `json:"imageryQuality"`
	SolarPotential SolarPotential `json:"solarPotential"`
}

type GeocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
	PlaceID          string  `json:"placeId"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type CashPurchase struct {
	UpfrontCost     int64   `json:"upfrontCost"`
	PaybackYears    float64 `json:"paybackYears"`
	SavingsYear1    int64   `json:"savingsYear1"`
	SavingsYear20   int64   `json:"savingsYear20"`
	SavingsLifetime int64   `json:"savingsLifetime"`
}

type Financing struct {
	AnnualLoanPayment int64   `json:"annualLoanPayment"`
	LoanInterestRate  float64 `json:"loanInterestRate"`
	SavingsYear1      int64   `json:"savingsYear1"`
	SavingsYear20     int64   `json:"savingsYear20"`
	SavingsLifetime   int64   `json:"savingsLifetime"`
}

type Leasing struct {
	AnnualLeasingCost int64 `json:"annualLeasingCost"`
	SavingsYear1      int64 `json:"savingsYear1"`
	SavingsYear20     int64 `json:"savingsYear20"`
	SavingsLifetime   int64 `json:"savingsLifetime"`
}

type FinancialSummary struct {
	MonthlyBillAmount  int64         `json:"monthlyBillAmount"`
	FederalIncentive   int64         `json:"federalIncentive"`
	StateIncentive     int64         `json:"stateIncentive"`
	SolarPercentage    float64       `json:"solarPercentage"`
	NetMeteringAllowed bool          `json:"netMeteringAllowed"`
	CashPurchase       *CashPurchase `json:"cashPurchase,omitempty"`
	Financing          *Financing    `json:"financing,omitempty"`
	Leasing            *Leasing      `json:"leasing,omitempty"`
}

// Summary is the compact roof report returned to the website.
type Summary struct {
	Address                    string            `json:"address"`
	Latitude                   float64           `json:"latitude"`
	Longitude                  float64           `json:"longitude"`
	ImageryQuality             string            `json:"imageryQuality"`
	MaxPanelCount              int               `json:"maxPanelCount"`
	MaxArrayAreaSqFt           int64             `json:"maxArrayAreaSqFt"`
	MaxSunshineHoursPerYear    int64             `json:"maxSunshineHoursPerYear"`
	PanelCapacityWatts         float64           `json:"panelCapacityWatts"`
	CarbonOffsetFactorKgPerMwh float64           `json:"carbonOffsetFactorKgPerMwh"`
	RoofSegments               int               `json:"roofSegments"`
	RecommendedSystemSizeKw    float64           `json:"recommendedSystemSizeKw"`
	YearlyEnergyProductionKwh  int64             `json:"yearlyEnergyProductionKwh"`
	FinancialAnalysis          *FinancialSummary `json:"financialAnalysis"`
	SunroofURL                 string            `json:"sunroofUrl"`
}
