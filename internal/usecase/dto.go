package usecase

import "github.com/botsuinsure/botsuinsure-api/internal/entity"

type CompareInput struct {
	ProductIDs []int
	Salary     *float64
}

// ComparisonItem is the comparison-table projection of a product. Medical
// plans expose annual limit, co-payment and hospital network; everything
// else exposes sum assured and the full premium schedule.
type ComparisonItem struct {
	ID                      int      `json:"id"`
	Name                    string   `json:"name"`
	Company                 string   `json:"company"`
	Category                string   `json:"category"`
	KeyFeatures             []string `json:"key_features"`
	WaitingPeriodNatural    string   `json:"waiting_period_natural,omitempty"`
	WaitingPeriodAccidental string   `json:"waiting_period_accidental,omitempty"`

	AnnualLimit     *float64 `json:"annual_limit,omitempty"`
	CoPayment       string   `json:"co_payment,omitempty"`
	HospitalNetwork string   `json:"hospital_network,omitempty"`

	SumAssured string               `json:"sum_assured,omitempty"`
	Premiums   []entity.PremiumRule `json:"premiums,omitempty"`

	CalculatedPremium *float64 `json:"calculated_premium,omitempty"`
}

type CompareOutput struct {
	Comparison []ComparisonItem `json:"comparison"`
}

// CalculatedRow is one product annotated with the premium its salary
// bracket yields; calculated_premium stays null when no bracket matches.
type CalculatedRow struct {
	ID                   int                  `json:"id"`
	Name                 string               `json:"name"`
	Company              entity.Company       `json:"company"`
	Category             string               `json:"category"`
	AnnualLimit          *float64             `json:"annual_limit,omitempty"`
	CoPayment            string               `json:"co_payment,omitempty"`
	WaitingPeriodNatural string               `json:"waiting_period_natural,omitempty"`
	Premiums             []entity.PremiumRule `json:"premiums"`
	CalculatedPremium    *float64             `json:"calculated_premium"`
}

type CaptureLeadOutput struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	LeadID  string      `json:"lead_id"`
	Data    entity.Lead `json:"data"`
}
