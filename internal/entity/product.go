package entity

import "errors"

var ErrProductNotFound = errors.New("product not found")

const (
	CategoryFuneral      = "funeral"
	CategoryHospitalCash = "hospital_cash"
	CategoryLife         = "life"
	CategoryMedical      = "medical"
)

// PremiumRule maps a salary bracket to a fixed monthly cost. An absent
// bound is unbounded on that side. Rule order is significant: the first
// matching bracket wins.
type PremiumRule struct {
	MinSalary      *float64 `json:"min_salary,omitempty"`
	MaxSalary      *float64 `json:"max_salary,omitempty"`
	MonthlyPremium float64  `json:"monthly_premium"`
}

// Product is the unified record every catalog normalizes into. Ids are
// dense and assigned in fixed load order, so identical catalogs always
// produce identical ids across restarts.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Company  Company `json:"company"`

	// Insurance products (funeral, hospital_cash, life).
	SumAssured string `json:"sum_assured,omitempty"`
	AgeMin     *int   `json:"age_min,omitempty"`
	AgeMax     *int   `json:"age_max,omitempty"`

	// Medical aid plans.
	AnnualLimit     *float64 `json:"annual_limit,omitempty"`
	CoPayment       string   `json:"co_payment,omitempty"`
	HospitalNetwork string   `json:"hospital_network,omitempty"`
	MaternityCover  string   `json:"maternity_cover,omitempty"`
	ChronicCover    string   `json:"chronic_cover,omitempty"`
	DentalOptical   string   `json:"dental_optical,omitempty"`

	Premiums                []PremiumRule `json:"premiums"`
	WaitingPeriodNatural    string        `json:"waiting_period_natural,omitempty"`
	WaitingPeriodAccidental string        `json:"waiting_period_accidental,omitempty"`
	KeyFeatures             []string      `json:"key_features"`
	Exclusions              []string      `json:"exclusions,omitempty"`
}
