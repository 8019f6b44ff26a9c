package catalog

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
)

// Source record shapes. Field names are fixed by convention with the data
// provider; anything absent defaults instead of failing.

type insuranceRecord struct {
	Name                    string               `json:"name"`
	ProductName             string               `json:"product_name"`
	Category                string               `json:"category"`
	SumAssured              flexString           `json:"sum_assured"`
	Premiums                []entity.PremiumRule `json:"premiums"`
	WaitingPeriodNatural    string               `json:"waiting_period_natural"`
	WaitingPeriodAccidental string               `json:"waiting_period_accidental"`
	AgeMin                  *int                 `json:"age_min"`
	AgeMax                  *int                 `json:"age_max"`
	KeyFeatures             []string             `json:"key_features"`
	Exclusions              []string             `json:"exclusions"`
}

type medicalRecord struct {
	PlanName        string      `json:"plan_name"`
	AnnualLimit     flexString  `json:"annual_limit"`
	CoPayment       string      `json:"co_payment"`
	HospitalNetwork string      `json:"hospital_network"`
	MaternityCover  string      `json:"maternity_cover"`
	ChronicCover    string      `json:"chronic_cover"`
	DentalOptical   string      `json:"dental_optical"`
	WaitingPeriod   string      `json:"waiting_period"`
	Premiums        premiumList `json:"premiums"`
}

type productFile struct {
	Products []insuranceRecord `json:"products"`
}

type planFile struct {
	Plans []medicalRecord `json:"plans"`
}

// flexString accepts JSON strings and bare numbers; brochure fields show
// up both ways across catalog revisions.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// premiumList tolerates medical catalogs that carry premiums as prose
// ("From P 420 per month") instead of bracket rules; the first number
// found becomes a single flat rule.
type premiumList []entity.PremiumRule

func (p *premiumList) UnmarshalJSON(b []byte) error {
	var rules []entity.PremiumRule
	if err := json.Unmarshal(b, &rules); err == nil {
		*p = rules
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	if n := ExtractNumber(s); n > 0 {
		*p = premiumList{{MonthlyPremium: n}}
	}
	return nil
}

type SourceStatus struct {
	File     string `json:"file"`
	Loaded   bool   `json:"loaded"`
	Products int    `json:"products"`
}

// Table is the immutable product table built once at boot. Request
// handlers only ever read it.
type Table struct {
	Products  []*entity.Product
	Companies []entity.Company
	Sources   []SourceStatus
}

// Build reads every catalog source in declared order and assembles the
// product table. Ids come from a single counter shared across all sources,
// so identical inputs always yield identical ids.
func Build(dir string, log *zap.Logger) *Table {
	loader := NewLoader(dir, log)
	table := &Table{Companies: Companies}

	nextID := 1
	for _, src := range sources {
		status := SourceStatus{File: src.File}
		company := companyByID(src.CompanyID)

		switch src.Kind {
		case kindMedical:
			var file planFile
			if err := loader.load(src.File, &file); err == nil {
				status.Loaded = true
				for _, rec := range file.Plans {
					table.Products = append(table.Products, normalizeMedical(rec, company, nextID))
					nextID++
					status.Products++
				}
			}
		default:
			var file productFile
			if err := loader.load(src.File, &file); err == nil {
				status.Loaded = true
				for _, rec := range file.Products {
					table.Products = append(table.Products, normalizeInsurance(rec, company, src.DefaultCategory, nextID))
					nextID++
					status.Products++
				}
			}
		}

		table.Sources = append(table.Sources, status)
	}

	log.Info("catalogs loaded",
		zap.Int("products", len(table.Products)),
		zap.Int("sources", len(table.Sources)),
	)
	return table
}

func normalizeInsurance(rec insuranceRecord, company entity.Company, defaultCategory string, id int) *entity.Product {
	name := rec.Name
	if name == "" {
		name = rec.ProductName
	}
	if name == "" {
		name = "Unknown Product"
	}

	category := rec.Category
	if category == "" {
		category = defaultCategory
	}

	p := &entity.Product{
		ID:                      id,
		Name:                    name,
		Category:                category,
		Company:                 company,
		SumAssured:              string(rec.SumAssured),
		AgeMin:                  rec.AgeMin,
		AgeMax:                  rec.AgeMax,
		Premiums:                rec.Premiums,
		WaitingPeriodNatural:    rec.WaitingPeriodNatural,
		WaitingPeriodAccidental: rec.WaitingPeriodAccidental,
		KeyFeatures:             rec.KeyFeatures,
		Exclusions:              rec.Exclusions,
	}
	if p.Premiums == nil {
		p.Premiums = []entity.PremiumRule{}
	}
	if p.KeyFeatures == nil {
		p.KeyFeatures = []string{}
	}
	return p
}

func normalizeMedical(rec medicalRecord, company entity.Company, id int) *entity.Product {
	name := rec.PlanName
	if name == "" {
		name = "Unknown Plan"
	}

	limit := ExtractNumber(string(rec.AnnualLimit))

	p := &entity.Product{
		ID:                   id,
		Name:                 name,
		Category:             entity.CategoryMedical,
		Company:              company,
		AnnualLimit:          &limit,
		CoPayment:            rec.CoPayment,
		HospitalNetwork:      rec.HospitalNetwork,
		MaternityCover:       rec.MaternityCover,
		ChronicCover:         rec.ChronicCover,
		DentalOptical:        rec.DentalOptical,
		WaitingPeriodNatural: rec.WaitingPeriod,
		Premiums:             []entity.PremiumRule(rec.Premiums),
		KeyFeatures:          []string{},
	}
	if p.Premiums == nil {
		p.Premiums = []entity.PremiumRule{}
	}
	return p
}
