package catalog

import "github.com/botsuinsure/botsuinsure-api/internal/entity"

// Companies is the fixed set of providers whose catalogs we carry.
var Companies = []entity.Company{
	{ID: 1, Name: "Liberty Life Botswana (Pty) Limited", Type: entity.CompanyTypeLifeFuneral},
	{ID: 2, Name: "Metropolitan Life Botswana", Type: entity.CompanyTypeLife},
	{ID: 3, Name: "Botsogo Health Plan", Type: entity.CompanyTypeMedical},
	{ID: 4, Name: "Botswana Public Officers Medical Aid Scheme (BPOMAS)", Type: entity.CompanyTypeMedical},
	{ID: 5, Name: "Pula Medical Aid Fund (Pulamed)", Type: entity.CompanyTypeMedical},
}

const (
	kindInsurance = "insurance"
	kindMedical   = "medical"
)

type source struct {
	File            string
	Kind            string
	DefaultCategory string
	CompanyID       int
}

// sources declares the catalog files in load order. The order is a
// contract: product ids come from a single counter walking this list top
// to bottom, so reordering it renumbers every product.
var sources = []source{
	{File: "funeral_liberty_boago.json", Kind: kindInsurance, DefaultCategory: entity.CategoryFuneral, CompanyID: 1},
	{File: "hospital_cashback.json", Kind: kindInsurance, DefaultCategory: entity.CategoryHospitalCash, CompanyID: 1},
	{File: "life_metropolitan_mothusi.json", Kind: kindInsurance, DefaultCategory: entity.CategoryLife, CompanyID: 2},
	{File: "medical_botsogo_2025.json", Kind: kindMedical, CompanyID: 3},
	{File: "medical_bpomas_2025.json", Kind: kindMedical, CompanyID: 4},
	{File: "medical_pulamed_2025.json", Kind: kindMedical, CompanyID: 5},
}

func companyByID(id int) entity.Company {
	for _, c := range Companies {
		if c.ID == id {
			return c
		}
	}
	return entity.Company{}
}
