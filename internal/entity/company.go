package entity

const (
	CompanyTypeLifeFuneral = "life_funeral"
	CompanyTypeLife        = "life"
	CompanyTypeMedical     = "medical"
)

type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
