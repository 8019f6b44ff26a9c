package memory

import "github.com/botsuinsure/botsuinsure-api/internal/entity"

type CompanyRepository struct {
	companies []entity.Company
}

func NewCompanyRepository(companies []entity.Company) *CompanyRepository {
	return &CompanyRepository{companies: companies}
}

func (r *CompanyRepository) FindAll() []entity.Company {
	return r.companies
}
