package usecase

import "github.com/botsuinsure/botsuinsure-api/internal/entity"

type ProductRepositoryInterface interface {
	FindAll(category, company string) []*entity.Product
	FindByID(id int) (*entity.Product, error)
	FindByIDs(ids []int) []*entity.Product
}

type CompanyRepositoryInterface interface {
	FindAll() []entity.Company
}
