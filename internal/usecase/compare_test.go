package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(category, company string) []*entity.Product {
	args := m.Called(category, company)
	return args.Get(0).([]*entity.Product)
}

func (m *MockProductRepository) FindByID(id int) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ids []int) []*entity.Product {
	args := m.Called(ids)
	return args.Get(0).([]*entity.Product)
}

func limit(v float64) *float64 { return &v }

func funeralProduct() *entity.Product {
	return &entity.Product{
		ID:         1,
		Name:       "Boago Funeral Plan",
		Category:   entity.CategoryFuneral,
		Company:    entity.Company{ID: 1, Name: "Liberty Life Botswana (Pty) Limited"},
		SumAssured: "P 30,000",
		Premiums: []entity.PremiumRule{
			{MaxSalary: f(5000), MonthlyPremium: 100},
			{MinSalary: f(5001), MonthlyPremium: 200},
		},
		WaitingPeriodNatural: "6 months",
		KeyFeatures:          []string{"Covers up to 14 family members"},
	}
}

func medicalProduct() *entity.Product {
	return &entity.Product{
		ID:              3,
		Name:            "Diamond",
		Category:        entity.CategoryMedical,
		Company:         entity.Company{ID: 3, Name: "Botsogo Health Plan"},
		AnnualLimit:     limit(2215000),
		CoPayment:       "10%",
		HospitalNetwork: "Private hospitals countrywide",
		Premiums: []entity.PremiumRule{
			{MinSalary: f(0), MaxSalary: f(4999), MonthlyPremium: 550},
			{MinSalary: f(5000), MonthlyPremium: 890},
		},
		KeyFeatures: []string{},
	}
}

func TestCompareProjectsCategoryDependentFields(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByIDs", []int{1, 3}).Return([]*entity.Product{funeralProduct(), medicalProduct()})

	out := NewCompareProductsUseCase(repo).Execute(CompareInput{ProductIDs: []int{1, 3}})

	assert.Len(t, out.Comparison, 2)

	funeral := out.Comparison[0]
	assert.Equal(t, "Boago Funeral Plan", funeral.Name)
	assert.Equal(t, "Liberty Life Botswana (Pty) Limited", funeral.Company)
	assert.Equal(t, "P 30,000", funeral.SumAssured)
	assert.Len(t, funeral.Premiums, 2)
	assert.Nil(t, funeral.AnnualLimit)
	assert.Empty(t, funeral.HospitalNetwork)

	medical := out.Comparison[1]
	assert.Equal(t, "Diamond", medical.Name)
	if assert.NotNil(t, medical.AnnualLimit) {
		assert.Equal(t, 2215000.0, *medical.AnnualLimit)
	}
	assert.Equal(t, "10%", medical.CoPayment)
	assert.Empty(t, medical.SumAssured)
	assert.Empty(t, medical.Premiums)
}

func TestCompareWithoutSalaryOmitsCalculatedPremium(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByIDs", mock.Anything).Return([]*entity.Product{medicalProduct()})

	out := NewCompareProductsUseCase(repo).Execute(CompareInput{ProductIDs: []int{3}})

	assert.Nil(t, out.Comparison[0].CalculatedPremium)
}

func TestCompareWithSalaryAttachesCalculatedPremium(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByIDs", mock.Anything).Return([]*entity.Product{funeralProduct(), medicalProduct()})

	salary := 6000.0
	out := NewCompareProductsUseCase(repo).Execute(CompareInput{ProductIDs: []int{1, 3}, Salary: &salary})

	if assert.NotNil(t, out.Comparison[0].CalculatedPremium) {
		assert.Equal(t, 200.0, *out.Comparison[0].CalculatedPremium)
	}
	if assert.NotNil(t, out.Comparison[1].CalculatedPremium) {
		assert.Equal(t, 890.0, *out.Comparison[1].CalculatedPremium)
	}
}

func TestCompareEmptyIDSetYieldsEmptyComparison(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByIDs", mock.Anything).Return([]*entity.Product{})

	out := NewCompareProductsUseCase(repo).Execute(CompareInput{})

	assert.NotNil(t, out.Comparison)
	assert.Empty(t, out.Comparison)
}
