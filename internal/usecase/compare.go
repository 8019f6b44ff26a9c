package usecase

import "github.com/botsuinsure/botsuinsure-api/internal/entity"

type CompareProductsUseCase struct {
	Products ProductRepositoryInterface
}

func NewCompareProductsUseCase(products ProductRepositoryInterface) *CompareProductsUseCase {
	return &CompareProductsUseCase{Products: products}
}

// Execute projects the requested products into the comparison view. The
// id set is order-independent; unknown ids are simply absent from the
// result. With a salary, every row carries the bracket lookup's result.
func (uc *CompareProductsUseCase) Execute(input CompareInput) CompareOutput {
	out := CompareOutput{Comparison: []ComparisonItem{}}

	for _, p := range uc.Products.FindByIDs(input.ProductIDs) {
		item := ComparisonItem{
			ID:                      p.ID,
			Name:                    p.Name,
			Company:                 p.Company.Name,
			Category:                p.Category,
			KeyFeatures:             p.KeyFeatures,
			WaitingPeriodNatural:    p.WaitingPeriodNatural,
			WaitingPeriodAccidental: p.WaitingPeriodAccidental,
		}

		if p.Category == entity.CategoryMedical {
			item.AnnualLimit = p.AnnualLimit
			item.CoPayment = p.CoPayment
			item.HospitalNetwork = p.HospitalNetwork
		} else {
			item.SumAssured = p.SumAssured
			item.Premiums = p.Premiums
		}

		if input.Salary != nil {
			item.CalculatedPremium = PremiumForSalary(p.Premiums, *input.Salary)
		}

		out.Comparison = append(out.Comparison, item)
	}

	return out
}
