package usecase

type CalculatePremiumsUseCase struct {
	Products ProductRepositoryInterface
}

func NewCalculatePremiumsUseCase(products ProductRepositoryInterface) *CalculatePremiumsUseCase {
	return &CalculatePremiumsUseCase{Products: products}
}

// Execute runs the bracket lookup across every product of the category,
// one row per product in table order.
func (uc *CalculatePremiumsUseCase) Execute(category string, salary float64) []CalculatedRow {
	rows := []CalculatedRow{}

	for _, p := range uc.Products.FindAll(category, "") {
		rows = append(rows, CalculatedRow{
			ID:                   p.ID,
			Name:                 p.Name,
			Company:              p.Company,
			Category:             p.Category,
			AnnualLimit:          p.AnnualLimit,
			CoPayment:            p.CoPayment,
			WaitingPeriodNatural: p.WaitingPeriodNatural,
			Premiums:             p.Premiums,
			CalculatedPremium:    PremiumForSalary(p.Premiums, salary),
		})
	}

	return rows
}
