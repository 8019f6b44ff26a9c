package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
)

func f(v float64) *float64 { return &v }

func TestPremiumForSalaryFirstMatchingBracketWins(t *testing.T) {
	rules := []entity.PremiumRule{
		{MaxSalary: f(5000), MonthlyPremium: 100},
		{MinSalary: f(5001), MonthlyPremium: 200},
	}

	if got := PremiumForSalary(rules, 4000); assert.NotNil(t, got) {
		assert.Equal(t, 100.0, *got)
	}
	if got := PremiumForSalary(rules, 5001); assert.NotNil(t, got) {
		assert.Equal(t, 200.0, *got)
	}
	// the first rule has no lower bound, so even a negative salary lands in it
	if got := PremiumForSalary(rules, -1); assert.NotNil(t, got) {
		assert.Equal(t, 100.0, *got)
	}
}

func TestPremiumForSalaryNoUnboundedLowerEnd(t *testing.T) {
	rules := []entity.PremiumRule{
		{MinSalary: f(1), MaxSalary: f(5000), MonthlyPremium: 100},
		{MinSalary: f(5001), MonthlyPremium: 200},
	}

	assert.Nil(t, PremiumForSalary(rules, -1))
	assert.Nil(t, PremiumForSalary(rules, 0))
}

func TestPremiumForSalaryBoundsAreInclusive(t *testing.T) {
	rules := []entity.PremiumRule{
		{MinSalary: f(3001), MaxSalary: f(8000), MonthlyPremium: 85},
	}

	if got := PremiumForSalary(rules, 3001); assert.NotNil(t, got) {
		assert.Equal(t, 85.0, *got)
	}
	if got := PremiumForSalary(rules, 8000); assert.NotNil(t, got) {
		assert.Equal(t, 85.0, *got)
	}
	assert.Nil(t, PremiumForSalary(rules, 3000))
	assert.Nil(t, PremiumForSalary(rules, 8001))
}

func TestPremiumForSalaryNoRules(t *testing.T) {
	assert.Nil(t, PremiumForSalary(nil, 5000))
	assert.Nil(t, PremiumForSalary([]entity.PremiumRule{}, 5000))
}

func TestPremiumForSalarySourceOrderDecidesTies(t *testing.T) {
	// overlapping brackets are not supposed to happen, but if they do the
	// first rule in source order wins
	rules := []entity.PremiumRule{
		{MaxSalary: f(10000), MonthlyPremium: 100},
		{MaxSalary: f(10000), MonthlyPremium: 999},
	}

	if got := PremiumForSalary(rules, 5000); assert.NotNil(t, got) {
		assert.Equal(t, 100.0, *got)
	}
}
