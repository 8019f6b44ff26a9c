package usecase

import "github.com/botsuinsure/botsuinsure-api/internal/entity"

// PremiumForSalary returns the monthly premium of the first rule whose
// salary bracket admits the given salary. Rules are evaluated in source
// order and an absent bound is unbounded on that side. Nil when no rule
// matches or the product has no rules.
func PremiumForSalary(rules []entity.PremiumRule, salary float64) *float64 {
	for _, rule := range rules {
		if rule.MinSalary != nil && salary < *rule.MinSalary {
			continue
		}
		if rule.MaxSalary != nil && salary > *rule.MaxSalary {
			continue
		}
		premium := rule.MonthlyPremium
		return &premium
	}
	return nil
}
