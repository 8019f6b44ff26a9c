package memory

import (
	"strings"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
)

// ProductRepository serves queries over the product table built at boot.
// The table is never mutated after construction, so reads need no locking.
type ProductRepository struct {
	products []*entity.Product
}

func NewProductRepository(products []*entity.Product) *ProductRepository {
	return &ProductRepository{products: products}
}

// FindAll filters by exact category match and case-insensitive substring
// match on the company name. Both filters are optional and combine with
// AND; unknown values just yield an empty result. Table order is kept.
func (r *ProductRepository) FindAll(category, company string) []*entity.Product {
	company = strings.ToLower(company)

	out := []*entity.Product{}
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		if company != "" && !strings.Contains(strings.ToLower(p.Company.Name), company) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *ProductRepository) FindByID(id int) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

// FindByIDs returns the subset of the table whose id is in the given set,
// in table order. Duplicates collapse and unknown ids are silently
// dropped.
func (r *ProductRepository) FindByIDs(ids []int) []*entity.Product {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := []*entity.Product{}
	for _, p := range r.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (r *ProductRepository) Count() int {
	return len(r.products)
}
