package entity

// Lead is a prospective customer's contact request. It is never stored;
// the payload only lives for the single request/response exchange.
type Lead struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes,omitempty"`
}
