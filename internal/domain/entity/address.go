package entity

// Address is a shipping destination captured at checkout time.
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// Contact holds the customer contact details attached to an order.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
