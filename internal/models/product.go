package models

import "math"

// Validation messages for products
const (
	MsgNameMissing  = "Name fehlt"
	MsgInvalidPrice = "Ungültiger Preis"
)

// Product represents an article that can be ordered
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"preis"`
}

// GetID returns the product ID
func (p Product) GetID() int {
	return p.ID
}

// Validate requires a name and a strictly positive, finite price
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidInput(MsgNameMissing)
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price <= 0 {
		return ErrInvalidInput(MsgInvalidPrice)
	}
	return nil
}
