package models

import "math"

// MsgInvalidOrder is returned when an order field is not numeric
const MsgInvalidOrder = "Ungültige Bestelldaten"

// Order represents a purchase. CustomerID and ProductID are plain references;
// they are not checked against the other collections.
type Order struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"kundenId"`
	ProductID  int     `json:"produktId"`
	Quantity   int     `json:"menge"`
	Price      float64 `json:"preis"`
}

// GetID returns the order ID
func (o Order) GetID() int {
	return o.ID
}

// Validate checks the numeric fields. Integer fields are numeric by
// construction, so only the price can be invalid here.
func (o *Order) Validate() error {
	if math.IsNaN(o.Price) || math.IsInf(o.Price, 0) {
		return ErrInvalidInput(MsgInvalidOrder)
	}
	return nil
}
