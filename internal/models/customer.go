package models

// Validation messages for customers
const (
	MsgFirstNameMissing = "Vorname fehlt"
	MsgLastNameMissing  = "Nachname fehlt"
)

// Customer represents a customer in the shop
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"vorname"`
	LastName  string `json:"nachname"`
}

// GetID returns the customer ID
func (c Customer) GetID() int {
	return c.ID
}

// Validate checks that both names are present
func (c *Customer) Validate() error {
	if c.FirstName == "" {
		return ErrInvalidInput(MsgFirstNameMissing)
	}
	if c.LastName == "" {
		return ErrInvalidInput(MsgLastNameMissing)
	}
	return nil
}
