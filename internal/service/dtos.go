package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value holds one raw JSON scalar from a request body. Clients may send
// numbers as strings ("9.99") or as numbers (9.99); the services coerce them.
type Value struct {
	raw any
}

// UnmarshalJSON keeps whatever JSON value was sent
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.raw = raw
	return nil
}

// Present reports whether the value counts as given. Missing fields, null,
// false, "" and 0 do not.
func (v Value) Present() bool {
	switch x := v.raw.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}

// Text returns the value as a string, or "" when it is not present
func (v Value) Text() string {
	if !v.Present() {
		return ""
	}
	switch x := v.raw.(type) {
	case string:
		return x
	case float64:
		return formatNumber(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// Int parses a leading integer from the value
func (v Value) Int() (int, bool) {
	switch x := v.raw.(type) {
	case string:
		return parseIntPrefix(x)
	case float64:
		return parseIntPrefix(formatNumber(x))
	default:
		return 0, false
	}
}

// Float parses a leading decimal number from the value
func (v Value) Float() (float64, bool) {
	switch x := v.raw.(type) {
	case string:
		return parseFloatPrefix(x)
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// CustomerInput lists the recognized customer fields. Unknown fields are ignored.
type CustomerInput struct {
	FirstName Value `json:"vorname"`
	LastName  Value `json:"nachname"`
}

// ProductInput lists the recognized product fields
type ProductInput struct {
	Name  Value `json:"name"`
	Price Value `json:"preis"`
}

// OrderInput lists the recognized order fields
type OrderInput struct {
	CustomerID Value `json:"kundenId"`
	ProductID  Value `json:"produktId"`
	Quantity   Value `json:"menge"`
	Price      Value `json:"preis"`
}
