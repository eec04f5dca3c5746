package models

// MsgNoInput is returned when create or update is called without a body
const MsgNoInput = "Keine Daten übermittelt"

// Entity is implemented by every record stored in a collection
type Entity interface {
	GetID() int
}

// Document is the complete persisted database: all three collections
type Document struct {
	Customers []Customer `json:"Kunden"`
	Orders    []Order    `json:"Bestellungen"`
	Products  []Product  `json:"Produkte"`
}

// Normalize replaces missing collections with empty ones so they encode as []
func (d *Document) Normalize() {
	if d.Customers == nil {
		d.Customers = []Customer{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}
}

// DefaultDocument returns the seed data used when no document is stored yet
func DefaultDocument() *Document {
	return &Document{
		Customers: []Customer{
			{ID: 1, FirstName: "Ceylin", LastName: "Atas"},
			{ID: 2, FirstName: "Krenar", LastName: "Beka"},
		},
		Orders: []Order{
			{ID: 1, CustomerID: 1, ProductID: 1, Quantity: 2, Price: 20.5},
			{ID: 2, CustomerID: 2, ProductID: 2, Quantity: 1, Price: 15.75},
		},
		Products: []Product{
			{ID: 1, Name: "Orientalischer Teppich", Price: 10.25},
			{ID: 2, Name: "Blumenstrauß", Price: 15.75},
		},
	}
}
