package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/service"
)

// Route prefixes of the three collections
const (
	CustomersPrefix = "/api/kunden"
	ProductsPrefix  = "/api/produkte"
	OrdersPrefix    = "/api/bestellungen"
)

// Not-found messages of the three collections
const (
	MsgCustomerNotFound = "Der Kunde wurde nicht gefunden."
	MsgProductNotFound  = "Das Produkt wurde nicht gefunden."
	MsgOrderNotFound    = "Die Bestellung wurde nicht gefunden."
)

// RouteRegistrar mounts a controller's routes on a router
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// Services bundles the services the controllers are built from
type Services struct {
	Customers service.CustomerService
	Products  service.ProductService
	Orders    service.OrderService
}

// NewCustomerHandler creates the /api/kunden controller
func NewCustomerHandler(svc service.CustomerService, logger *slog.Logger) *ResourceHandler[models.Customer, service.CustomerInput] {
	return NewResourceHandler[models.Customer, service.CustomerInput](CustomersPrefix, svc, MsgCustomerNotFound, logger)
}

// NewProductHandler creates the /api/produkte controller
func NewProductHandler(svc service.ProductService, logger *slog.Logger) *ResourceHandler[models.Product, service.ProductInput] {
	return NewResourceHandler[models.Product, service.ProductInput](ProductsPrefix, svc, MsgProductNotFound, logger)
}

// NewOrderHandler creates the /api/bestellungen controller
func NewOrderHandler(svc service.OrderService, logger *slog.Logger) *ResourceHandler[models.Order, service.OrderInput] {
	return NewResourceHandler[models.Order, service.OrderInput](OrdersPrefix, svc, MsgOrderNotFound, logger)
}

// Routes returns every resource controller of the API
func Routes(services Services, logger *slog.Logger) []RouteRegistrar {
	return []RouteRegistrar{
		NewCustomerHandler(services.Customers, logger),
		NewProductHandler(services.Products, logger),
		NewOrderHandler(services.Orders, logger),
	}
}

// Mount registers all routes on r
func Mount(r chi.Router, routes []RouteRegistrar) {
	for _, route := range routes {
		route.RegisterRoutes(r)
	}
}
