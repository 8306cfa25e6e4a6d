// Package store holds realistic e-commerce fixture types used by tests
// across the module. The shapes deliberately cover the interesting
// generation cases: UUID and time members, named scalar types, pointers,
// slices, maps, nested structs and a circular Customer/Order reference.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an individual item available for sale.
// Price is kept in cents (lowest currency unit) to avoid floating-point
// errors.
type Product struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Inventory   int       `json:"inventory_count"`
	Weight      float64   `json:"weight"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Address      *string   `json:"address"`
	Active       bool      `json:"is_active"`
	PasswordHash string    `json:"-" fake:"-"`
	Orders       []Order   `json:"orders"`
}

// Order represents a transaction made by a customer. The Customer pointer
// makes the Customer/Order type graph circular.
type Order struct {
	ID              uuid.UUID         `json:"id"`
	Status          OrderStatus       `json:"status"`
	TotalCents      int64             `json:"total_cents"`
	Items           []OrderItem       `json:"items"`
	Customer        *Customer         `json:"customer"`
	Metadata        map[string]string `json:"metadata"`
	FulfillmentTime time.Duration     `json:"fulfillment_time"`
	OrderedAt       time.Time         `json:"ordered_at"`
	ShippedAt       *time.Time        `json:"shipped_at"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
