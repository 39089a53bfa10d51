package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned when a catalog entity is built from bad input
var ErrInvalidArgument = errors.New("invalid argument")

// Product represents a sellable item in the catalog
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// InventoryRecord tracks the remaining stock of one product
type InventoryRecord struct {
	ID      int64   `json:"id"`
	Product Product `json:"product"`
	Count   int     `json:"count"`
}

// Dispatch results
const (
	DispatchResultDispatched     = "dispatched"
	DispatchResultNotInInventory = "not_in_inventory"
	DispatchResultSoldOut        = "sold_out"
)
