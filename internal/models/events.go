package models

import "time"

// Event types
const (
	EventTypeItemStocked        = "ITEM_STOCKED"
	EventTypeItemDispatched     = "ITEM_DISPATCHED"
	EventTypeItemNotInInventory = "ITEM_NOT_IN_INVENTORY"
	EventTypeItemSoldOut        = "ITEM_SOLD_OUT"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemStockedEvent published when a record is added to the ledger
type ItemStockedEvent struct {
	BaseEvent
	RecordID    int64  `json:"record_id"`
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
	Replaced    bool   `json:"replaced"`
}

// ItemDispatchedEvent published when one unit leaves the ledger
type ItemDispatchedEvent struct {
	BaseEvent
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Remaining   int    `json:"remaining"`
}

// ItemNotInInventoryEvent published when a dispatch names an unknown product
type ItemNotInInventoryEvent struct {
	BaseEvent
	ProductName string `json:"product_name"`
}

// ItemSoldOutEvent published when a dispatch finds zero stock
type ItemSoldOutEvent struct {
	BaseEvent
	ProductName string `json:"product_name"`
}
