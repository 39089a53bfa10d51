package store

import (
	"errors"
	"sync"

	"loveseats-pos/internal/models"
)

var (
	ErrNotInInventory = errors.New("item not in inventory")
	ErrSoldOut        = errors.New("item sold out")
)

// Ledger maps product names to their inventory records.
// All access goes through mu so a dispatch can never oversell.
type Ledger struct {
	mu      sync.Mutex
	records map[string]*models.InventoryRecord
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		records: make(map[string]*models.InventoryRecord),
	}
}

// Stock inserts the record under its product name, replacing any earlier
// record with that name. It reports whether a record was replaced.
func (l *Ledger) Stock(record models.InventoryRecord) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, replaced := l.records[record.Product.Name]
	l.records[record.Product.Name] = &record
	return replaced
}

// Dispatch takes one unit of the named product out of stock.
// The remaining count is returned alongside the product.
func (l *Ledger) Dispatch(name string) (models.Product, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[name]
	if !ok {
		return models.Product{}, 0, ErrNotInInventory
	}

	if record.Count <= 0 {
		return models.Product{}, 0, ErrSoldOut
	}

	record.Count--
	return record.Product, record.Count, nil
}

// Get returns a copy of the record stocked under name
func (l *Ledger) Get(name string) (models.InventoryRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[name]
	if !ok {
		return models.InventoryRecord{}, false
	}
	return *record, true
}

// Snapshot returns the current count of every stocked product
func (l *Ledger) Snapshot() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := make(map[string]int, len(l.records))
	for name, record := range l.records {
		counts[name] = record.Count
	}
	return counts
}

// Len returns the number of stocked products
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
