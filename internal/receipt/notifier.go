package receipt

import (
	"context"
	"fmt"
	"io"
	"sync"

	"loveseats-pos/internal/broker"
	"loveseats-pos/internal/models"
)

// Notifier prints a line for every purchase the ledger could not fill
type Notifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewNotifier creates a notifier writing to w
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

// Subscribe registers the notifier's callbacks on handler
func (n *Notifier) Subscribe(handler *broker.EventHandler) {
	handler.OnNotInInventory(n.NotInInventory)
	handler.OnSoldOut(n.SoldOut)
}

// NotInInventory reports a purchase of an unknown product
func (n *Notifier) NotInInventory(_ context.Context, event *models.ItemNotInInventoryEvent) error {
	return n.println(fmt.Sprintf("Item '%s' not in inventory.", event.ProductName))
}

// SoldOut reports a purchase of a product with no stock left
func (n *Notifier) SoldOut(_ context.Context, event *models.ItemSoldOutEvent) error {
	return n.println(fmt.Sprintf("The item '%s' is sold out.", event.ProductName))
}

func (n *Notifier) println(line string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintln(n.w, line)
	return err
}
