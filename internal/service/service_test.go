package service

import (
	"context"
	"testing"

	"loveseats-pos/internal/broker"
	"loveseats-pos/internal/models"
	"loveseats-pos/internal/store"
	"loveseats-pos/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	catalog   *CatalogService
	inventory *InventoryService
	checkout  *CheckoutService
	ledger    *store.Ledger
	handler   *broker.EventHandler
	logs      *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	prev := util.GetLogger()
	util.SetLogger(zap.New(core))
	t.Cleanup(func() { util.SetLogger(prev) })

	ledger := store.NewLedger()
	handler := broker.NewEventHandler()
	inventory := NewInventoryService(ledger, broker.NewEventPublisher(handler))

	return &fixture{
		catalog:   NewCatalogService(models.NewSequence(), models.NewSequence()),
		inventory: inventory,
		checkout:  NewCheckoutService(inventory, models.NewSequence(), models.SalesTaxRate),
		ledger:    ledger,
		handler:   handler,
		logs:      logs,
	}
}

func (f *fixture) stock(t *testing.T, name, price, description string, count int) models.Product {
	t.Helper()

	product, err := f.catalog.NewProduct(name, decimal.RequireFromString(price), description)
	require.NoError(t, err)
	record, err := f.catalog.NewInventoryRecord(product, count)
	require.NoError(t, err)

	f.inventory.Stock(context.Background(), record)
	return product
}
