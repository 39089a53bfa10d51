package service

import (
	"context"
	"errors"
	"fmt"

	"loveseats-pos/internal/broker"
	"loveseats-pos/internal/models"
	"loveseats-pos/internal/store"
	"loveseats-pos/internal/util"

	"go.uber.org/zap"
)

// InventoryService handles ledger operations
type InventoryService struct {
	ledger         *store.Ledger
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(ledger *store.Ledger, eventPublisher *broker.EventPublisher) *InventoryService {
	return &InventoryService{
		ledger:         ledger,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// Stock adds record to the ledger, silently replacing any record with the
// same product name
func (is *InventoryService) Stock(ctx context.Context, record models.InventoryRecord) {
	ctx, span := util.StartSpan(ctx, "InventoryService.Stock")
	defer span.End()

	replaced := is.ledger.Stock(record)
	util.ItemsStockedTotal.Inc()

	is.logger.Debug("Item stocked",
		zap.Int64("record_id", record.ID),
		zap.String("product", record.Product.Name),
		zap.Int("count", record.Count),
		zap.Bool("replaced", replaced))

	event := &models.ItemStockedEvent{
		BaseEvent:   broker.NewBaseEvent(models.EventTypeItemStocked),
		RecordID:    record.ID,
		ProductName: record.Product.Name,
		Count:       record.Count,
		Replaced:    replaced,
	}
	if err := is.eventPublisher.PublishItemStocked(ctx, event); err != nil {
		is.logger.Error("Failed to publish ItemStocked event", zap.Error(err))
	}
}

// Dispatch takes one unit of the named product out of the ledger.
// It returns store.ErrNotInInventory or store.ErrSoldOut, wrapped, when no
// unit is available; the ledger is unchanged in that case.
func (is *InventoryService) Dispatch(ctx context.Context, name string) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.Dispatch")
	defer span.End()

	product, remaining, err := is.ledger.Dispatch(name)
	switch {
	case err == nil:
		util.DispatchTotal.WithLabelValues(models.DispatchResultDispatched).Inc()
		is.logger.Debug("Item dispatched",
			zap.String("product", name),
			zap.Int("remaining", remaining))

		event := &models.ItemDispatchedEvent{
			BaseEvent:   broker.NewBaseEvent(models.EventTypeItemDispatched),
			ProductID:   product.ID,
			ProductName: product.Name,
			Remaining:   remaining,
		}
		if err := is.eventPublisher.PublishItemDispatched(ctx, event); err != nil {
			is.logger.Error("Failed to publish ItemDispatched event", zap.Error(err))
		}
		return product, nil

	case errors.Is(err, store.ErrNotInInventory):
		util.DispatchTotal.WithLabelValues(models.DispatchResultNotInInventory).Inc()
		is.logger.Warn("Item not in inventory", zap.String("product", name))

		event := &models.ItemNotInInventoryEvent{
			BaseEvent:   broker.NewBaseEvent(models.EventTypeItemNotInInventory),
			ProductName: name,
		}
		if err := is.eventPublisher.PublishItemNotInInventory(ctx, event); err != nil {
			is.logger.Error("Failed to publish ItemNotInInventory event", zap.Error(err))
		}

	case errors.Is(err, store.ErrSoldOut):
		util.DispatchTotal.WithLabelValues(models.DispatchResultSoldOut).Inc()
		is.logger.Warn("Item sold out", zap.String("product", name))

		event := &models.ItemSoldOutEvent{
			BaseEvent:   broker.NewBaseEvent(models.EventTypeItemSoldOut),
			ProductName: name,
		}
		if err := is.eventPublisher.PublishItemSoldOut(ctx, event); err != nil {
			is.logger.Error("Failed to publish ItemSoldOut event", zap.Error(err))
		}
	}

	return models.Product{}, fmt.Errorf("dispatch %q: %w", name, err)
}

// GetInventory retrieves the record stocked under name
func (is *InventoryService) GetInventory(name string) (models.InventoryRecord, bool) {
	return is.ledger.Get(name)
}

// Counts returns the remaining count of every stocked product
func (is *InventoryService) Counts() map[string]int {
	return is.ledger.Snapshot()
}
