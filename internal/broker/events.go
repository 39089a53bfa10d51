package broker

import (
	"context"
	"sync"
	"time"

	"loveseats-pos/internal/models"

	"github.com/google/uuid"
)

// EventPublisher delivers ledger events to the registered handler
// synchronously, in the caller's goroutine.
type EventPublisher struct {
	handler *EventHandler
}

// NewEventPublisher creates a publisher. A nil handler drops every event.
func NewEventPublisher(handler *EventHandler) *EventPublisher {
	return &EventPublisher{handler: handler}
}

// NewBaseEvent stamps a fresh event of the given type
func NewBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}

// PublishItemStocked publishes ItemStocked event
func (ep *EventPublisher) PublishItemStocked(ctx context.Context, event *models.ItemStockedEvent) error {
	if ep == nil || ep.handler == nil {
		return nil
	}
	return ep.handler.handleStocked(ctx, event)
}

// PublishItemDispatched publishes ItemDispatched event
func (ep *EventPublisher) PublishItemDispatched(ctx context.Context, event *models.ItemDispatchedEvent) error {
	if ep == nil || ep.handler == nil {
		return nil
	}
	return ep.handler.handleDispatched(ctx, event)
}

// PublishItemNotInInventory publishes ItemNotInInventory event
func (ep *EventPublisher) PublishItemNotInInventory(ctx context.Context, event *models.ItemNotInInventoryEvent) error {
	if ep == nil || ep.handler == nil {
		return nil
	}
	return ep.handler.handleNotInInventory(ctx, event)
}

// PublishItemSoldOut publishes ItemSoldOut event
func (ep *EventPublisher) PublishItemSoldOut(ctx context.Context, event *models.ItemSoldOutEvent) error {
	if ep == nil || ep.handler == nil {
		return nil
	}
	return ep.handler.handleSoldOut(ctx, event)
}

// EventHandler routes events to registered callbacks
type EventHandler struct {
	mu               sync.RWMutex
	onStocked        []func(context.Context, *models.ItemStockedEvent) error
	onDispatched     []func(context.Context, *models.ItemDispatchedEvent) error
	onNotInInventory []func(context.Context, *models.ItemNotInInventoryEvent) error
	onSoldOut        []func(context.Context, *models.ItemSoldOutEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnStocked registers a handler for ItemStocked events
func (eh *EventHandler) OnStocked(handler func(context.Context, *models.ItemStockedEvent) error) {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	eh.onStocked = append(eh.onStocked, handler)
}

// OnDispatched registers a handler for ItemDispatched events
func (eh *EventHandler) OnDispatched(handler func(context.Context, *models.ItemDispatchedEvent) error) {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	eh.onDispatched = append(eh.onDispatched, handler)
}

// OnNotInInventory registers a handler for ItemNotInInventory events
func (eh *EventHandler) OnNotInInventory(handler func(context.Context, *models.ItemNotInInventoryEvent) error) {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	eh.onNotInInventory = append(eh.onNotInInventory, handler)
}

// OnSoldOut registers a handler for ItemSoldOut events
func (eh *EventHandler) OnSoldOut(handler func(context.Context, *models.ItemSoldOutEvent) error) {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	eh.onSoldOut = append(eh.onSoldOut, handler)
}

func (eh *EventHandler) handleStocked(ctx context.Context, event *models.ItemStockedEvent) error {
	eh.mu.RLock()
	handlers := eh.onStocked
	eh.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (eh *EventHandler) handleDispatched(ctx context.Context, event *models.ItemDispatchedEvent) error {
	eh.mu.RLock()
	handlers := eh.onDispatched
	eh.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (eh *EventHandler) handleNotInInventory(ctx context.Context, event *models.ItemNotInInventoryEvent) error {
	eh.mu.RLock()
	handlers := eh.onNotInInventory
	eh.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (eh *EventHandler) handleSoldOut(ctx context.Context, event *models.ItemSoldOutEvent) error {
	eh.mu.RLock()
	handlers := eh.onSoldOut
	eh.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
