package service

import (
	"context"
	"testing"

	"loveseats-pos/internal/models"
	"loveseats-pos/internal/store"
	"loveseats-pos/internal/util"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zapcore"
)

func TestDispatchWidgetTwice(t *testing.T) {
	f := newFixture(t)
	widget := f.stock(t, "Widget", "3.50", "Widget. Plain.", 1)
	ctx := context.Background()

	product, err := f.inventory.Dispatch(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, widget, product)

	product, err = f.inventory.Dispatch(ctx, "Widget")
	assert.ErrorIs(t, err, store.ErrSoldOut)
	assert.Equal(t, models.Product{}, product)

	rec, ok := f.inventory.GetInventory("Widget")
	require.True(t, ok)
	assert.Equal(t, 0, rec.Count)
}

func TestDispatchUnknownItem(t *testing.T) {
	f := newFixture(t)
	f.stock(t, "Lovely Loveseat", "254.00", "loveseat", 45)
	before := f.inventory.Counts()

	_, err := f.inventory.Dispatch(context.Background(), "Nonexistent Item")

	assert.ErrorIs(t, err, store.ErrNotInInventory)
	assert.Contains(t, err.Error(), "Nonexistent Item")
	assert.Equal(t, before, f.inventory.Counts())

	warnings := f.logs.FilterMessage("Item not in inventory").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, "Nonexistent Item", warnings[0].ContextMap()["product"])
}

func TestDispatchPublishesEvents(t *testing.T) {
	f := newFixture(t)
	var dispatched []*models.ItemDispatchedEvent
	var soldOut, missing []string
	var stocked []*models.ItemStockedEvent

	f.handler.OnStocked(func(_ context.Context, e *models.ItemStockedEvent) error {
		stocked = append(stocked, e)
		return nil
	})
	f.handler.OnDispatched(func(_ context.Context, e *models.ItemDispatchedEvent) error {
		dispatched = append(dispatched, e)
		return nil
	})
	f.handler.OnSoldOut(func(_ context.Context, e *models.ItemSoldOutEvent) error {
		soldOut = append(soldOut, e.ProductName)
		return nil
	})
	f.handler.OnNotInInventory(func(_ context.Context, e *models.ItemNotInInventoryEvent) error {
		missing = append(missing, e.ProductName)
		return nil
	})

	f.stock(t, "Lamp", "52.15", "lamp", 1)
	f.stock(t, "Lamp", "52.15", "lamp", 2)
	ctx := context.Background()
	_, _ = f.inventory.Dispatch(ctx, "Lamp")
	_, _ = f.inventory.Dispatch(ctx, "Lamp")
	_, _ = f.inventory.Dispatch(ctx, "Lamp")
	_, _ = f.inventory.Dispatch(ctx, "Sofa")

	require.Len(t, stocked, 2)
	assert.False(t, stocked[0].Replaced)
	assert.True(t, stocked[1].Replaced)

	require.Len(t, dispatched, 2)
	assert.Equal(t, 1, dispatched[0].Remaining)
	assert.Equal(t, 0, dispatched[1].Remaining)
	assert.Equal(t, models.EventTypeItemDispatched, dispatched[0].EventType)

	assert.Equal(t, []string{"Lamp"}, soldOut)
	assert.Equal(t, []string{"Sofa"}, missing)
}

func TestDispatchCountsResults(t *testing.T) {
	f := newFixture(t)
	f.stock(t, "Settee", "180.50", "settee", 1)
	ctx := context.Background()

	dispatched := testutil.ToFloat64(util.DispatchTotal.WithLabelValues(models.DispatchResultDispatched))
	soldOut := testutil.ToFloat64(util.DispatchTotal.WithLabelValues(models.DispatchResultSoldOut))
	missing := testutil.ToFloat64(util.DispatchTotal.WithLabelValues(models.DispatchResultNotInInventory))

	_, _ = f.inventory.Dispatch(ctx, "Settee")
	_, _ = f.inventory.Dispatch(ctx, "Settee")
	_, _ = f.inventory.Dispatch(ctx, "Ottoman")

	assert.Equal(t, dispatched+1, testutil.ToFloat64(util.DispatchTotal.WithLabelValues(models.DispatchResultDispatched)))
	assert.Equal(t, soldOut+1, testutil.ToFloat64(util.DispatchTotal.WithLabelValues(models.DispatchResultSoldOut)))
	assert.Equal(t, missing+1, testutil.ToFloat64(util.DispatchTotal.WithLabelValues(models.DispatchResultNotInInventory)))
}

func TestDispatchRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	f := newFixture(t)
	f.stock(t, "Lamp", "52.15", "lamp", 1)
	_, _ = f.inventory.Dispatch(context.Background(), "Lamp")

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"InventoryService.Stock", "InventoryService.Dispatch"}, names)
}
