package worker

import (
	"context"
	"errors"

	"loveseats-pos/internal/models"
	"loveseats-pos/internal/service"
	"loveseats-pos/internal/store"
	"loveseats-pos/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Shopper is a named customer and the products they will try to buy, in order
type Shopper struct {
	Name  string
	Items []string
}

// Lanes runs many shoppers at once against one shared ledger
type Lanes struct {
	checkout *service.CheckoutService
	size     int
	logger   *zap.Logger
}

// NewLanes creates lanes that serve at most size shoppers concurrently
func NewLanes(checkout *service.CheckoutService, size int) *Lanes {
	if size < 1 {
		size = 1
	}
	return &Lanes{
		checkout: checkout,
		size:     size,
		logger:   util.GetLogger(),
	}
}

// Run serves every shopper and returns their customers in shopper order.
// Unavailable items are skipped; only context cancellation aborts a lane.
func (l *Lanes) Run(ctx context.Context, shoppers []Shopper) ([]*models.Customer, error) {
	customers := make([]*models.Customer, len(shoppers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.size)

	for i, shopper := range shoppers {
		i, shopper := i, shopper
		g.Go(func() error {
			customer := l.checkout.NewCustomer(shopper.Name)
			customers[i] = customer

			for _, item := range shopper.Items {
				if err := ctx.Err(); err != nil {
					return err
				}

				err := l.checkout.BuyItem(ctx, customer, item)
				if err != nil && !errors.Is(err, store.ErrSoldOut) && !errors.Is(err, store.ErrNotInInventory) {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.logger.Warn("Checkout lanes stopped", zap.Error(err))
		return customers, err
	}

	l.logger.Info("Checkout lanes finished", zap.Int("shoppers", len(shoppers)))
	return customers, nil
}
