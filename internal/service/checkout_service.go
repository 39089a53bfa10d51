package service

import (
	"context"
	"fmt"

	"loveseats-pos/internal/models"
	"loveseats-pos/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService handles customer carts
type CheckoutService struct {
	inventory   *InventoryService
	customerSeq *models.Sequence
	taxRate     decimal.Decimal
	logger      *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(inventory *InventoryService, customerSeq *models.Sequence, taxRate decimal.Decimal) *CheckoutService {
	return &CheckoutService{
		inventory:   inventory,
		customerSeq: customerSeq,
		taxRate:     taxRate,
		logger:      util.GetLogger(),
	}
}

// NewCustomer opens a checkout session with an empty cart
func (cs *CheckoutService) NewCustomer(name string) *models.Customer {
	customer := &models.Customer{
		ID:      cs.customerSeq.Next(),
		Name:    name,
		Items:   []models.Product{},
		TaxRate: cs.taxRate,
	}

	util.CustomersCreatedTotal.Inc()
	cs.logger.Info("Customer created",
		zap.Int64("customer_id", customer.ID),
		zap.String("customer", customer.Name))

	return customer
}

// BuyItem dispatches one unit of name into the customer's cart. When the
// item is unknown or sold out the cart is left as is and the dispatch error
// is returned; callers that only want the silent-skip behavior can ignore it.
func (cs *CheckoutService) BuyItem(ctx context.Context, customer *models.Customer, name string) error {
	ctx, span := util.StartSpan(ctx, "CheckoutService.BuyItem")
	defer span.End()

	product, err := cs.inventory.Dispatch(ctx, name)
	if err != nil {
		cs.logger.Debug("Purchase skipped",
			zap.Int64("customer_id", customer.ID),
			zap.String("product", name),
			zap.Error(err))
		return fmt.Errorf("customer %d: %w", customer.ID, err)
	}

	customer.Items = append(customer.Items, product)
	return nil
}

// CheckOut records the final amount of a session and returns it
func (cs *CheckoutService) CheckOut(customer *models.Customer) decimal.Decimal {
	total := customer.CheckOutTotal()

	amount, _ := total.Float64()
	util.CheckoutAmount.Observe(amount)

	cs.logger.Info("Customer checked out",
		zap.Int64("customer_id", customer.ID),
		zap.Int("items", len(customer.Items)),
		zap.String("total", customer.Total().StringFixed(2)),
		zap.String("tax", customer.Tax().StringFixed(2)),
		zap.String("check_out_total", total.StringFixed(2)))

	return total
}
