package main

import (
	"context"
	"log"
	"os"

	"loveseats-pos/config"
	"loveseats-pos/internal/broker"
	"loveseats-pos/internal/models"
	"loveseats-pos/internal/receipt"
	"loveseats-pos/internal/service"
	"loveseats-pos/internal/store"
	"loveseats-pos/internal/util"
	"loveseats-pos/internal/worker"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type catalogEntry struct {
	name        string
	price       string
	description string
	count       int
}

var catalog = []catalogEntry{
	{
		name:        "Lovely Loveseat",
		price:       "254.00",
		description: "Lovely Loveseat. Tufted polyester blend on wood. 32 inches high x 40 inches wide x 30 inches deep. Red or white.",
		count:       45,
	},
	{
		name:        "Stylish Settee",
		price:       "180.50",
		description: "Stylish Settee. Faux leather on birch. 29.50 inches high x 54.75 inches wide x 28 inches deep. Black.",
		count:       20,
	},
	{
		name:        "Luxurious Lamp",
		price:       "52.15",
		description: "Luxurious Lamp. Glass and iron. 36 inches tall. Brown with cream shade.",
		count:       15,
	},
}

var shoppers = []worker.Shopper{
	{Name: "One", Items: []string{"Lovely Loveseat", "Luxurious Lamp"}},
}

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.App.Env, cfg.App.Name); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting point of sale")

	handler := broker.NewEventHandler()
	receipt.NewNotifier(os.Stdout).Subscribe(handler)

	catalogService := service.NewCatalogService(models.NewSequence(), models.NewSequence())
	inventoryService := service.NewInventoryService(store.NewLedger(), broker.NewEventPublisher(handler))
	checkoutService := service.NewCheckoutService(inventoryService, models.NewSequence(), cfg.Business.SalesTaxRate)

	ctx := context.Background()
	for _, entry := range catalog {
		product, err := catalogService.NewProduct(entry.name, decimal.RequireFromString(entry.price), entry.description)
		if err != nil {
			logger.Error("Skipping catalog entry", zap.String("product", entry.name), zap.Error(err))
			continue
		}
		record, err := catalogService.NewInventoryRecord(product, entry.count)
		if err != nil {
			logger.Error("Skipping catalog entry", zap.String("product", entry.name), zap.Error(err))
			continue
		}
		inventoryService.Stock(ctx, record)
	}

	customers, err := worker.NewLanes(checkoutService, cfg.Business.CheckoutLanes).Run(ctx, shoppers)
	if err != nil {
		logger.Error("Checkout interrupted", zap.Error(err))
	}

	for _, customer := range customers {
		if customer == nil {
			continue
		}
		checkoutService.CheckOut(customer)
		if err := receipt.Print(os.Stdout, customer); err != nil {
			logger.Error("Failed to print receipt", zap.Int64("customer_id", customer.ID), zap.Error(err))
		}
	}

	logger.Info("Point of sale finished", zap.Any("remaining", inventoryService.Counts()))
}
