package service

import (
	"fmt"
	"strings"

	"loveseats-pos/internal/models"
	"loveseats-pos/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogService builds products and inventory records and owns their
// identifier sequences
type CatalogService struct {
	productSeq *models.Sequence
	recordSeq  *models.Sequence
	logger     *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productSeq, recordSeq *models.Sequence) *CatalogService {
	return &CatalogService{
		productSeq: productSeq,
		recordSeq:  recordSeq,
		logger:     util.GetLogger(),
	}
}

// NewProduct validates and creates a product with a fresh ID.
// No ID is consumed when validation fails.
func (cs *CatalogService) NewProduct(name string, price decimal.Decimal, description string) (models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return models.Product{}, fmt.Errorf("product name is empty: %w", models.ErrInvalidArgument)
	}
	if price.IsNegative() {
		return models.Product{}, fmt.Errorf("product %q has negative price %s: %w", name, price, models.ErrInvalidArgument)
	}

	product := models.Product{
		ID:          cs.productSeq.Next(),
		Name:        name,
		Price:       price,
		Description: description,
	}

	cs.logger.Debug("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("product", product.Name),
		zap.String("price", product.Price.StringFixed(2)))

	return product, nil
}

// NewInventoryRecord creates a stock record for product with a fresh ID
func (cs *CatalogService) NewInventoryRecord(product models.Product, count int) (models.InventoryRecord, error) {
	if count < 0 {
		return models.InventoryRecord{}, fmt.Errorf("record for %q has negative count %d: %w", product.Name, count, models.ErrInvalidArgument)
	}

	return models.InventoryRecord{
		ID:      cs.recordSeq.Next(),
		Product: product,
		Count:   count,
	}, nil
}
