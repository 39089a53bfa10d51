package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SalesTaxRate is the default rate applied to a cart total
var SalesTaxRate = decimal.RequireFromString("0.088")

// Customer is one shopper's checkout session. Items keeps purchase order
// and may hold the same product more than once.
type Customer struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Items   []Product       `json:"items"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// Total is the sum of the purchased prices
func (c *Customer) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}
	return total
}

// Tax is the sales tax owed on Total
func (c *Customer) Tax() decimal.Decimal {
	return c.Total().Mul(c.TaxRate)
}

// CheckOutTotal is Total plus Tax
func (c *Customer) CheckOutTotal() decimal.Decimal {
	return c.Total().Add(c.Tax())
}

// Itemization lists each purchased description on its own line.
// An empty cart yields an empty string.
func (c *Customer) Itemization() string {
	if len(c.Items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, item.Description)
	}
	return strings.Join(lines, "\n")
}
