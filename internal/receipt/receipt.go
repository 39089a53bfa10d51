// Package receipt renders shopper-facing console text: the checkout receipt
// and the notices shown when a purchase cannot be filled.
package receipt

import (
	"fmt"
	"io"
	"strings"

	"loveseats-pos/internal/models"
)

// Render formats the receipt for customer. It does not modify the customer.
//
//	Customer <name> Items:
//	<itemization>
//
//	Customer <name> Total: <check-out total, two decimals>
func Render(customer *models.Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Customer %s Items:\n", customer.Name)
	b.WriteString(customer.Itemization())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Customer %s Total: %s\n", customer.Name, customer.CheckOutTotal().StringFixed(2))

	return b.String()
}

// Print writes the rendered receipt to w
func Print(w io.Writer, customer *models.Customer) error {
	_, err := io.WriteString(w, Render(customer))
	return err
}
