package service

import "github.com/shopspring/decimal"

// formatoPrecio renders an amount as "$45.00".
func formatoPrecio(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
