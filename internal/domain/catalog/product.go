package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultUnit is applied when an import or create request carries no unit.
const DefaultUnit = "piece"

type Product struct {
	ID        string
	SKU       string
	Name      string
	LocalName string
	Unit      string
	Price     decimal.Decimal
	Stock     int
	Active    bool
}

// NewProduct validates and builds a product aggregate.
func NewProduct(sku, name, localName, unit string, price decimal.Decimal, stock int, active bool) (Product, error) {
	if strings.TrimSpace(sku) == "" {
		return Product{}, ErrBlankSKU
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, ErrBlankName
	}
	if price.IsNegative() {
		return Product{}, ErrNegativePrice
	}
	if stock < 0 {
		return Product{}, ErrNegativeStock
	}

	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultUnit
	}

	return Product{
		SKU:       strings.TrimSpace(sku),
		Name:      strings.TrimSpace(name),
		LocalName: strings.TrimSpace(localName),
		Unit:      unit,
		Price:     price,
		Stock:     stock,
		Active:    active,
	}, nil
}
