package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	domain "github.com/freshroute/admin-api/internal/domain/catalog"
)

var exportHeader = []string{"sku", "name", "name_local", "unit", "price", "stock", "is_active"}

type ExportProducts interface {
	Execute(ctx context.Context, w io.Writer) error
}

// productIterator streams the catalog in SKU order without materializing it.
type productIterator interface {
	ForEach(ctx context.Context, fn func(domain.Product) error) error
}

type exportProducts struct {
	products productIterator
}

func NewExportProducts(products productIterator) ExportProducts {
	return &exportProducts{products: products}
}

// Execute writes the whole catalog as CSV, one row per product, with the
// same column names the import pipeline accepts so an exported file can be
// edited and re-imported.
func (uc *exportProducts) Execute(ctx context.Context, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("%w: %v", ErrExportProducts, err)
	}

	err := uc.products.ForEach(ctx, func(p domain.Product) error {
		return writer.Write([]string{
			p.SKU,
			p.Name,
			p.LocalName,
			p.Unit,
			p.Price.String(),
			strconv.Itoa(p.Stock),
			strconv.FormatBool(p.Active),
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportProducts, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrExportProducts, err)
	}
	return nil
}
