package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/freshroute/admin-api/internal/domain/catalog"
)

// ProductExportRepository streams the catalog straight off a pgx pool so a
// large export never has to fit in memory at once.
type ProductExportRepository struct {
	pool *pgxpool.Pool
}

func NewProductExportRepository(pool *pgxpool.Pool) *ProductExportRepository {
	return &ProductExportRepository{pool: pool}
}

func (r *ProductExportRepository) ForEach(ctx context.Context, fn func(domain.Product) error) error {
	rows, err := r.pool.Query(ctx, `
SELECT id, sku, name, local_name, unit, price, stock, is_active
FROM products
ORDER BY sku
`)
	if err != nil {
		return fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.LocalName, &p.Unit, &p.Price, &p.Stock, &p.Active); err != nil {
			return fmt.Errorf("scan product: %w", err)
		}
		if err := fn(p); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate products: %w", err)
	}
	return nil
}
