package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/freshroute/admin-api/internal/domain/catalog"
	"github.com/freshroute/admin-api/internal/infrastructure/db/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Insert(ctx context.Context, p domain.Product) (domain.Product, error) {
	row := models.Product{
		SKU:       p.SKU,
		Name:      p.Name,
		LocalName: p.LocalName,
		Unit:      p.Unit,
		Price:     p.Price,
		Stock:     p.Stock,
		Active:    p.Active,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Product{}, domain.ErrDuplicateProduct
		}
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	p.ID = row.ID
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	var row models.Product

	err := r.db.WithContext(ctx).First(&row, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	return &domain.Product{
		ID:        row.ID,
		SKU:       row.SKU,
		Name:      row.Name,
		LocalName: row.LocalName,
		Unit:      row.Unit,
		Price:     row.Price,
		Stock:     row.Stock,
		Active:    row.Active,
	}, nil
}
