package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/freshroute/admin-api/internal/domain/catalog"
)

type CreateProductInput struct {
	SKU       string
	Name      string
	LocalName string
	Unit      string
	Price     string
	Stock     string
	Active    bool
}

type ProductOutput struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	LocalName string `json:"local_name,omitempty"`
	Unit      string `json:"unit"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
	Active    bool   `json:"is_active"`
}

type CreateProduct interface {
	Execute(ctx context.Context, in CreateProductInput) (ProductOutput, error)
}

type productInserter interface {
	Insert(ctx context.Context, p domain.Product) (domain.Product, error)
}

type createProduct struct {
	products productInserter
}

func NewCreateProduct(products productInserter) CreateProduct {
	return &createProduct{products: products}
}

// Execute records a product. Price and stock arrive as strings because both
// the CSV pipeline and the dashboard form submit them as text; blank values
// fall back to zero.
func (uc *createProduct) Execute(ctx context.Context, in CreateProductInput) (ProductOutput, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return ProductOutput{}, err
	}

	stock, err := parseStock(in.Stock)
	if err != nil {
		return ProductOutput{}, err
	}

	productAggregate, err := domain.NewProduct(in.SKU, in.Name, in.LocalName, in.Unit, price, stock, in.Active)
	if err != nil {
		return ProductOutput{}, err
	}

	created, err := uc.products.Insert(ctx, productAggregate)
	if err != nil {
		return ProductOutput{}, fmt.Errorf("%w: %v", ErrCreateProduct, err)
	}

	return ProductOutput{
		ID:        created.ID,
		SKU:       created.SKU,
		Name:      created.Name,
		LocalName: created.LocalName,
		Unit:      created.Unit,
		Price:     created.Price.String(),
		Stock:     created.Stock,
		Active:    created.Active,
	}, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	return price, nil
}

func parseStock(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	stock, err := strconv.Atoi(raw)
	if err != nil || stock < 0 {
		return 0, ErrInvalidStock
	}
	return stock, nil
}
