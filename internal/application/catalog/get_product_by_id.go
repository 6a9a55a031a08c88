package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	domain "github.com/freshroute/admin-api/internal/domain/catalog"
)

var productIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type GetProductByIDInput struct {
	ID string
}

type GetProductByID interface {
	Execute(ctx context.Context, in GetProductByIDInput) (ProductOutput, error)
}

type productGetter interface {
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
}

type getProductByID struct {
	repo productGetter
}

func NewGetProductByID(repo productGetter) GetProductByID {
	return &getProductByID{repo: repo}
}

func (uc *getProductByID) Execute(ctx context.Context, in GetProductByIDInput) (ProductOutput, error) {
	if !productIDPattern.MatchString(in.ID) {
		return ProductOutput{}, ErrInvalidProductID
	}

	productAggregate, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return ProductOutput{}, ErrProductNotFound
		}
		return ProductOutput{}, fmt.Errorf("%w: %v", ErrGetProductByID, err)
	}

	return ProductOutput{
		ID:        productAggregate.ID,
		SKU:       productAggregate.SKU,
		Name:      productAggregate.Name,
		LocalName: productAggregate.LocalName,
		Unit:      productAggregate.Unit,
		Price:     productAggregate.Price.String(),
		Stock:     productAggregate.Stock,
		Active:    productAggregate.Active,
	}, nil
}
