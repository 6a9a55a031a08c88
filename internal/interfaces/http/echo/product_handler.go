package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/freshroute/admin-api/internal/application/catalog"
	domain "github.com/freshroute/admin-api/internal/domain/catalog"
)

type ProductHandler struct {
	createProduct  app.CreateProduct
	getProductByID app.GetProductByID
	exportProducts app.ExportProducts
}

func NewProductHandler(createProduct app.CreateProduct, getProductByID app.GetProductByID, exportProducts app.ExportProducts) *ProductHandler {
	return &ProductHandler{
		createProduct:  createProduct,
		getProductByID: getProductByID,
		exportProducts: exportProducts,
	}
}

type createProductRequest struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	LocalName string `json:"name_local"`
	Unit      string `json:"unit"`
	Price     string `json:"price"`
	Stock     string `json:"stock"`
	IsActive  *bool  `json:"is_active"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	out, err := h.createProduct.Execute(c.Request().Context(), app.CreateProductInput{
		SKU:       req.SKU,
		Name:      req.Name,
		LocalName: req.LocalName,
		Unit:      req.Unit,
		Price:     req.Price,
		Stock:     req.Stock,
		Active:    active,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlankSKU),
			errors.Is(err, domain.ErrBlankName),
			errors.Is(err, app.ErrInvalidPrice),
			errors.Is(err, app.ErrInvalidStock):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "validation_error",
				Message: err.Error(),
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to create product",
		}})
	}

	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	out, err := h.getProductByID.Execute(c.Request().Context(), app.GetProductByIDInput{
		ID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidProductID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_product_id",
				Message: "id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "product not found",
			}})
		}

		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get product",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

// ExportProducts streams the catalog as csv using the same column layout
// the import accepts.
func (h *ProductHandler) ExportProducts(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.exportProducts.Execute(c.Request().Context(), c.Response()); err != nil {
		// headers are already out; the broken download is all we can signal
		return err
	}
	return nil
}
