package echo

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	accountapp "github.com/freshroute/admin-api/internal/application/account"
	catalogapp "github.com/freshroute/admin-api/internal/application/catalog"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type ImportHandler struct {
	importUsers    accountapp.ImportUsers
	importProducts catalogapp.ImportProducts
}

func NewImportHandler(importUsers accountapp.ImportUsers, importProducts catalogapp.ImportProducts) *ImportHandler {
	return &ImportHandler{importUsers: importUsers, importProducts: importProducts}
}

// ImportUsers accepts a multipart CSV upload (field "file", first line a
// header) and runs the whole batch synchronously. Per-row failures come
// back inside the result; only an unreadable file is a request error.
func (h *ImportHandler) ImportUsers(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "missing_file",
			Message: "a csv file upload named \"file\" is required",
		}})
	}

	result, err := h.importUsers.Execute(c.Request().Context(), accountapp.ImportUsersInput{
		Data:      data,
		HasHeader: true,
	})
	if err != nil {
		if errors.Is(err, accountapp.ErrMalformedImport) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_csv",
				Message: "the uploaded file could not be parsed as csv",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "import failed",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: result})
}

func (h *ImportHandler) ImportProducts(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "missing_file",
			Message: "a csv file upload named \"file\" is required",
		}})
	}

	result, err := h.importProducts.Execute(c.Request().Context(), catalogapp.ImportProductsInput{
		Data:      data,
		HasHeader: true,
	})
	if err != nil {
		if errors.Is(err, catalogapp.ErrMalformedImport) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_csv",
				Message: "the uploaded file could not be parsed as csv",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "import failed",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: result})
}

func readUpload(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
