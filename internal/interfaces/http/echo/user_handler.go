package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/freshroute/admin-api/internal/application/account"
	domain "github.com/freshroute/admin-api/internal/domain/account"
)

type UserHandler struct {
	createUser  app.CreateUser
	getUserByID app.GetUserByID
}

func NewUserHandler(createUser app.CreateUser, getUserByID app.GetUserByID) *UserHandler {
	return &UserHandler{createUser: createUser, getUserByID: getUserByID}
}

type createUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	IsActive    *bool  `json:"is_active"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
	Notes       string `json:"notes"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
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

	out, err := h.createUser.Execute(c.Request().Context(), app.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Active:      active,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		ZipCode:     req.ZipCode,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlankName),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrUnknownRole):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "validation_error",
				Message: err.Error(),
			}})
		case errors.Is(err, app.ErrProvisionAccount):
			return c.JSON(http.StatusBadGateway, apiResponse{Error: &errorBody{
				Code:    "auth_error",
				Message: "failed to provision auth account",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to create user",
		}})
	}

	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	out, err := h.getUserByID.Execute(c.Request().Context(), app.GetUserByIDInput{
		ID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidUserID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_user_id",
				Message: "id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "user not found",
			}})
		}

		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get user",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
