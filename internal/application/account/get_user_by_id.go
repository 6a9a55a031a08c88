package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	domain "github.com/freshroute/admin-api/internal/domain/account"
)

var userIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type GetUserByIDInput struct {
	ID string
}

type GetUserByIDOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
	Notes       string `json:"notes"`
}

type GetUserByID interface {
	Execute(ctx context.Context, in GetUserByIDInput) (GetUserByIDOutput, error)
}

type userGetter interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type getUserByID struct {
	repo userGetter
}

func NewGetUserByID(repo userGetter) GetUserByID {
	return &getUserByID{repo: repo}
}

func (uc *getUserByID) Execute(ctx context.Context, in GetUserByIDInput) (GetUserByIDOutput, error) {
	if !userIDPattern.MatchString(in.ID) {
		return GetUserByIDOutput{}, ErrInvalidUserID
	}

	userAggregate, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return GetUserByIDOutput{}, ErrUserNotFound
		}
		return GetUserByIDOutput{}, fmt.Errorf("%w: %v", ErrGetUserByID, err)
	}

	return GetUserByIDOutput{
		ID:          userAggregate.ID,
		Name:        userAggregate.Name,
		Email:       userAggregate.Email,
		Role:        string(userAggregate.Role),
		Status:      string(userAggregate.Status),
		PhoneNumber: userAggregate.PhoneNumber,
		Address:     userAggregate.Address,
		City:        userAggregate.City,
		ZipCode:     userAggregate.ZipCode,
		Notes:       userAggregate.Notes,
	}, nil
}
