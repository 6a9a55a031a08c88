package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/freshroute/admin-api/internal/domain/account"
	"github.com/freshroute/admin-api/internal/infrastructure/db/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, u domain.User, authID string) (domain.User, error) {
	row := models.User{
		AuthID:      authID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		City:        u.City,
		ZipCode:     u.ZipCode,
		Notes:       u.Notes,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ErrDuplicateUser
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	u.ID = row.ID
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &domain.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		Role:        domain.Role(row.Role),
		Status:      domain.Status(row.Status),
		PhoneNumber: row.PhoneNumber,
		Address:     row.Address,
		City:        row.City,
		ZipCode:     row.ZipCode,
		Notes:       row.Notes,
	}, nil
}
