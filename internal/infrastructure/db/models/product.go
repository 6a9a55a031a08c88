package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SKU       string          `gorm:"size:64;not null;uniqueIndex"`
	Name      string          `gorm:"size:255;not null"`
	LocalName string          `gorm:"size:255"`
	Unit      string          `gorm:"size:32;not null;default:piece"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	Active    bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Product) TableName() string {
	return "products"
}
