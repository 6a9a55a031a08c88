package models

import "time"

type User struct {
	ID          string `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	AuthID      string `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string `gorm:"size:255;not null"`
	Email       string `gorm:"size:320;not null;uniqueIndex"`
	Role        string `gorm:"size:32;not null;default:customer"`
	Status      string `gorm:"size:32;not null;default:active"`
	PhoneNumber string `gorm:"size:32"`
	Address     string `gorm:"size:255"`
	City        string `gorm:"size:120"`
	ZipCode     string `gorm:"size:20"`
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
