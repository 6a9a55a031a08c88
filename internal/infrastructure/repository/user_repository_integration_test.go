package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/freshroute/admin-api/internal/domain/account"
	"github.com/freshroute/admin-api/internal/infrastructure/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	return db
}

func setupUsersSchema(t *testing.T, db *gorm.DB) {
	t.Helper()

	schemaSQL := `
    CREATE EXTENSION IF NOT EXISTS "uuid-ossp";
    CREATE TABLE IF NOT EXISTS users (
      id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
      auth_id UUID NOT NULL UNIQUE,
      name VARCHAR(255) NOT NULL,
      email VARCHAR(320) NOT NULL UNIQUE,
      role VARCHAR(32) NOT NULL DEFAULT 'customer',
      status VARCHAR(32) NOT NULL DEFAULT 'active',
      phone_number VARCHAR(32),
      address VARCHAR(255),
      city VARCHAR(120),
      zip_code VARCHAR(20),
      notes TEXT,
      created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
      updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );
    `
	if err := db.Exec(schemaSQL).Error; err != nil {
		t.Fatalf("failed schema setup: %v", err)
	}
}

func TestUserRepositoryInsertAndGetIntegration(t *testing.T) {
	db := openTestDB(t)
	setupUsersSchema(t, db)

	email := "it-" + uuid.NewString() + "@example.com"
	if err := db.Exec("DELETE FROM users WHERE email = ?", email).Error; err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	repo := repository.NewUserRepository(db)

	userAggregate, err := domain.NewUser("Integration Alice", email, domain.RoleDriver, domain.StatusActive)
	if err != nil {
		t.Fatalf("build user: %v", err)
	}
	userAggregate.City = "Szeged"

	created, err := repo.Insert(context.Background(), userAggregate, uuid.NewString())
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Email != email || got.Role != domain.RoleDriver || got.City != "Szeged" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepositoryDuplicateEmailIntegration(t *testing.T) {
	db := openTestDB(t)
	setupUsersSchema(t, db)

	email := "it-" + uuid.NewString() + "@example.com"
	repo := repository.NewUserRepository(db)

	userAggregate, err := domain.NewUser("Integration Bob", email, domain.RoleCustomer, domain.StatusActive)
	if err != nil {
		t.Fatalf("build user: %v", err)
	}

	if _, err := repo.Insert(context.Background(), userAggregate, uuid.NewString()); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	_, err = repo.Insert(context.Background(), userAggregate, uuid.NewString())
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestUserRepositoryGetMissingIntegration(t *testing.T) {
	db := openTestDB(t)
	setupUsersSchema(t, db)

	repo := repository.NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
