package account_test

import (
	"testing"

	domain "github.com/freshroute/admin-api/internal/domain/account"
)

func TestNewUserValid(t *testing.T) {
	t.Parallel()

	u, err := domain.NewUser("Alice", "Alice@Example.com", domain.RoleCustomer, domain.StatusActive)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", u.Email)
	}
	if u.Status != domain.StatusActive {
		t.Fatalf("unexpected status: %s", u.Status)
	}
}

func TestNewUserBlankName(t *testing.T) {
	t.Parallel()

	_, err := domain.NewUser("   ", "alice@example.com", domain.RoleCustomer, domain.StatusActive)
	if err != domain.ErrBlankName {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
}

func TestNewUserInvalidEmail(t *testing.T) {
	t.Parallel()

	_, err := domain.NewUser("Alice", "not-an-email", domain.RoleCustomer, domain.StatusActive)
	if err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestNewUserUnknownRole(t *testing.T) {
	t.Parallel()

	_, err := domain.NewUser("Alice", "alice@example.com", domain.Role("manager"), domain.StatusActive)
	if err != domain.ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestParseRoleCaseInsensitive(t *testing.T) {
	t.Parallel()

	role, err := domain.ParseRole("  Driver ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if role != domain.RoleDriver {
		t.Fatalf("expected driver, got %s", role)
	}

	if _, err := domain.ParseRole("manager"); err != domain.ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}
