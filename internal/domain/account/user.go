package account

import (
	"regexp"
	"strings"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ParseRole maps a raw role string onto one of the known roles,
// case-insensitively. An empty string is not a valid role; callers that
// want a default must apply it before parsing.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleCustomer):
		return RoleCustomer, nil
	case string(RoleDriver):
		return RoleDriver, nil
	}
	return "", ErrUnknownRole
}

// ValidEmail reports whether raw has the local@domain.tld shape required
// for an auth login identifier.
func ValidEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

type User struct {
	ID          string
	Name        string
	Email       string
	Role        Role
	Status      Status
	PhoneNumber string
	Address     string
	City        string
	ZipCode     string
	Notes       string
}

// NewUser validates and builds a user aggregate. Email is normalized to
// lowercase; it must already be present (synthesized upstream when the
// source had none).
func NewUser(name, email string, role Role, status Status) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, ErrBlankName
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidEmail(email) {
		return User{}, ErrInvalidEmail
	}

	if role != RoleAdmin && role != RoleCustomer && role != RoleDriver {
		return User{}, ErrUnknownRole
	}

	if status != StatusActive {
		status = StatusInactive
	}

	return User{
		Name:   strings.TrimSpace(name),
		Email:  email,
		Role:   role,
		Status: status,
	}, nil
}
