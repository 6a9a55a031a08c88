package account

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/freshroute/admin-api/internal/domain/account"
)

type CreateUserInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Active      bool
	PhoneNumber string
	Address     string
	City        string
	ZipCode     string
	Notes       string
}

type CreateUserOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
}

type CreateUser interface {
	Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error)
}

// AccountProvisioner creates a login in the managed auth service and
// returns the provisioned account id.
type AccountProvisioner interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
}

type userInserter interface {
	Insert(ctx context.Context, u domain.User, authID string) (domain.User, error)
}

type createUser struct {
	provisioner AccountProvisioner
	users       userInserter
}

func NewCreateUser(provisioner AccountProvisioner, users userInserter) CreateUser {
	return &createUser{provisioner: provisioner, users: users}
}

// Execute provisions an auth account and records the user's metadata. Every
// user gets an auth account: when no email was supplied a unique dummy one
// is synthesized, and when no password was supplied a random one is drawn.
func (uc *createUser) Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		email = synthesizeEmail()
	}

	roleRaw := in.Role
	if strings.TrimSpace(roleRaw) == "" {
		roleRaw = string(domain.RoleCustomer)
	}
	role, err := domain.ParseRole(roleRaw)
	if err != nil {
		return CreateUserOutput{}, err
	}

	status := domain.StatusInactive
	if in.Active {
		status = domain.StatusActive
	}

	userAggregate, err := domain.NewUser(in.Name, email, role, status)
	if err != nil {
		return CreateUserOutput{}, err
	}
	userAggregate.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	userAggregate.Address = strings.TrimSpace(in.Address)
	userAggregate.City = strings.TrimSpace(in.City)
	userAggregate.ZipCode = strings.TrimSpace(in.ZipCode)
	userAggregate.Notes = strings.TrimSpace(in.Notes)

	password := in.Password
	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return CreateUserOutput{}, fmt.Errorf("%w: %v", ErrCreateUser, err)
		}
	}

	authID, err := uc.provisioner.CreateAccount(ctx, userAggregate.Email, password)
	if err != nil {
		return CreateUserOutput{}, fmt.Errorf("%w: %v", ErrProvisionAccount, err)
	}

	created, err := uc.users.Insert(ctx, userAggregate, authID)
	if err != nil {
		return CreateUserOutput{}, fmt.Errorf("%w: %v", ErrCreateUser, err)
	}

	return CreateUserOutput{
		ID:          created.ID,
		Name:        created.Name,
		Email:       created.Email,
		Role:        string(created.Role),
		Status:      string(created.Status),
		PhoneNumber: created.PhoneNumber,
		Address:     created.Address,
		City:        created.City,
		ZipCode:     created.ZipCode,
	}, nil
}
