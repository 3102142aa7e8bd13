package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"accountsvc/internal/model"
	"accountsvc/internal/repository"
)

// validate runs on the normalized email, so "Alice@Example.com " is
// accepted and stored as "alice@example.com".
var validate = validator.New()

var (
	ErrDatabaseUnavailable = errors.New("database not available")
	ErrAccountExists       = errors.New("account with this email or name already exists")
	ErrInvalidCredential   = errors.New("invalid name or password")
	ErrInvalidInput        = errors.New("invalid input")
)

// AccountStore is the slice of the account repository the service
// needs. A nil store means the database was unreachable at startup;
// every operation then fails with ErrDatabaseUnavailable.
type AccountStore interface {
	FindByNameOrEmail(ctx context.Context, name, email string) (*model.Account, error)
	FindByName(ctx context.Context, name string) (*model.Account, error)
	Insert(ctx context.Context, account *model.Account) (string, error)
}

type AuthService struct {
	accounts   AccountStore
	bcryptCost int
}

type SignupInput struct {
	Name      string
	Email     string
	Password  string
	AvatarURL *string
}

type LoginInput struct {
	Name     string
	Password string
}

// Profile is the flat user echo returned by both signup and login. No
// session token or credential is issued, and the password hash never
// leaves the service.
type Profile struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
	Onboarded bool    `json:"onboarded"`
}

func NewAuthService(accounts AccountStore, bcryptCost int) *AuthService {
	return &AuthService{
		accounts:   accounts,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*Profile, error) {
	if s.accounts == nil {
		return nil, ErrDatabaseUnavailable
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if name == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidInput
	}

	// Pre-check for a friendly conflict error; the unique indexes on
	// the collection catch the race two concurrent signups could win.
	existing, err := s.accounts.FindByNameOrEmail(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	account := &model.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		AvatarURL:    input.AvatarURL,
		Onboarded:    false,
	}
	id, err := s.accounts.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	return &Profile{
		ID:        id,
		Name:      account.Name,
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
		Onboarded: account.Onboarded,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*Profile, error) {
	if s.accounts == nil {
		return nil, ErrDatabaseUnavailable
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || input.Password == "" {
		return nil, ErrInvalidCredential
	}

	account, err := s.accounts.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	return &Profile{
		ID:        account.ID.Hex(),
		Name:      account.Name,
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
		Onboarded: account.Onboarded,
	}, nil
}
