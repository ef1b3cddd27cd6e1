package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// UserStore is the persistence surface the user service depends on.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	ListByCouncil(ctx context.Context, councilID uuid.UUID) ([]model.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *model.User, now time.Time) (string, error)
}

type UserService struct {
	users  UserStore
	issuer TokenIssuer
}

func NewUserService(users UserStore, issuer TokenIssuer) *UserService {
	return &UserService{users: users, issuer: issuer}
}

type LoginResult struct {
	Token string
	User  *model.User
}

// Login verifies credentials and issues an access token. Inactive accounts
// cannot log in.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user, time.Now())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      model.Role
	CouncilID *uuid.UUID
	Principal model.Principal
}

// CreateUser provisions an account. RICD manager only; council roles must
// carry a council.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if !input.Principal.IsRICDManager() {
		return nil, ErrPermissionDenied
	}
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if _, ok := model.ParseRole(string(input.Role)); !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}
	switch input.Role {
	case model.RoleCouncilUser, model.RoleCouncilManager:
		if input.CouncilID == nil {
			return nil, fmt.Errorf("%w: council roles require a council", ErrInvalidInput)
		}
	default:
		if input.CouncilID != nil {
			return nil, fmt.Errorf("%w: RICD roles must not carry a council", ErrInvalidInput)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		Role:         input.Role,
		CouncilID:    input.CouncilID,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate disables an account without deleting its history.
func (s *UserService) Deactivate(ctx context.Context, principal model.Principal, userID uuid.UUID) error {
	if !principal.IsRICDManager() {
		return ErrPermissionDenied
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	user.IsActive = false
	return s.users.Update(ctx, user)
}

func (s *UserService) ListByCouncil(ctx context.Context, principal model.Principal, councilID uuid.UUID) ([]model.User, error) {
	if !principal.CanAccessCouncil(councilID) {
		return nil, ErrPermissionDenied
	}
	return s.users.ListByCouncil(ctx, councilID)
}
