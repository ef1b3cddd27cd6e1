package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service/mocks"
)

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing fixture password: %v", err)
	}
	return &model.User{
		ID:           uuid.New(),
		Email:        "officer@council.example",
		PasswordHash: string(hash),
		Role:         model.RoleCouncilUser,
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockUserStore(ctrl)
	issuer := mocks.NewMockTokenIssuer(ctrl)
	svc := NewUserService(store, issuer)

	user := activeUser(t, "correct horse")

	t.Run("success", func(t *testing.T) {
		store.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		issuer.EXPECT().Issue(user, gomock.Any()).Return("signed-token", nil)

		result, err := svc.Login(context.Background(), user.Email, "correct horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "signed-token" || result.User.ID != user.ID {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		store.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), user.Email, "guess")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		store.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), "nobody@example.com", "anything")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := activeUser(t, "correct horse")
		inactive.IsActive = false
		store.EXPECT().GetByEmail(gomock.Any(), inactive.Email).Return(inactive, nil)

		_, err := svc.Login(context.Background(), inactive.Email, "correct horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockUserStore(ctrl)
	issuer := mocks.NewMockTokenIssuer(ctrl)
	svc := NewUserService(store, issuer)

	councilID := uuid.New()

	t.Run("council user", func(t *testing.T) {
		store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *model.User) error {
				if user.Role != model.RoleCouncilUser || user.CouncilID == nil {
					t.Errorf("unexpected user: %+v", user)
				}
				if !user.IsActive {
					t.Error("new accounts start active")
				}
				if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
					t.Error("password must be stored hashed")
				}
				return nil
			})

		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Email:     "new@council.example",
			Password:  "s3cret",
			Role:      model.RoleCouncilUser,
			CouncilID: &councilID,
			Principal: ricdManagerPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("council role without council", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Email:     "new@council.example",
			Password:  "s3cret",
			Role:      model.RoleCouncilManager,
			Principal: ricdManagerPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("RICD role with council", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Email:     "staff@ricd.example",
			Password:  "s3cret",
			Role:      model.RoleRICDStaff,
			CouncilID: &councilID,
			Principal: ricdManagerPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Email:     "x@example.com",
			Password:  "s3cret",
			Role:      model.Role("SUPERUSER"),
			Principal: ricdManagerPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("staff caller rejected", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Email:     "x@example.com",
			Password:  "s3cret",
			Role:      model.RoleRICDStaff,
			Principal: ricdPrincipal(),
		})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockUserStore(ctrl)
	svc := NewUserService(store, mocks.NewMockTokenIssuer(ctrl))

	user := &model.User{ID: uuid.New(), IsActive: true}
	store.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *model.User) error {
			if updated.IsActive {
				t.Error("account still active after deactivation")
			}
			return nil
		})

	if err := svc.Deactivate(context.Background(), ricdManagerPrincipal(), user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Deactivate(context.Background(), ricdPrincipal(), user.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("staff caller: expected ErrPermissionDenied, got %v", err)
	}
}
