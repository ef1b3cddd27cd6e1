package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

type fakeReferenceData struct {
	ReferenceStore

	councils    map[uuid.UUID]*model.Council
	outputTypes map[uuid.UUID]*model.OutputType

	createdCouncil  *model.Council
	createdWorkType *model.WorkType
	createdOfficer  *model.Officer
}

func newFakeReferenceData() *fakeReferenceData {
	return &fakeReferenceData{
		councils:    make(map[uuid.UUID]*model.Council),
		outputTypes: make(map[uuid.UUID]*model.OutputType),
	}
}

func (f *fakeReferenceData) GetCouncil(_ context.Context, id uuid.UUID) (*model.Council, error) {
	if c, ok := f.councils[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReferenceData) CreateCouncil(_ context.Context, council *model.Council) error {
	f.createdCouncil = council
	f.councils[council.ID] = council
	return nil
}

func (f *fakeReferenceData) GetOutputType(_ context.Context, id uuid.UUID) (*model.OutputType, error) {
	if o, ok := f.outputTypes[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReferenceData) CreateWorkType(_ context.Context, workType *model.WorkType) error {
	f.createdWorkType = workType
	return nil
}

func (f *fakeReferenceData) CreateOfficer(_ context.Context, officer *model.Officer) error {
	f.createdOfficer = officer
	return nil
}

func TestCreateCouncilValidation(t *testing.T) {
	store := newFakeReferenceData()
	svc := NewReferenceService(store)

	t.Run("abn must be 11 digits", func(t *testing.T) {
		_, err := svc.CreateCouncil(context.Background(), CouncilInput{
			Name:      "Example Shire Council",
			ABN:       strPtr("1234567890"),
			Principal: ricdPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("postcode must be 4 digits", func(t *testing.T) {
		_, err := svc.CreateCouncil(context.Background(), CouncilInput{
			Name:            "Example Shire Council",
			DefaultPostcode: strPtr("48711"),
			Principal:       ricdPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("state defaults to QLD", func(t *testing.T) {
		council, err := svc.CreateCouncil(context.Background(), CouncilInput{
			Name:            "Example Shire Council",
			ABN:             strPtr("12345678901"),
			DefaultPostcode: strPtr("4871"),
			Principal:       ricdPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if council.DefaultState != "QLD" {
			t.Errorf("default state = %q, want QLD", council.DefaultState)
		}
	})

	t.Run("council caller rejected", func(t *testing.T) {
		_, err := svc.CreateCouncil(context.Background(), CouncilInput{
			Name:      "Example Shire Council",
			Principal: councilPrincipal(uuid.New()),
		})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestCreateWorkTypeResolvesAllowedOutputs(t *testing.T) {
	store := newFakeReferenceData()
	svc := NewReferenceService(store)

	house := &model.OutputType{ID: uuid.New(), Code: "house"}
	store.outputTypes[house.ID] = house

	_, err := svc.CreateWorkType(context.Background(), WorkTypeInput{
		Code:                 "construction",
		Name:                 "Construction",
		AllowedOutputTypeIDs: []uuid.UUID{uuid.New()},
		Principal:            ricdPrincipal(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown output type: expected ErrInvalidInput, got %v", err)
	}

	workType, err := svc.CreateWorkType(context.Background(), WorkTypeInput{
		Code:                 " Construction ",
		Name:                 "Construction",
		AllowedOutputTypeIDs: []uuid.UUID{house.ID},
		Principal:            ricdPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workType.Code != "construction" {
		t.Errorf("code = %q, want trimmed lowercase", workType.Code)
	}
	if len(workType.AllowedOutputTypes) != 1 || workType.AllowedOutputTypes[0].ID != house.ID {
		t.Errorf("allowed outputs = %+v", workType.AllowedOutputTypes)
	}
	if !workType.AllowsOutput(house.ID) {
		t.Error("created work type must allow its configured output")
	}
}

func TestSaveOfficerConstraints(t *testing.T) {
	store := newFakeReferenceData()
	svc := NewReferenceService(store)

	t.Run("principal and senior are exclusive", func(t *testing.T) {
		_, err := svc.SaveOfficer(context.Background(), OfficerInput{
			UserID:      uuid.New(),
			IsActive:    true,
			IsPrincipal: true,
			IsSenior:    true,
			Principal:   ricdManagerPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("role flags require an active officer", func(t *testing.T) {
		_, err := svc.SaveOfficer(context.Background(), OfficerInput{
			UserID:      uuid.New(),
			IsActive:    false,
			IsPrincipal: true,
			Principal:   ricdManagerPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("create", func(t *testing.T) {
		officer, err := svc.SaveOfficer(context.Background(), OfficerInput{
			UserID:      uuid.New(),
			IsActive:    true,
			IsPrincipal: true,
			Principal:   ricdManagerPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !officer.IsPrincipal || officer.IsSenior {
			t.Errorf("unexpected officer flags: %+v", officer)
		}
		if store.createdOfficer == nil {
			t.Error("officer not persisted")
		}
	})

	t.Run("staff caller rejected", func(t *testing.T) {
		_, err := svc.SaveOfficer(context.Background(), OfficerInput{
			UserID:    uuid.New(),
			IsActive:  true,
			Principal: ricdPrincipal(),
		})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})
}
