package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service/mocks"
)

func councilPrincipal(councilID uuid.UUID) model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleCouncilUser, CouncilID: &councilID}
}

func ricdPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleRICDStaff}
}

func ricdManagerPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleRICDManager}
}

func TestResolveVisibilityRICDSeesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockVisibilityStore(ctrl)
	svc := NewVisibilityService(store)

	// No store calls expected: RICD short-circuits.
	fields, err := svc.Resolve(context.Background(), ricdPrincipal(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != len(model.KnownVisibilityFields) {
		t.Fatalf("expected %d fields, got %d", len(model.KnownVisibilityFields), len(fields))
	}
	for field, visible := range fields {
		if !visible {
			t.Errorf("field %s hidden from RICD", field)
		}
	}
}

func TestResolveVisibilityOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockVisibilityStore(ctrl)
	svc := NewVisibilityService(store)

	councilID := uuid.New()
	projectID := uuid.New()

	store.EXPECT().ListCouncilSettings(gomock.Any(), councilID).Return([]model.FieldVisibilitySetting{
		{CouncilID: councilID, FieldName: model.FieldFinalCost, Visible: false},
		{CouncilID: councilID, FieldName: model.FieldCommitments, Visible: false},
		{CouncilID: councilID, FieldName: "no_such_field", Visible: false},
	}, nil)
	store.EXPECT().ListProjectOverrides(gomock.Any(), projectID).Return([]model.ProjectFieldVisibilityOverride{
		// Override flips the council default back on for this project.
		{ProjectID: projectID, FieldName: model.FieldFinalCost, Visible: true},
	}, nil)

	fields, err := svc.Resolve(context.Background(), councilPrincipal(councilID), councilID, projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fields[model.FieldFinalCost] {
		t.Error("project override should win over the council default")
	}
	if fields[model.FieldCommitments] {
		t.Error("council default should hide commitments")
	}
	if !fields[model.FieldSAPProject] {
		t.Error("fields without settings default to visible")
	}
	if _, ok := fields["no_such_field"]; ok {
		t.Error("unknown field codes must be ignored")
	}
}

func TestResolveVisibilityWrongCouncil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockVisibilityStore(ctrl)
	svc := NewVisibilityService(store)

	_, err := svc.Resolve(context.Background(), councilPrincipal(uuid.New()), uuid.New(), uuid.New())
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestSetVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockVisibilityStore(ctrl)
	svc := NewVisibilityService(store)

	councilID := uuid.New()

	t.Run("council default", func(t *testing.T) {
		store.EXPECT().UpsertCouncilSetting(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, setting *model.FieldVisibilitySetting) error {
				if setting.CouncilID != councilID || setting.FieldName != model.FieldCLINo || setting.Visible {
					t.Errorf("unexpected setting: %+v", setting)
				}
				return nil
			})
		err := svc.Set(context.Background(), SetVisibilityInput{
			CouncilID: councilID,
			FieldName: model.FieldCLINo,
			Visible:   false,
			Principal: ricdPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("project override", func(t *testing.T) {
		projectID := uuid.New()
		store.EXPECT().UpsertProjectOverride(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, override *model.ProjectFieldVisibilityOverride) error {
				if override.ProjectID != projectID || !override.Visible {
					t.Errorf("unexpected override: %+v", override)
				}
				return nil
			})
		err := svc.Set(context.Background(), SetVisibilityInput{
			CouncilID: councilID,
			ProjectID: &projectID,
			FieldName: model.FieldCLINo,
			Visible:   true,
			Principal: ricdPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("council caller rejected", func(t *testing.T) {
		err := svc.Set(context.Background(), SetVisibilityInput{
			CouncilID: councilID,
			FieldName: model.FieldCLINo,
			Principal: councilPrincipal(councilID),
		})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		err := svc.Set(context.Background(), SetVisibilityInput{
			CouncilID: councilID,
			FieldName: "made_up",
			Principal: ricdPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestClearOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockVisibilityStore(ctrl)
	svc := NewVisibilityService(store)

	projectID := uuid.New()
	store.EXPECT().DeleteProjectOverride(gomock.Any(), projectID, model.FieldFinalCost).Return(nil)

	if err := svc.ClearOverride(context.Background(), ricdPrincipal(), projectID, model.FieldFinalCost); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.ClearOverride(context.Background(), councilPrincipal(uuid.New()), projectID, model.FieldFinalCost)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}
