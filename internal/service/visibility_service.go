package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// VisibilityStore is the persistence surface the visibility service depends
// on.
type VisibilityStore interface {
	ListCouncilSettings(ctx context.Context, councilID uuid.UUID) ([]model.FieldVisibilitySetting, error)
	UpsertCouncilSetting(ctx context.Context, setting *model.FieldVisibilitySetting) error
	ListProjectOverrides(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFieldVisibilityOverride, error)
	UpsertProjectOverride(ctx context.Context, override *model.ProjectFieldVisibilityOverride) error
	DeleteProjectOverride(ctx context.Context, projectID uuid.UUID, fieldName string) error
}

type VisibilityService struct {
	store VisibilityStore
}

func NewVisibilityService(store VisibilityStore) *VisibilityService {
	return &VisibilityService{store: store}
}

// Resolve computes the effective visibility of every known field for the
// caller on one project. RICD principals see everything; council principals
// get the council default (visible when no row exists) with project
// overrides taking precedence.
func (s *VisibilityService) Resolve(ctx context.Context, principal model.Principal, councilID, projectID uuid.UUID) (map[string]bool, error) {
	visible := make(map[string]bool, len(model.KnownVisibilityFields))
	for _, field := range model.KnownVisibilityFields {
		visible[field] = true
	}
	if principal.IsRICD() {
		return visible, nil
	}
	if !principal.CanAccessCouncil(councilID) {
		return nil, ErrPermissionDenied
	}

	settings, err := s.store.ListCouncilSettings(ctx, councilID)
	if err != nil {
		return nil, err
	}
	for _, setting := range settings {
		if _, known := visible[setting.FieldName]; known {
			visible[setting.FieldName] = setting.Visible
		}
	}

	overrides, err := s.store.ListProjectOverrides(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, override := range overrides {
		if _, known := visible[override.FieldName]; known {
			visible[override.FieldName] = override.Visible
		}
	}
	return visible, nil
}

type SetVisibilityInput struct {
	CouncilID uuid.UUID
	ProjectID *uuid.UUID
	FieldName string
	Visible   bool
	Principal model.Principal
}

// Set updates a council default, or a project override when a project is
// given. RICD only.
func (s *VisibilityService) Set(ctx context.Context, input SetVisibilityInput) error {
	if !input.Principal.IsRICD() {
		return ErrPermissionDenied
	}
	if !knownField(input.FieldName) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, input.FieldName)
	}

	if input.ProjectID != nil {
		return s.store.UpsertProjectOverride(ctx, &model.ProjectFieldVisibilityOverride{
			ID:        uuid.New(),
			ProjectID: *input.ProjectID,
			FieldName: input.FieldName,
			Visible:   input.Visible,
		})
	}
	return s.store.UpsertCouncilSetting(ctx, &model.FieldVisibilitySetting{
		ID:        uuid.New(),
		CouncilID: input.CouncilID,
		FieldName: input.FieldName,
		Visible:   input.Visible,
	})
}

// ClearOverride removes a project override so the council default applies
// again.
func (s *VisibilityService) ClearOverride(ctx context.Context, principal model.Principal, projectID uuid.UUID, fieldName string) error {
	if !principal.IsRICD() {
		return ErrPermissionDenied
	}
	if !knownField(fieldName) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, fieldName)
	}
	return s.store.DeleteProjectOverride(ctx, projectID, fieldName)
}

func knownField(name string) bool {
	for _, field := range model.KnownVisibilityFields {
		if field == name {
			return true
		}
	}
	return false
}
