package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

type VisibilityRepository struct {
	db *gorm.DB
}

func NewVisibilityRepository(db *gorm.DB) *VisibilityRepository {
	return &VisibilityRepository{db: db}
}

func (r *VisibilityRepository) ListCouncilSettings(ctx context.Context, councilID uuid.UUID) ([]model.FieldVisibilitySetting, error) {
	var settings []model.FieldVisibilitySetting
	err := r.db.WithContext(ctx).
		Where("council_id = ?", councilID).
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *VisibilityRepository) UpsertCouncilSetting(ctx context.Context, setting *model.FieldVisibilitySetting) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO field_visibility_settings (id, council_id, field_name, visible)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (council_id, field_name)
		DO UPDATE SET visible = EXCLUDED.visible
	`, setting.ID, setting.CouncilID, setting.FieldName, setting.Visible).Error
}

func (r *VisibilityRepository) ListProjectOverrides(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFieldVisibilityOverride, error) {
	var overrides []model.ProjectFieldVisibilityOverride
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *VisibilityRepository) UpsertProjectOverride(ctx context.Context, override *model.ProjectFieldVisibilityOverride) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO project_field_visibility_overrides (id, project_id, field_name, visible)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (project_id, field_name)
		DO UPDATE SET visible = EXCLUDED.visible
	`, override.ID, override.ProjectID, override.FieldName, override.Visible).Error
}

func (r *VisibilityRepository) DeleteProjectOverride(ctx context.Context, projectID uuid.UUID, fieldName string) error {
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM project_field_visibility_overrides
		WHERE project_id = ? AND field_name = ?
	`, projectID, fieldName).Error
}
