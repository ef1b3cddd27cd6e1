package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

type FundingRepository struct {
	db *gorm.DB
}

func NewFundingRepository(db *gorm.DB) *FundingRepository {
	return &FundingRepository{db: db}
}

func (r *FundingRepository) GetSchedule(ctx context.Context, id uuid.UUID) (*model.FundingSchedule, error) {
	var schedule model.FundingSchedule
	err := r.db.WithContext(ctx).
		Preload("Council").
		Preload("Program").
		First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *FundingRepository) ListSchedulesByCouncil(ctx context.Context, councilID uuid.UUID) ([]model.FundingSchedule, error) {
	var schedules []model.FundingSchedule
	err := r.db.WithContext(ctx).
		Where("council_id = ?", councilID).
		Order("funding_schedule_number").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// NextScheduleNumber allocates the next funding schedule number for a
// council.
func (r *FundingRepository) NextScheduleNumber(ctx context.Context, councilID uuid.UUID) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(funding_schedule_number), 0)
		FROM funding_schedules
		WHERE council_id = ?
	`, councilID).Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *FundingRepository) CreateSchedule(ctx context.Context, schedule *model.FundingSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *FundingRepository) UpdateSchedule(ctx context.Context, schedule *model.FundingSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *FundingRepository) GetInstalment(ctx context.Context, id uuid.UUID) (*model.Instalment, error) {
	var instalment model.Instalment
	err := r.db.WithContext(ctx).First(&instalment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &instalment, nil
}

func (r *FundingRepository) ListInstalments(ctx context.Context, scheduleID uuid.UUID) ([]model.Instalment, error) {
	var instalments []model.Instalment
	err := r.db.WithContext(ctx).
		Where("funding_schedule_id = ?", scheduleID).
		Order("due_date").
		Find(&instalments).Error
	if err != nil {
		return nil, err
	}
	return instalments, nil
}

func (r *FundingRepository) CreateInstalment(ctx context.Context, instalment *model.Instalment) error {
	return r.db.WithContext(ctx).Create(instalment).Error
}

func (r *FundingRepository) UpdateInstalment(ctx context.Context, instalment *model.Instalment) error {
	return r.db.WithContext(ctx).Save(instalment).Error
}

func (r *FundingRepository) CreateApproval(ctx context.Context, approval *model.FundingApproval, projectIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Projects").Create(approval).Error; err != nil {
			return err
		}
		for _, projectID := range projectIDs {
			if err := tx.Exec(`
				INSERT INTO funding_approval_projects (funding_approval_id, project_id)
				VALUES (?, ?)
				ON CONFLICT DO NOTHING
			`, approval.ID, projectID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *FundingRepository) ListApprovalsForProject(ctx context.Context, projectID uuid.UUID) ([]model.FundingApproval, error) {
	var approvals []model.FundingApproval
	err := r.db.WithContext(ctx).Raw(`
		SELECT fa.id, fa.mincor_reference, fa.amount, fa.approved_by_position, fa.approved_date
		FROM funding_approvals fa
		JOIN funding_approval_projects fap ON fap.funding_approval_id = fa.id
		WHERE fap.project_id = ?
		ORDER BY fa.approved_date
	`, projectID).Scan(&approvals).Error
	if err != nil {
		return nil, err
	}
	return approvals, nil
}

func (r *FundingRepository) GetAgreement(ctx context.Context, councilID uuid.UUID, kind model.AgreementType) (*model.CouncilAgreement, error) {
	var agreement model.CouncilAgreement
	err := r.db.WithContext(ctx).
		Where("council_id = ? AND kind = ?", councilID, kind).
		First(&agreement).Error
	if err != nil {
		return nil, err
	}
	return &agreement, nil
}

func (r *FundingRepository) SaveAgreement(ctx context.Context, agreement *model.CouncilAgreement) error {
	return r.db.WithContext(ctx).Save(agreement).Error
}

func (r *FundingRepository) ListAgreements(ctx context.Context, councilID uuid.UUID) ([]model.CouncilAgreement, error) {
	var agreements []model.CouncilAgreement
	err := r.db.WithContext(ctx).
		Where("council_id = ?", councilID).
		Order("kind").
		Find(&agreements).Error
	if err != nil {
		return nil, err
	}
	return agreements, nil
}
