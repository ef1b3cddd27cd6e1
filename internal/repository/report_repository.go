package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) GetQuarterly(ctx context.Context, id uuid.UUID) (*model.QuarterlyReport, error) {
	var report model.QuarterlyReport
	err := r.db.WithContext(ctx).
		Preload("Work").
		Preload("Work.Address").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListQuarterlyByWork(ctx context.Context, workID uuid.UUID) ([]model.QuarterlyReport, error) {
	var reports []model.QuarterlyReport
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("submission_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) CreateQuarterly(ctx context.Context, report *model.QuarterlyReport) error {
	return r.db.WithContext(ctx).Omit("Work").Create(report).Error
}

func (r *ReportRepository) UpdateQuarterly(ctx context.Context, report *model.QuarterlyReport) error {
	return r.db.WithContext(ctx).Omit("Work").Save(report).Error
}

// LatestQuarterlySubmission gives the most recent quarterly submission date
// across all works of a project, for overdue-report checks.
func (r *ReportRepository) LatestQuarterlySubmission(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).Raw(`
		SELECT qr.submission_date
		FROM quarterly_reports qr
		JOIN works w ON w.id = qr.work_id
		JOIN addresses a ON a.id = w.address_id
		WHERE a.project_id = ?
		ORDER BY qr.submission_date DESC
		LIMIT 1
	`, projectID).Scan(&dates).Error
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}
	return &dates[0], nil
}

func (r *ReportRepository) GetTracker(ctx context.Context, id uuid.UUID) (*model.MonthlyTracker, error) {
	var tracker model.MonthlyTracker
	err := r.db.WithContext(ctx).First(&tracker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tracker, nil
}

// PreviousTracker returns the latest tracker for the work strictly before
// the given month, used to copy milestones forward.
func (r *ReportRepository) PreviousTracker(ctx context.Context, workID uuid.UUID, month time.Time) (*model.MonthlyTracker, error) {
	var tracker model.MonthlyTracker
	err := r.db.WithContext(ctx).
		Where("work_id = ? AND month < ?", workID, month).
		Order("month DESC").
		First(&tracker).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tracker, nil
}

func (r *ReportRepository) ListTrackersByWork(ctx context.Context, workID uuid.UUID) ([]model.MonthlyTracker, error) {
	var trackers []model.MonthlyTracker
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("month DESC").
		Find(&trackers).Error
	if err != nil {
		return nil, err
	}
	return trackers, nil
}

func (r *ReportRepository) CreateTracker(ctx context.Context, tracker *model.MonthlyTracker) error {
	return r.db.WithContext(ctx).Omit("Work").Create(tracker).Error
}

func (r *ReportRepository) UpdateTracker(ctx context.Context, tracker *model.MonthlyTracker) error {
	return r.db.WithContext(ctx).Omit("Work").Save(tracker).Error
}

// LatestTrackerMonth gives the most recent tracker month across all works of
// a project.
func (r *ReportRepository) LatestTrackerMonth(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	var months []time.Time
	err := r.db.WithContext(ctx).Raw(`
		SELECT mt.month
		FROM monthly_trackers mt
		JOIN works w ON w.id = mt.work_id
		JOIN addresses a ON a.id = w.address_id
		WHERE a.project_id = ?
		ORDER BY mt.month DESC
		LIMIT 1
	`, projectID).Scan(&months).Error
	if err != nil {
		return nil, err
	}
	if len(months) == 0 {
		return nil, nil
	}
	return &months[0], nil
}

func (r *ReportRepository) GetMonthlyReport(ctx context.Context, councilID uuid.UUID, period time.Time) (*model.MonthlyReport, error) {
	var report model.MonthlyReport
	err := r.db.WithContext(ctx).
		Where("council_id = ? AND period = ?", councilID, period).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) SaveMonthlyReport(ctx context.Context, report *model.MonthlyReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *ReportRepository) GetCouncilQuarterly(ctx context.Context, councilID uuid.UUID, period time.Time) (*model.CouncilQuarterlyReport, error) {
	var report model.CouncilQuarterlyReport
	err := r.db.WithContext(ctx).
		Where("council_id = ? AND period = ?", councilID, period).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) SaveCouncilQuarterly(ctx context.Context, report *model.CouncilQuarterlyReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *ReportRepository) GetStage1(ctx context.Context, id uuid.UUID) (*model.Stage1Report, error) {
	var report model.Stage1Report
	err := r.db.WithContext(ctx).
		Preload("Attachments").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListStage1ByProject(ctx context.Context, projectID uuid.UUID) ([]model.Stage1Report, error) {
	var reports []model.Stage1Report
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("submission_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) CreateStage1(ctx context.Context, report *model.Stage1Report) error {
	return r.db.WithContext(ctx).Omit("Attachments").Create(report).Error
}

func (r *ReportRepository) UpdateStage1(ctx context.Context, report *model.Stage1Report) error {
	return r.db.WithContext(ctx).Omit("Attachments").Save(report).Error
}

func (r *ReportRepository) GetStage2(ctx context.Context, id uuid.UUID) (*model.Stage2Report, error) {
	var report model.Stage2Report
	err := r.db.WithContext(ctx).
		Preload("Attachments").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListStage2ByProject(ctx context.Context, projectID uuid.UUID) ([]model.Stage2Report, error) {
	var reports []model.Stage2Report
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("submission_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) CreateStage2(ctx context.Context, report *model.Stage2Report) error {
	return r.db.WithContext(ctx).Omit("Attachments").Create(report).Error
}

func (r *ReportRepository) UpdateStage2(ctx context.Context, report *model.Stage2Report) error {
	return r.db.WithContext(ctx).Omit("Attachments").Save(report).Error
}

func (r *ReportRepository) ListStageSteps(ctx context.Context, stage int) ([]model.StageStep, error) {
	var steps []model.StageStep
	err := r.db.WithContext(ctx).
		Where("stage = ? AND is_active", stage).
		Order("step_order").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *ReportRepository) SaveStepCompletion(ctx context.Context, completion *model.StageStepCompletion) error {
	return r.db.WithContext(ctx).Omit("Step").Save(completion).Error
}

func (r *ReportRepository) CreateAttachment(ctx context.Context, attachment *model.ReportAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}
