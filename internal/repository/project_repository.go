package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Council").
		Preload("Program").
		Preload("FundingSchedule").
		Preload("Addresses").
		Preload("Addresses.WorkType").
		Preload("Addresses.OutputType").
		Preload("Addresses.Works").
		Preload("Addresses.Works.OutputType").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, councilID *uuid.UUID, state *model.ProjectState) ([]model.Project, error) {
	query := r.db.WithContext(ctx).
		Preload("Council").
		Preload("FundingSchedule").
		Order("created_at DESC")
	if councilID != nil {
		query = query.Where("council_id = ?", *councilID)
	}
	if state != nil {
		query = query.Where("state = ?", *state)
	}
	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListBySchedule returns the projects attached to a funding schedule.
// Instalment releases fan out a lifecycle event to each of them.
func (r *ProjectRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("funding_schedule_id = ?", scheduleID).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Omit("Council", "Program", "FundingSchedule", "Addresses").Create(project).Error
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Omit("Council", "Program", "FundingSchedule", "Addresses").Save(project).Error
}

func (r *ProjectRepository) UpdateState(ctx context.Context, id uuid.UUID, state model.ProjectState) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE projects SET state = ? WHERE id = ?
	`, state, id).Error
}

func (r *ProjectRepository) GetAddress(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		Preload("WorkType").
		Preload("OutputType").
		Preload("Works").
		First(&address, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *ProjectRepository) CreateAddress(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Omit("WorkType", "OutputType", "Works").Create(address).Error
}

func (r *ProjectRepository) UpdateAddress(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Omit("WorkType", "OutputType", "Works").Save(address).Error
}

// SumAddressBudgets totals the budgets recorded on a project's addresses,
// optionally excluding one address (for update validation).
func (r *ProjectRepository) SumAddressBudgets(ctx context.Context, projectID uuid.UUID, exclude *uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(budget), 0) FROM addresses WHERE project_id = ?
	`
	args := []interface{}{projectID}
	if exclude != nil {
		query += ` AND id <> ?`
		args = append(args, *exclude)
	}
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *ProjectRepository) GetWork(ctx context.Context, id uuid.UUID) (*model.Work, error) {
	var work model.Work
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("WorkType").
		Preload("OutputType").
		First(&work, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *ProjectRepository) CreateWork(ctx context.Context, work *model.Work, steps []model.WorkStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Address", "WorkType", "OutputType").Create(work).Error; err != nil {
			return err
		}
		for i := range steps {
			steps[i].WorkID = work.ID
			if err := tx.Create(&steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) UpdateWork(ctx context.Context, work *model.Work) error {
	return r.db.WithContext(ctx).Omit("Address", "WorkType", "OutputType").Save(work).Error
}

// WorkProject resolves the project owning a work through its address.
func (r *ProjectRepository) WorkProject(ctx context.Context, workID uuid.UUID) (*model.Project, error) {
	var projectID uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.project_id
		FROM works w
		JOIN addresses a ON a.id = w.address_id
		WHERE w.id = ?
	`, workID).Scan(&projectID).Error
	if err != nil {
		return nil, err
	}
	if projectID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, projectID)
}

func (r *ProjectRepository) ListDefaultSteps(ctx context.Context, programID, workTypeID uuid.UUID) ([]model.DefaultWorkStep, error) {
	var steps []model.DefaultWorkStep
	err := r.db.WithContext(ctx).
		Where("program_id = ? AND work_type_id = ?", programID, workTypeID).
		Order("step_order").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *ProjectRepository) ListWorkSteps(ctx context.Context, workID uuid.UUID) ([]model.WorkStep, error) {
	var steps []model.WorkStep
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("step_order").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *ProjectRepository) UpdateWorkStep(ctx context.Context, step *model.WorkStep) error {
	return r.db.WithContext(ctx).Save(step).Error
}

func (r *ProjectRepository) CreateDefect(ctx context.Context, defect *model.Defect) error {
	return r.db.WithContext(ctx).Create(defect).Error
}

func (r *ProjectRepository) ListDefects(ctx context.Context, workID uuid.UUID) ([]model.Defect, error) {
	var defects []model.Defect
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("identified_date").
		Find(&defects).Error
	if err != nil {
		return nil, err
	}
	return defects, nil
}

func (r *ProjectRepository) CreatePracticalCompletion(ctx context.Context, pc *model.PracticalCompletion) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

// LatestPracticalCompletion returns the most recent dated practical
// completion record for a project, or nil when none exists.
func (r *ProjectRepository) LatestPracticalCompletion(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).Raw(`
		SELECT completion_date
		FROM practical_completions
		WHERE project_id = ? AND completion_date IS NOT NULL
		ORDER BY completion_date DESC
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

// ProgressAverage is the mean completion percentage across every quarterly
// report filed under the project. No reported percentages means zero
// progress.
func (r *ProjectRepository) ProgressAverage(ctx context.Context, projectID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(qr.percentage_works_completed), 0)
		FROM quarterly_reports qr
		JOIN works w ON w.id = qr.work_id
		JOIN addresses a ON a.id = w.address_id
		WHERE a.project_id = ?
	`, projectID).Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// SpentTotal sums the expenditure reported across every quarterly report
// filed under the project.
func (r *ProjectRepository) SpentTotal(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(qr.total_expenditure_council), 0)
		FROM quarterly_reports qr
		JOIN works w ON w.id = qr.work_id
		JOIN addresses a ON a.id = w.address_id
		WHERE a.project_id = ?
	`, projectID).Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// LatestQuarterlyActualCompletion returns the most recent actual practical
// completion date reported through a quarterly report under the project.
func (r *ProjectRepository) LatestQuarterlyActualCompletion(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).Raw(`
		SELECT qr.practical_completion_actual_date
		FROM quarterly_reports qr
		JOIN works w ON w.id = qr.work_id
		JOIN addresses a ON a.id = w.address_id
		WHERE a.project_id = ? AND qr.practical_completion_actual_date IS NOT NULL
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

// LatestStage2CompletionDate returns the practical completion date recorded
// on the project's most recent stage 2 report.
func (r *ProjectRepository) LatestStage2CompletionDate(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).Raw(`
		SELECT practical_completion_date
		FROM stage2_reports
		WHERE project_id = ? AND practical_completion_date IS NOT NULL
		ORDER BY submission_date DESC
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

// ListCouncilAgreements returns the council's program agreements; address
// budget validation takes the largest agreement as an alternative funding
// ceiling.
func (r *ProjectRepository) ListCouncilAgreements(ctx context.Context, councilID uuid.UUID) ([]model.CouncilAgreement, error) {
	var agreements []model.CouncilAgreement
	err := r.db.WithContext(ctx).
		Where("council_id = ?", councilID).
		Find(&agreements).Error
	if err != nil {
		return nil, err
	}
	return agreements, nil
}
