package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// ReportStore is the persistence surface the report service depends on.
type ReportStore interface {
	GetQuarterly(ctx context.Context, id uuid.UUID) (*model.QuarterlyReport, error)
	ListQuarterlyByWork(ctx context.Context, workID uuid.UUID) ([]model.QuarterlyReport, error)
	CreateQuarterly(ctx context.Context, report *model.QuarterlyReport) error
	UpdateQuarterly(ctx context.Context, report *model.QuarterlyReport) error

	GetTracker(ctx context.Context, id uuid.UUID) (*model.MonthlyTracker, error)
	PreviousTracker(ctx context.Context, workID uuid.UUID, month time.Time) (*model.MonthlyTracker, error)
	ListTrackersByWork(ctx context.Context, workID uuid.UUID) ([]model.MonthlyTracker, error)
	CreateTracker(ctx context.Context, tracker *model.MonthlyTracker) error
	UpdateTracker(ctx context.Context, tracker *model.MonthlyTracker) error

	GetMonthlyReport(ctx context.Context, councilID uuid.UUID, period time.Time) (*model.MonthlyReport, error)
	SaveMonthlyReport(ctx context.Context, report *model.MonthlyReport) error
	GetCouncilQuarterly(ctx context.Context, councilID uuid.UUID, period time.Time) (*model.CouncilQuarterlyReport, error)
	SaveCouncilQuarterly(ctx context.Context, report *model.CouncilQuarterlyReport) error

	GetStage1(ctx context.Context, id uuid.UUID) (*model.Stage1Report, error)
	ListStage1ByProject(ctx context.Context, projectID uuid.UUID) ([]model.Stage1Report, error)
	CreateStage1(ctx context.Context, report *model.Stage1Report) error
	UpdateStage1(ctx context.Context, report *model.Stage1Report) error

	GetStage2(ctx context.Context, id uuid.UUID) (*model.Stage2Report, error)
	ListStage2ByProject(ctx context.Context, projectID uuid.UUID) ([]model.Stage2Report, error)
	CreateStage2(ctx context.Context, report *model.Stage2Report) error
	UpdateStage2(ctx context.Context, report *model.Stage2Report) error

	ListStageSteps(ctx context.Context, stage int) ([]model.StageStep, error)
	SaveStepCompletion(ctx context.Context, completion *model.StageStepCompletion) error
	CreateAttachment(ctx context.Context, attachment *model.ReportAttachment) error
}

// ReportProjectStore is the slice of the project store the report service
// needs for ownership checks and lifecycle moves.
type ReportProjectStore interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	UpdateState(ctx context.Context, id uuid.UUID, state model.ProjectState) error
	WorkProject(ctx context.Context, workID uuid.UUID) (*model.Project, error)
	GetWork(ctx context.Context, id uuid.UUID) (*model.Work, error)
}

type ReportService struct {
	reports       ReportStore
	projects      ReportProjectStore
	attachmentDir string
	log           zerolog.Logger
}

func NewReportService(reports ReportStore, projects ReportProjectStore, attachmentDir string, log zerolog.Logger) *ReportService {
	if attachmentDir == "" {
		attachmentDir = "attachments"
	}
	return &ReportService{reports: reports, projects: projects, attachmentDir: attachmentDir, log: log}
}

func (s *ReportService) workForCouncil(ctx context.Context, principal model.Principal, workID uuid.UUID) (*model.Work, *model.Project, error) {
	project, err := s.projects.WorkProject(ctx, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if !principal.CanAccessCouncil(project.CouncilID) {
		return nil, nil, ErrPermissionDenied
	}
	work, err := s.projects.GetWork(ctx, workID)
	if err != nil {
		return nil, nil, err
	}
	return work, project, nil
}

type SubmitQuarterlyInput struct {
	WorkID                   uuid.UUID
	SubmissionDate           time.Time
	PercentageWorksCompleted *decimal.Decimal
	TotalExpenditureCouncil  *decimal.Decimal
	ForecastCompletionDate   *time.Time
	ActualCompletionDate     *time.Time
	AdverseMatters           *string
	CouncilContributions     *decimal.Decimal
	OtherContributions       *decimal.Decimal
	SummaryNotes             *string
	Principal                model.Principal
}

// SubmitQuarterly records a council's quarterly progress report against a
// work. The quarter label and unspent funding are derived.
func (s *ReportService) SubmitQuarterly(ctx context.Context, input SubmitQuarterlyInput) (*model.QuarterlyReport, error) {
	work, _, err := s.workForCouncil(ctx, input.Principal, input.WorkID)
	if err != nil {
		return nil, err
	}
	if input.SubmissionDate.IsZero() {
		input.SubmissionDate = time.Now()
	}
	if input.PercentageWorksCompleted != nil {
		pct := *input.PercentageWorksCompleted
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: percentage_works_completed must be between 0 and 100", ErrInvalidInput)
		}
	}

	report := &model.QuarterlyReport{
		ID:                              uuid.New(),
		WorkID:                          input.WorkID,
		SubmissionDate:                  input.SubmissionDate,
		PercentageWorksCompleted:        input.PercentageWorksCompleted,
		TotalExpenditureCouncil:         input.TotalExpenditureCouncil,
		PracticalCompletionForecastDate: input.ForecastCompletionDate,
		PracticalCompletionActualDate:   input.ActualCompletionDate,
		AdverseMatters:                  input.AdverseMatters,
		CouncilContributionsAmount:      input.CouncilContributions,
		OtherContributionsAmount:        input.OtherContributions,
		SummaryNotes:                    input.SummaryNotes,
		CouncilManagerDecision:          model.DecisionPending,
		ManagerDecision:                 model.DecisionPending,
	}
	report.FillQuarter()
	if work.EstimatedCost != nil && input.TotalExpenditureCouncil != nil {
		unspent := work.EstimatedCost.Sub(*input.TotalExpenditureCouncil)
		report.UnspentFundingAmount = &unspent
	}

	if err := s.reports.CreateQuarterly(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

type QuarterlyDecisionInput struct {
	ReportID  uuid.UUID
	Decision  model.ManagerDecision
	Comments  *string
	Principal model.Principal
}

// DecideQuarterlyAsCouncilManager records the council manager's sign-off
// before the report reaches RICD.
func (s *ReportService) DecideQuarterlyAsCouncilManager(ctx context.Context, input QuarterlyDecisionInput) (*model.QuarterlyReport, error) {
	if !input.Principal.IsCouncilManager() {
		return nil, ErrPermissionDenied
	}
	report, err := s.reports.GetQuarterly(ctx, input.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	project, err := s.projects.WorkProject(ctx, report.WorkID)
	if err != nil {
		return nil, err
	}
	if !input.Principal.CanAccessCouncil(project.CouncilID) {
		return nil, ErrPermissionDenied
	}

	now := time.Now()
	report.CouncilManagerDecision = input.Decision
	report.CouncilManagerComments = input.Comments
	report.CouncilManagerDecisionDate = &now
	if err := s.reports.UpdateQuarterly(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

type QuarterlyReviewInput struct {
	ReportID        uuid.UUID
	Decision        model.ManagerDecision
	Comments        *string
	AssessmentNotes *string
	Principal       model.Principal
}

// ReviewQuarterly records RICD's assessment and manager decision.
func (s *ReportService) ReviewQuarterly(ctx context.Context, input QuarterlyReviewInput) (*model.QuarterlyReport, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Decision != model.DecisionPending && !input.Principal.IsRICDManager() {
		return nil, ErrPermissionDenied
	}
	report, err := s.reports.GetQuarterly(ctx, input.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	if input.AssessmentNotes != nil {
		report.StaffAssessmentNotes = input.AssessmentNotes
		report.StaffAssessedDate = &now
	}
	if input.Decision != model.DecisionPending {
		report.ManagerDecision = input.Decision
		report.ManagerComments = input.Comments
		report.ManagerDecisionDate = &now
	}
	if err := s.reports.UpdateQuarterly(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

type SubmitTrackerInput struct {
	WorkID           uuid.UUID
	Month            time.Time
	ProgressNotes    *string
	CopyFromPrevious bool
	Apply            func(tracker *model.MonthlyTracker)
	Principal        model.Principal
}

// SubmitTracker records a monthly construction tracker. With CopyFromPrevious
// the previous month's milestone dates are carried forward before the
// caller's changes apply.
func (s *ReportService) SubmitTracker(ctx context.Context, input SubmitTrackerInput) (*model.MonthlyTracker, error) {
	if _, _, err := s.workForCouncil(ctx, input.Principal, input.WorkID); err != nil {
		return nil, err
	}
	if input.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}
	month := time.Date(input.Month.Year(), input.Month.Month(), 1, 0, 0, 0, 0, time.UTC)

	tracker := &model.MonthlyTracker{
		ID:            uuid.New(),
		WorkID:        input.WorkID,
		Month:         month,
		ProgressNotes: input.ProgressNotes,
	}
	if input.CopyFromPrevious {
		prev, err := s.reports.PreviousTracker(ctx, input.WorkID, month)
		if err != nil {
			return nil, err
		}
		if prev != nil {
			tracker.CopyMilestonesFrom(prev)
		}
	}
	if input.Apply != nil {
		input.Apply(tracker)
	}

	if err := s.reports.CreateTracker(ctx, tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}

type SubmitCouncilReportInput struct {
	CouncilID uuid.UUID
	Period    time.Time
	Comments  *string
	Principal model.Principal
}

// SubmitMonthlyReport records the council-level monthly compliance report.
// One per council and month.
func (s *ReportService) SubmitMonthlyReport(ctx context.Context, input SubmitCouncilReportInput) (*model.MonthlyReport, error) {
	if !input.Principal.CanAccessCouncil(input.CouncilID) {
		return nil, ErrPermissionDenied
	}
	period := time.Date(input.Period.Year(), input.Period.Month(), 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.reports.GetMonthlyReport(ctx, input.CouncilID, period); err == nil {
		return nil, ErrDuplicateSubmission
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	report := &model.MonthlyReport{
		ID:                     uuid.New(),
		CouncilID:              input.CouncilID,
		Period:                 period,
		CouncilComments:        input.Comments,
		CouncilManagerDecision: model.DecisionPending,
		RICDStatus:             model.ReviewNeedsMoreInfo,
	}
	if err := s.reports.SaveMonthlyReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// SubmitCouncilQuarterly records the council-level quarterly report. The
// period is normalised to the first day of the quarter.
func (s *ReportService) SubmitCouncilQuarterly(ctx context.Context, input SubmitCouncilReportInput) (*model.CouncilQuarterlyReport, error) {
	if !input.Principal.CanAccessCouncil(input.CouncilID) {
		return nil, ErrPermissionDenied
	}
	quarterStart := ((int(input.Period.Month())-1)/3)*3 + 1
	period := time.Date(input.Period.Year(), time.Month(quarterStart), 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.reports.GetCouncilQuarterly(ctx, input.CouncilID, period); err == nil {
		return nil, ErrDuplicateSubmission
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	report := &model.CouncilQuarterlyReport{
		ID:              uuid.New(),
		CouncilID:       input.CouncilID,
		Period:          period,
		CouncilComments: input.Comments,
		RICDStatus:      model.ReviewNeedsMoreInfo,
	}
	if err := s.reports.SaveCouncilQuarterly(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

type SubmitStage1Input struct {
	ProjectID  uuid.UUID
	ReportType model.ReportType
	Apply      func(report *model.Stage1Report)
	Principal  model.Principal
}

func (s *ReportService) SubmitStage1(ctx context.Context, input SubmitStage1Input) (*model.Stage1Report, error) {
	project, err := s.projects.Get(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !input.Principal.CanAccessCouncil(project.CouncilID) {
		return nil, ErrPermissionDenied
	}

	report := &model.Stage1Report{
		ID:             uuid.New(),
		ProjectID:      project.ID,
		SubmissionDate: time.Now(),
		ReportType:     input.ReportType,
		RICDStatus:     model.ReviewPending,
	}
	if report.ReportType == "" {
		report.ReportType = model.ReportConstruction
	}
	if input.Apply != nil {
		input.Apply(report)
	}

	if err := s.reports.CreateStage1(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// StageReviewResult carries the review outcome plus any progress payment the
// acceptance makes due.
type StageReviewResult struct {
	Stage1     *model.Stage1Report
	Stage2     *model.Stage2Report
	Project    *model.Project
	PaymentDue *decimal.Decimal
}

type StageReviewInput struct {
	ReportID  uuid.UUID
	Status    model.ReviewStatus
	Comments  *string
	Principal model.Principal
}

// ReviewStage1 applies RICD's decision on a stage 1 report. Acceptance
// requires every applicable checklist item, commences the project, and makes
// the 60% progress payment due.
func (s *ReportService) ReviewStage1(ctx context.Context, input StageReviewInput) (*StageReviewResult, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	report, err := s.reports.GetStage1(ctx, input.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	project, err := s.projects.Get(ctx, report.ProjectID)
	if err != nil {
		return nil, err
	}

	result := &StageReviewResult{Stage1: report, Project: project}
	report.RICDComments = input.Comments
	report.RICDStatus = input.Status

	if input.Status == model.ReviewAccepted {
		if !report.IsComplete() {
			return nil, ErrReportIncomplete
		}
		now := time.Now()
		report.AcceptanceDate = &now

		next, err := project.State.Transition(model.EventStage1Accepted)
		if err != nil {
			return nil, err
		}
		if next != project.State {
			if err := s.projects.UpdateState(ctx, project.ID, next); err != nil {
				return nil, err
			}
			project.State = next
		}
		if project.FundingSchedule != nil {
			due := model.Stage1PaymentDue(project.FundingSchedule.FundingAmount)
			result.PaymentDue = &due
		}
	}

	if err := s.reports.UpdateStage1(ctx, report); err != nil {
		return nil, err
	}
	return result, nil
}

type SubmitStage2Input struct {
	ProjectID  uuid.UUID
	ReportType model.ReportType
	Apply      func(report *model.Stage2Report)
	Principal  model.Principal
}

// SubmitStage2 records the stage 2 report and moves the project to under
// construction.
func (s *ReportService) SubmitStage2(ctx context.Context, input SubmitStage2Input) (*model.Stage2Report, error) {
	project, err := s.projects.Get(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !input.Principal.CanAccessCouncil(project.CouncilID) {
		return nil, ErrPermissionDenied
	}

	report := &model.Stage2Report{
		ID:             uuid.New(),
		ProjectID:      project.ID,
		SubmissionDate: time.Now(),
		ReportType:     input.ReportType,
		RICDStatus:     model.ReviewPending,
	}
	if report.ReportType == "" {
		report.ReportType = model.ReportConstruction
	}
	if input.Apply != nil {
		input.Apply(report)
	}

	if err := s.reports.CreateStage2(ctx, report); err != nil {
		return nil, err
	}

	next, err := project.State.Transition(model.EventStage2Submitted)
	if err != nil {
		s.log.Debug().
			Str("project_id", project.ID.String()).
			Str("state", string(project.State)).
			Msg("stage 2 submission left project state unchanged")
	} else if next != project.State {
		if err := s.projects.UpdateState(ctx, project.ID, next); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// ReviewStage2 applies RICD's decision on a stage 2 report. Acceptance
// requires the applicable checklist, completes the project, records the
// actual completion date, and makes the 10% final payment due when practical
// completion is achieved.
func (s *ReportService) ReviewStage2(ctx context.Context, input StageReviewInput) (*StageReviewResult, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	report, err := s.reports.GetStage2(ctx, input.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	project, err := s.projects.Get(ctx, report.ProjectID)
	if err != nil {
		return nil, err
	}

	result := &StageReviewResult{Stage2: report, Project: project}
	report.RICDComments = input.Comments
	report.RICDStatus = input.Status

	if input.Status == model.ReviewAccepted {
		if !report.IsComplete() {
			return nil, ErrReportIncomplete
		}
		now := time.Now()
		report.AcceptanceDate = &now

		next, err := project.State.Transition(model.EventStage2Accepted)
		if err != nil {
			return nil, err
		}
		if next != project.State {
			if err := s.projects.UpdateState(ctx, project.ID, next); err != nil {
				return nil, err
			}
			project.State = next
		}
		if report.PracticalCompletionDate != nil && project.ActualCompletion == nil {
			project.ActualCompletion = report.PracticalCompletionDate
			if err := s.projects.Update(ctx, project); err != nil {
				return nil, err
			}
		}
		if report.PracticalCompletionAchieved && project.FundingSchedule != nil {
			due := model.Stage2PaymentDue(project.FundingSchedule.FundingAmount)
			result.PaymentDue = &due
		}
	}

	if err := s.reports.UpdateStage2(ctx, report); err != nil {
		return nil, err
	}
	return result, nil
}

type AttachmentInput struct {
	QuarterlyReportID *uuid.UUID
	MonthlyTrackerID  *uuid.UUID
	Stage1ReportID    *uuid.UUID
	Stage2ReportID    *uuid.UUID
	Name              string
	FilePath          string
	Description       *string
	Principal         model.Principal
}

// AddAttachment links a stored document to exactly one report.
func (s *ReportService) AddAttachment(ctx context.Context, input AttachmentInput) (*model.ReportAttachment, error) {
	refs := 0
	for _, ref := range []*uuid.UUID{input.QuarterlyReportID, input.MonthlyTrackerID, input.Stage1ReportID, input.Stage2ReportID} {
		if ref != nil {
			refs++
		}
	}
	if refs != 1 {
		return nil, fmt.Errorf("%w: attachment must reference exactly one report", ErrInvalidInput)
	}
	if input.Name == "" || input.FilePath == "" {
		return nil, fmt.Errorf("%w: name and file_path are required", ErrInvalidInput)
	}

	// Stored paths always live under the configured attachment directory.
	clean := filepath.Clean(input.FilePath)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: file_path must be relative to the attachment directory", ErrInvalidInput)
	}
	input.FilePath = filepath.Join(s.attachmentDir, clean)

	attachment := &model.ReportAttachment{
		ID:                uuid.New(),
		QuarterlyReportID: input.QuarterlyReportID,
		MonthlyTrackerID:  input.MonthlyTrackerID,
		Stage1ReportID:    input.Stage1ReportID,
		Stage2ReportID:    input.Stage2ReportID,
		Name:              input.Name,
		FilePath:          input.FilePath,
		Description:       input.Description,
		UploadDate:        time.Now(),
	}
	if err := s.reports.CreateAttachment(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

type StepCompletionInput struct {
	Stage1ReportID *uuid.UUID
	Stage2ReportID *uuid.UUID
	StepID         uuid.UUID
	Completed      bool
	CompletedDate  *time.Time
	EvidenceNotes  *string
	DocumentPath   *string
	Principal      model.Principal
}

// SaveStepCompletion records a checklist step state inside a stage report.
func (s *ReportService) SaveStepCompletion(ctx context.Context, input StepCompletionInput) (*model.StageStepCompletion, error) {
	if (input.Stage1ReportID == nil) == (input.Stage2ReportID == nil) {
		return nil, fmt.Errorf("%w: completion must reference exactly one stage report", ErrInvalidInput)
	}
	if input.Completed && input.CompletedDate == nil {
		now := time.Now()
		input.CompletedDate = &now
	}
	if !input.Completed {
		input.CompletedDate = nil
	}

	completion := &model.StageStepCompletion{
		ID:             uuid.New(),
		Stage1ReportID: input.Stage1ReportID,
		Stage2ReportID: input.Stage2ReportID,
		StepID:         input.StepID,
		Completed:      input.Completed,
		CompletedDate:  input.CompletedDate,
		EvidenceNotes:  input.EvidenceNotes,
		DocumentPath:   input.DocumentPath,
	}
	if err := s.reports.SaveStepCompletion(ctx, completion); err != nil {
		return nil, err
	}
	return completion, nil
}

// GetStage1 fetches a stage 1 report with its project for callers allowed to
// see the council's data.
func (s *ReportService) GetStage1(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Stage1Report, *model.Project, error) {
	report, err := s.reports.GetStage1(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	project, err := s.projects.Get(ctx, report.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if !principal.CanAccessCouncil(project.CouncilID) {
		return nil, nil, ErrPermissionDenied
	}
	return report, project, nil
}

func (s *ReportService) GetStage2(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Stage2Report, *model.Project, error) {
	report, err := s.reports.GetStage2(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	project, err := s.projects.Get(ctx, report.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if !principal.CanAccessCouncil(project.CouncilID) {
		return nil, nil, ErrPermissionDenied
	}
	return report, project, nil
}

func (s *ReportService) ListQuarterlyByWork(ctx context.Context, principal model.Principal, workID uuid.UUID) ([]model.QuarterlyReport, error) {
	if _, _, err := s.workForCouncil(ctx, principal, workID); err != nil {
		return nil, err
	}
	return s.reports.ListQuarterlyByWork(ctx, workID)
}

func (s *ReportService) ListTrackersByWork(ctx context.Context, principal model.Principal, workID uuid.UUID) ([]model.MonthlyTracker, error) {
	if _, _, err := s.workForCouncil(ctx, principal, workID); err != nil {
		return nil, err
	}
	return s.reports.ListTrackersByWork(ctx, workID)
}
