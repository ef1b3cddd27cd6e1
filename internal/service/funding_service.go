package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// FundingStore is the persistence surface the funding service depends on.
type FundingStore interface {
	GetSchedule(ctx context.Context, id uuid.UUID) (*model.FundingSchedule, error)
	ListSchedulesByCouncil(ctx context.Context, councilID uuid.UUID) ([]model.FundingSchedule, error)
	NextScheduleNumber(ctx context.Context, councilID uuid.UUID) (int, error)
	CreateSchedule(ctx context.Context, schedule *model.FundingSchedule) error
	UpdateSchedule(ctx context.Context, schedule *model.FundingSchedule) error

	GetInstalment(ctx context.Context, id uuid.UUID) (*model.Instalment, error)
	ListInstalments(ctx context.Context, scheduleID uuid.UUID) ([]model.Instalment, error)
	CreateInstalment(ctx context.Context, instalment *model.Instalment) error
	UpdateInstalment(ctx context.Context, instalment *model.Instalment) error

	CreateApproval(ctx context.Context, approval *model.FundingApproval, projectIDs []uuid.UUID) error
	ListApprovalsForProject(ctx context.Context, projectID uuid.UUID) ([]model.FundingApproval, error)

	GetAgreement(ctx context.Context, councilID uuid.UUID, kind model.AgreementType) (*model.CouncilAgreement, error)
	SaveAgreement(ctx context.Context, agreement *model.CouncilAgreement) error
	ListAgreements(ctx context.Context, councilID uuid.UUID) ([]model.CouncilAgreement, error)
}

// ScheduleProjectStore is the slice of the project store the funding service
// needs to fan lifecycle events out to scheduled projects.
type ScheduleProjectStore interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	UpdateState(ctx context.Context, id uuid.UUID, state model.ProjectState) error
}

type FundingService struct {
	funding     FundingStore
	projects    ScheduleProjectStore
	firstPayPct decimal.Decimal
	log         zerolog.Logger
}

func NewFundingService(funding FundingStore, projects ScheduleProjectStore, firstPayPct decimal.Decimal, log zerolog.Logger) *FundingService {
	if firstPayPct.IsZero() {
		firstPayPct = decimal.NewFromFloat(0.9)
	}
	return &FundingService{funding: funding, projects: projects, firstPayPct: firstPayPct, log: log}
}

func (s *FundingService) GetSchedule(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.FundingSchedule, error) {
	schedule, err := s.funding.GetSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccessCouncil(schedule.CouncilID) {
		return nil, ErrPermissionDenied
	}
	return schedule, nil
}

func (s *FundingService) ListSchedules(ctx context.Context, principal model.Principal, councilID uuid.UUID) ([]model.FundingSchedule, error) {
	if !principal.CanAccessCouncil(councilID) {
		return nil, ErrPermissionDenied
	}
	return s.funding.ListSchedulesByCouncil(ctx, councilID)
}

type CreateScheduleInput struct {
	CouncilID         uuid.UUID
	ProgramID         uuid.UUID
	FundingAmount     decimal.Decimal
	ContingencyAmount *decimal.Decimal
	AgreementType     model.AgreementType
	ProjectIDs        []uuid.UUID
	Principal         model.Principal
}

// CreateSchedule allocates the next schedule number for the council, links
// the given projects, and derives the first payment terms. A linked project
// with a contingency percentage drives the withholding; otherwise the first
// payment defaults to 90% of funding.
func (s *FundingService) CreateSchedule(ctx context.Context, input CreateScheduleInput) (*model.FundingSchedule, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.CouncilID == uuid.Nil || input.ProgramID == uuid.Nil {
		return nil, fmt.Errorf("%w: council_id and program_id are required", ErrInvalidInput)
	}
	if input.FundingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: funding_amount must not be negative", ErrInvalidInput)
	}

	number, err := s.funding.NextScheduleNumber(ctx, input.CouncilID)
	if err != nil {
		return nil, err
	}

	agreementType := input.AgreementType
	if agreementType == "" {
		agreementType = model.AgreementFundingSchedule
	}

	schedule := &model.FundingSchedule{
		ID:                    uuid.New(),
		CouncilID:             input.CouncilID,
		ProgramID:             input.ProgramID,
		FundingScheduleNumber: number,
		FundingAmount:         input.FundingAmount,
		ContingencyAmount:     input.ContingencyAmount,
		AgreementType:         agreementType,
		CreatedAt:             time.Now(),
	}

	var contingencyPct *decimal.Decimal
	projects := make([]*model.Project, 0, len(input.ProjectIDs))
	for _, projectID := range input.ProjectIDs {
		project, err := s.projects.Get(ctx, projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if project.CouncilID != input.CouncilID {
			return nil, fmt.Errorf("%w: project belongs to a different council", ErrInvalidInput)
		}
		if contingencyPct == nil && !project.ContingencyPercentage.IsZero() {
			pct := project.ContingencyPercentage
			contingencyPct = &pct
		}
		projects = append(projects, project)
	}

	schedule.FillFirstPayment(contingencyPct, s.firstPayPct, time.Now())

	if err := s.funding.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	for _, project := range projects {
		project.FundingScheduleID = &schedule.ID
		if err := s.projects.Update(ctx, project); err != nil {
			return nil, err
		}
	}
	return schedule, nil
}

type SignScheduleInput struct {
	ScheduleID         uuid.UUID
	DateSentToCouncil  *time.Time
	DateCouncilSigned  *time.Time
	DateDelegateSigned *time.Time
	Principal          model.Principal
}

// RecordSignatures updates the signature dates on a schedule and re-derives
// the executed date as the later of the two signatures.
func (s *FundingService) RecordSignatures(ctx context.Context, input SignScheduleInput) (*model.FundingSchedule, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	schedule, err := s.funding.GetSchedule(ctx, input.ScheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.DateSentToCouncil != nil {
		schedule.DateSentToCouncil = input.DateSentToCouncil
	}
	if input.DateCouncilSigned != nil {
		schedule.DateCouncilSigned = input.DateCouncilSigned
	}
	if input.DateDelegateSigned != nil {
		schedule.DateDelegateSigned = input.DateDelegateSigned
	}
	schedule.FillExecutedDate()

	if err := s.funding.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

type AddInstalmentInput struct {
	ScheduleID uuid.UUID
	DueDate    time.Time
	Amount     decimal.Decimal
	Principal  model.Principal
}

func (s *FundingService) AddInstalment(ctx context.Context, input AddInstalmentInput) (*model.Instalment, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if _, err := s.funding.GetSchedule(ctx, input.ScheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	instalment := &model.Instalment{
		ID:                uuid.New(),
		FundingScheduleID: input.ScheduleID,
		DueDate:           input.DueDate,
		Amount:            input.Amount,
	}
	if err := s.funding.CreateInstalment(ctx, instalment); err != nil {
		return nil, err
	}
	return instalment, nil
}

type ReleaseInstalmentInput struct {
	InstalmentID     uuid.UUID
	ReleaseDate      *time.Time
	PaymentReference *string
	Principal        model.Principal
}

// ReleaseInstalment marks an instalment paid and moves every project under
// the schedule to funded. A schedule with no attached projects is an
// administrative error the caller must resolve first.
func (s *FundingService) ReleaseInstalment(ctx context.Context, input ReleaseInstalmentInput) (*model.Instalment, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	instalment, err := s.funding.GetInstalment(ctx, input.InstalmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	projects, err := s.projects.ListBySchedule(ctx, instalment.FundingScheduleID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNoProjectForSchedule
	}

	instalment.Paid = true
	if input.ReleaseDate != nil {
		instalment.ReleaseDate = input.ReleaseDate
	} else {
		now := time.Now()
		instalment.ReleaseDate = &now
	}
	if input.PaymentReference != nil {
		instalment.PaymentReference = input.PaymentReference
	}
	if err := s.funding.UpdateInstalment(ctx, instalment); err != nil {
		return nil, err
	}

	for _, project := range projects {
		next, err := project.State.Transition(model.EventInstalmentReleased)
		if err != nil {
			// Already past funded; the release does not regress it.
			s.log.Debug().
				Str("project_id", project.ID.String()).
				Str("state", string(project.State)).
				Msg("instalment release skipped lifecycle move")
			continue
		}
		if next == project.State {
			continue
		}
		if err := s.projects.UpdateState(ctx, project.ID, next); err != nil {
			return nil, err
		}
	}
	return instalment, nil
}

func (s *FundingService) ListInstalments(ctx context.Context, principal model.Principal, scheduleID uuid.UUID) ([]model.Instalment, error) {
	schedule, err := s.funding.GetSchedule(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccessCouncil(schedule.CouncilID) {
		return nil, ErrPermissionDenied
	}
	return s.funding.ListInstalments(ctx, scheduleID)
}

type CreateApprovalInput struct {
	MincorReference    string
	Amount             decimal.Decimal
	ApprovedByPosition string
	ApprovedDate       time.Time
	ProjectIDs         []uuid.UUID
	Principal          model.Principal
}

// CreateApproval records a MINCOR funding approval. Manager-level only.
func (s *FundingService) CreateApproval(ctx context.Context, input CreateApprovalInput) (*model.FundingApproval, error) {
	if !input.Principal.IsRICDManager() {
		return nil, ErrPermissionDenied
	}
	if input.MincorReference == "" || input.ApprovedByPosition == "" {
		return nil, fmt.Errorf("%w: mincor_reference and approved_by_position are required", ErrInvalidInput)
	}
	if len(input.ProjectIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one project is required", ErrInvalidInput)
	}

	approval := &model.FundingApproval{
		ID:                 uuid.New(),
		MincorReference:    input.MincorReference,
		Amount:             input.Amount,
		ApprovedByPosition: input.ApprovedByPosition,
		ApprovedDate:       input.ApprovedDate,
	}
	if err := s.funding.CreateApproval(ctx, approval, input.ProjectIDs); err != nil {
		return nil, err
	}
	return approval, nil
}

type SaveAgreementInput struct {
	CouncilID          uuid.UUID
	Kind               model.AgreementType
	Notes              *string
	FundingAmount      *decimal.Decimal
	ContingencyAmount  *decimal.Decimal
	DateSentToCouncil  *time.Time
	DateCouncilSigned  *time.Time
	DateDelegateSigned *time.Time
	Principal          model.Principal
}

// SaveAgreement creates or updates the council's agreement of the given
// kind. Each council holds at most one agreement per kind.
func (s *FundingService) SaveAgreement(ctx context.Context, input SaveAgreementInput) (*model.CouncilAgreement, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Kind == "" || input.Kind == model.AgreementFundingSchedule {
		return nil, fmt.Errorf("%w: agreement kind must be a council-level kind", ErrInvalidInput)
	}

	agreement, err := s.funding.GetAgreement(ctx, input.CouncilID, input.Kind)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		agreement = &model.CouncilAgreement{
			ID:        uuid.New(),
			CouncilID: input.CouncilID,
			Kind:      input.Kind,
		}
	}

	if input.Notes != nil {
		agreement.Notes = input.Notes
	}
	if input.FundingAmount != nil {
		if input.FundingAmount.IsNegative() {
			return nil, fmt.Errorf("%w: funding_amount must not be negative", ErrInvalidInput)
		}
		agreement.FundingAmount = *input.FundingAmount
	}
	if input.ContingencyAmount != nil {
		agreement.ContingencyAmount = input.ContingencyAmount
	}
	if input.DateSentToCouncil != nil {
		agreement.DateSentToCouncil = input.DateSentToCouncil
	}
	if input.DateCouncilSigned != nil {
		agreement.DateCouncilSigned = input.DateCouncilSigned
	}
	if input.DateDelegateSigned != nil {
		agreement.DateDelegateSigned = input.DateDelegateSigned
	}

	if err := s.funding.SaveAgreement(ctx, agreement); err != nil {
		return nil, err
	}
	return agreement, nil
}

func (s *FundingService) ListAgreements(ctx context.Context, principal model.Principal, councilID uuid.UUID) ([]model.CouncilAgreement, error) {
	if !principal.CanAccessCouncil(councilID) {
		return nil, ErrPermissionDenied
	}
	return s.funding.ListAgreements(ctx, councilID)
}
