package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// ProjectStore is the persistence surface the project service depends on.
type ProjectStore interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, councilID *uuid.UUID, state *model.ProjectState) ([]model.Project, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	UpdateState(ctx context.Context, id uuid.UUID, state model.ProjectState) error

	GetAddress(ctx context.Context, id uuid.UUID) (*model.Address, error)
	CreateAddress(ctx context.Context, address *model.Address) error
	UpdateAddress(ctx context.Context, address *model.Address) error
	SumAddressBudgets(ctx context.Context, projectID uuid.UUID, exclude *uuid.UUID) (decimal.Decimal, error)

	GetWork(ctx context.Context, id uuid.UUID) (*model.Work, error)
	CreateWork(ctx context.Context, work *model.Work, steps []model.WorkStep) error
	UpdateWork(ctx context.Context, work *model.Work) error
	WorkProject(ctx context.Context, workID uuid.UUID) (*model.Project, error)

	ListDefaultSteps(ctx context.Context, programID, workTypeID uuid.UUID) ([]model.DefaultWorkStep, error)
	ListWorkSteps(ctx context.Context, workID uuid.UUID) ([]model.WorkStep, error)
	UpdateWorkStep(ctx context.Context, step *model.WorkStep) error

	CreateDefect(ctx context.Context, defect *model.Defect) error
	ListDefects(ctx context.Context, workID uuid.UUID) ([]model.Defect, error)
	CreatePracticalCompletion(ctx context.Context, pc *model.PracticalCompletion) error
	LatestPracticalCompletion(ctx context.Context, projectID uuid.UUID) (*time.Time, error)
	LatestQuarterlyActualCompletion(ctx context.Context, projectID uuid.UUID) (*time.Time, error)
	LatestStage2CompletionDate(ctx context.Context, projectID uuid.UUID) (*time.Time, error)
	ListCouncilAgreements(ctx context.Context, councilID uuid.UUID) ([]model.CouncilAgreement, error)
	ProgressAverage(ctx context.Context, projectID uuid.UUID) (float64, error)
	SpentTotal(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error)
}

// WorkTypeStore resolves reference data needed for work validation.
type WorkTypeStore interface {
	GetWorkType(ctx context.Context, id uuid.UUID) (*model.WorkType, error)
	GetCouncil(ctx context.Context, id uuid.UUID) (*model.Council, error)
}

type ProjectService struct {
	projects  ProjectStore
	reference WorkTypeStore
}

func NewProjectService(projects ProjectStore, reference WorkTypeStore) *ProjectService {
	return &ProjectService{projects: projects, reference: reference}
}

func (s *ProjectService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccessCouncil(project.CouncilID) {
		return nil, ErrPermissionDenied
	}
	return project, nil
}

// List returns projects visible to the caller. Council principals are always
// scoped to their own council regardless of the filter.
func (s *ProjectService) List(ctx context.Context, principal model.Principal, councilID *uuid.UUID, state *model.ProjectState) ([]model.Project, error) {
	if principal.IsCouncil() {
		own, ok := principal.Council()
		if !ok {
			return nil, ErrPermissionDenied
		}
		councilID = &own
	}
	return s.projects.List(ctx, councilID, state)
}

type CreateProjectInput struct {
	CouncilID         uuid.UUID
	ProgramID         uuid.UUID
	FundingScheduleID *uuid.UUID
	Name              string
	Description       *string
	StartDate         *time.Time
	FundingAmount     *decimal.Decimal
	ContingencyAmount *decimal.Decimal
	Principal         model.Principal
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.CouncilID == uuid.Nil || input.ProgramID == uuid.Nil {
		return nil, fmt.Errorf("%w: council_id and program_id are required", ErrInvalidInput)
	}

	// Verifies the council exists before creating against it.
	if _, err := s.reference.GetCouncil(ctx, input.CouncilID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	project := &model.Project{
		ID:                    uuid.New(),
		CouncilID:             input.CouncilID,
		ProgramID:             input.ProgramID,
		FundingScheduleID:     input.FundingScheduleID,
		Name:                  input.Name,
		Description:           input.Description,
		State:                 model.StateProspective,
		StartDate:             input.StartDate,
		FundingScheduleAmount: input.FundingAmount,
		ContingencyAmount:     input.ContingencyAmount,
		CreatedAt:             time.Now(),
	}
	project.FillStageDates()

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

type UpdateProjectInput struct {
	ProjectID uuid.UUID
	Apply     func(project *model.Project)
	Principal model.Principal
}

// Update applies a caller-supplied mutation, then refreshes derived stage
// dates for any still-unset fields.
func (s *ProjectService) Update(ctx context.Context, input UpdateProjectInput) (*model.Project, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	project, err := s.projects.Get(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if input.Apply != nil {
		input.Apply(project)
	}
	project.FillStageDates()
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ApplyEvent drives the project lifecycle forward. RICD only; transitions
// never move backwards and are idempotent at the target state.
func (s *ProjectService) ApplyEvent(ctx context.Context, principal model.Principal, projectID uuid.UUID, event model.LifecycleEvent) (*model.Project, error) {
	if !principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	next, err := project.State.Transition(event)
	if err != nil {
		return nil, err
	}
	if next != project.State {
		if err := s.projects.UpdateState(ctx, project.ID, next); err != nil {
			return nil, err
		}
		project.State = next
	}
	return project, nil
}

type AddAddressInput struct {
	ProjectID            uuid.UUID
	Street               string
	Suburb               string
	Postcode             string
	State                string
	WorkTypeID           *uuid.UUID
	OutputTypeID         *uuid.UUID
	ConstructionMethodID *uuid.UUID
	Bedrooms             *int
	OutputQuantity       int
	Budget               *decimal.Decimal
	LotNumber            *string
	PlanNumber           *string
	TitleReference       *string
	Principal            model.Principal
}

// AddAddress attaches a site to a project. Council users may add addresses to
// their own council's projects. The combined address budgets may not exceed
// the project's funding ceiling: the larger of the project's total funding and
// the council's best agreement funding.
func (s *ProjectService) AddAddress(ctx context.Context, input AddAddressInput) (*model.Address, error) {
	if input.Street == "" {
		return nil, fmt.Errorf("%w: street is required", ErrInvalidInput)
	}

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

	if input.Budget != nil {
		existing, err := s.projects.SumAddressBudgets(ctx, project.ID, nil)
		if err != nil {
			return nil, err
		}
		ceiling, err := s.fundingCeiling(ctx, project)
		if err != nil {
			return nil, err
		}
		if ceiling.IsPositive() && existing.Add(*input.Budget).GreaterThan(ceiling) {
			return nil, ErrBudgetExceedsFunding
		}
	}

	council, err := s.reference.GetCouncil(ctx, project.CouncilID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	address := &model.Address{
		ID:                   uuid.New(),
		ProjectID:            project.ID,
		Street:               input.Street,
		Suburb:               input.Suburb,
		Postcode:             input.Postcode,
		State:                input.State,
		WorkTypeID:           input.WorkTypeID,
		OutputTypeID:         input.OutputTypeID,
		ConstructionMethodID: input.ConstructionMethodID,
		Bedrooms:             input.Bedrooms,
		OutputQuantity:       input.OutputQuantity,
		Budget:               input.Budget,
		LotNumber:            input.LotNumber,
		PlanNumber:           input.PlanNumber,
		TitleReference:       input.TitleReference,
	}
	if address.OutputQuantity == 0 {
		address.OutputQuantity = 1
	}
	if council != nil {
		if address.Suburb == "" && council.DefaultSuburb != nil {
			address.Suburb = *council.DefaultSuburb
		}
		if address.Postcode == "" && council.DefaultPostcode != nil {
			address.Postcode = *council.DefaultPostcode
		}
		if address.State == "" {
			address.State = council.DefaultState
		}
	}
	if address.State == "" {
		address.State = "QLD"
	}

	if err := s.projects.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// fundingCeiling is the budget limit for a project's addresses: the project's
// own funding plus contingency, or the council's largest agreement funding
// when that is higher.
func (s *ProjectService) fundingCeiling(ctx context.Context, project *model.Project) (decimal.Decimal, error) {
	ceiling := project.TotalFunding()
	agreements, err := s.projects.ListCouncilAgreements(ctx, project.CouncilID)
	if err != nil {
		return decimal.Zero, err
	}
	for i := range agreements {
		if total := agreements[i].TotalFunding(); total.GreaterThan(ceiling) {
			ceiling = total
		}
	}
	return ceiling, nil
}

type AddWorkInput struct {
	AddressID            uuid.UUID
	WorkTypeID           uuid.UUID
	OutputTypeID         uuid.UUID
	ConstructionMethodID *uuid.UUID
	OutputQuantity       int
	Bedrooms             *int
	Bathrooms            *int
	Kitchens             *int
	EstimatedCost        *decimal.Decimal
	StartDate            *time.Time
	Principal            model.Principal
}

// AddWork creates a work under an address, validating the output type
// against the work type's allow-list and instantiating the program's default
// step checklist. Council users may add works to their own council's
// projects.
func (s *ProjectService) AddWork(ctx context.Context, input AddWorkInput) (*model.Work, error) {
	if input.WorkTypeID == uuid.Nil || input.OutputTypeID == uuid.Nil {
		return nil, fmt.Errorf("%w: work_type_id and output_type_id are required", ErrInvalidInput)
	}

	address, err := s.projects.GetAddress(ctx, input.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	project, err := s.projects.Get(ctx, address.ProjectID)
	if err != nil {
		return nil, err
	}
	if !input.Principal.CanAccessCouncil(project.CouncilID) {
		return nil, ErrPermissionDenied
	}

	workType, err := s.reference.GetWorkType(ctx, input.WorkTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !workType.AllowsOutput(input.OutputTypeID) {
		return nil, ErrOutputNotAllowed
	}

	work := &model.Work{
		ID:                   uuid.New(),
		AddressID:            address.ID,
		WorkTypeID:           input.WorkTypeID,
		OutputTypeID:         input.OutputTypeID,
		ConstructionMethodID: input.ConstructionMethodID,
		OutputQuantity:       input.OutputQuantity,
		Bedrooms:             input.Bedrooms,
		Bathrooms:            input.Bathrooms,
		Kitchens:             input.Kitchens,
		EstimatedCost:        input.EstimatedCost,
		StartDate:            input.StartDate,
	}
	if work.OutputQuantity == 0 {
		work.OutputQuantity = 1
	}

	defaults, err := s.projects.ListDefaultSteps(ctx, project.ProgramID, input.WorkTypeID)
	if err != nil {
		return nil, err
	}
	steps := make([]model.WorkStep, 0, len(defaults))
	for _, def := range defaults {
		steps = append(steps, model.StepFromDefault(def, work.ID, work.StartDate))
	}

	if err := s.projects.CreateWork(ctx, work, steps); err != nil {
		return nil, err
	}
	return work, nil
}

// CompleteWorkStep marks a checklist step done. Council users may complete
// steps on their own works.
func (s *ProjectService) CompleteWorkStep(ctx context.Context, principal model.Principal, workID, stepID uuid.UUID) error {
	project, err := s.projects.WorkProject(ctx, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanAccessCouncil(project.CouncilID) {
		return ErrPermissionDenied
	}

	steps, err := s.projects.ListWorkSteps(ctx, workID)
	if err != nil {
		return err
	}
	for i := range steps {
		if steps[i].ID == stepID {
			steps[i].Completed = true
			return s.projects.UpdateWorkStep(ctx, &steps[i])
		}
	}
	return ErrNotFound
}

type RecordDefectInput struct {
	WorkID         uuid.UUID
	Description    string
	IdentifiedDate time.Time
	Principal      model.Principal
}

// RecordDefect registers a defect against a work. Defects may only be raised
// while the work is within its defect liability period (or before practical
// completion).
func (s *ProjectService) RecordDefect(ctx context.Context, input RecordDefectInput) (*model.Defect, error) {
	project, err := s.projects.WorkProject(ctx, input.WorkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !input.Principal.CanAccessCouncil(project.CouncilID) {
		return nil, ErrPermissionDenied
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	pc, err := s.practicalCompletionDate(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if pc != nil && !model.WithinDefectLiability(pc, input.IdentifiedDate) {
		return nil, fmt.Errorf("%w: defect liability period has expired", ErrInvalidInput)
	}

	defect := &model.Defect{
		ID:             uuid.New(),
		WorkID:         input.WorkID,
		Description:    input.Description,
		IdentifiedDate: input.IdentifiedDate,
	}
	if err := s.projects.CreateDefect(ctx, defect); err != nil {
		return nil, err
	}
	return defect, nil
}

// practicalCompletionDate resolves a project's practical completion: the
// explicit practical completion record first, then the latest quarterly
// report's actual date, then the latest stage 2 report's recorded date.
func (s *ProjectService) practicalCompletionDate(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	pc, err := s.projects.LatestPracticalCompletion(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if pc != nil {
		return pc, nil
	}
	pc, err = s.projects.LatestQuarterlyActualCompletion(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if pc != nil {
		return pc, nil
	}
	return s.projects.LatestStage2CompletionDate(ctx, projectID)
}

func (s *ProjectService) RecordPracticalCompletion(ctx context.Context, principal model.Principal, projectID uuid.UUID, date *time.Time, notes *string) (*model.PracticalCompletion, error) {
	if !principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pc := &model.PracticalCompletion{
		ID:             uuid.New(),
		ProjectID:      projectID,
		CompletionDate: date,
		Notes:          notes,
	}
	if err := s.projects.CreatePracticalCompletion(ctx, pc); err != nil {
		return nil, err
	}
	return pc, nil
}
