package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProjectState string

const (
	StateProspective       ProjectState = "prospective"
	StateProgrammed        ProjectState = "programmed"
	StateFunded            ProjectState = "funded"
	StateCommenced         ProjectState = "commenced"
	StateUnderConstruction ProjectState = "under_construction"
	StateCompleted         ProjectState = "completed"
)

// stateOrder gives the total order of progression. Lifecycle events may only
// move a project forward along it.
var stateOrder = map[ProjectState]int{
	StateProspective:       0,
	StateProgrammed:        1,
	StateFunded:            2,
	StateCommenced:         3,
	StateUnderConstruction: 4,
	StateCompleted:         5,
}

func (s ProjectState) Valid() bool {
	_, ok := stateOrder[s]
	return ok
}

type LifecycleEvent string

const (
	EventProgrammed         LifecycleEvent = "programmed"
	EventInstalmentReleased LifecycleEvent = "instalment_released"
	EventStage1Accepted     LifecycleEvent = "stage1_accepted"
	EventStage2Submitted    LifecycleEvent = "stage2_submitted"
	EventStage2Accepted     LifecycleEvent = "stage2_accepted"
)

// eventTarget is the state each lifecycle event drives a project into.
var eventTarget = map[LifecycleEvent]ProjectState{
	EventProgrammed:         StateProgrammed,
	EventInstalmentReleased: StateFunded,
	EventStage1Accepted:     StateCommenced,
	EventStage2Submitted:    StateUnderConstruction,
	EventStage2Accepted:     StateCompleted,
}

type TransitionError struct {
	From  ProjectState
	Event LifecycleEvent
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("lifecycle event %q not allowed from state %q", e.Event, e.From)
}

// Transition applies a lifecycle event and returns the resulting state.
// Events are idempotent when the project already sits in the event's target
// state, and fail with a TransitionError when they would move the project
// backwards. There are no regression transitions.
func (s ProjectState) Transition(event LifecycleEvent) (ProjectState, error) {
	target, ok := eventTarget[event]
	if !ok {
		return s, fmt.Errorf("unknown lifecycle event %q", event)
	}
	if s == target {
		return s, nil
	}
	if stateOrder[s] > stateOrder[target] {
		return s, &TransitionError{From: s, Event: event}
	}
	return target, nil
}

type ProjectManagerKind string

const (
	ManagerCouncil  ProjectManagerKind = "council"
	ManagerQBuild   ProjectManagerKind = "qbuild"
	ManagerExternal ProjectManagerKind = "external"
)

type ContractorKind string

const (
	ContractorCouncil    ContractorKind = "council"
	ContractorQBuild     ContractorKind = "qbuild"
	ContractorThirdParty ContractorKind = "third_party"
)

// Project is the aggregate root: a council's funded construction or land
// development undertaking, tracked through the stage-gate lifecycle.
type Project struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CouncilID         uuid.UUID  `gorm:"type:uuid"`
	ProgramID         uuid.UUID  `gorm:"type:uuid"`
	FundingScheduleID *uuid.UUID `gorm:"type:uuid"`

	Name        string
	Description *string
	State       ProjectState `gorm:"default:prospective"`

	PrincipalOfficer *string
	SeniorOfficer    *string

	StartDate    *time.Time
	Stage1Target *time.Time
	Stage1Sunset *time.Time
	Stage2Target *time.Time
	Stage2Sunset *time.Time

	SAPProject       *string `gorm:"column:sap_project"`
	SAPMasterProject *string `gorm:"column:sap_master_project"`
	CLINo            *string `gorm:"column:cli_no"`

	ProjectManager        *ProjectManagerKind
	Contractor            *ContractorKind
	ContractorAddress     *string
	ExternalManagerName   *string
	ContractorOrganisation *string

	FundingScheduleAmount *decimal.Decimal `gorm:"type:numeric(15,2)"`
	ContingencyAmount     *decimal.Decimal `gorm:"type:numeric(15,2)"`
	Commitments           *decimal.Decimal `gorm:"type:numeric(15,2)"`
	ContingencyPercentage decimal.Decimal  `gorm:"type:numeric(5,2)"`
	ForecastFinalCost     *decimal.Decimal `gorm:"type:numeric(15,2)"`
	FinalCost             *decimal.Decimal `gorm:"type:numeric(15,2)"`
	CostsFinalised        bool

	HandoverForecast        *time.Time
	HandoverActual          *time.Time
	CommencementLOAForecast *time.Time `gorm:"column:commencement_loa_forecast"`
	CommencementLOAActual   *time.Time `gorm:"column:commencement_loa_actual"`
	DatePhysicallyCommenced *time.Time
	EstimatedCompletion     *time.Time
	ActualCompletion        *time.Time

	CreatedAt time.Time

	Council         *Council         `gorm:"foreignKey:CouncilID"`
	Program         *Program         `gorm:"foreignKey:ProgramID"`
	FundingSchedule *FundingSchedule `gorm:"foreignKey:FundingScheduleID"`
	Addresses       []Address        `gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) TotalFunding() decimal.Decimal {
	total := decimal.Zero
	if p.FundingScheduleAmount != nil {
		total = total.Add(*p.FundingScheduleAmount)
	}
	if p.ContingencyAmount != nil {
		total = total.Add(*p.ContingencyAmount)
	}
	return total
}

// CalculatedCommitments is the funding schedule amount when one is linked,
// falling back to the contingency amount.
func (p *Project) CalculatedCommitments() decimal.Decimal {
	if p.FundingSchedule != nil {
		return p.FundingSchedule.FundingAmount
	}
	if p.ContingencyAmount != nil {
		return *p.ContingencyAmount
	}
	return decimal.Zero
}

func (p *Project) CalculatedContingency() decimal.Decimal {
	if p.Commitments != nil && !p.ContingencyPercentage.IsZero() {
		return p.Commitments.Mul(p.ContingencyPercentage).Round(2)
	}
	if p.ContingencyAmount != nil {
		return *p.ContingencyAmount
	}
	return decimal.Zero
}

// IsLate reports whether the project has passed the target date for its
// current stage. Only commenced and under-construction projects can be late.
func (p *Project) IsLate(today time.Time) bool {
	if p.State == StateCommenced && p.Stage1Target != nil && today.After(*p.Stage1Target) {
		return true
	}
	if p.State == StateUnderConstruction && p.Stage2Target != nil && today.After(*p.Stage2Target) {
		return true
	}
	return false
}

// IsOverdue reports whether the project has passed the hard sunset date for
// its current stage.
func (p *Project) IsOverdue(today time.Time) bool {
	if p.State == StateCommenced && p.Stage1Sunset != nil && today.After(*p.Stage1Sunset) {
		return true
	}
	if p.State == StateUnderConstruction && p.Stage2Sunset != nil && today.After(*p.Stage2Sunset) {
		return true
	}
	return false
}

func (p *Project) IsOnTime(today time.Time) bool {
	return !p.IsLate(today) && !p.IsOverdue(today)
}

// FillStageDates fills any unset stage target/sunset dates from the start
// date. Fields that already carry a value are never recalculated, so a later
// change of start date leaves previously derived dates alone.
func (p *Project) FillStageDates() bool {
	if p.StartDate == nil {
		return false
	}

	changed := false
	if p.Stage1Target == nil {
		d := p.StartDate.AddDate(0, 12, 0)
		p.Stage1Target = &d
		changed = true
	}
	if p.Stage1Sunset == nil {
		d := p.StartDate.AddDate(0, 18, 0)
		p.Stage1Sunset = &d
		changed = true
	}
	if p.Stage2Target == nil {
		var d time.Time
		if p.Stage1Target != nil {
			d = p.Stage1Target.AddDate(0, 12, 0)
		} else {
			d = p.StartDate.AddDate(0, 24, 0)
		}
		p.Stage2Target = &d
		changed = true
	}
	if p.Stage2Sunset == nil {
		var d time.Time
		if p.Stage1Sunset != nil {
			d = p.Stage1Sunset.AddDate(0, 12, 0)
		} else {
			d = p.StartDate.AddDate(0, 30, 0)
		}
		p.Stage2Sunset = &d
		changed = true
	}
	return changed
}

// ProgramYear is the year the funding schedule first released money, falling
// back to the current year when no schedule is linked.
func (p *Project) ProgramYear(now time.Time) string {
	if p.FundingSchedule != nil && p.FundingSchedule.FirstReleaseDate != nil {
		return strconv.Itoa(p.FundingSchedule.FirstReleaseDate.Year())
	}
	return strconv.Itoa(now.Year())
}
