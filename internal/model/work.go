package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Work is a construction work item at an address. A work reaches its project
// only through the address; there is no direct project reference.
type Work struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddressID uuid.UUID `gorm:"type:uuid"`

	WorkTypeID           uuid.UUID  `gorm:"type:uuid"`
	OutputTypeID         uuid.UUID  `gorm:"type:uuid"`
	ConstructionMethodID *uuid.UUID `gorm:"type:uuid"`

	OutputQuantity int `gorm:"default:1"`
	Bedrooms       *int
	Bathrooms      *int
	Kitchens       *int
	DwellingsCount int `gorm:"default:1"`

	LandStatus *string

	FloorMethod          *string
	FrameMethod          *string
	ExternalWallMethod   *string
	RoofMethod           *string
	CarAccommodation     *string
	AdditionalFacilities *string
	ExtensionHighLow     *string

	EstimatedCost *decimal.Decimal `gorm:"type:numeric(15,2)"`
	ActualCost    *decimal.Decimal `gorm:"type:numeric(15,2)"`
	StartDate     *time.Time
	EndDate       *time.Time

	ProgressPercentage int

	Address    *Address    `gorm:"foreignKey:AddressID"`
	WorkType   *WorkType   `gorm:"foreignKey:WorkTypeID"`
	OutputType *OutputType `gorm:"foreignKey:OutputTypeID"`
}

func (Work) TableName() string { return "works" }

// TotalDwellings multiplies the output quantity by the dwelling multiplier of
// the output type (duplex doubles, triplex triples).
func (w *Work) TotalDwellings() int {
	multiplier := 1
	if w.OutputType != nil {
		multiplier = w.OutputType.DwellingMultiplier()
	}
	return w.OutputQuantity * multiplier
}

func (w *Work) TotalBedrooms() int {
	if w.Bedrooms == nil {
		return 0
	}
	return *w.Bedrooms * w.TotalDwellings()
}

// WithinDefectLiability reports whether today still falls inside the 12-month
// defect liability window following practical completion. A work with no
// resolvable practical completion date is never within the window.
func WithinDefectLiability(practicalCompletion *time.Time, today time.Time) bool {
	if practicalCompletion == nil {
		return false
	}
	expiry := practicalCompletion.AddDate(0, 12, 0)
	return !today.After(expiry)
}

// DefaultWorkStep is a per-program, per-work-type step template. New works
// get a copy of every matching template as their initial checklist.
type DefaultWorkStep struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProgramID     uuid.UUID `gorm:"type:uuid"`
	WorkTypeID    uuid.UUID `gorm:"type:uuid"`
	Order         int       `gorm:"column:step_order"`
	Name          string
	Description   *string
	DueOffsetDays int
}

func (DefaultWorkStep) TableName() string { return "default_work_steps" }

type WorkStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkID      uuid.UUID `gorm:"type:uuid"`
	Order       int       `gorm:"column:step_order"`
	Name        string
	Description *string
	Completed   bool
	DueDate     *time.Time
}

func (WorkStep) TableName() string { return "work_steps" }

// StepFromDefault instantiates a work step from a template, offsetting the
// due date from the work's start date when one is known.
func StepFromDefault(def DefaultWorkStep, workID uuid.UUID, startDate *time.Time) WorkStep {
	step := WorkStep{
		ID:          uuid.New(),
		WorkID:      workID,
		Order:       def.Order,
		Name:        def.Name,
		Description: def.Description,
	}
	if startDate != nil {
		due := startDate.AddDate(0, 0, def.DueOffsetDays)
		step.DueDate = &due
	}
	return step
}

// Defect is a fault identified during construction or within the defect
// liability period.
type Defect struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkID         uuid.UUID `gorm:"type:uuid"`
	Description    string
	IdentifiedDate time.Time
	RectifiedDate  *time.Time
}

func (Defect) TableName() string { return "defects" }

// PracticalCompletion is the explicit record of a project reaching practical
// completion. It is the first choice when resolving a work's completion date.
type PracticalCompletion struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID      uuid.UUID `gorm:"type:uuid"`
	CompletionDate *time.Time
	Notes          *string
}

func (PracticalCompletion) TableName() string { return "practical_completions" }
