package model

import "github.com/google/uuid"

// WorkType classifies the kind of work carried out at an address
// (construction, extension, land development, ...). The allowed output types
// constrain which outputs a council may record against it.
type WorkType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	Description *string
	IsActive    bool `gorm:"default:true"`

	AllowedOutputTypes []OutputType `gorm:"many2many:work_type_allowed_outputs"`
}

func (WorkType) TableName() string { return "work_types" }

// AllowsOutput reports whether the given output type may be paired with this
// work type. Requires AllowedOutputTypes to be loaded.
func (w *WorkType) AllowsOutput(outputTypeID uuid.UUID) bool {
	for _, ot := range w.AllowedOutputTypes {
		if ot.ID == outputTypeID {
			return true
		}
	}
	return false
}

type OutputType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	Description *string
	IsActive    bool `gorm:"default:true"`
}

func (OutputType) TableName() string { return "output_types" }

// DwellingMultiplier maps the output type onto the number of dwellings a
// single output yields. Matching is on the code string, not an id.
func (o *OutputType) DwellingMultiplier() int {
	switch o.Code {
	case "duplex":
		return 2
	case "triplex":
		return 3
	default:
		return 1
	}
}

type ConstructionMethod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	Description *string
	IsActive    bool `gorm:"default:true"`
}

func (ConstructionMethod) TableName() string { return "construction_methods" }
