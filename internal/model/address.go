package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address is a site within a project. Budgets recorded here are validated
// against the project's total funding at input time.
type Address struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid"`

	Street   string
	Suburb   string
	Postcode string
	State    string `gorm:"default:QLD"`

	WorkTypeID           *uuid.UUID `gorm:"type:uuid"`
	OutputTypeID         *uuid.UUID `gorm:"type:uuid"`
	ConstructionMethodID *uuid.UUID `gorm:"type:uuid"`

	Bedrooms       *int
	OutputQuantity int              `gorm:"default:1"`
	Budget         *decimal.Decimal `gorm:"type:numeric(15,2)"`

	LotNumber      *string
	PlanNumber     *string
	TitleReference *string

	WorkType   *WorkType   `gorm:"foreignKey:WorkTypeID"`
	OutputType *OutputType `gorm:"foreignKey:OutputTypeID"`
	Works      []Work      `gorm:"foreignKey:AddressID"`
}

func (Address) TableName() string { return "addresses" }
