package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Council is a local government body receiving program funding. It is the
// tenancy boundary for access control: council users only ever see rows that
// hang off their own council.
type Council struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	ABN             *string `gorm:"column:abn"`
	DefaultSuburb   *string
	DefaultPostcode *string
	DefaultState    string `gorm:"default:QLD"`

	FederalElectorate *string
	StateElectorate   *string
	QHIGIRegion       *string `gorm:"column:qhigi_region"`

	// Affects whether leases are required at stage 1; non-registered
	// providers must supply them.
	IsRegisteredHousingProvider bool

	DefaultPrincipalOfficerID *uuid.UUID `gorm:"type:uuid"`
	DefaultSeniorOfficerID    *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
}

func (Council) TableName() string { return "councils" }

type Contact struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouncilID     uuid.UUID `gorm:"type:uuid"`
	Name          string
	Position      string
	Email         string
	Phone         string
	Address       *string
	PostalAddress *string
}

func (Contact) TableName() string { return "contacts" }

type FundingSource string

const (
	FundingSourceCommonwealth FundingSource = "Commonwealth"
	FundingSourceState        FundingSource = "State"
)

// Program is a named funding program under which projects are funded.
type Program struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   *string
	Budget        *decimal.Decimal `gorm:"type:numeric(15,2)"`
	FundingSource *FundingSource
	CreatedAt     time.Time
}

func (Program) TableName() string { return "programs" }

// Officer is an assignable RICD project officer backed by a user account.
// An officer can act as principal or senior on a project, never both.
type Officer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Position    *string
	IsActive    bool `gorm:"default:true"`
	IsPrincipal bool
	IsSenior    bool

	User *User `gorm:"foreignKey:UserID"`
}

func (Officer) TableName() string { return "officers" }
