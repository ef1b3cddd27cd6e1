package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AgreementType string

const (
	AgreementFundingSchedule AgreementType = "funding_schedule"
	AgreementFRPF            AgreementType = "frpf_agreement"
	AgreementIFRPF           AgreementType = "ifrpf_agreement"
	AgreementRCPF            AgreementType = "rcpf_agreement"
)

// FundingSchedule is the financial agreement instance for a council under a
// program. The schedule number is unique per council.
type FundingSchedule struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouncilID             uuid.UUID `gorm:"type:uuid"`
	ProgramID             uuid.UUID `gorm:"type:uuid"`
	FundingScheduleNumber int

	FundingAmount     decimal.Decimal  `gorm:"type:numeric(15,2)"`
	ContingencyAmount *decimal.Decimal `gorm:"type:numeric(15,2)"`

	FirstPaymentAmount   *decimal.Decimal `gorm:"type:numeric(15,2)"`
	FirstReleaseDate     *time.Time
	FirstReferenceNumber *string

	AgreementType          AgreementType `gorm:"default:funding_schedule"`
	RemoteCapitalProgramID *uuid.UUID    `gorm:"type:uuid"`

	DateSentToCouncil *time.Time
	DateCouncilSigned *time.Time
	DateDelegateSigned *time.Time
	ExecutedDate      *time.Time

	CreatedAt time.Time

	Council *Council `gorm:"foreignKey:CouncilID"`
	Program *Program `gorm:"foreignKey:ProgramID"`
}

func (FundingSchedule) TableName() string { return "funding_schedules" }

func (f *FundingSchedule) TotalFunding() decimal.Decimal {
	if f.ContingencyAmount != nil {
		return f.FundingAmount.Add(*f.ContingencyAmount)
	}
	return f.FundingAmount
}

// FillFirstPayment populates the first payment fields when they are blank.
// When the linked project carries a contingency percentage the first payment
// withholds that portion of the funding amount; otherwise it is defaultPct of
// funding (90% unless configured). Already-set fields are left alone.
func (f *FundingSchedule) FillFirstPayment(contingencyPercentage *decimal.Decimal, defaultPct decimal.Decimal, now time.Time) {
	if f.FundingAmount.IsZero() || f.FirstPaymentAmount != nil {
		return
	}

	var amount decimal.Decimal
	if contingencyPercentage != nil && !contingencyPercentage.IsZero() {
		amount = f.FundingAmount.Sub(f.FundingAmount.Mul(*contingencyPercentage))
	} else {
		amount = f.FundingAmount.Mul(defaultPct)
	}
	rounded := amount.Round(2)
	f.FirstPaymentAmount = &rounded

	if f.FirstReleaseDate == nil {
		release := now.AddDate(0, 0, 30)
		f.FirstReleaseDate = &release
	}
	if f.FirstReferenceNumber == nil {
		ref := fmt.Sprintf("FS-%d-001", f.FundingScheduleNumber)
		f.FirstReferenceNumber = &ref
	}
}

// FillExecutedDate derives the executed date as the later of the council and
// delegate signature dates.
func (f *FundingSchedule) FillExecutedDate() {
	f.ExecutedDate = executedDate(f.DateCouncilSigned, f.DateDelegateSigned)
}

func executedDate(councilSigned, delegateSigned *time.Time) *time.Time {
	switch {
	case councilSigned != nil && delegateSigned != nil:
		if delegateSigned.After(*councilSigned) {
			return delegateSigned
		}
		return councilSigned
	case councilSigned != nil:
		return councilSigned
	case delegateSigned != nil:
		return delegateSigned
	default:
		return nil
	}
}

// Instalment is a single disbursement under a funding schedule. Marking one
// paid (or giving it a release date) is what moves a prospective project to
// funded; that transition is applied explicitly by the lifecycle service.
type Instalment struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FundingScheduleID uuid.UUID `gorm:"type:uuid"`
	DueDate           time.Time
	Amount            decimal.Decimal `gorm:"type:numeric(15,2)"`
	Paid              bool
	ReleaseDate       *time.Time
	PaymentReference  *string
}

func (Instalment) TableName() string { return "instalments" }

// Released reports whether this instalment counts as disbursed.
func (i *Instalment) Released() bool {
	return i.Paid || i.ReleaseDate != nil
}

// FundingApproval records a MINCOR approval event against one or more
// projects, independent of any funding schedule.
type FundingApproval struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	MincorReference    string
	Amount             decimal.Decimal `gorm:"type:numeric(15,2)"`
	ApprovedByPosition string
	ApprovedDate       time.Time

	Projects []Project `gorm:"many2many:funding_approval_projects"`
}

func (FundingApproval) TableName() string { return "funding_approvals" }

// CouncilAgreement is a council-level program funding agreement. The kind
// distinguishes forward, interim forward and remote capital program
// agreements; each council holds at most one of each kind.
type CouncilAgreement struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CouncilID uuid.UUID     `gorm:"type:uuid"`
	Kind      AgreementType
	Notes     *string

	FundingAmount     decimal.Decimal  `gorm:"type:numeric(15,2)"`
	ContingencyAmount *decimal.Decimal `gorm:"type:numeric(15,2)"`

	DateSentToCouncil  *time.Time
	DateCouncilSigned  *time.Time
	DateDelegateSigned *time.Time
}

func (CouncilAgreement) TableName() string { return "council_agreements" }

func (a *CouncilAgreement) TotalFunding() decimal.Decimal {
	if a.ContingencyAmount != nil {
		return a.FundingAmount.Add(*a.ContingencyAmount)
	}
	return a.FundingAmount
}

func (a *CouncilAgreement) ExecutedDate() *time.Time {
	return executedDate(a.DateCouncilSigned, a.DateDelegateSigned)
}
