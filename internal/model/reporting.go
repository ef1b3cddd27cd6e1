package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewStatus is the RICD review sub-status carried by every periodic and
// stage report, independent of the project's own lifecycle state.
type ReviewStatus string

const (
	ReviewPending       ReviewStatus = "pending"
	ReviewAccepted      ReviewStatus = "accepted"
	ReviewRejected      ReviewStatus = "rejected"
	ReviewNeedsMoreInfo ReviewStatus = "needs_more_info"
)

// ManagerDecision is the council-manager (or RICD-manager) approval applied
// on top of a report before RICD review.
type ManagerDecision string

const (
	DecisionPending  ManagerDecision = "pending"
	DecisionApproved ManagerDecision = "approved"
	DecisionRejected ManagerDecision = "rejected"
)

type ReportType string

const (
	ReportConstruction ReportType = "construction"
	ReportLand         ReportType = "land"
)

// QuarterLabel derives the display quarter ("Jan-Mar 2024") from a date.
func QuarterLabel(date time.Time) string {
	year := date.Year()
	switch {
	case date.Month() <= 3:
		return fmt.Sprintf("Jan-Mar %d", year)
	case date.Month() <= 6:
		return fmt.Sprintf("Apr-Jun %d", year)
	case date.Month() <= 9:
		return fmt.Sprintf("Jul-Sep %d", year)
	default:
		return fmt.Sprintf("Oct-Dec %d", year)
	}
}

// QuarterlyReport is a council's quarterly progress submission for one work.
type QuarterlyReport struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkID         uuid.UUID `gorm:"type:uuid"`
	Quarter        string
	SubmissionDate time.Time

	PercentageWorksCompleted *decimal.Decimal `gorm:"type:numeric(5,2)"`
	TotalExpenditureCouncil  *decimal.Decimal `gorm:"type:numeric(15,2)"`
	UnspentFundingAmount     *decimal.Decimal `gorm:"type:numeric(15,2)"`

	PracticalCompletionForecastDate *time.Time
	PracticalCompletionActualDate   *time.Time

	AdverseMatters              *string
	CouncilContributionsDetails *string
	OtherContributionsDetails   *string
	CouncilContributionsAmount  *decimal.Decimal `gorm:"type:numeric(15,2)"`
	OtherContributionsAmount    *decimal.Decimal `gorm:"type:numeric(15,2)"`
	SummaryNotes                *string

	StaffAssessmentNotes *string
	StaffAssessedDate    *time.Time

	CouncilManagerDecision     ManagerDecision `gorm:"default:pending"`
	CouncilManagerComments     *string
	CouncilManagerDecisionDate *time.Time

	ManagerDecision     ManagerDecision `gorm:"default:pending"`
	ManagerComments     *string
	ManagerDecisionDate *time.Time

	Work *Work `gorm:"foreignKey:WorkID"`
}

func (QuarterlyReport) TableName() string { return "quarterly_reports" }

// FillQuarter sets the quarter label from the submission date unless it was
// supplied explicitly.
func (q *QuarterlyReport) FillQuarter() {
	if q.Quarter != "" {
		return
	}
	date := q.SubmissionDate
	if date.IsZero() {
		date = time.Now()
	}
	q.Quarter = QuarterLabel(date)
}

func (q *QuarterlyReport) TotalContributions() decimal.Decimal {
	total := decimal.Zero
	if q.CouncilContributionsAmount != nil {
		total = total.Add(*q.CouncilContributionsAmount)
	}
	if q.OtherContributionsAmount != nil {
		total = total.Add(*q.OtherContributionsAmount)
	}
	return total
}

// UnspentFunding is the work's estimated cost less reported expenditure, nil
// when either side is unknown.
func (q *QuarterlyReport) UnspentFunding() *decimal.Decimal {
	if q.Work == nil || q.Work.EstimatedCost == nil || q.TotalExpenditureCouncil == nil {
		return nil
	}
	v := q.Work.EstimatedCost.Sub(*q.TotalExpenditureCouncil)
	return &v
}

// Stage1PaymentDue is the 60% progress payment implied by an accepted stage 1
// report. Exposed for review; disbursement stays a manual instalment entry.
func Stage1PaymentDue(fundingAmount decimal.Decimal) decimal.Decimal {
	return fundingAmount.Mul(decimal.NewFromFloat(0.6)).Round(2)
}

// Stage2PaymentDue is the 10% final payment implied by an accepted stage 2
// report with practical completion achieved.
func Stage2PaymentDue(fundingAmount decimal.Decimal) decimal.Decimal {
	return fundingAmount.Mul(decimal.NewFromFloat(0.1)).Round(2)
}

// MonthlyTracker is a council's monthly construction milestone submission for
// one work. Every milestone is an optional date; councils fill them in as the
// build progresses, usually copying forward from the previous month.
type MonthlyTracker struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkID        uuid.UUID `gorm:"type:uuid"`
	Month         time.Time
	ProgressNotes *string

	DesignTenderDate       *time.Time
	DesignAwardDate        *time.Time
	ConstructionTenderDate *time.Time
	ConstructionAwardDate  *time.Time

	ErgonConnectionApplicationDate *time.Time
	ErgonConnectionDate            *time.Time

	SiteEstablishmentDate   *time.Time
	EarthworksDate          *time.Time
	SlabDate                *time.Time
	UndergroundServicesDate *time.Time

	TermitePreventionDate       *time.Time
	SubFloorFramingConcreteDate *time.Time
	EndOfYearShutdown           *time.Time
	WallFramesMasonryDate       *time.Time

	RoofFramingBattensDate  *time.Time
	RoofSheetingDate        *time.Time
	FasciaGutterDate        *time.Time
	SoffitLiningsGablesDate *time.Time

	PlumbingElectricalRoughInDate *time.Time

	InternalWallCeilingLiningsDate *time.Time
	InternalFloorCoveringsDate     *time.Time
	Carpentry2ndFixDate            *time.Time `gorm:"column:carpentry_2nd_fix_date"`
	WetAreaWallLiningsDate         *time.Time
	JoineryInstallDate             *time.Time
	InternalPaintingDate           *time.Time

	ExternalDoorsWindowsDate         *time.Time
	ExternalDecksStairsBalustradeDate *time.Time
	WaterproofingDate                *time.Time
	ExternalPaintingDate             *time.Time
	ElectricalFitOffDate             *time.Time
	PlumbingFitOffDate               *time.Time
	Carpentry3rdFixDate              *time.Time `gorm:"column:carpentry_3rd_fix_date"`

	FencingGatesDate              *time.Time
	ClotheslineDate               *time.Time
	DrivewayPathsDate             *time.Time
	ShedDate                      *time.Time
	SiteCleanDate                 *time.Time
	FinalInternalCleanHandoverDate *time.Time

	Work *Work `gorm:"foreignKey:WorkID"`
}

func (MonthlyTracker) TableName() string { return "monthly_trackers" }

func (m *MonthlyTracker) MonthDisplay() string {
	return m.Month.Format("January 2006")
}

// CopyMilestonesFrom carries the previous month's milestone dates into this
// tracker so councils only record what changed.
func (m *MonthlyTracker) CopyMilestonesFrom(prev *MonthlyTracker) {
	id, workID, month, notes := m.ID, m.WorkID, m.Month, m.ProgressNotes
	*m = *prev
	m.ID, m.WorkID, m.Month, m.ProgressNotes = id, workID, month, notes
}

// MonthlyReport is the council-level monthly compliance submission, one per
// council and calendar month.
type MonthlyReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouncilID       uuid.UUID `gorm:"type:uuid"`
	Period          time.Time
	CouncilComments *string

	CouncilManagerDecision     ManagerDecision `gorm:"default:pending"`
	CouncilManagerComments     *string
	CouncilManagerDecisionDate *time.Time

	RICDStatus   ReviewStatus `gorm:"column:ricd_status;default:needs_more_info"`
	RICDComments *string      `gorm:"column:ricd_comments"`
}

func (MonthlyReport) TableName() string { return "monthly_reports" }

// CouncilQuarterlyReport is the council-level quarterly submission, one per
// council and quarter (period is the first day of the quarter).
type CouncilQuarterlyReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouncilID       uuid.UUID `gorm:"type:uuid"`
	Period          time.Time
	CouncilComments *string

	RICDStatus   ReviewStatus `gorm:"column:ricd_status;default:needs_more_info"`
	RICDComments *string      `gorm:"column:ricd_comments"`
}

func (CouncilQuarterlyReport) TableName() string { return "council_quarterly_reports" }

// Stage1Report is the land-acquisition and approvals-readiness checklist for
// a project. Acceptance by RICD commences the project.
type Stage1Report struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID      uuid.UUID `gorm:"type:uuid"`
	SubmissionDate time.Time
	ReportType     ReportType `gorm:"default:construction"`

	ExpenditureRecordsMaintained bool
	QuarterlyReportsProvided     bool

	NativeTitleAddressed    bool
	HeritageMattersAddressed bool

	DevelopmentApprovalObtained bool
	TenureObtained              bool
	LandSurveyed                bool

	SubdivisionRequired     bool
	SubdivisionPlanPrepared bool

	DesignApproved                   bool
	StructuralCertificationObtained  bool
	CouncilContractorsUsed           bool
	InfrastructureApprovalsObtained  bool
	BuildingApprovalObtained         bool
	TendersCalled                    bool
	ContractorAppointed              bool
	ContractorDetails                *string

	CompletionNotes *string

	RICDStatus     ReviewStatus `gorm:"column:ricd_status;default:pending"`
	RICDComments   *string      `gorm:"column:ricd_comments"`
	AcceptanceDate *time.Time

	Attachments []ReportAttachment `gorm:"foreignKey:Stage1ReportID"`
}

func (Stage1Report) TableName() string { return "stage1_reports" }

// IsComplete reports whether every requirement relevant to the report type is
// met. Land reports skip the design, tender and building-approval items.
func (r *Stage1Report) IsComplete() bool {
	required := []bool{
		r.ExpenditureRecordsMaintained,
		r.QuarterlyReportsProvided,
		r.NativeTitleAddressed,
		r.HeritageMattersAddressed,
		r.DevelopmentApprovalObtained,
		r.TenureObtained,
		r.LandSurveyed,
	}
	if r.SubdivisionRequired {
		required = append(required, r.SubdivisionPlanPrepared)
	}
	if r.ReportType == ReportConstruction {
		required = append(required,
			r.DesignApproved,
			r.StructuralCertificationObtained,
			r.InfrastructureApprovalsObtained,
			r.BuildingApprovalObtained,
			r.TendersCalled,
			r.ContractorAppointed,
		)
	}
	for _, met := range required {
		if !met {
			return false
		}
	}
	return true
}

// Stage2Report is the practical-completion and handover checklist for a
// project. Acceptance by RICD completes the project; submission without
// acceptance marks it under construction.
type Stage2Report struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID      uuid.UUID `gorm:"type:uuid"`
	SubmissionDate time.Time
	ReportType     ReportType `gorm:"default:construction"`

	ScheduleProvided     bool
	ScheduleProvidedDate *time.Time

	QuarterlyReportsProvided bool
	MonthlyTrackersProvided  bool

	PracticalCompletionAchieved         bool
	PracticalCompletionDate             *time.Time
	PracticalCompletionNotificationSent bool
	NotificationDate                    *time.Time

	LandWorksCompleted bool

	HandoverRequirementsMet    bool
	HandoverChecklistCompleted bool

	WarrantiesProvided bool
	FinalPlansProvided bool

	JointInspectionCompleted bool
	JointInspectionDate      *time.Time

	CompletionNotes *string

	CouncilManagerDecision ManagerDecision `gorm:"default:pending"`
	CouncilManagerComments *string

	RICDStatus     ReviewStatus `gorm:"column:ricd_status;default:pending"`
	RICDComments   *string      `gorm:"column:ricd_comments"`
	AcceptanceDate *time.Time

	Attachments []ReportAttachment `gorm:"foreignKey:Stage2ReportID"`
}

func (Stage2Report) TableName() string { return "stage2_reports" }

func (r *Stage2Report) IsComplete() bool {
	required := []bool{
		r.ScheduleProvided,
		r.QuarterlyReportsProvided,
	}
	if r.ReportType == ReportLand {
		required = append(required, r.LandWorksCompleted)
	} else {
		required = append(required,
			r.MonthlyTrackersProvided,
			r.PracticalCompletionAchieved,
			r.PracticalCompletionNotificationSent,
			r.HandoverRequirementsMet,
			r.HandoverChecklistCompleted,
			r.WarrantiesProvided,
			r.FinalPlansProvided,
			r.JointInspectionCompleted,
		)
	}
	for _, met := range required {
		if !met {
			return false
		}
	}
	return true
}

// StageStep is a configurable checklist item for stage reports; the stage
// column distinguishes stage 1 from stage 2 items.
type StageStep struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Stage               int
	Name                string
	Description         *string
	RequiredEvidence    *string
	DocumentRequired    bool
	DocumentDescription *string
	Order               int  `gorm:"column:step_order"`
	IsActive            bool `gorm:"default:true"`
}

func (StageStep) TableName() string { return "stage_steps" }

// StageStepCompletion records a single step's completion inside a stage
// report. A completion date and the completed flag must agree.
type StageStepCompletion struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Stage1ReportID *uuid.UUID `gorm:"type:uuid"`
	Stage2ReportID *uuid.UUID `gorm:"type:uuid"`
	StepID         uuid.UUID  `gorm:"type:uuid"`
	Completed      bool
	CompletedDate  *time.Time
	EvidenceNotes  *string
	DocumentPath   *string

	Step *StageStep `gorm:"foreignKey:StepID"`
}

func (StageStepCompletion) TableName() string { return "stage_step_completions" }

// ReportAttachment is an opaque supporting document stored by path and linked
// to exactly one report.
type ReportAttachment struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	QuarterlyReportID *uuid.UUID `gorm:"type:uuid"`
	MonthlyTrackerID  *uuid.UUID `gorm:"type:uuid"`
	Stage1ReportID    *uuid.UUID `gorm:"type:uuid"`
	Stage2ReportID    *uuid.UUID `gorm:"type:uuid"`

	Name        string
	FilePath    string
	Description *string
	UploadDate  time.Time
}

func (ReportAttachment) TableName() string { return "report_attachments" }
