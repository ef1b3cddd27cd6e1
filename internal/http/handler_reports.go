package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/pdf"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

func (h *Handler) listQuarterly(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reports, err := h.reports.ListQuarterlyByWork(c.Request.Context(), principal, workID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

type submitQuarterlyRequest struct {
	SubmissionDate           *string `json:"submission_date"`
	PercentageWorksCompleted *string `json:"percentage_works_completed"`
	TotalExpenditureCouncil  *string `json:"total_expenditure_council"`
	ForecastCompletionDate   *string `json:"forecast_completion_date"`
	ActualCompletionDate     *string `json:"actual_completion_date"`
	AdverseMatters           *string `json:"adverse_matters"`
	CouncilContributions     *string `json:"council_contributions"`
	OtherContributions       *string `json:"other_contributions"`
	SummaryNotes             *string `json:"summary_notes"`
}

func (h *Handler) submitQuarterly(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req submitQuarterlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submissionDate, err := optDate(req.SubmissionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission_date"})
		return
	}
	percentage, err := optDecimal(req.PercentageWorksCompleted)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid percentage_works_completed"})
		return
	}
	expenditure, err := optDecimal(req.TotalExpenditureCouncil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid total_expenditure_council"})
		return
	}
	forecast, err := optDate(req.ForecastCompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forecast_completion_date"})
		return
	}
	actual, err := optDate(req.ActualCompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actual_completion_date"})
		return
	}
	councilContrib, err := optDecimal(req.CouncilContributions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid council_contributions"})
		return
	}
	otherContrib, err := optDecimal(req.OtherContributions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid other_contributions"})
		return
	}

	input := service.SubmitQuarterlyInput{
		WorkID:                   workID,
		PercentageWorksCompleted: percentage,
		TotalExpenditureCouncil:  expenditure,
		ForecastCompletionDate:   forecast,
		ActualCompletionDate:     actual,
		AdverseMatters:           req.AdverseMatters,
		CouncilContributions:     councilContrib,
		OtherContributions:       otherContrib,
		SummaryNotes:             req.SummaryNotes,
		Principal:                principal,
	}
	if submissionDate != nil {
		input.SubmissionDate = *submissionDate
	}

	report, err := h.reports.SubmitQuarterly(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *Handler) listTrackers(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	trackers, err := h.reports.ListTrackersByWork(c.Request.Context(), principal, workID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trackers": trackers})
}

type submitTrackerRequest struct {
	Month            string            `json:"month" binding:"required"`
	ProgressNotes    *string           `json:"progress_notes"`
	CopyFromPrevious bool              `json:"copy_from_previous"`
	Milestones       map[string]string `json:"milestones"`
}

// trackerMilestones maps wire milestone names to tracker date fields.
var trackerMilestones = map[string]func(t *model.MonthlyTracker, d *time.Time){
	"design_tender":                    func(t *model.MonthlyTracker, d *time.Time) { t.DesignTenderDate = d },
	"design_award":                     func(t *model.MonthlyTracker, d *time.Time) { t.DesignAwardDate = d },
	"construction_tender":              func(t *model.MonthlyTracker, d *time.Time) { t.ConstructionTenderDate = d },
	"construction_award":               func(t *model.MonthlyTracker, d *time.Time) { t.ConstructionAwardDate = d },
	"ergon_connection_application":     func(t *model.MonthlyTracker, d *time.Time) { t.ErgonConnectionApplicationDate = d },
	"ergon_connection":                 func(t *model.MonthlyTracker, d *time.Time) { t.ErgonConnectionDate = d },
	"site_establishment":               func(t *model.MonthlyTracker, d *time.Time) { t.SiteEstablishmentDate = d },
	"earthworks":                       func(t *model.MonthlyTracker, d *time.Time) { t.EarthworksDate = d },
	"slab":                             func(t *model.MonthlyTracker, d *time.Time) { t.SlabDate = d },
	"underground_services":             func(t *model.MonthlyTracker, d *time.Time) { t.UndergroundServicesDate = d },
	"termite_prevention":               func(t *model.MonthlyTracker, d *time.Time) { t.TermitePreventionDate = d },
	"sub_floor_framing_concrete":       func(t *model.MonthlyTracker, d *time.Time) { t.SubFloorFramingConcreteDate = d },
	"end_of_year_shutdown":             func(t *model.MonthlyTracker, d *time.Time) { t.EndOfYearShutdown = d },
	"wall_frames_masonry":              func(t *model.MonthlyTracker, d *time.Time) { t.WallFramesMasonryDate = d },
	"roof_framing_battens":             func(t *model.MonthlyTracker, d *time.Time) { t.RoofFramingBattensDate = d },
	"roof_sheeting":                    func(t *model.MonthlyTracker, d *time.Time) { t.RoofSheetingDate = d },
	"fascia_gutter":                    func(t *model.MonthlyTracker, d *time.Time) { t.FasciaGutterDate = d },
	"soffit_linings_gables":            func(t *model.MonthlyTracker, d *time.Time) { t.SoffitLiningsGablesDate = d },
	"plumbing_electrical_rough_in":     func(t *model.MonthlyTracker, d *time.Time) { t.PlumbingElectricalRoughInDate = d },
	"internal_wall_ceiling_linings":    func(t *model.MonthlyTracker, d *time.Time) { t.InternalWallCeilingLiningsDate = d },
	"internal_floor_coverings":         func(t *model.MonthlyTracker, d *time.Time) { t.InternalFloorCoveringsDate = d },
	"carpentry_2nd_fix":                func(t *model.MonthlyTracker, d *time.Time) { t.Carpentry2ndFixDate = d },
	"wet_area_wall_linings":            func(t *model.MonthlyTracker, d *time.Time) { t.WetAreaWallLiningsDate = d },
	"joinery_install":                  func(t *model.MonthlyTracker, d *time.Time) { t.JoineryInstallDate = d },
	"internal_painting":                func(t *model.MonthlyTracker, d *time.Time) { t.InternalPaintingDate = d },
	"external_doors_windows":           func(t *model.MonthlyTracker, d *time.Time) { t.ExternalDoorsWindowsDate = d },
	"external_decks_stairs_balustrade": func(t *model.MonthlyTracker, d *time.Time) { t.ExternalDecksStairsBalustradeDate = d },
	"waterproofing":                    func(t *model.MonthlyTracker, d *time.Time) { t.WaterproofingDate = d },
	"external_painting":                func(t *model.MonthlyTracker, d *time.Time) { t.ExternalPaintingDate = d },
	"electrical_fit_off":               func(t *model.MonthlyTracker, d *time.Time) { t.ElectricalFitOffDate = d },
	"plumbing_fit_off":                 func(t *model.MonthlyTracker, d *time.Time) { t.PlumbingFitOffDate = d },
	"carpentry_3rd_fix":                func(t *model.MonthlyTracker, d *time.Time) { t.Carpentry3rdFixDate = d },
	"fencing_gates":                    func(t *model.MonthlyTracker, d *time.Time) { t.FencingGatesDate = d },
	"clothesline":                      func(t *model.MonthlyTracker, d *time.Time) { t.ClotheslineDate = d },
	"driveway_paths":                   func(t *model.MonthlyTracker, d *time.Time) { t.DrivewayPathsDate = d },
	"shed":                             func(t *model.MonthlyTracker, d *time.Time) { t.ShedDate = d },
	"site_clean":                       func(t *model.MonthlyTracker, d *time.Time) { t.SiteCleanDate = d },
	"final_internal_clean_handover":    func(t *model.MonthlyTracker, d *time.Time) { t.FinalInternalCleanHandoverDate = d },
}

func (h *Handler) submitTracker(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req submitTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	month, err := parseDate(req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	milestones := make(map[string]*time.Time, len(req.Milestones))
	for name, raw := range req.Milestones {
		if _, known := trackerMilestones[name]; !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown milestone " + name})
			return
		}
		date, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date for milestone " + name})
			return
		}
		milestones[name] = &date
	}

	tracker, err := h.reports.SubmitTracker(c.Request.Context(), service.SubmitTrackerInput{
		WorkID:           workID,
		Month:            month,
		ProgressNotes:    req.ProgressNotes,
		CopyFromPrevious: req.CopyFromPrevious,
		Apply: func(tracker *model.MonthlyTracker) {
			for name, date := range milestones {
				trackerMilestones[name](tracker, date)
			}
		},
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tracker)
}

type managerDecisionRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Comments *string `json:"comments"`
}

func parseDecision(raw string) (model.ManagerDecision, bool) {
	switch model.ManagerDecision(raw) {
	case model.DecisionPending, model.DecisionApproved, model.DecisionRejected:
		return model.ManagerDecision(raw), true
	}
	return "", false
}

func (h *Handler) decideQuarterlyAsCouncilManager(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	reportID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req managerDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	decision, ok := parseDecision(req.Decision)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid decision"})
		return
	}

	report, err := h.reports.DecideQuarterlyAsCouncilManager(c.Request.Context(), service.QuarterlyDecisionInput{
		ReportID:  reportID,
		Decision:  decision,
		Comments:  req.Comments,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type quarterlyReviewRequest struct {
	Decision        *string `json:"decision"`
	Comments        *string `json:"comments"`
	AssessmentNotes *string `json:"assessment_notes"`
}

func (h *Handler) reviewQuarterly(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	reportID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req quarterlyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision := model.DecisionPending
	if req.Decision != nil {
		parsed, ok := parseDecision(*req.Decision)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid decision"})
			return
		}
		decision = parsed
	}

	report, err := h.reports.ReviewQuarterly(c.Request.Context(), service.QuarterlyReviewInput{
		ReportID:        reportID,
		Decision:        decision,
		Comments:        req.Comments,
		AssessmentNotes: req.AssessmentNotes,
		Principal:       principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type stage1SubmitRequest struct {
	ReportType string `json:"report_type"`

	ExpenditureRecordsMaintained bool `json:"expenditure_records_maintained"`
	QuarterlyReportsProvided     bool `json:"quarterly_reports_provided"`

	NativeTitleAddressed     bool `json:"native_title_addressed"`
	HeritageMattersAddressed bool `json:"heritage_matters_addressed"`

	DevelopmentApprovalObtained bool `json:"development_approval_obtained"`
	TenureObtained              bool `json:"tenure_obtained"`
	LandSurveyed                bool `json:"land_surveyed"`

	SubdivisionRequired     bool `json:"subdivision_required"`
	SubdivisionPlanPrepared bool `json:"subdivision_plan_prepared"`

	DesignApproved                  bool    `json:"design_approved"`
	StructuralCertificationObtained bool    `json:"structural_certification_obtained"`
	CouncilContractorsUsed          bool    `json:"council_contractors_used"`
	InfrastructureApprovalsObtained bool    `json:"infrastructure_approvals_obtained"`
	BuildingApprovalObtained        bool    `json:"building_approval_obtained"`
	TendersCalled                   bool    `json:"tenders_called"`
	ContractorAppointed             bool    `json:"contractor_appointed"`
	ContractorDetails               *string `json:"contractor_details"`

	CompletionNotes *string `json:"completion_notes"`
}

func (h *Handler) submitStage1(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req stage1SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reports.SubmitStage1(c.Request.Context(), service.SubmitStage1Input{
		ProjectID:  projectID,
		ReportType: model.ReportType(req.ReportType),
		Apply: func(report *model.Stage1Report) {
			report.ExpenditureRecordsMaintained = req.ExpenditureRecordsMaintained
			report.QuarterlyReportsProvided = req.QuarterlyReportsProvided
			report.NativeTitleAddressed = req.NativeTitleAddressed
			report.HeritageMattersAddressed = req.HeritageMattersAddressed
			report.DevelopmentApprovalObtained = req.DevelopmentApprovalObtained
			report.TenureObtained = req.TenureObtained
			report.LandSurveyed = req.LandSurveyed
			report.SubdivisionRequired = req.SubdivisionRequired
			report.SubdivisionPlanPrepared = req.SubdivisionPlanPrepared
			report.DesignApproved = req.DesignApproved
			report.StructuralCertificationObtained = req.StructuralCertificationObtained
			report.CouncilContractorsUsed = req.CouncilContractorsUsed
			report.InfrastructureApprovalsObtained = req.InfrastructureApprovalsObtained
			report.BuildingApprovalObtained = req.BuildingApprovalObtained
			report.TendersCalled = req.TendersCalled
			report.ContractorAppointed = req.ContractorAppointed
			report.ContractorDetails = req.ContractorDetails
			report.CompletionNotes = req.CompletionNotes
		},
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

type stage2SubmitRequest struct {
	ReportType string `json:"report_type"`

	ScheduleProvided     bool    `json:"schedule_provided"`
	ScheduleProvidedDate *string `json:"schedule_provided_date"`

	QuarterlyReportsProvided bool `json:"quarterly_reports_provided"`
	MonthlyTrackersProvided  bool `json:"monthly_trackers_provided"`

	PracticalCompletionAchieved         bool    `json:"practical_completion_achieved"`
	PracticalCompletionDate             *string `json:"practical_completion_date"`
	PracticalCompletionNotificationSent bool    `json:"practical_completion_notification_sent"`
	NotificationDate                    *string `json:"notification_date"`

	LandWorksCompleted bool `json:"land_works_completed"`

	HandoverRequirementsMet    bool `json:"handover_requirements_met"`
	HandoverChecklistCompleted bool `json:"handover_checklist_completed"`

	WarrantiesProvided bool `json:"warranties_provided"`
	FinalPlansProvided bool `json:"final_plans_provided"`

	JointInspectionCompleted bool    `json:"joint_inspection_completed"`
	JointInspectionDate      *string `json:"joint_inspection_date"`

	CompletionNotes *string `json:"completion_notes"`
}

func (h *Handler) submitStage2(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req stage2SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduleDate, err := optDate(req.ScheduleProvidedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule_provided_date"})
		return
	}
	pcDate, err := optDate(req.PracticalCompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid practical_completion_date"})
		return
	}
	notificationDate, err := optDate(req.NotificationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification_date"})
		return
	}
	inspectionDate, err := optDate(req.JointInspectionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joint_inspection_date"})
		return
	}

	report, err := h.reports.SubmitStage2(c.Request.Context(), service.SubmitStage2Input{
		ProjectID:  projectID,
		ReportType: model.ReportType(req.ReportType),
		Apply: func(report *model.Stage2Report) {
			report.ScheduleProvided = req.ScheduleProvided
			report.ScheduleProvidedDate = scheduleDate
			report.QuarterlyReportsProvided = req.QuarterlyReportsProvided
			report.MonthlyTrackersProvided = req.MonthlyTrackersProvided
			report.PracticalCompletionAchieved = req.PracticalCompletionAchieved
			report.PracticalCompletionDate = pcDate
			report.PracticalCompletionNotificationSent = req.PracticalCompletionNotificationSent
			report.NotificationDate = notificationDate
			report.LandWorksCompleted = req.LandWorksCompleted
			report.HandoverRequirementsMet = req.HandoverRequirementsMet
			report.HandoverChecklistCompleted = req.HandoverChecklistCompleted
			report.WarrantiesProvided = req.WarrantiesProvided
			report.FinalPlansProvided = req.FinalPlansProvided
			report.JointInspectionCompleted = req.JointInspectionCompleted
			report.JointInspectionDate = inspectionDate
			report.CompletionNotes = req.CompletionNotes
		},
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

type stageReviewRequest struct {
	Status   string  `json:"status" binding:"required"`
	Comments *string `json:"comments"`
}

func parseReviewStatus(raw string) (model.ReviewStatus, bool) {
	switch model.ReviewStatus(raw) {
	case model.ReviewPending, model.ReviewAccepted, model.ReviewRejected, model.ReviewNeedsMoreInfo:
		return model.ReviewStatus(raw), true
	}
	return "", false
}

func (h *Handler) reviewStage1(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	reportID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req stageReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, ok := parseReviewStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	result, err := h.reports.ReviewStage1(c.Request.Context(), service.StageReviewInput{
		ReportID:  reportID,
		Status:    status,
		Comments:  req.Comments,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stageReviewResponse(result))
}

func (h *Handler) reviewStage2(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	reportID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req stageReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, ok := parseReviewStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	result, err := h.reports.ReviewStage2(c.Request.Context(), service.StageReviewInput{
		ReportID:  reportID,
		Status:    status,
		Comments:  req.Comments,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stageReviewResponse(result))
}

func stageReviewResponse(result *service.StageReviewResult) gin.H {
	response := gin.H{
		"project_id": result.Project.ID,
		"state":      result.Project.State,
	}
	if result.Stage1 != nil {
		response["report"] = result.Stage1
	}
	if result.Stage2 != nil {
		response["report"] = result.Stage2
	}
	if result.PaymentDue != nil {
		response["payment_due"] = result.PaymentDue.StringFixed(2)
	}
	return response
}

func (h *Handler) stage1PaymentAdvice(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	reportID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	report, project, err := h.reports.GetStage1(c.Request.Context(), principal, reportID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if report.RICDStatus != model.ReviewAccepted || project.FundingSchedule == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no payment due for this report"})
		return
	}

	advice := paymentAdviceFor(project, 1, model.Stage1PaymentDue(project.FundingSchedule.FundingAmount))
	if report.AcceptanceDate != nil {
		advice.AcceptanceDate = *report.AcceptanceDate
	}
	h.renderPaymentAdvice(c, advice)
}

func (h *Handler) stage2PaymentAdvice(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	reportID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	report, project, err := h.reports.GetStage2(c.Request.Context(), principal, reportID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if report.RICDStatus != model.ReviewAccepted || !report.PracticalCompletionAchieved || project.FundingSchedule == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no payment due for this report"})
		return
	}

	advice := paymentAdviceFor(project, 2, model.Stage2PaymentDue(project.FundingSchedule.FundingAmount))
	if report.AcceptanceDate != nil {
		advice.AcceptanceDate = *report.AcceptanceDate
	}
	h.renderPaymentAdvice(c, advice)
}

func paymentAdviceFor(project *model.Project, stage int, amount decimal.Decimal) pdf.PaymentAdvice {
	advice := pdf.PaymentAdvice{
		ProjectName:    project.Name,
		ScheduleNumber: project.FundingSchedule.FundingScheduleNumber,
		Stage:          stage,
		Amount:         amount,
	}
	if project.Council != nil {
		advice.CouncilName = project.Council.Name
	}
	if project.Program != nil {
		advice.ProgramName = project.Program.Name
	}
	if project.FundingSchedule.FirstReferenceNumber != nil {
		advice.Reference = *project.FundingSchedule.FirstReferenceNumber
	}
	if project.PrincipalOfficer != nil {
		advice.OfficerName = *project.PrincipalOfficer
	}
	return advice
}

func (h *Handler) renderPaymentAdvice(c *gin.Context, advice pdf.PaymentAdvice) {
	data, err := h.pdf.PaymentAdvice(advice)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payment-advice.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

type attachmentRequest struct {
	QuarterlyReportID *string `json:"quarterly_report_id"`
	MonthlyTrackerID  *string `json:"monthly_tracker_id"`
	Stage1ReportID    *string `json:"stage1_report_id"`
	Stage2ReportID    *string `json:"stage2_report_id"`
	Name              string  `json:"name" binding:"required"`
	FilePath          string  `json:"file_path" binding:"required"`
	Description       *string `json:"description"`
}

func (h *Handler) addAttachment(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req attachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quarterlyID, err := optUUID(req.QuarterlyReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quarterly_report_id"})
		return
	}
	trackerID, err := optUUID(req.MonthlyTrackerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid monthly_tracker_id"})
		return
	}
	stage1ID, err := optUUID(req.Stage1ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage1_report_id"})
		return
	}
	stage2ID, err := optUUID(req.Stage2ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage2_report_id"})
		return
	}

	attachment, err := h.reports.AddAttachment(c.Request.Context(), service.AttachmentInput{
		QuarterlyReportID: quarterlyID,
		MonthlyTrackerID:  trackerID,
		Stage1ReportID:    stage1ID,
		Stage2ReportID:    stage2ID,
		Name:              req.Name,
		FilePath:          req.FilePath,
		Description:       req.Description,
		Principal:         principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

type stepCompletionRequest struct {
	Stage1ReportID *string `json:"stage1_report_id"`
	Stage2ReportID *string `json:"stage2_report_id"`
	StepID         string  `json:"step_id" binding:"required"`
	Completed      bool    `json:"completed"`
	CompletedDate  *string `json:"completed_date"`
	EvidenceNotes  *string `json:"evidence_notes"`
	DocumentPath   *string `json:"document_path"`
}

func (h *Handler) saveStepCompletion(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req stepCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stepID, err := uuid.Parse(req.StepID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step_id"})
		return
	}
	stage1ID, err := optUUID(req.Stage1ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage1_report_id"})
		return
	}
	stage2ID, err := optUUID(req.Stage2ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage2_report_id"})
		return
	}
	completedDate, err := optDate(req.CompletedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid completed_date"})
		return
	}

	completion, err := h.reports.SaveStepCompletion(c.Request.Context(), service.StepCompletionInput{
		Stage1ReportID: stage1ID,
		Stage2ReportID: stage2ID,
		StepID:         stepID,
		Completed:      req.Completed,
		CompletedDate:  completedDate,
		EvidenceNotes:  req.EvidenceNotes,
		DocumentPath:   req.DocumentPath,
		Principal:      principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, completion)
}

type councilReportRequest struct {
	Period   string  `json:"period" binding:"required"`
	Comments *string `json:"comments"`
}

func (h *Handler) submitMonthlyReport(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req councilReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	period, err := parseDate(req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	report, err := h.reports.SubmitMonthlyReport(c.Request.Context(), service.SubmitCouncilReportInput{
		CouncilID: councilID,
		Period:    period,
		Comments:  req.Comments,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *Handler) submitCouncilQuarterly(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req councilReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	period, err := parseDate(req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	report, err := h.reports.SubmitCouncilQuarterly(c.Request.Context(), service.SubmitCouncilReportInput{
		CouncilID: councilID,
		Period:    period,
		Comments:  req.Comments,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
