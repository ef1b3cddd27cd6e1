package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

func (h *Handler) listSchedules(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	schedules, err := h.funding.ListSchedules(c.Request.Context(), principal, councilID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

type createScheduleRequest struct {
	ProgramID         string   `json:"program_id" binding:"required"`
	FundingAmount     string   `json:"funding_amount" binding:"required"`
	ContingencyAmount *string  `json:"contingency_amount"`
	AgreementType     string   `json:"agreement_type"`
	ProjectIDs        []string `json:"project_ids"`
}

func (h *Handler) createSchedule(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program_id"})
		return
	}
	fundingAmount, err := decimal.NewFromString(req.FundingAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid funding_amount"})
		return
	}
	contingencyAmount, err := optDecimal(req.ContingencyAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contingency_amount"})
		return
	}
	projectIDs := make([]uuid.UUID, 0, len(req.ProjectIDs))
	for _, raw := range req.ProjectIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id " + raw})
			return
		}
		projectIDs = append(projectIDs, id)
	}

	schedule, err := h.funding.CreateSchedule(c.Request.Context(), service.CreateScheduleInput{
		CouncilID:         councilID,
		ProgramID:         programID,
		FundingAmount:     fundingAmount,
		ContingencyAmount: contingencyAmount,
		AgreementType:     model.AgreementType(req.AgreementType),
		ProjectIDs:        projectIDs,
		Principal:         principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

type signaturesRequest struct {
	DateSentToCouncil  *string `json:"date_sent_to_council"`
	DateCouncilSigned  *string `json:"date_council_signed"`
	DateDelegateSigned *string `json:"date_delegate_signed"`
}

func (h *Handler) recordSignatures(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	scheduleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req signaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sent, err := optDate(req.DateSentToCouncil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_sent_to_council"})
		return
	}
	councilSigned, err := optDate(req.DateCouncilSigned)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_council_signed"})
		return
	}
	delegateSigned, err := optDate(req.DateDelegateSigned)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_delegate_signed"})
		return
	}

	schedule, err := h.funding.RecordSignatures(c.Request.Context(), service.SignScheduleInput{
		ScheduleID:         scheduleID,
		DateSentToCouncil:  sent,
		DateCouncilSigned:  councilSigned,
		DateDelegateSigned: delegateSigned,
		Principal:          principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *Handler) listInstalments(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	scheduleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	instalments, err := h.funding.ListInstalments(c.Request.Context(), principal, scheduleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instalments": instalments})
}

type addInstalmentRequest struct {
	DueDate string `json:"due_date" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

func (h *Handler) addInstalment(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	scheduleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req addInstalmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	instalment, err := h.funding.AddInstalment(c.Request.Context(), service.AddInstalmentInput{
		ScheduleID: scheduleID,
		DueDate:    dueDate,
		Amount:     amount,
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, instalment)
}

type releaseInstalmentRequest struct {
	ReleaseDate      *string `json:"release_date"`
	PaymentReference *string `json:"payment_reference"`
}

func (h *Handler) releaseInstalment(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	instalmentID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req releaseInstalmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	releaseDate, err := optDate(req.ReleaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid release_date"})
		return
	}

	instalment, err := h.funding.ReleaseInstalment(c.Request.Context(), service.ReleaseInstalmentInput{
		InstalmentID:     instalmentID,
		ReleaseDate:      releaseDate,
		PaymentReference: req.PaymentReference,
		Principal:        principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, instalment)
}

type createApprovalRequest struct {
	MincorReference    string   `json:"mincor_reference" binding:"required"`
	Amount             string   `json:"amount" binding:"required"`
	ApprovedByPosition string   `json:"approved_by_position" binding:"required"`
	ApprovedDate       string   `json:"approved_date" binding:"required"`
	ProjectIDs         []string `json:"project_ids" binding:"required"`
}

func (h *Handler) createApproval(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req createApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	approvedDate, err := parseDate(req.ApprovedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid approved_date"})
		return
	}
	projectIDs := make([]uuid.UUID, 0, len(req.ProjectIDs))
	for _, raw := range req.ProjectIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id " + raw})
			return
		}
		projectIDs = append(projectIDs, id)
	}

	approval, err := h.funding.CreateApproval(c.Request.Context(), service.CreateApprovalInput{
		MincorReference:    req.MincorReference,
		Amount:             amount,
		ApprovedByPosition: req.ApprovedByPosition,
		ApprovedDate:       approvedDate,
		ProjectIDs:         projectIDs,
		Principal:          principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, approval)
}

func (h *Handler) listAgreements(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	agreements, err := h.funding.ListAgreements(c.Request.Context(), principal, councilID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agreements": agreements})
}

type saveAgreementRequest struct {
	Kind               string  `json:"kind" binding:"required"`
	Notes              *string `json:"notes"`
	FundingAmount      *string `json:"funding_amount"`
	ContingencyAmount  *string `json:"contingency_amount"`
	DateSentToCouncil  *string `json:"date_sent_to_council"`
	DateCouncilSigned  *string `json:"date_council_signed"`
	DateDelegateSigned *string `json:"date_delegate_signed"`
}

func (h *Handler) saveAgreement(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req saveAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sent, err := optDate(req.DateSentToCouncil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_sent_to_council"})
		return
	}
	councilSigned, err := optDate(req.DateCouncilSigned)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_council_signed"})
		return
	}
	delegateSigned, err := optDate(req.DateDelegateSigned)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_delegate_signed"})
		return
	}
	fundingAmount, err := optDecimal(req.FundingAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid funding_amount"})
		return
	}
	contingencyAmount, err := optDecimal(req.ContingencyAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contingency_amount"})
		return
	}

	agreement, err := h.funding.SaveAgreement(c.Request.Context(), service.SaveAgreementInput{
		CouncilID:          councilID,
		Kind:               model.AgreementType(req.Kind),
		Notes:              req.Notes,
		FundingAmount:      fundingAmount,
		ContingencyAmount:  contingencyAmount,
		DateSentToCouncil:  sent,
		DateCouncilSigned:  councilSigned,
		DateDelegateSigned: delegateSigned,
		Principal:          principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, agreement)
}
