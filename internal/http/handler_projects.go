package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

func (h *Handler) listProjects(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}

	var councilID *uuid.UUID
	if raw := c.Query("council_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid council_id"})
			return
		}
		councilID = &id
	}
	var state *model.ProjectState
	if raw := c.Query("state"); raw != "" {
		candidate := model.ProjectState(raw)
		if !candidate.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state"})
			return
		}
		state = &candidate
	}

	projects, err := h.projects.List(c.Request.Context(), principal, councilID, state)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) getProject(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projects.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if principal.IsCouncil() {
		visible, err := h.visibility.Resolve(c.Request.Context(), principal, project.CouncilID, project.ID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		project.Redact(visible)
	}
	c.JSON(http.StatusOK, project)
}

type createProjectRequest struct {
	CouncilID         string  `json:"council_id" binding:"required"`
	ProgramID         string  `json:"program_id" binding:"required"`
	FundingScheduleID *string `json:"funding_schedule_id"`
	Name              string  `json:"name" binding:"required"`
	Description       *string `json:"description"`
	StartDate         *string `json:"start_date"`
	FundingAmount     *string `json:"funding_amount"`
	ContingencyAmount *string `json:"contingency_amount"`
}

func (h *Handler) createProject(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	councilID, err := uuid.Parse(req.CouncilID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid council_id"})
		return
	}
	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program_id"})
		return
	}
	scheduleID, err := optUUID(req.FundingScheduleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid funding_schedule_id"})
		return
	}
	startDate, err := optDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
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

	project, err := h.projects.Create(c.Request.Context(), service.CreateProjectInput{
		CouncilID:         councilID,
		ProgramID:         programID,
		FundingScheduleID: scheduleID,
		Name:              req.Name,
		Description:       req.Description,
		StartDate:         startDate,
		FundingAmount:     fundingAmount,
		ContingencyAmount: contingencyAmount,
		Principal:         principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

type updateProjectRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	StartDate         *string `json:"start_date"`
	FundingAmount     *string `json:"funding_amount"`
	ContingencyAmount *string `json:"contingency_amount"`
	ForecastFinalCost *string `json:"forecast_final_cost"`
	FinalCost         *string `json:"final_cost"`
	SAPProject        *string `json:"sap_project"`
	SAPMasterProject  *string `json:"sap_master_project"`
	CLINo             *string `json:"cli_no"`
}

func (h *Handler) updateProject(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := optDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
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
	forecastFinalCost, err := optDecimal(req.ForecastFinalCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forecast_final_cost"})
		return
	}
	finalCost, err := optDecimal(req.FinalCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid final_cost"})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), service.UpdateProjectInput{
		ProjectID: id,
		Principal: principal,
		Apply: func(project *model.Project) {
			if req.Name != nil {
				project.Name = *req.Name
			}
			if req.Description != nil {
				project.Description = req.Description
			}
			if startDate != nil {
				project.StartDate = startDate
			}
			if fundingAmount != nil {
				project.FundingScheduleAmount = fundingAmount
			}
			if contingencyAmount != nil {
				project.ContingencyAmount = contingencyAmount
			}
			if forecastFinalCost != nil {
				project.ForecastFinalCost = forecastFinalCost
			}
			if finalCost != nil {
				project.FinalCost = finalCost
			}
			if req.SAPProject != nil {
				project.SAPProject = req.SAPProject
			}
			if req.SAPMasterProject != nil {
				project.SAPMasterProject = req.SAPMasterProject
			}
			if req.CLINo != nil {
				project.CLINo = req.CLINo
			}
		},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

type applyEventRequest struct {
	Event string `json:"event" binding:"required"`
}

func (h *Handler) applyProjectEvent(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req applyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := model.LifecycleEvent(strings.ToLower(strings.TrimSpace(req.Event)))
	project, err := h.projects.ApplyEvent(c.Request.Context(), principal, id, event)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": project.ID, "state": project.State})
}

type addAddressRequest struct {
	Street               string  `json:"street" binding:"required"`
	Suburb               string  `json:"suburb"`
	Postcode             string  `json:"postcode"`
	State                string  `json:"state"`
	WorkTypeID           *string `json:"work_type_id"`
	OutputTypeID         *string `json:"output_type_id"`
	ConstructionMethodID *string `json:"construction_method_id"`
	Bedrooms             *int    `json:"bedrooms"`
	OutputQuantity       int     `json:"output_quantity"`
	Budget               *string `json:"budget"`
	LotNumber            *string `json:"lot_number"`
	PlanNumber           *string `json:"plan_number"`
	TitleReference       *string `json:"title_reference"`
}

func (h *Handler) addAddress(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req addAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workTypeID, err := optUUID(req.WorkTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work_type_id"})
		return
	}
	outputTypeID, err := optUUID(req.OutputTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid output_type_id"})
		return
	}
	methodID, err := optUUID(req.ConstructionMethodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid construction_method_id"})
		return
	}
	budget, err := optDecimal(req.Budget)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget"})
		return
	}

	address, err := h.projects.AddAddress(c.Request.Context(), service.AddAddressInput{
		ProjectID:            projectID,
		Street:               req.Street,
		Suburb:               req.Suburb,
		Postcode:             req.Postcode,
		State:                req.State,
		WorkTypeID:           workTypeID,
		OutputTypeID:         outputTypeID,
		ConstructionMethodID: methodID,
		Bedrooms:             req.Bedrooms,
		OutputQuantity:       req.OutputQuantity,
		Budget:               budget,
		LotNumber:            req.LotNumber,
		PlanNumber:           req.PlanNumber,
		TitleReference:       req.TitleReference,
		Principal:            principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

type addWorkRequest struct {
	WorkTypeID           string  `json:"work_type_id" binding:"required"`
	OutputTypeID         string  `json:"output_type_id" binding:"required"`
	ConstructionMethodID *string `json:"construction_method_id"`
	OutputQuantity       int     `json:"output_quantity"`
	Bedrooms             *int    `json:"bedrooms"`
	Bathrooms            *int    `json:"bathrooms"`
	Kitchens             *int    `json:"kitchens"`
	EstimatedCost        *string `json:"estimated_cost"`
	StartDate            *string `json:"start_date"`
}

func (h *Handler) addWork(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	addressID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req addWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workTypeID, err := uuid.Parse(req.WorkTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work_type_id"})
		return
	}
	outputTypeID, err := uuid.Parse(req.OutputTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid output_type_id"})
		return
	}
	methodID, err := optUUID(req.ConstructionMethodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid construction_method_id"})
		return
	}
	estimatedCost, err := optDecimal(req.EstimatedCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimated_cost"})
		return
	}
	startDate, err := optDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}

	work, err := h.projects.AddWork(c.Request.Context(), service.AddWorkInput{
		AddressID:            addressID,
		WorkTypeID:           workTypeID,
		OutputTypeID:         outputTypeID,
		ConstructionMethodID: methodID,
		OutputQuantity:       req.OutputQuantity,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
		Kitchens:             req.Kitchens,
		EstimatedCost:        estimatedCost,
		StartDate:            startDate,
		Principal:            principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, work)
}

func (h *Handler) completeWorkStep(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	stepID, ok := uuidParam(c, "stepID")
	if !ok {
		return
	}

	if err := h.projects.CompleteWorkStep(c.Request.Context(), principal, workID, stepID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": true})
}

type recordDefectRequest struct {
	Description    string `json:"description" binding:"required"`
	IdentifiedDate string `json:"identified_date" binding:"required"`
}

func (h *Handler) recordDefect(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req recordDefectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	identified, err := parseDate(req.IdentifiedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identified_date"})
		return
	}

	defect, err := h.projects.RecordDefect(c.Request.Context(), service.RecordDefectInput{
		WorkID:         workID,
		Description:    req.Description,
		IdentifiedDate: identified,
		Principal:      principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, defect)
}

type practicalCompletionRequest struct {
	CompletionDate *string `json:"completion_date"`
	Notes          *string `json:"notes"`
}

func (h *Handler) recordPracticalCompletion(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req practicalCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := optDate(req.CompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid completion_date"})
		return
	}

	pc, err := h.projects.RecordPracticalCompletion(c.Request.Context(), principal, projectID, date, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pc)
}
