package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hazzamyman/ricd-portal/internal/excel"
	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

type createUserRequest struct {
	Email     string  `json:"email" binding:"required"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Password  string  `json:"password" binding:"required"`
	Role      string  `json:"role" binding:"required"`
	CouncilID *string `json:"council_id"`
}

func (h *Handler) createUser(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	councilID, err := optUUID(req.CouncilID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid council_id"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), service.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      model.Role(req.Role),
		CouncilID: councilID,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) deactivateUser(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.Deactivate(c.Request.Context(), principal, userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) listUsers(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	users, err := h.users.ListByCouncil(c.Request.Context(), principal, councilID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) resolveVisibility(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projects.Get(c.Request.Context(), principal, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	fields, err := h.visibility.Resolve(c.Request.Context(), principal, project.CouncilID, project.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fields": fields})
}

type setVisibilityRequest struct {
	FieldName     string  `json:"field_name" binding:"required"`
	Visible       bool    `json:"visible"`
	ProjectID     *string `json:"project_id"`
	ClearOverride bool    `json:"clear_override"`
}

func (h *Handler) setVisibility(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req setVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	projectID, err := optUUID(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
		return
	}

	if req.ClearOverride {
		if projectID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clear_override requires project_id"})
			return
		}
		if err := h.visibility.ClearOverride(c.Request.Context(), principal, *projectID, req.FieldName); err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": true})
		return
	}

	if err := h.visibility.Set(c.Request.Context(), service.SetVisibilityInput{
		CouncilID: councilID,
		ProjectID: projectID,
		FieldName: req.FieldName,
		Visible:   req.Visible,
		Principal: principal,
	}); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *Handler) dashboardCouncilFilter(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("council_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid council_id"})
		return nil, false
	}
	return &id, true
}

func (h *Handler) dashboardSummaries(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := h.dashboardCouncilFilter(c)
	if !ok {
		return
	}

	summaries, err := h.dashboard.Summaries(c.Request.Context(), principal, councilID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": summaries})
}

func (h *Handler) exportDashboard(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := h.dashboardCouncilFilter(c)
	if !ok {
		return
	}

	summaries, err := h.dashboard.Summaries(c.Request.Context(), principal, councilID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rows := make([]excel.DashboardRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, excel.DashboardRow{
			Name:             summary.Name,
			CouncilName:      summary.CouncilName,
			State:            string(summary.State),
			Progress:         summary.Progress,
			BudgetVsSpent:    summary.BudgetVsSpent,
			IsLate:           summary.IsLate,
			IsOverdue:        summary.IsOverdue,
			QuarterlyOverdue: summary.QuarterlyOverdue,
			TrackerMissing:   summary.TrackerMissing,
		})
	}

	data, err := h.exporter.Dashboard(rows, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dashboard.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) importMasterData(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer file.Close()

	workbook, err := io.ReadAll(file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.importer.ImportMasterData(c.Request.Context(), principal, workbook)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
