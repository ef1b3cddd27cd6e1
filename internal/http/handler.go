package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hazzamyman/ricd-portal/internal/excel"
	"github.com/hazzamyman/ricd-portal/internal/http/middleware"
	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/pdf"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

type Handler struct {
	users      *service.UserService
	projects   *service.ProjectService
	funding    *service.FundingService
	reports    *service.ReportService
	visibility *service.VisibilityService
	dashboard  *service.DashboardService
	importer   *service.ImportService
	reference  *service.ReferenceService
	exporter   *excel.Exporter
	pdf        *pdf.Generator
	log        zerolog.Logger
}

func NewHandler(
	users *service.UserService,
	projects *service.ProjectService,
	funding *service.FundingService,
	reports *service.ReportService,
	visibility *service.VisibilityService,
	dashboard *service.DashboardService,
	importer *service.ImportService,
	reference *service.ReferenceService,
	exporter *excel.Exporter,
	pdfGenerator *pdf.Generator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		users:      users,
		projects:   projects,
		funding:    funding,
		reports:    reports,
		visibility: visibility,
		dashboard:  dashboard,
		importer:   importer,
		reference:  reference,
		exporter:   exporter,
		pdf:        pdfGenerator,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.POST("/auth/login", h.login)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/projects", h.listProjects)
	protected.POST("/projects", h.createProject)
	protected.GET("/projects/:id", h.getProject)
	protected.PATCH("/projects/:id", h.updateProject)
	protected.POST("/projects/:id/events", h.applyProjectEvent)
	protected.POST("/projects/:id/addresses", h.addAddress)
	protected.POST("/projects/:id/practical-completions", h.recordPracticalCompletion)
	protected.GET("/projects/:id/visibility", h.resolveVisibility)
	protected.POST("/projects/:id/stage1-reports", h.submitStage1)
	protected.POST("/projects/:id/stage2-reports", h.submitStage2)

	protected.POST("/addresses/:id/works", h.addWork)

	protected.POST("/works/:id/steps/:stepID/complete", h.completeWorkStep)
	protected.POST("/works/:id/defects", h.recordDefect)
	protected.GET("/works/:id/quarterly-reports", h.listQuarterly)
	protected.POST("/works/:id/quarterly-reports", h.submitQuarterly)
	protected.GET("/works/:id/trackers", h.listTrackers)
	protected.POST("/works/:id/trackers", h.submitTracker)

	protected.POST("/quarterly-reports/:id/council-decision", h.decideQuarterlyAsCouncilManager)
	protected.POST("/quarterly-reports/:id/review", h.reviewQuarterly)
	protected.POST("/stage1-reports/:id/review", h.reviewStage1)
	protected.GET("/stage1-reports/:id/payment-advice", h.stage1PaymentAdvice)
	protected.POST("/stage2-reports/:id/review", h.reviewStage2)
	protected.GET("/stage2-reports/:id/payment-advice", h.stage2PaymentAdvice)
	protected.POST("/report-attachments", h.addAttachment)
	protected.POST("/step-completions", h.saveStepCompletion)

	protected.GET("/councils", h.listCouncils)
	protected.POST("/councils", h.createCouncil)
	protected.PATCH("/councils/:id", h.updateCouncil)
	protected.GET("/councils/:id/contacts", h.listContacts)
	protected.POST("/councils/:id/contacts", h.addContact)
	protected.GET("/programs", h.listPrograms)
	protected.POST("/programs", h.createProgram)
	protected.GET("/work-types", h.listWorkTypes)
	protected.POST("/work-types", h.createWorkType)
	protected.GET("/work-types/:id/usage", h.workTypeUsage)
	protected.GET("/output-types", h.listOutputTypes)
	protected.POST("/output-types", h.createOutputType)
	protected.GET("/output-types/:id/usage", h.outputTypeUsage)
	protected.GET("/construction-methods", h.listConstructionMethods)
	protected.POST("/construction-methods", h.createConstructionMethod)
	protected.GET("/officers", h.listOfficers)
	protected.POST("/officers", h.saveOfficer)
	protected.PATCH("/officers/:id", h.updateOfficer)

	protected.GET("/councils/:id/funding-schedules", h.listSchedules)
	protected.POST("/councils/:id/funding-schedules", h.createSchedule)
	protected.GET("/councils/:id/agreements", h.listAgreements)
	protected.PUT("/councils/:id/agreements", h.saveAgreement)
	protected.POST("/councils/:id/monthly-reports", h.submitMonthlyReport)
	protected.POST("/councils/:id/quarterly-reports", h.submitCouncilQuarterly)
	protected.GET("/councils/:id/users", h.listUsers)
	protected.PUT("/councils/:id/visibility", h.setVisibility)

	protected.POST("/funding-schedules/:id/signatures", h.recordSignatures)
	protected.GET("/funding-schedules/:id/instalments", h.listInstalments)
	protected.POST("/funding-schedules/:id/instalments", h.addInstalment)
	protected.POST("/instalments/:id/release", h.releaseInstalment)
	protected.POST("/funding-approvals", h.createApproval)

	protected.GET("/dashboard", h.dashboardSummaries)
	protected.GET("/dashboard/export", h.exportDashboard)
	protected.POST("/import/master-data", h.importMasterData)

	protected.POST("/users", h.createUser)
	protected.POST("/users/:id/deactivate", h.deactivateUser)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrBudgetExceedsFunding),
		errors.Is(err, service.ErrOutputNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReportIncomplete),
		errors.Is(err, service.ErrNoProjectForSchedule),
		errors.Is(err, service.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		var transition *model.TransitionError
		if errors.As(err, &transition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func principalOr401(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func optDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func optDecimal(raw *string) (*decimal.Decimal, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, service.ErrInvalidInput
	}
	return &value, nil
}

func optUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, service.ErrInvalidInput
	}
	return &id, nil
}
