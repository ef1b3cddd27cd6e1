package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service"
)

func (h *Handler) listCouncils(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councils, err := h.reference.ListCouncils(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, councils)
}

type councilRequest struct {
	Name                        string  `json:"name" binding:"required"`
	ABN                         *string `json:"abn"`
	DefaultSuburb               *string `json:"default_suburb"`
	DefaultPostcode             *string `json:"default_postcode"`
	DefaultState                string  `json:"default_state"`
	FederalElectorate           *string `json:"federal_electorate"`
	StateElectorate             *string `json:"state_electorate"`
	QHIGIRegion                 *string `json:"qhigi_region"`
	IsRegisteredHousingProvider bool    `json:"is_registered_housing_provider"`
}

func (h *Handler) createCouncil(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req councilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	council, err := h.reference.CreateCouncil(c.Request.Context(), service.CouncilInput{
		Name:                        req.Name,
		ABN:                         req.ABN,
		DefaultSuburb:               req.DefaultSuburb,
		DefaultPostcode:             req.DefaultPostcode,
		DefaultState:                req.DefaultState,
		FederalElectorate:           req.FederalElectorate,
		StateElectorate:             req.StateElectorate,
		QHIGIRegion:                 req.QHIGIRegion,
		IsRegisteredHousingProvider: req.IsRegisteredHousingProvider,
		Principal:                   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, council)
}

type updateCouncilRequest struct {
	Name                        *string `json:"name"`
	ABN                         *string `json:"abn"`
	DefaultSuburb               *string `json:"default_suburb"`
	DefaultPostcode             *string `json:"default_postcode"`
	DefaultState                *string `json:"default_state"`
	FederalElectorate           *string `json:"federal_electorate"`
	StateElectorate             *string `json:"state_electorate"`
	QHIGIRegion                 *string `json:"qhigi_region"`
	IsRegisteredHousingProvider *bool   `json:"is_registered_housing_provider"`
}

func (h *Handler) updateCouncil(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req updateCouncilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	council, err := h.reference.UpdateCouncil(c.Request.Context(), service.UpdateCouncilInput{
		CouncilID: councilID,
		Apply: func(council *model.Council) {
			if req.Name != nil {
				council.Name = *req.Name
			}
			if req.ABN != nil {
				council.ABN = req.ABN
			}
			if req.DefaultSuburb != nil {
				council.DefaultSuburb = req.DefaultSuburb
			}
			if req.DefaultPostcode != nil {
				council.DefaultPostcode = req.DefaultPostcode
			}
			if req.DefaultState != nil {
				council.DefaultState = *req.DefaultState
			}
			if req.FederalElectorate != nil {
				council.FederalElectorate = req.FederalElectorate
			}
			if req.StateElectorate != nil {
				council.StateElectorate = req.StateElectorate
			}
			if req.QHIGIRegion != nil {
				council.QHIGIRegion = req.QHIGIRegion
			}
			if req.IsRegisteredHousingProvider != nil {
				council.IsRegisteredHousingProvider = *req.IsRegisteredHousingProvider
			}
		},
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, council)
}

func (h *Handler) listContacts(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	contacts, err := h.reference.ListContacts(c.Request.Context(), principal, councilID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

type contactRequest struct {
	Name          string  `json:"name" binding:"required"`
	Position      string  `json:"position"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	PostalAddress *string `json:"postal_address"`
}

func (h *Handler) addContact(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	councilID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.reference.AddContact(c.Request.Context(), service.ContactInput{
		CouncilID:     councilID,
		Name:          req.Name,
		Position:      req.Position,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PostalAddress: req.PostalAddress,
		Principal:     principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) listPrograms(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	programs, err := h.reference.ListPrograms(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

type programRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	Budget        *string `json:"budget"`
	FundingSource *string `json:"funding_source"`
}

func (h *Handler) createProgram(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	budget, err := optDecimal(req.Budget)
	if err != nil {
		h.handleError(c, err)
		return
	}

	program, err := h.reference.CreateProgram(c.Request.Context(), service.ProgramInput{
		Name:          req.Name,
		Description:   req.Description,
		Budget:        budget,
		FundingSource: req.FundingSource,
		Principal:     principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

func activeOnly(c *gin.Context) bool {
	return c.Query("active") == "true"
}

func (h *Handler) listWorkTypes(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	workTypes, err := h.reference.ListWorkTypes(c.Request.Context(), principal, activeOnly(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, workTypes)
}

type workTypeRequest struct {
	Code                 string   `json:"code" binding:"required"`
	Name                 string   `json:"name" binding:"required"`
	Description          *string  `json:"description"`
	AllowedOutputTypeIDs []string `json:"allowed_output_type_ids"`
}

func (h *Handler) createWorkType(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req workTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := make([]uuid.UUID, 0, len(req.AllowedOutputTypeIDs))
	for _, raw := range req.AllowedOutputTypeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid output type id " + raw})
			return
		}
		allowed = append(allowed, id)
	}

	workType, err := h.reference.CreateWorkType(c.Request.Context(), service.WorkTypeInput{
		Code:                 req.Code,
		Name:                 req.Name,
		Description:          req.Description,
		AllowedOutputTypeIDs: allowed,
		Principal:            principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workType)
}

func (h *Handler) workTypeUsage(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	usage, err := h.reference.WorkTypeUsage(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"work_type_id": id, "usage": usage})
}

func (h *Handler) listOutputTypes(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	outputTypes, err := h.reference.ListOutputTypes(c.Request.Context(), principal, activeOnly(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, outputTypes)
}

type codeNameRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *Handler) createOutputType(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req codeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outputType, err := h.reference.CreateOutputType(c.Request.Context(), service.OutputTypeInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, outputType)
}

func (h *Handler) outputTypeUsage(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	usage, err := h.reference.OutputTypeUsage(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"output_type_id": id, "usage": usage})
}

func (h *Handler) listConstructionMethods(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	methods, err := h.reference.ListConstructionMethods(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (h *Handler) createConstructionMethod(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req codeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.reference.CreateConstructionMethod(c.Request.Context(), principal, req.Code, req.Name, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, method)
}

func (h *Handler) listOfficers(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	officers, err := h.reference.ListOfficers(c.Request.Context(), principal, activeOnly(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, officers)
}

type officerRequest struct {
	UserID      string  `json:"user_id"`
	Position    *string `json:"position"`
	IsActive    bool    `json:"is_active"`
	IsPrincipal bool    `json:"is_principal"`
	IsSenior    bool    `json:"is_senior"`
}

func (h *Handler) saveOfficer(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	var req officerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	officer, err := h.reference.SaveOfficer(c.Request.Context(), service.OfficerInput{
		UserID:      userID,
		Position:    req.Position,
		IsActive:    req.IsActive,
		IsPrincipal: req.IsPrincipal,
		IsSenior:    req.IsSenior,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, officer)
}

func (h *Handler) updateOfficer(c *gin.Context) {
	principal, ok := principalOr401(c)
	if !ok {
		return
	}
	officerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req officerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	officer, err := h.reference.SaveOfficer(c.Request.Context(), service.OfficerInput{
		OfficerID:   &officerID,
		Position:    req.Position,
		IsActive:    req.IsActive,
		IsPrincipal: req.IsPrincipal,
		IsSenior:    req.IsSenior,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, officer)
}
