package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// ReferenceStore is the persistence surface for master data: councils,
// programs, work/output types, construction methods and officers.
type ReferenceStore interface {
	GetCouncil(ctx context.Context, id uuid.UUID) (*model.Council, error)
	ListCouncils(ctx context.Context) ([]model.Council, error)
	CreateCouncil(ctx context.Context, council *model.Council) error
	UpdateCouncil(ctx context.Context, council *model.Council) error
	CreateContact(ctx context.Context, contact *model.Contact) error
	ListContacts(ctx context.Context, councilID uuid.UUID) ([]model.Contact, error)

	ListPrograms(ctx context.Context) ([]model.Program, error)
	CreateProgram(ctx context.Context, program *model.Program) error

	GetWorkType(ctx context.Context, id uuid.UUID) (*model.WorkType, error)
	ListWorkTypes(ctx context.Context, activeOnly bool) ([]model.WorkType, error)
	CreateWorkType(ctx context.Context, workType *model.WorkType) error
	WorkTypeUsage(ctx context.Context, workTypeID uuid.UUID) (int64, error)

	GetOutputType(ctx context.Context, id uuid.UUID) (*model.OutputType, error)
	ListOutputTypes(ctx context.Context, activeOnly bool) ([]model.OutputType, error)
	CreateOutputType(ctx context.Context, outputType *model.OutputType) error
	OutputTypeUsage(ctx context.Context, outputTypeID uuid.UUID) (int64, error)

	ListConstructionMethods(ctx context.Context) ([]model.ConstructionMethod, error)
	CreateConstructionMethod(ctx context.Context, method *model.ConstructionMethod) error

	GetOfficer(ctx context.Context, id uuid.UUID) (*model.Officer, error)
	ListOfficers(ctx context.Context, activeOnly bool) ([]model.Officer, error)
	CreateOfficer(ctx context.Context, officer *model.Officer) error
	UpdateOfficer(ctx context.Context, officer *model.Officer) error
}

type ReferenceService struct {
	store ReferenceStore
}

func NewReferenceService(store ReferenceStore) *ReferenceService {
	return &ReferenceService{store: store}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (s *ReferenceService) ListCouncils(ctx context.Context, _ model.Principal) ([]model.Council, error) {
	return s.store.ListCouncils(ctx)
}

type CouncilInput struct {
	Name                        string
	ABN                         *string
	DefaultSuburb               *string
	DefaultPostcode             *string
	DefaultState                string
	FederalElectorate           *string
	StateElectorate             *string
	QHIGIRegion                 *string
	IsRegisteredHousingProvider bool
	Principal                   model.Principal
}

func validateCouncilInput(input CouncilInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.ABN != nil && (len(*input.ABN) != 11 || !allDigits(*input.ABN)) {
		return fmt.Errorf("%w: abn must be 11 digits", ErrInvalidInput)
	}
	if input.DefaultPostcode != nil && (len(*input.DefaultPostcode) != 4 || !allDigits(*input.DefaultPostcode)) {
		return fmt.Errorf("%w: postcode must be 4 digits", ErrInvalidInput)
	}
	return nil
}

func (s *ReferenceService) CreateCouncil(ctx context.Context, input CouncilInput) (*model.Council, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if err := validateCouncilInput(input); err != nil {
		return nil, err
	}

	council := &model.Council{
		ID:                          uuid.New(),
		Name:                        input.Name,
		ABN:                         input.ABN,
		DefaultSuburb:               input.DefaultSuburb,
		DefaultPostcode:             input.DefaultPostcode,
		DefaultState:                input.DefaultState,
		FederalElectorate:           input.FederalElectorate,
		StateElectorate:             input.StateElectorate,
		QHIGIRegion:                 input.QHIGIRegion,
		IsRegisteredHousingProvider: input.IsRegisteredHousingProvider,
	}
	if council.DefaultState == "" {
		council.DefaultState = "QLD"
	}
	if err := s.store.CreateCouncil(ctx, council); err != nil {
		return nil, err
	}
	return council, nil
}

type UpdateCouncilInput struct {
	CouncilID uuid.UUID
	Apply     func(council *model.Council)
	Principal model.Principal
}

func (s *ReferenceService) UpdateCouncil(ctx context.Context, input UpdateCouncilInput) (*model.Council, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	council, err := s.store.GetCouncil(ctx, input.CouncilID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if input.Apply != nil {
		input.Apply(council)
	}
	if council.ABN != nil && (len(*council.ABN) != 11 || !allDigits(*council.ABN)) {
		return nil, fmt.Errorf("%w: abn must be 11 digits", ErrInvalidInput)
	}
	if council.DefaultPostcode != nil && (len(*council.DefaultPostcode) != 4 || !allDigits(*council.DefaultPostcode)) {
		return nil, fmt.Errorf("%w: postcode must be 4 digits", ErrInvalidInput)
	}
	if err := s.store.UpdateCouncil(ctx, council); err != nil {
		return nil, err
	}
	return council, nil
}

type ContactInput struct {
	CouncilID     uuid.UUID
	Name          string
	Position      string
	Email         string
	Phone         string
	Address       *string
	PostalAddress *string
	Principal     model.Principal
}

func (s *ReferenceService) AddContact(ctx context.Context, input ContactInput) (*model.Contact, error) {
	if !input.Principal.CanAccessCouncil(input.CouncilID) {
		return nil, ErrPermissionDenied
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	contact := &model.Contact{
		ID:            uuid.New(),
		CouncilID:     input.CouncilID,
		Name:          input.Name,
		Position:      input.Position,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		PostalAddress: input.PostalAddress,
	}
	if err := s.store.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ReferenceService) ListContacts(ctx context.Context, principal model.Principal, councilID uuid.UUID) ([]model.Contact, error) {
	if !principal.CanAccessCouncil(councilID) {
		return nil, ErrPermissionDenied
	}
	return s.store.ListContacts(ctx, councilID)
}

func (s *ReferenceService) ListPrograms(ctx context.Context, _ model.Principal) ([]model.Program, error) {
	return s.store.ListPrograms(ctx)
}

type ProgramInput struct {
	Name          string
	Description   *string
	Budget        *decimal.Decimal
	FundingSource *string
	Principal     model.Principal
}

func (s *ReferenceService) CreateProgram(ctx context.Context, input ProgramInput) (*model.Program, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	program := &model.Program{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Budget:      input.Budget,
	}
	if input.FundingSource != nil {
		source := model.FundingSource(*input.FundingSource)
		if source != model.FundingSourceCommonwealth && source != model.FundingSourceState {
			return nil, fmt.Errorf("%w: unknown funding source %q", ErrInvalidInput, *input.FundingSource)
		}
		program.FundingSource = &source
	}
	if err := s.store.CreateProgram(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ReferenceService) ListWorkTypes(ctx context.Context, _ model.Principal, activeOnly bool) ([]model.WorkType, error) {
	return s.store.ListWorkTypes(ctx, activeOnly)
}

type WorkTypeInput struct {
	Code                 string
	Name                 string
	Description          *string
	AllowedOutputTypeIDs []uuid.UUID
	Principal            model.Principal
}

// CreateWorkType registers a work classification together with the output
// types councils may pair with it.
func (s *ReferenceService) CreateWorkType(ctx context.Context, input WorkTypeInput) (*model.WorkType, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Code == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: code and name are required", ErrInvalidInput)
	}

	allowed := make([]model.OutputType, 0, len(input.AllowedOutputTypeIDs))
	for _, id := range input.AllowedOutputTypeIDs {
		outputType, err := s.store.GetOutputType(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown output type %s", ErrInvalidInput, id)
			}
			return nil, err
		}
		allowed = append(allowed, *outputType)
	}

	workType := &model.WorkType{
		ID:                 uuid.New(),
		Code:               strings.ToLower(strings.TrimSpace(input.Code)),
		Name:               input.Name,
		Description:        input.Description,
		IsActive:           true,
		AllowedOutputTypes: allowed,
	}
	if err := s.store.CreateWorkType(ctx, workType); err != nil {
		return nil, err
	}
	return workType, nil
}

func (s *ReferenceService) WorkTypeUsage(ctx context.Context, principal model.Principal, id uuid.UUID) (int64, error) {
	if !principal.IsRICD() {
		return 0, ErrPermissionDenied
	}
	if _, err := s.store.GetWorkType(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return s.store.WorkTypeUsage(ctx, id)
}

func (s *ReferenceService) ListOutputTypes(ctx context.Context, _ model.Principal, activeOnly bool) ([]model.OutputType, error) {
	return s.store.ListOutputTypes(ctx, activeOnly)
}

type OutputTypeInput struct {
	Code        string
	Name        string
	Description *string
	Principal   model.Principal
}

func (s *ReferenceService) CreateOutputType(ctx context.Context, input OutputTypeInput) (*model.OutputType, error) {
	if !input.Principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if input.Code == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: code and name are required", ErrInvalidInput)
	}
	outputType := &model.OutputType{
		ID:          uuid.New(),
		Code:        strings.ToLower(strings.TrimSpace(input.Code)),
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.store.CreateOutputType(ctx, outputType); err != nil {
		return nil, err
	}
	return outputType, nil
}

func (s *ReferenceService) OutputTypeUsage(ctx context.Context, principal model.Principal, id uuid.UUID) (int64, error) {
	if !principal.IsRICD() {
		return 0, ErrPermissionDenied
	}
	if _, err := s.store.GetOutputType(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return s.store.OutputTypeUsage(ctx, id)
}

func (s *ReferenceService) ListConstructionMethods(ctx context.Context, _ model.Principal) ([]model.ConstructionMethod, error) {
	return s.store.ListConstructionMethods(ctx)
}

func (s *ReferenceService) CreateConstructionMethod(ctx context.Context, principal model.Principal, code, name string, description *string) (*model.ConstructionMethod, error) {
	if !principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: code and name are required", ErrInvalidInput)
	}
	method := &model.ConstructionMethod{
		ID:          uuid.New(),
		Code:        strings.ToLower(strings.TrimSpace(code)),
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if err := s.store.CreateConstructionMethod(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *ReferenceService) ListOfficers(ctx context.Context, principal model.Principal, activeOnly bool) ([]model.Officer, error) {
	if !principal.IsRICD() {
		return nil, ErrPermissionDenied
	}
	return s.store.ListOfficers(ctx, activeOnly)
}

type OfficerInput struct {
	OfficerID   *uuid.UUID
	UserID      uuid.UUID
	Position    *string
	IsActive    bool
	IsPrincipal bool
	IsSenior    bool
	Principal   model.Principal
}

// SaveOfficer creates or updates an officer record. An officer cannot be both
// principal and senior, and only active officers can hold either role.
func (s *ReferenceService) SaveOfficer(ctx context.Context, input OfficerInput) (*model.Officer, error) {
	if !input.Principal.IsRICDManager() {
		return nil, ErrPermissionDenied
	}
	if input.IsPrincipal && input.IsSenior {
		return nil, fmt.Errorf("%w: officer cannot be both principal and senior", ErrInvalidInput)
	}
	if (input.IsPrincipal || input.IsSenior) && !input.IsActive {
		return nil, fmt.Errorf("%w: only active officers can be principal or senior", ErrInvalidInput)
	}

	if input.OfficerID != nil {
		officer, err := s.store.GetOfficer(ctx, *input.OfficerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		officer.Position = input.Position
		officer.IsActive = input.IsActive
		officer.IsPrincipal = input.IsPrincipal
		officer.IsSenior = input.IsSenior
		if err := s.store.UpdateOfficer(ctx, officer); err != nil {
			return nil, err
		}
		return officer, nil
	}

	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	officer := &model.Officer{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Position:    input.Position,
		IsActive:    input.IsActive,
		IsPrincipal: input.IsPrincipal,
		IsSenior:    input.IsSenior,
	}
	if err := s.store.CreateOfficer(ctx, officer); err != nil {
		return nil, err
	}
	return officer, nil
}
