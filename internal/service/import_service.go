package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/excel"
	"github.com/hazzamyman/ricd-portal/internal/model"
)

// ImportReferenceStore resolves and creates master data during bulk import.
type ImportReferenceStore interface {
	GetCouncilByName(ctx context.Context, name string) (*model.Council, error)
	GetProgramByName(ctx context.Context, name string) (*model.Program, error)
	CreateProgram(ctx context.Context, program *model.Program) error
	GetWorkTypeByCode(ctx context.Context, code string) (*model.WorkType, error)
	GetOutputTypeByCode(ctx context.Context, code string) (*model.OutputType, error)
}

// ImportProjectStore persists imported projects and their structure.
type ImportProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	CreateAddress(ctx context.Context, address *model.Address) error
	CreateWork(ctx context.Context, work *model.Work, steps []model.WorkStep) error
}

type ImportService struct {
	reference ImportReferenceStore
	projects  ImportProjectStore
	log       zerolog.Logger
}

func NewImportService(reference ImportReferenceStore, projects ImportProjectStore, log zerolog.Logger) *ImportService {
	return &ImportService{reference: reference, projects: projects, log: log}
}

// ImportResult summarises a bulk import run. Row errors are reported back to
// the operator; rows that parsed and persisted are counted.
type ImportResult struct {
	Imported  int              `json:"imported"`
	RowErrors []excel.RowError `json:"row_errors"`
}

// ImportMasterData loads a master-data workbook. Each row yields a project
// (with optional address and work); a bad row is logged and skipped, never
// aborting the run. RICD manager only.
func (s *ImportService) ImportMasterData(ctx context.Context, principal model.Principal, workbook []byte) (*ImportResult, error) {
	if !principal.IsRICDManager() {
		return nil, ErrPermissionDenied
	}

	rows, parseErrors, err := excel.ParseMasterWorkbook(workbook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result := &ImportResult{RowErrors: parseErrors}
	for _, row := range rows {
		if err := s.importRow(ctx, row); err != nil {
			s.log.Warn().Int("line", row.Line).Err(err).Msg("master data row skipped")
			result.RowErrors = append(result.RowErrors, excel.RowError{Line: row.Line, Err: err.Error()})
			continue
		}
		result.Imported++
	}
	return result, nil
}

func (s *ImportService) importRow(ctx context.Context, row excel.MasterRow) error {
	council, err := s.reference.GetCouncilByName(ctx, row.CouncilName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown council %q", row.CouncilName)
		}
		return err
	}

	program, err := s.reference.GetProgramByName(ctx, row.ProgramName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		program = &model.Program{
			ID:        uuid.New(),
			Name:      row.ProgramName,
			CreatedAt: time.Now(),
		}
		if err := s.reference.CreateProgram(ctx, program); err != nil {
			return err
		}
	}

	project := &model.Project{
		ID:                    uuid.New(),
		CouncilID:             council.ID,
		ProgramID:             program.ID,
		Name:                  row.ProjectName,
		Description:           row.Description,
		State:                 model.StateProspective,
		StartDate:             row.StartDate,
		Stage1Target:          row.Stage1Target,
		Stage1Sunset:          row.Stage1Sunset,
		Stage2Target:          row.Stage2Target,
		Stage2Sunset:          row.Stage2Sunset,
		SAPProject:            row.SAPProject,
		SAPMasterProject:      row.SAPMasterProject,
		CLINo:                 row.CLINo,
		FundingScheduleAmount: row.FundingAmount,
		ContingencyAmount:     row.ContingencyAmount,
		CreatedAt:             time.Now(),
	}
	// Explicit stage dates from the workbook win; only gaps get derived.
	project.FillStageDates()
	if err := s.projects.Create(ctx, project); err != nil {
		return err
	}

	if row.Street == "" {
		return nil
	}

	address := &model.Address{
		ID:             uuid.New(),
		ProjectID:      project.ID,
		Street:         row.Street,
		Suburb:         row.Suburb,
		Postcode:       row.Postcode,
		State:          council.DefaultState,
		Bedrooms:       row.Bedrooms,
		OutputQuantity: row.OutputQuantity,
		Budget:         row.AddressBudget,
	}
	if address.Suburb == "" && council.DefaultSuburb != nil {
		address.Suburb = *council.DefaultSuburb
	}
	if address.Postcode == "" && council.DefaultPostcode != nil {
		address.Postcode = *council.DefaultPostcode
	}
	if address.State == "" {
		address.State = "QLD"
	}
	if err := s.projects.CreateAddress(ctx, address); err != nil {
		return err
	}

	if row.WorkTypeCode == "" || row.OutputTypeCode == "" {
		return nil
	}
	workType, err := s.reference.GetWorkTypeByCode(ctx, row.WorkTypeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown work type %q", row.WorkTypeCode)
		}
		return err
	}
	outputType, err := s.reference.GetOutputTypeByCode(ctx, row.OutputTypeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown output type %q", row.OutputTypeCode)
		}
		return err
	}
	if !workType.AllowsOutput(outputType.ID) {
		return fmt.Errorf("output type %q not allowed for work type %q", row.OutputTypeCode, row.WorkTypeCode)
	}

	work := &model.Work{
		ID:             uuid.New(),
		AddressID:      address.ID,
		WorkTypeID:     workType.ID,
		OutputTypeID:   outputType.ID,
		OutputQuantity: row.OutputQuantity,
		Bedrooms:       row.Bedrooms,
		StartDate:      row.StartDate,
	}
	return s.projects.CreateWork(ctx, work, nil)
}
