package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// ReferenceRepository covers the master data: councils, programs, funding
// sources, work/output types and construction methods.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) GetCouncil(ctx context.Context, id uuid.UUID) (*model.Council, error) {
	var council model.Council
	err := r.db.WithContext(ctx).First(&council, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &council, nil
}

func (r *ReferenceRepository) GetCouncilByName(ctx context.Context, name string) (*model.Council, error) {
	var council model.Council
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&council).Error
	if err != nil {
		return nil, err
	}
	return &council, nil
}

func (r *ReferenceRepository) ListCouncils(ctx context.Context) ([]model.Council, error) {
	var councils []model.Council
	if err := r.db.WithContext(ctx).Order("name").Find(&councils).Error; err != nil {
		return nil, err
	}
	return councils, nil
}

func (r *ReferenceRepository) CreateCouncil(ctx context.Context, council *model.Council) error {
	return r.db.WithContext(ctx).Create(council).Error
}

func (r *ReferenceRepository) UpdateCouncil(ctx context.Context, council *model.Council) error {
	return r.db.WithContext(ctx).Save(council).Error
}

func (r *ReferenceRepository) GetProgram(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *ReferenceRepository) GetProgramByName(ctx context.Context, name string) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *ReferenceRepository) ListPrograms(ctx context.Context) ([]model.Program, error) {
	var programs []model.Program
	if err := r.db.WithContext(ctx).Order("name").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *ReferenceRepository) CreateProgram(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *ReferenceRepository) CreateContact(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ReferenceRepository) ListContacts(ctx context.Context, councilID uuid.UUID) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).
		Where("council_id = ?", councilID).
		Order("name").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ReferenceRepository) GetWorkType(ctx context.Context, id uuid.UUID) (*model.WorkType, error) {
	var workType model.WorkType
	err := r.db.WithContext(ctx).
		Preload("AllowedOutputTypes").
		First(&workType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workType, nil
}

func (r *ReferenceRepository) GetWorkTypeByCode(ctx context.Context, code string) (*model.WorkType, error) {
	var workType model.WorkType
	err := r.db.WithContext(ctx).
		Preload("AllowedOutputTypes").
		Where("code = ?", code).
		First(&workType).Error
	if err != nil {
		return nil, err
	}
	return &workType, nil
}

func (r *ReferenceRepository) ListWorkTypes(ctx context.Context, activeOnly bool) ([]model.WorkType, error) {
	query := r.db.WithContext(ctx).Preload("AllowedOutputTypes").Order("name")
	if activeOnly {
		query = query.Where("is_active")
	}
	var workTypes []model.WorkType
	if err := query.Find(&workTypes).Error; err != nil {
		return nil, err
	}
	return workTypes, nil
}

func (r *ReferenceRepository) CreateWorkType(ctx context.Context, workType *model.WorkType) error {
	return r.db.WithContext(ctx).Create(workType).Error
}

func (r *ReferenceRepository) GetOutputType(ctx context.Context, id uuid.UUID) (*model.OutputType, error) {
	var outputType model.OutputType
	err := r.db.WithContext(ctx).First(&outputType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &outputType, nil
}

func (r *ReferenceRepository) GetOutputTypeByCode(ctx context.Context, code string) (*model.OutputType, error) {
	var outputType model.OutputType
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&outputType).Error
	if err != nil {
		return nil, err
	}
	return &outputType, nil
}

func (r *ReferenceRepository) ListOutputTypes(ctx context.Context, activeOnly bool) ([]model.OutputType, error) {
	query := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("is_active")
	}
	var outputTypes []model.OutputType
	if err := query.Find(&outputTypes).Error; err != nil {
		return nil, err
	}
	return outputTypes, nil
}

func (r *ReferenceRepository) CreateOutputType(ctx context.Context, outputType *model.OutputType) error {
	return r.db.WithContext(ctx).Create(outputType).Error
}

func (r *ReferenceRepository) ListConstructionMethods(ctx context.Context) ([]model.ConstructionMethod, error) {
	var methods []model.ConstructionMethod
	if err := r.db.WithContext(ctx).Order("name").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *ReferenceRepository) CreateConstructionMethod(ctx context.Context, method *model.ConstructionMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *ReferenceRepository) GetOfficer(ctx context.Context, id uuid.UUID) (*model.Officer, error) {
	var officer model.Officer
	err := r.db.WithContext(ctx).Preload("User").First(&officer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &officer, nil
}

func (r *ReferenceRepository) ListOfficers(ctx context.Context, activeOnly bool) ([]model.Officer, error) {
	query := r.db.WithContext(ctx).Preload("User")
	if activeOnly {
		query = query.Where("is_active")
	}
	var officers []model.Officer
	if err := query.Find(&officers).Error; err != nil {
		return nil, err
	}
	return officers, nil
}

func (r *ReferenceRepository) CreateOfficer(ctx context.Context, officer *model.Officer) error {
	return r.db.WithContext(ctx).Create(officer).Error
}

func (r *ReferenceRepository) UpdateOfficer(ctx context.Context, officer *model.Officer) error {
	return r.db.WithContext(ctx).Save(officer).Error
}

// WorkTypeUsage counts the works and addresses referencing a work type, for
// the admin screens that guard against retiring a type still in use.
func (r *ReferenceRepository) WorkTypeUsage(ctx context.Context, workTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT (SELECT COUNT(*) FROM works WHERE work_type_id = ?)
		     + (SELECT COUNT(*) FROM addresses WHERE work_type_id = ?)`,
		workTypeID, workTypeID).Scan(&count).Error
	return count, err
}

func (r *ReferenceRepository) OutputTypeUsage(ctx context.Context, outputTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT (SELECT COUNT(*) FROM works WHERE output_type_id = ?)
		     + (SELECT COUNT(*) FROM addresses WHERE output_type_id = ?)`,
		outputTypeID, outputTypeID).Scan(&count).Error
	return count, err
}
