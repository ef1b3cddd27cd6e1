package model

import "github.com/google/uuid"

// Field codes accepted by the visibility layer. Both construction-method
// detail fields and financial fields can be hidden from council users.
const (
	FieldSAPProject        = "sap_project"
	FieldSAPMasterProject  = "sap_master_project"
	FieldCLINo             = "cli_no"
	FieldForecastFinalCost = "forecast_final_cost"
	FieldFinalCost         = "final_cost"
	FieldCommitments       = "commitments"
	FieldContingency       = "contingency"
	FieldFloorMethod       = "floor_method"
	FieldFrameMethod       = "frame_method"
	FieldExternalWall      = "external_wall_method"
	FieldRoofMethod        = "roof_method"
	FieldCarAccommodation  = "car_accommodation"
	FieldExtensionHighLow  = "extension_high_low"
)

// KnownVisibilityFields lists every field code the overlay recognises.
var KnownVisibilityFields = []string{
	FieldSAPProject,
	FieldSAPMasterProject,
	FieldCLINo,
	FieldForecastFinalCost,
	FieldFinalCost,
	FieldCommitments,
	FieldContingency,
	FieldFloorMethod,
	FieldFrameMethod,
	FieldExternalWall,
	FieldRoofMethod,
	FieldCarAccommodation,
	FieldExtensionHighLow,
}

// Redact blanks every field the resolved visibility map marks hidden,
// including the construction-method detail on each work. Applied to council
// reads before the project is rendered.
func (p *Project) Redact(visible map[string]bool) {
	hidden := func(field string) bool {
		shown, ok := visible[field]
		return ok && !shown
	}

	if hidden(FieldSAPProject) {
		p.SAPProject = nil
	}
	if hidden(FieldSAPMasterProject) {
		p.SAPMasterProject = nil
	}
	if hidden(FieldCLINo) {
		p.CLINo = nil
	}
	if hidden(FieldForecastFinalCost) {
		p.ForecastFinalCost = nil
	}
	if hidden(FieldFinalCost) {
		p.FinalCost = nil
	}
	if hidden(FieldCommitments) {
		p.Commitments = nil
	}
	if hidden(FieldContingency) {
		p.ContingencyAmount = nil
	}

	for i := range p.Addresses {
		for j := range p.Addresses[i].Works {
			work := &p.Addresses[i].Works[j]
			if hidden(FieldFloorMethod) {
				work.FloorMethod = nil
			}
			if hidden(FieldFrameMethod) {
				work.FrameMethod = nil
			}
			if hidden(FieldExternalWall) {
				work.ExternalWallMethod = nil
			}
			if hidden(FieldRoofMethod) {
				work.RoofMethod = nil
			}
			if hidden(FieldCarAccommodation) {
				work.CarAccommodation = nil
			}
			if hidden(FieldExtensionHighLow) {
				work.ExtensionHighLow = nil
			}
		}
	}
}

// FieldVisibilitySetting is the council-wide default for one field. Absence
// of a row means the field is visible.
type FieldVisibilitySetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouncilID uuid.UUID `gorm:"type:uuid"`
	FieldName string
	Visible   bool
}

func (FieldVisibilitySetting) TableName() string { return "field_visibility_settings" }

// ProjectFieldVisibilityOverride overrides the council default for one field
// on one project.
type ProjectFieldVisibilityOverride struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid"`
	FieldName string
	Visible   bool
}

func (ProjectFieldVisibilityOverride) TableName() string { return "project_field_visibility_overrides" }
