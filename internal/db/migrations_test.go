package db

import (
	"strings"
	"testing"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// The enum literals in the schema must match the values the Go layer writes,
// or every insert into an enum-typed column is rejected by the driver.
func TestMigrationEnumsMatchModelConstants(t *testing.T) {
	schema := strings.Join(migrationStatements, "\n")

	roles := []model.Role{
		model.RoleRICDStaff,
		model.RoleRICDManager,
		model.RoleCouncilUser,
		model.RoleCouncilManager,
	}
	for _, role := range roles {
		if !strings.Contains(schema, "'"+string(role)+"'") {
			t.Errorf("user_role enum is missing %q", role)
		}
	}

	states := []model.ProjectState{
		model.StateProspective,
		model.StateProgrammed,
		model.StateFunded,
		model.StateCommenced,
		model.StateUnderConstruction,
		model.StateCompleted,
	}
	for _, state := range states {
		if !strings.Contains(schema, "'"+string(state)+"'") {
			t.Errorf("project_state enum is missing %q", state)
		}
	}

	kinds := []model.AgreementType{
		model.AgreementFundingSchedule,
		model.AgreementFRPF,
		model.AgreementIFRPF,
		model.AgreementRCPF,
	}
	for _, kind := range kinds {
		if !strings.Contains(schema, "'"+string(kind)+"'") {
			t.Errorf("agreement_type enum is missing %q", kind)
		}
	}
}
