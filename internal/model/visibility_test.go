package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProjectRedact(t *testing.T) {
	sap := "SAP-1001"
	cli := "CLI-42"
	forecast := decimal.NewFromInt(480000)
	contingency := decimal.NewFromInt(40000)
	floor := "concrete slab"
	roof := "metal sheeting"

	project := Project{
		SAPProject:        &sap,
		CLINo:             &cli,
		ForecastFinalCost: &forecast,
		ContingencyAmount: &contingency,
		Addresses: []Address{{
			Works: []Work{{FloorMethod: &floor, RoofMethod: &roof}},
		}},
	}

	project.Redact(map[string]bool{
		FieldSAPProject:        false,
		FieldForecastFinalCost: false,
		FieldFloorMethod:       false,
		FieldCLINo:             true,
		FieldRoofMethod:        true,
	})

	if project.SAPProject != nil {
		t.Error("hidden SAP project survived redaction")
	}
	if project.ForecastFinalCost != nil {
		t.Error("hidden forecast final cost survived redaction")
	}
	if project.Addresses[0].Works[0].FloorMethod != nil {
		t.Error("hidden floor method survived redaction")
	}
	if project.CLINo == nil || *project.CLINo != cli {
		t.Error("visible CLI number was redacted")
	}
	if project.Addresses[0].Works[0].RoofMethod == nil {
		t.Error("visible roof method was redacted")
	}
	// A field with no entry at all stays visible.
	if project.ContingencyAmount == nil {
		t.Error("unlisted contingency was redacted")
	}
}
