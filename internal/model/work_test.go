package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTotalDwellings(t *testing.T) {
	cases := []struct {
		code     string
		quantity int
		want     int
	}{
		{"house", 3, 3},
		{"duplex", 2, 4},
		{"triplex", 2, 6},
	}
	for _, tc := range cases {
		w := Work{OutputQuantity: tc.quantity, OutputType: &OutputType{Code: tc.code}}
		if got := w.TotalDwellings(); got != tc.want {
			t.Errorf("%s x%d = %d dwellings, want %d", tc.code, tc.quantity, got, tc.want)
		}
	}

	bare := Work{OutputQuantity: 5}
	if bare.TotalDwellings() != 5 {
		t.Error("missing output type should default the multiplier to 1")
	}
}

func TestTotalBedrooms(t *testing.T) {
	bedrooms := 3
	w := Work{OutputQuantity: 2, Bedrooms: &bedrooms, OutputType: &OutputType{Code: "duplex"}}
	if got := w.TotalBedrooms(); got != 12 {
		t.Errorf("bedrooms = %d, want 12", got)
	}

	w.Bedrooms = nil
	if w.TotalBedrooms() != 0 {
		t.Error("unknown bedrooms should total zero")
	}
}

func TestWithinDefectLiability(t *testing.T) {
	pc := datePtr(2024, time.January, 15)

	if !WithinDefectLiability(pc, date(2024, time.June, 1)) {
		t.Error("six months in should be within the window")
	}
	// The window is inclusive of the twelve-month anniversary.
	if !WithinDefectLiability(pc, date(2025, time.January, 15)) {
		t.Error("anniversary day should still be within the window")
	}
	if WithinDefectLiability(pc, date(2025, time.January, 16)) {
		t.Error("day after the anniversary should be outside the window")
	}
	if WithinDefectLiability(nil, date(2024, time.June, 1)) {
		t.Error("no practical completion means no window")
	}
}

func TestStepFromDefault(t *testing.T) {
	def := DefaultWorkStep{
		ID:            uuid.New(),
		Order:         2,
		Name:          "Slab poured",
		DueOffsetDays: 30,
	}
	workID := uuid.New()
	start := datePtr(2024, time.February, 1)

	step := StepFromDefault(def, workID, start)
	if step.WorkID != workID || step.Name != "Slab poured" || step.Order != 2 {
		t.Errorf("unexpected step: %+v", step)
	}
	if step.DueDate == nil || !step.DueDate.Equal(date(2024, time.March, 2)) {
		t.Errorf("due date = %v", step.DueDate)
	}

	step = StepFromDefault(def, workID, nil)
	if step.DueDate != nil {
		t.Error("due date derived without a start date")
	}
}

func TestWorkTypeAllowsOutput(t *testing.T) {
	allowed := OutputType{ID: uuid.New(), Code: "house"}
	wt := WorkType{AllowedOutputTypes: []OutputType{allowed}}

	if !wt.AllowsOutput(allowed.ID) {
		t.Error("listed output rejected")
	}
	if wt.AllowsOutput(uuid.New()) {
		t.Error("unlisted output accepted")
	}
}
