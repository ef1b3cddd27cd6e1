package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestQuarterLabel(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{date(2024, time.January, 1), "Jan-Mar 2024"},
		{date(2024, time.March, 31), "Jan-Mar 2024"},
		{date(2024, time.April, 1), "Apr-Jun 2024"},
		{date(2024, time.August, 15), "Jul-Sep 2024"},
		{date(2024, time.December, 31), "Oct-Dec 2024"},
	}
	for _, tc := range cases {
		if got := QuarterLabel(tc.date); got != tc.want {
			t.Errorf("QuarterLabel(%v) = %s, want %s", tc.date, got, tc.want)
		}
	}
}

func TestFillQuarter(t *testing.T) {
	q := QuarterlyReport{SubmissionDate: date(2024, time.May, 10)}
	q.FillQuarter()
	if q.Quarter != "Apr-Jun 2024" {
		t.Errorf("quarter = %s", q.Quarter)
	}

	q = QuarterlyReport{Quarter: "Jan-Mar 2023", SubmissionDate: date(2024, time.May, 10)}
	q.FillQuarter()
	if q.Quarter != "Jan-Mar 2023" {
		t.Error("explicit quarter was overwritten")
	}
}

func TestStagePaymentsDue(t *testing.T) {
	funding := decimal.NewFromInt(550000)
	if got := Stage1PaymentDue(funding); got.String() != "330000" {
		t.Errorf("stage 1 payment = %s, want 330000", got)
	}
	if got := Stage2PaymentDue(funding); got.String() != "55000" {
		t.Errorf("stage 2 payment = %s, want 55000", got)
	}
}

func TestQuarterlyTotalContributions(t *testing.T) {
	council := decimal.NewFromInt(1000)
	other := decimal.NewFromInt(250)
	q := QuarterlyReport{CouncilContributionsAmount: &council, OtherContributionsAmount: &other}
	if q.TotalContributions().String() != "1250" {
		t.Errorf("total = %s", q.TotalContributions())
	}
}

func completeConstructionStage1() Stage1Report {
	return Stage1Report{
		ReportType:                      ReportConstruction,
		ExpenditureRecordsMaintained:    true,
		QuarterlyReportsProvided:        true,
		NativeTitleAddressed:            true,
		HeritageMattersAddressed:        true,
		DevelopmentApprovalObtained:     true,
		TenureObtained:                  true,
		LandSurveyed:                    true,
		DesignApproved:                  true,
		StructuralCertificationObtained: true,
		InfrastructureApprovalsObtained: true,
		BuildingApprovalObtained:        true,
		TendersCalled:                   true,
		ContractorAppointed:             true,
	}
}

func TestStage1IsComplete(t *testing.T) {
	r := completeConstructionStage1()
	if !r.IsComplete() {
		t.Fatal("fully flagged construction report should be complete")
	}

	r = completeConstructionStage1()
	r.TendersCalled = false
	if r.IsComplete() {
		t.Error("construction report complete without tenders")
	}

	// Land reports skip design, tender and building items.
	land := Stage1Report{
		ReportType:                   ReportLand,
		ExpenditureRecordsMaintained: true,
		QuarterlyReportsProvided:     true,
		NativeTitleAddressed:         true,
		HeritageMattersAddressed:     true,
		DevelopmentApprovalObtained:  true,
		TenureObtained:               true,
		LandSurveyed:                 true,
	}
	if !land.IsComplete() {
		t.Error("land report should skip construction items")
	}

	// Subdivision plan only counts when subdivision is required.
	land.SubdivisionRequired = true
	if land.IsComplete() {
		t.Error("subdivision required without plan should be incomplete")
	}
	land.SubdivisionPlanPrepared = true
	if !land.IsComplete() {
		t.Error("subdivision plan satisfies the conditional item")
	}
}

func TestStage2IsComplete(t *testing.T) {
	construction := Stage2Report{
		ReportType:                          ReportConstruction,
		ScheduleProvided:                    true,
		QuarterlyReportsProvided:            true,
		MonthlyTrackersProvided:             true,
		PracticalCompletionAchieved:         true,
		PracticalCompletionNotificationSent: true,
		HandoverRequirementsMet:             true,
		HandoverChecklistCompleted:          true,
		WarrantiesProvided:                  true,
		FinalPlansProvided:                  true,
		JointInspectionCompleted:            true,
	}
	if !construction.IsComplete() {
		t.Fatal("fully flagged construction report should be complete")
	}

	construction.WarrantiesProvided = false
	if construction.IsComplete() {
		t.Error("construction report complete without warranties")
	}

	land := Stage2Report{
		ReportType:               ReportLand,
		ScheduleProvided:         true,
		QuarterlyReportsProvided: true,
		LandWorksCompleted:       true,
	}
	if !land.IsComplete() {
		t.Error("land report needs only schedule, quarterlies and land works")
	}
	land.LandWorksCompleted = false
	if land.IsComplete() {
		t.Error("land report complete without land works")
	}
}

func TestCopyMilestonesFrom(t *testing.T) {
	prevNotes := "previous"
	prev := &MonthlyTracker{
		ID:            uuid.New(),
		WorkID:        uuid.New(),
		Month:         date(2024, time.April, 1),
		ProgressNotes: &prevNotes,
		SlabDate:      datePtr(2024, time.March, 12),
		RoofSheetingDate: datePtr(2024, time.April, 2),
	}

	notes := "current"
	current := MonthlyTracker{
		ID:            uuid.New(),
		WorkID:        prev.WorkID,
		Month:         date(2024, time.May, 1),
		ProgressNotes: &notes,
	}
	id := current.ID
	current.CopyMilestonesFrom(prev)

	if current.ID != id || current.Month != date(2024, time.May, 1) {
		t.Error("identity fields were overwritten by the copy")
	}
	if current.ProgressNotes == nil || *current.ProgressNotes != "current" {
		t.Error("progress notes were overwritten by the copy")
	}
	if current.SlabDate == nil || !current.SlabDate.Equal(*prev.SlabDate) {
		t.Error("milestone dates were not carried forward")
	}
	if current.RoofSheetingDate == nil {
		t.Error("later milestones were not carried forward")
	}
}
