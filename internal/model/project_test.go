package model

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestTransitionForward(t *testing.T) {
	cases := []struct {
		from  ProjectState
		event LifecycleEvent
		want  ProjectState
	}{
		{StateProspective, EventProgrammed, StateProgrammed},
		{StateProspective, EventInstalmentReleased, StateFunded},
		{StateProgrammed, EventInstalmentReleased, StateFunded},
		{StateFunded, EventStage1Accepted, StateCommenced},
		{StateCommenced, EventStage2Submitted, StateUnderConstruction},
		{StateUnderConstruction, EventStage2Accepted, StateCompleted},
		// Skipping intermediate states is allowed; only regression is not.
		{StateProspective, EventStage2Accepted, StateCompleted},
	}
	for _, tc := range cases {
		got, err := tc.from.Transition(tc.event)
		if err != nil {
			t.Fatalf("%s + %s: unexpected error %v", tc.from, tc.event, err)
		}
		if got != tc.want {
			t.Errorf("%s + %s = %s, want %s", tc.from, tc.event, got, tc.want)
		}
	}
}

func TestTransitionIdempotentAtTarget(t *testing.T) {
	got, err := StateFunded.Transition(EventInstalmentReleased)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StateFunded {
		t.Errorf("got %s, want funded", got)
	}
}

func TestTransitionNeverRegresses(t *testing.T) {
	_, err := StateCompleted.Transition(EventInstalmentReleased)
	var transition *TransitionError
	if !errors.As(err, &transition) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if transition.From != StateCompleted || transition.Event != EventInstalmentReleased {
		t.Errorf("unexpected error detail: %+v", transition)
	}
}

func TestTransitionUnknownEvent(t *testing.T) {
	if _, err := StateFunded.Transition(LifecycleEvent("renovated")); err == nil {
		t.Fatal("expected error for unknown event")
	}
}

func TestFillStageDates(t *testing.T) {
	p := Project{StartDate: datePtr(2024, time.January, 15)}
	if !p.FillStageDates() {
		t.Fatal("expected dates to be filled")
	}

	if !p.Stage1Target.Equal(date(2025, time.January, 15)) {
		t.Errorf("stage1 target = %v", p.Stage1Target)
	}
	if !p.Stage1Sunset.Equal(date(2025, time.July, 15)) {
		t.Errorf("stage1 sunset = %v", p.Stage1Sunset)
	}
	if !p.Stage2Target.Equal(date(2026, time.January, 15)) {
		t.Errorf("stage2 target = %v", p.Stage2Target)
	}
	if !p.Stage2Sunset.Equal(date(2026, time.July, 15)) {
		t.Errorf("stage2 sunset = %v", p.Stage2Sunset)
	}
}

func TestFillStageDatesKeepsExplicitValues(t *testing.T) {
	explicit := datePtr(2030, time.June, 1)
	p := Project{StartDate: datePtr(2024, time.January, 15), Stage1Target: explicit}
	p.FillStageDates()

	if !p.Stage1Target.Equal(*explicit) {
		t.Errorf("explicit stage1 target was recalculated: %v", p.Stage1Target)
	}
	// Stage 2 target chains off the explicit stage 1 target.
	if !p.Stage2Target.Equal(date(2031, time.June, 1)) {
		t.Errorf("stage2 target = %v", p.Stage2Target)
	}

	// A second fill changes nothing.
	if p.FillStageDates() {
		t.Error("second fill reported changes")
	}
}

func TestFillStageDatesNoStartDate(t *testing.T) {
	p := Project{}
	if p.FillStageDates() {
		t.Error("expected no change without a start date")
	}
	if p.Stage1Target != nil {
		t.Error("stage1 target set without start date")
	}
}

func TestTimelinessOnlyInActiveStates(t *testing.T) {
	past := datePtr(2024, time.January, 1)
	today := date(2024, time.June, 1)

	for _, state := range []ProjectState{StateProspective, StateProgrammed, StateFunded, StateCompleted} {
		p := Project{State: state, Stage1Target: past, Stage1Sunset: past, Stage2Target: past, Stage2Sunset: past}
		if p.IsLate(today) || p.IsOverdue(today) {
			t.Errorf("state %s should never be late or overdue", state)
		}
	}

	commenced := Project{State: StateCommenced, Stage1Target: past, Stage1Sunset: datePtr(2024, time.December, 1)}
	if !commenced.IsLate(today) {
		t.Error("commenced past stage1 target should be late")
	}
	if commenced.IsOverdue(today) {
		t.Error("commenced before stage1 sunset should not be overdue")
	}
	if commenced.IsOnTime(today) {
		t.Error("late project reported on time")
	}

	underConstruction := Project{State: StateUnderConstruction, Stage2Sunset: past}
	if !underConstruction.IsOverdue(today) {
		t.Error("under construction past stage2 sunset should be overdue")
	}
}

func TestProgramYear(t *testing.T) {
	now := date(2026, time.March, 1)

	p := Project{}
	if got := p.ProgramYear(now); got != "2026" {
		t.Errorf("fallback year = %s", got)
	}

	p.FundingSchedule = &FundingSchedule{FirstReleaseDate: datePtr(2023, time.September, 30)}
	if got := p.ProgramYear(now); got != "2023" {
		t.Errorf("schedule year = %s", got)
	}
}
