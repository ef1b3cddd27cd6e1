package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/hazzamyman/ricd-portal/internal/model"
	"github.com/hazzamyman/ricd-portal/internal/service/mocks"
)

func TestDashboardSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mocks.NewMockDashboardProjectStore(ctrl)
	reports := mocks.NewMockDashboardReportStore(ctrl)
	svc := NewDashboardService(projects, reports)

	councilID := uuid.New()
	funding := decimal.NewFromInt(500000)
	project := model.Project{
		ID:                    uuid.New(),
		CouncilID:             councilID,
		Name:                  "Four new houses",
		State:                 model.StateUnderConstruction,
		FundingScheduleAmount: &funding,
		Council:               &model.Council{ID: councilID, Name: "Example Shire Council"},
	}

	recent := time.Now().AddDate(0, 0, -10)
	thisMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)

	projects.EXPECT().List(gomock.Any(), gomock.Nil(), gomock.Nil()).Return([]model.Project{project}, nil)
	projects.EXPECT().ProgressAverage(gomock.Any(), project.ID).Return(40.0, nil)
	projects.EXPECT().SpentTotal(gomock.Any(), project.ID).Return(decimal.NewFromInt(120000), nil)
	reports.EXPECT().LatestQuarterlySubmission(gomock.Any(), project.ID).Return(&recent, nil)
	reports.EXPECT().LatestTrackerMonth(gomock.Any(), project.ID).Return(&thisMonth, nil)

	summaries, err := svc.Summaries(context.Background(), ricdPrincipal(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}

	summary := summaries[0]
	if summary.Progress != 40.0 {
		t.Errorf("progress = %v, want 40.0", summary.Progress)
	}
	if summary.BudgetVsSpent != "$380000 / $500000" {
		t.Errorf("budget position = %q", summary.BudgetVsSpent)
	}
	if summary.CouncilName != "Example Shire Council" {
		t.Errorf("council name = %q", summary.CouncilName)
	}
	if summary.QuarterlyOverdue {
		t.Error("recent quarterly submission flagged overdue")
	}
	if summary.TrackerMissing {
		t.Error("current tracker flagged missing")
	}
}

func TestDashboardOverdueFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mocks.NewMockDashboardProjectStore(ctrl)
	reports := mocks.NewMockDashboardReportStore(ctrl)
	svc := NewDashboardService(projects, reports)

	stale := time.Now().AddDate(0, -4, 0)
	oldTracker := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -3, 0)
	project := model.Project{ID: uuid.New(), State: model.StateUnderConstruction}

	projects.EXPECT().List(gomock.Any(), gomock.Nil(), gomock.Nil()).Return([]model.Project{project}, nil)
	projects.EXPECT().ProgressAverage(gomock.Any(), project.ID).Return(0.0, nil)
	projects.EXPECT().SpentTotal(gomock.Any(), project.ID).Return(decimal.Zero, nil)
	reports.EXPECT().LatestQuarterlySubmission(gomock.Any(), project.ID).Return(&stale, nil)
	reports.EXPECT().LatestTrackerMonth(gomock.Any(), project.ID).Return(&oldTracker, nil)

	summaries, err := svc.Summaries(context.Background(), ricdPrincipal(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summaries[0].QuarterlyOverdue {
		t.Error("quarterly report older than 90 days should be flagged")
	}
	if !summaries[0].TrackerMissing {
		t.Error("tracker older than the prior month should be flagged")
	}
}

func TestDashboardFlagsSkipInactiveStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mocks.NewMockDashboardProjectStore(ctrl)
	reports := mocks.NewMockDashboardReportStore(ctrl)
	svc := NewDashboardService(projects, reports)

	project := model.Project{ID: uuid.New(), State: model.StateFunded}

	// No report-store calls expected for a funded project.
	projects.EXPECT().List(gomock.Any(), gomock.Nil(), gomock.Nil()).Return([]model.Project{project}, nil)
	projects.EXPECT().ProgressAverage(gomock.Any(), project.ID).Return(0.0, nil)
	projects.EXPECT().SpentTotal(gomock.Any(), project.ID).Return(decimal.Zero, nil)

	summaries, err := svc.Summaries(context.Background(), ricdPrincipal(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summaries[0].QuarterlyOverdue || summaries[0].TrackerMissing {
		t.Error("inactive states must not carry report flags")
	}
}

func TestDashboardCouncilScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mocks.NewMockDashboardProjectStore(ctrl)
	reports := mocks.NewMockDashboardReportStore(ctrl)
	svc := NewDashboardService(projects, reports)

	ownCouncil := uuid.New()
	otherCouncil := uuid.New()

	// The filter for another council is ignored for council callers.
	projects.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, councilID *uuid.UUID, _ *model.ProjectState) ([]model.Project, error) {
			if councilID == nil || *councilID != ownCouncil {
				t.Errorf("council caller scoped to %v, want own council", councilID)
			}
			return nil, nil
		})

	if _, err := svc.Summaries(context.Background(), councilPrincipal(ownCouncil), &otherCouncil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBudgetVsSpent(t *testing.T) {
	got := BudgetVsSpent(decimal.NewFromInt(440000), decimal.NewFromInt(120000))
	if got != "$320000 / $440000" {
		t.Errorf("got %q", got)
	}

	// Overspend shows a negative remainder rather than hiding it.
	got = BudgetVsSpent(decimal.NewFromInt(100000), decimal.NewFromInt(130000))
	if got != "$-30000 / $100000" {
		t.Errorf("got %q", got)
	}

	if got := BudgetVsSpent(decimal.Zero, decimal.NewFromInt(5000)); got != "N/A" {
		t.Errorf("zero budget: got %q", got)
	}
}
