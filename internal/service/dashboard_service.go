package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

// DashboardProjectStore is the slice of the project store dashboards read
// from.
type DashboardProjectStore interface {
	List(ctx context.Context, councilID *uuid.UUID, state *model.ProjectState) ([]model.Project, error)
	ProgressAverage(ctx context.Context, projectID uuid.UUID) (float64, error)
	SpentTotal(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error)
}

// DashboardReportStore supplies the latest submission timestamps for
// overdue-report flags.
type DashboardReportStore interface {
	LatestQuarterlySubmission(ctx context.Context, projectID uuid.UUID) (*time.Time, error)
	LatestTrackerMonth(ctx context.Context, projectID uuid.UUID) (*time.Time, error)
}

// ProjectSummary is one dashboard row.
type ProjectSummary struct {
	ProjectID        uuid.UUID          `json:"project_id"`
	Name             string             `json:"name"`
	CouncilName      string             `json:"council_name"`
	State            model.ProjectState `json:"state"`
	Progress         float64            `json:"progress"`
	BudgetVsSpent    string             `json:"budget_vs_spent"`
	IsLate           bool               `json:"is_late"`
	IsOverdue        bool               `json:"is_overdue"`
	QuarterlyOverdue bool               `json:"quarterly_overdue"`
	TrackerMissing   bool               `json:"tracker_missing"`
}

type DashboardService struct {
	projects DashboardProjectStore
	reports  DashboardReportStore
}

func NewDashboardService(projects DashboardProjectStore, reports DashboardReportStore) *DashboardService {
	return &DashboardService{projects: projects, reports: reports}
}

// Summaries builds the dashboard rows visible to the caller. Council
// principals are always scoped to their own council.
func (s *DashboardService) Summaries(ctx context.Context, principal model.Principal, councilID *uuid.UUID) ([]ProjectSummary, error) {
	if principal.IsCouncil() {
		own, ok := principal.Council()
		if !ok {
			return nil, ErrPermissionDenied
		}
		councilID = &own
	}

	projects, err := s.projects.List(ctx, councilID, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]ProjectSummary, 0, len(projects))
	for i := range projects {
		summary, err := s.summarize(ctx, &projects[i], now)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *DashboardService) summarize(ctx context.Context, project *model.Project, now time.Time) (*ProjectSummary, error) {
	progress, err := s.projects.ProgressAverage(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	spent, err := s.projects.SpentTotal(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	summary := &ProjectSummary{
		ProjectID:     project.ID,
		Name:          project.Name,
		State:         project.State,
		Progress:      progress,
		BudgetVsSpent: BudgetVsSpent(project.TotalFunding(), spent),
		IsLate:        project.IsLate(now),
		IsOverdue:     project.IsOverdue(now),
	}
	if project.Council != nil {
		summary.CouncilName = project.Council.Name
	}

	// Report-overdue flags only apply to active stage-gated projects.
	if project.State == model.StateCommenced || project.State == model.StateUnderConstruction {
		latestQuarterly, err := s.reports.LatestQuarterlySubmission(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		summary.QuarterlyOverdue = latestQuarterly == nil || now.Sub(*latestQuarterly) > 90*24*time.Hour

		if project.State == model.StateUnderConstruction {
			latestTracker, err := s.reports.LatestTrackerMonth(ctx, project.ID)
			if err != nil {
				return nil, err
			}
			priorMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
			summary.TrackerMissing = latestTracker == nil || latestTracker.Before(priorMonth)
		}
	}
	return summary, nil
}

// BudgetVsSpent renders the budget position as "$remaining / $total". A
// project with no budget has no position to report.
func BudgetVsSpent(budget, spent decimal.Decimal) string {
	if !budget.IsPositive() {
		return "N/A"
	}
	return fmt.Sprintf("$%s / $%s", budget.Sub(spent).StringFixed(0), budget.StringFixed(0))
}
