package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hazzamyman/ricd-portal/internal/model"
)

type fakeReportStore struct {
	ReportStore

	stage1           map[uuid.UUID]*model.Stage1Report
	stage2           map[uuid.UUID]*model.Stage2Report
	quarterly        map[uuid.UUID]*model.QuarterlyReport
	previousTracker  *model.MonthlyTracker
	councilQuarterly map[string]*model.CouncilQuarterlyReport

	createdQuarterly  *model.QuarterlyReport
	createdTracker    *model.MonthlyTracker
	updatedStage1     *model.Stage1Report
	updatedStage2     *model.Stage2Report
	createdAttachment *model.ReportAttachment
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{
		stage1:           make(map[uuid.UUID]*model.Stage1Report),
		stage2:           make(map[uuid.UUID]*model.Stage2Report),
		quarterly:        make(map[uuid.UUID]*model.QuarterlyReport),
		councilQuarterly: make(map[string]*model.CouncilQuarterlyReport),
	}
}

func (f *fakeReportStore) GetQuarterly(_ context.Context, id uuid.UUID) (*model.QuarterlyReport, error) {
	if r, ok := f.quarterly[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportStore) CreateQuarterly(_ context.Context, report *model.QuarterlyReport) error {
	f.createdQuarterly = report
	f.quarterly[report.ID] = report
	return nil
}

func (f *fakeReportStore) UpdateQuarterly(_ context.Context, report *model.QuarterlyReport) error {
	f.quarterly[report.ID] = report
	return nil
}

func (f *fakeReportStore) PreviousTracker(context.Context, uuid.UUID, time.Time) (*model.MonthlyTracker, error) {
	return f.previousTracker, nil
}

func (f *fakeReportStore) CreateTracker(_ context.Context, tracker *model.MonthlyTracker) error {
	f.createdTracker = tracker
	return nil
}

func councilQuarterKey(councilID uuid.UUID, period time.Time) string {
	return councilID.String() + period.Format("2006-01")
}

func (f *fakeReportStore) GetCouncilQuarterly(_ context.Context, councilID uuid.UUID, period time.Time) (*model.CouncilQuarterlyReport, error) {
	if r, ok := f.councilQuarterly[councilQuarterKey(councilID, period)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportStore) SaveCouncilQuarterly(_ context.Context, report *model.CouncilQuarterlyReport) error {
	f.councilQuarterly[councilQuarterKey(report.CouncilID, report.Period)] = report
	return nil
}

func (f *fakeReportStore) GetStage1(_ context.Context, id uuid.UUID) (*model.Stage1Report, error) {
	if r, ok := f.stage1[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportStore) UpdateStage1(_ context.Context, report *model.Stage1Report) error {
	f.updatedStage1 = report
	return nil
}

func (f *fakeReportStore) GetStage2(_ context.Context, id uuid.UUID) (*model.Stage2Report, error) {
	if r, ok := f.stage2[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportStore) UpdateStage2(_ context.Context, report *model.Stage2Report) error {
	f.updatedStage2 = report
	return nil
}

func (f *fakeReportStore) CreateAttachment(_ context.Context, attachment *model.ReportAttachment) error {
	f.createdAttachment = attachment
	return nil
}

type fakeReportProjects struct {
	ReportProjectStore

	projects    map[uuid.UUID]*model.Project
	works       map[uuid.UUID]*model.Work
	workProject map[uuid.UUID]*model.Project
	states      map[uuid.UUID]model.ProjectState
	updated     []*model.Project
}

func newFakeReportProjects() *fakeReportProjects {
	return &fakeReportProjects{
		projects:    make(map[uuid.UUID]*model.Project),
		works:       make(map[uuid.UUID]*model.Work),
		workProject: make(map[uuid.UUID]*model.Project),
		states:      make(map[uuid.UUID]model.ProjectState),
	}
}

func (f *fakeReportProjects) Get(_ context.Context, id uuid.UUID) (*model.Project, error) {
	if p, ok := f.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportProjects) Update(_ context.Context, project *model.Project) error {
	f.updated = append(f.updated, project)
	return nil
}

func (f *fakeReportProjects) UpdateState(_ context.Context, id uuid.UUID, state model.ProjectState) error {
	f.states[id] = state
	return nil
}

func (f *fakeReportProjects) WorkProject(_ context.Context, workID uuid.UUID) (*model.Project, error) {
	if p, ok := f.workProject[workID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportProjects) GetWork(_ context.Context, id uuid.UUID) (*model.Work, error) {
	if w, ok := f.works[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func completeStage1(projectID uuid.UUID) *model.Stage1Report {
	return &model.Stage1Report{
		ID:                           uuid.New(),
		ProjectID:                    projectID,
		ReportType:                   model.ReportConstruction,
		ExpenditureRecordsMaintained: true,
		QuarterlyReportsProvided:     true,
		NativeTitleAddressed:         true,
		HeritageMattersAddressed:     true,
		DevelopmentApprovalObtained:  true,
		TenureObtained:               true,
		LandSurveyed:                 true,
		DesignApproved:               true,
		StructuralCertificationObtained: true,
		InfrastructureApprovalsObtained: true,
		BuildingApprovalObtained:        true,
		TendersCalled:                   true,
		ContractorAppointed:             true,
		RICDStatus:                      model.ReviewPending,
	}
}

func TestSubmitQuarterlyDerivesFields(t *testing.T) {
	reports := newFakeReportStore()
	projects := newFakeReportProjects()
	svc := NewReportService(reports, projects, "attachments", zerolog.Nop())

	councilID := uuid.New()
	project := &model.Project{ID: uuid.New(), CouncilID: councilID}
	estimated := decimal.NewFromInt(500000)
	work := &model.Work{ID: uuid.New(), EstimatedCost: &estimated}
	projects.works[work.ID] = work
	projects.workProject[work.ID] = project

	spent := decimal.NewFromInt(120000)
	report, err := svc.SubmitQuarterly(context.Background(), SubmitQuarterlyInput{
		WorkID:                  work.ID,
		SubmissionDate:          time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		TotalExpenditureCouncil: &spent,
		Principal:               councilPrincipal(councilID),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Quarter != "Jan-Mar 2024" {
		t.Errorf("quarter = %q, want Jan-Mar 2024", report.Quarter)
	}
	if report.UnspentFundingAmount == nil || report.UnspentFundingAmount.String() != "380000" {
		t.Errorf("unspent = %v, want 380000", report.UnspentFundingAmount)
	}
	if report.CouncilManagerDecision != model.DecisionPending {
		t.Errorf("council manager decision = %s, want pending", report.CouncilManagerDecision)
	}
}

func TestSubmitQuarterlyRejectsBadPercentage(t *testing.T) {
	reports := newFakeReportStore()
	projects := newFakeReportProjects()
	svc := NewReportService(reports, projects, "attachments", zerolog.Nop())

	councilID := uuid.New()
	work := &model.Work{ID: uuid.New()}
	projects.works[work.ID] = work
	projects.workProject[work.ID] = &model.Project{ID: uuid.New(), CouncilID: councilID}

	pct := decimal.NewFromInt(120)
	_, err := svc.SubmitQuarterly(context.Background(), SubmitQuarterlyInput{
		WorkID:                   work.ID,
		PercentageWorksCompleted: &pct,
		Principal:                councilPrincipal(councilID),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSubmitTrackerCopiesForward(t *testing.T) {
	reports := newFakeReportStore()
	projects := newFakeReportProjects()
	svc := NewReportService(reports, projects, "attachments", zerolog.Nop())

	councilID := uuid.New()
	work := &model.Work{ID: uuid.New()}
	projects.works[work.ID] = work
	projects.workProject[work.ID] = &model.Project{ID: uuid.New(), CouncilID: councilID}

	slab := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	reports.previousTracker = &model.MonthlyTracker{
		ID:       uuid.New(),
		WorkID:   work.ID,
		Month:    time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		SlabDate: &slab,
	}

	roof := time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC)
	tracker, err := svc.SubmitTracker(context.Background(), SubmitTrackerInput{
		WorkID:           work.ID,
		Month:            time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC),
		CopyFromPrevious: true,
		Apply: func(tracker *model.MonthlyTracker) {
			tracker.RoofSheetingDate = &roof
		},
		Principal: councilPrincipal(councilID),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMonth := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !tracker.Month.Equal(wantMonth) {
		t.Errorf("month = %v, want first of month", tracker.Month)
	}
	if tracker.SlabDate == nil || !tracker.SlabDate.Equal(slab) {
		t.Error("previous month's slab date not carried forward")
	}
	if tracker.RoofSheetingDate == nil || !tracker.RoofSheetingDate.Equal(roof) {
		t.Error("caller's milestone change not applied")
	}
	if tracker.ID == reports.previousTracker.ID {
		t.Error("tracker must get its own identity")
	}
}

func TestSubmitCouncilQuarterly(t *testing.T) {
	reports := newFakeReportStore()
	svc := NewReportService(reports, newFakeReportProjects(), "attachments", zerolog.Nop())

	councilID := uuid.New()
	report, err := svc.SubmitCouncilQuarterly(context.Background(), SubmitCouncilReportInput{
		CouncilID: councilID,
		Period:    time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		Principal: councilPrincipal(councilID),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantPeriod := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if !report.Period.Equal(wantPeriod) {
		t.Errorf("period = %v, want start of quarter", report.Period)
	}

	// Another submission in the same quarter is a duplicate.
	_, err = svc.SubmitCouncilQuarterly(context.Background(), SubmitCouncilReportInput{
		CouncilID: councilID,
		Period:    time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		Principal: councilPrincipal(councilID),
	})
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
}

func TestReviewStage1(t *testing.T) {
	funding := decimal.NewFromInt(550000)

	newFixtures := func() (*fakeReportStore, *fakeReportProjects, *ReportService, *model.Project) {
		reports := newFakeReportStore()
		projects := newFakeReportProjects()
		svc := NewReportService(reports, projects, "attachments", zerolog.Nop())
		project := &model.Project{
			ID:              uuid.New(),
			CouncilID:       uuid.New(),
			State:           model.StateFunded,
			FundingSchedule: &model.FundingSchedule{ID: uuid.New(), FundingAmount: funding},
		}
		projects.projects[project.ID] = project
		return reports, projects, svc, project
	}

	t.Run("acceptance requires a complete checklist", func(t *testing.T) {
		reports, _, svc, project := newFixtures()
		report := completeStage1(project.ID)
		report.TendersCalled = false
		reports.stage1[report.ID] = report

		_, err := svc.ReviewStage1(context.Background(), StageReviewInput{
			ReportID:  report.ID,
			Status:    model.ReviewAccepted,
			Principal: ricdPrincipal(),
		})
		if !errors.Is(err, ErrReportIncomplete) {
			t.Fatalf("expected ErrReportIncomplete, got %v", err)
		}
		if reports.updatedStage1 != nil {
			t.Error("incomplete report must not be saved as accepted")
		}
	})

	t.Run("acceptance commences the project", func(t *testing.T) {
		reports, projects, svc, project := newFixtures()
		report := completeStage1(project.ID)
		reports.stage1[report.ID] = report

		result, err := svc.ReviewStage1(context.Background(), StageReviewInput{
			ReportID:  report.ID,
			Status:    model.ReviewAccepted,
			Principal: ricdPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Project.State != model.StateCommenced {
			t.Errorf("state = %s, want commenced", result.Project.State)
		}
		if projects.states[project.ID] != model.StateCommenced {
			t.Error("state change not persisted")
		}
		if report.AcceptanceDate == nil {
			t.Error("acceptance date not recorded")
		}
		if result.PaymentDue == nil || result.PaymentDue.String() != "330000" {
			t.Errorf("payment due = %v, want 330000 (60%% of funding)", result.PaymentDue)
		}
	})

	t.Run("rejection needs no checklist", func(t *testing.T) {
		reports, _, svc, project := newFixtures()
		report := completeStage1(project.ID)
		report.TendersCalled = false
		reports.stage1[report.ID] = report

		result, err := svc.ReviewStage1(context.Background(), StageReviewInput{
			ReportID:  report.ID,
			Status:    model.ReviewRejected,
			Principal: ricdPrincipal(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Stage1.RICDStatus != model.ReviewRejected {
			t.Errorf("status = %s, want rejected", result.Stage1.RICDStatus)
		}
		if result.PaymentDue != nil {
			t.Error("rejection must not make a payment due")
		}
	})

	t.Run("council caller rejected", func(t *testing.T) {
		_, _, svc, project := newFixtures()
		_, err := svc.ReviewStage1(context.Background(), StageReviewInput{
			ReportID:  uuid.New(),
			Status:    model.ReviewAccepted,
			Principal: councilPrincipal(project.CouncilID),
		})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestReviewStage2AcceptanceCompletesProject(t *testing.T) {
	reports := newFakeReportStore()
	projects := newFakeReportProjects()
	svc := NewReportService(reports, projects, "attachments", zerolog.Nop())

	funding := decimal.NewFromInt(550000)
	project := &model.Project{
		ID:              uuid.New(),
		CouncilID:       uuid.New(),
		State:           model.StateUnderConstruction,
		FundingSchedule: &model.FundingSchedule{ID: uuid.New(), FundingAmount: funding},
	}
	projects.projects[project.ID] = project

	pcDate := time.Date(2024, time.November, 8, 0, 0, 0, 0, time.UTC)
	report := &model.Stage2Report{
		ID:                                  uuid.New(),
		ProjectID:                           project.ID,
		ReportType:                          model.ReportConstruction,
		ScheduleProvided:                    true,
		QuarterlyReportsProvided:            true,
		MonthlyTrackersProvided:             true,
		PracticalCompletionAchieved:         true,
		PracticalCompletionDate:             &pcDate,
		PracticalCompletionNotificationSent: true,
		HandoverRequirementsMet:             true,
		HandoverChecklistCompleted:          true,
		WarrantiesProvided:                  true,
		FinalPlansProvided:                  true,
		JointInspectionCompleted:            true,
		RICDStatus:                          model.ReviewPending,
	}
	reports.stage2[report.ID] = report

	result, err := svc.ReviewStage2(context.Background(), StageReviewInput{
		ReportID:  report.ID,
		Status:    model.ReviewAccepted,
		Principal: ricdPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Project.State != model.StateCompleted {
		t.Errorf("state = %s, want completed", result.Project.State)
	}
	if project.ActualCompletion == nil || !project.ActualCompletion.Equal(pcDate) {
		t.Error("practical completion date not recorded on the project")
	}
	if len(projects.updated) != 1 {
		t.Errorf("expected 1 project update, got %d", len(projects.updated))
	}
	if result.PaymentDue == nil || result.PaymentDue.String() != "55000" {
		t.Errorf("payment due = %v, want 55000 (10%% of funding)", result.PaymentDue)
	}
}

func TestDecideQuarterlyAsCouncilManager(t *testing.T) {
	reports := newFakeReportStore()
	projects := newFakeReportProjects()
	svc := NewReportService(reports, projects, "attachments", zerolog.Nop())

	councilID := uuid.New()
	report := &model.QuarterlyReport{ID: uuid.New(), WorkID: uuid.New(), CouncilManagerDecision: model.DecisionPending}
	reports.quarterly[report.ID] = report
	projects.workProject[report.WorkID] = &model.Project{ID: uuid.New(), CouncilID: councilID}

	manager := model.Principal{UserID: uuid.New(), Role: model.RoleCouncilManager, CouncilID: &councilID}
	decided, err := svc.DecideQuarterlyAsCouncilManager(context.Background(), QuarterlyDecisionInput{
		ReportID:  report.ID,
		Decision:  model.DecisionApproved,
		Principal: manager,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.CouncilManagerDecision != model.DecisionApproved || decided.CouncilManagerDecisionDate == nil {
		t.Errorf("decision not recorded: %+v", decided)
	}

	// A plain council user cannot sign off.
	_, err = svc.DecideQuarterlyAsCouncilManager(context.Background(), QuarterlyDecisionInput{
		ReportID:  report.ID,
		Decision:  model.DecisionApproved,
		Principal: councilPrincipal(councilID),
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestReviewQuarterlyDecisionNeedsManager(t *testing.T) {
	reports := newFakeReportStore()
	svc := NewReportService(reports, newFakeReportProjects(), "attachments", zerolog.Nop())

	report := &model.QuarterlyReport{ID: uuid.New(), ManagerDecision: model.DecisionPending}
	reports.quarterly[report.ID] = report

	// Staff may record an assessment but not decide.
	_, err := svc.ReviewQuarterly(context.Background(), QuarterlyReviewInput{
		ReportID:  report.ID,
		Decision:  model.DecisionApproved,
		Principal: ricdPrincipal(),
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("staff decision: expected ErrPermissionDenied, got %v", err)
	}

	notes := "assessed on site"
	assessed, err := svc.ReviewQuarterly(context.Background(), QuarterlyReviewInput{
		ReportID:        report.ID,
		Decision:        model.DecisionPending,
		AssessmentNotes: &notes,
		Principal:       ricdPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessed.StaffAssessmentNotes == nil || assessed.StaffAssessedDate == nil {
		t.Error("staff assessment not recorded")
	}

	decided, err := svc.ReviewQuarterly(context.Background(), QuarterlyReviewInput{
		ReportID:  report.ID,
		Decision:  model.DecisionApproved,
		Principal: ricdManagerPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.ManagerDecision != model.DecisionApproved || decided.ManagerDecisionDate == nil {
		t.Error("manager decision not recorded")
	}
}

func TestAddAttachmentStoresUnderConfiguredDir(t *testing.T) {
	reports := newFakeReportStore()
	svc := NewReportService(reports, newFakeReportProjects(), "uploads/reports", zerolog.Nop())

	reportID := uuid.New()
	attachment, err := svc.AddAttachment(context.Background(), AttachmentInput{
		QuarterlyReportID: &reportID,
		Name:              "Site photos",
		FilePath:          "site-photos.zip",
		Principal:         ricdPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("uploads/reports", "site-photos.zip"); attachment.FilePath != want {
		t.Errorf("file path = %q, want %q", attachment.FilePath, want)
	}
	if reports.createdAttachment == nil {
		t.Fatal("attachment was not persisted")
	}
}

func TestAddAttachmentRejectsEscapingPaths(t *testing.T) {
	svc := NewReportService(newFakeReportStore(), newFakeReportProjects(), "uploads/reports", zerolog.Nop())

	reportID := uuid.New()
	for _, path := range []string{"../secrets.txt", "/etc/passwd", "a/../../b"} {
		_, err := svc.AddAttachment(context.Background(), AttachmentInput{
			QuarterlyReportID: &reportID,
			Name:              "Bad",
			FilePath:          path,
			Principal:         ricdPrincipal(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("path %q: expected ErrInvalidInput, got %v", path, err)
		}
	}
}
