package service

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrBudgetExceedsFunding  = errors.New("address budgets exceed project funding")
	ErrOutputNotAllowed      = errors.New("output type not allowed for work type")
	ErrReportIncomplete      = errors.New("report requirements not met")
	ErrNoProjectForSchedule  = errors.New("no projects attached to funding schedule")
	ErrDuplicateSubmission   = errors.New("submission already exists for period")
)
