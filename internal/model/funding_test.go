package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFillFirstPaymentWithContingencyPercentage(t *testing.T) {
	schedule := FundingSchedule{
		FundingScheduleNumber: 7,
		FundingAmount:         decimal.NewFromInt(550000),
	}
	pct := decimal.NewFromFloat(0.10)
	now := date(2024, time.March, 1)

	schedule.FillFirstPayment(&pct, decimal.NewFromFloat(0.9), now)

	if schedule.FirstPaymentAmount == nil || schedule.FirstPaymentAmount.String() != "495000" {
		t.Fatalf("first payment = %v, want 495000", schedule.FirstPaymentAmount)
	}
	if schedule.FirstReleaseDate == nil || !schedule.FirstReleaseDate.Equal(date(2024, time.March, 31)) {
		t.Errorf("release date = %v, want 30 days after now", schedule.FirstReleaseDate)
	}
	if schedule.FirstReferenceNumber == nil || *schedule.FirstReferenceNumber != "FS-7-001" {
		t.Errorf("reference = %v, want FS-7-001", schedule.FirstReferenceNumber)
	}
}

func TestFillFirstPaymentWithholdsContingencyOnly(t *testing.T) {
	contingency := decimal.NewFromInt(20000)
	schedule := FundingSchedule{
		FundingScheduleNumber: 3,
		FundingAmount:         decimal.NewFromInt(500000),
		ContingencyAmount:     &contingency,
	}
	pct := decimal.NewFromFloat(0.10)
	schedule.FillFirstPayment(&pct, decimal.NewFromFloat(0.9), time.Now())

	// The recorded contingency amount is already part of the withheld
	// percentage; it is never added back on top.
	if schedule.FirstPaymentAmount.String() != "450000" {
		t.Errorf("first payment = %s, want 450000", schedule.FirstPaymentAmount)
	}
}

func TestFillFirstPaymentDefaultsTo90Percent(t *testing.T) {
	schedule := FundingSchedule{
		FundingScheduleNumber: 1,
		FundingAmount:         decimal.NewFromInt(100000),
	}
	schedule.FillFirstPayment(nil, decimal.NewFromFloat(0.9), time.Now())

	if schedule.FirstPaymentAmount.String() != "90000" {
		t.Errorf("first payment = %s, want 90000", schedule.FirstPaymentAmount)
	}
}

func TestFillFirstPaymentLeavesSetFieldsAlone(t *testing.T) {
	existing := decimal.NewFromInt(12345)
	schedule := FundingSchedule{
		FundingAmount:      decimal.NewFromInt(100000),
		FirstPaymentAmount: &existing,
	}
	schedule.FillFirstPayment(nil, decimal.NewFromFloat(0.9), time.Now())

	if !schedule.FirstPaymentAmount.Equal(existing) {
		t.Errorf("existing first payment was overwritten: %s", schedule.FirstPaymentAmount)
	}
	if schedule.FirstReleaseDate != nil {
		t.Error("release date derived despite set payment")
	}
}

func TestFillFirstPaymentZeroFunding(t *testing.T) {
	schedule := FundingSchedule{}
	schedule.FillFirstPayment(nil, decimal.NewFromFloat(0.9), time.Now())
	if schedule.FirstPaymentAmount != nil {
		t.Error("payment derived for zero funding")
	}
}

func TestFillExecutedDate(t *testing.T) {
	councilSigned := datePtr(2024, time.February, 1)
	delegateSigned := datePtr(2024, time.February, 10)

	schedule := FundingSchedule{DateCouncilSigned: councilSigned, DateDelegateSigned: delegateSigned}
	schedule.FillExecutedDate()
	if schedule.ExecutedDate == nil || !schedule.ExecutedDate.Equal(*delegateSigned) {
		t.Errorf("executed = %v, want later signature", schedule.ExecutedDate)
	}

	schedule = FundingSchedule{DateCouncilSigned: councilSigned}
	schedule.FillExecutedDate()
	if schedule.ExecutedDate == nil || !schedule.ExecutedDate.Equal(*councilSigned) {
		t.Errorf("executed = %v, want sole signature", schedule.ExecutedDate)
	}

	schedule = FundingSchedule{}
	schedule.FillExecutedDate()
	if schedule.ExecutedDate != nil {
		t.Error("executed date set without signatures")
	}
}

func TestScheduleTotalFunding(t *testing.T) {
	contingency := decimal.NewFromInt(5000)
	schedule := FundingSchedule{FundingAmount: decimal.NewFromInt(100000), ContingencyAmount: &contingency}
	if schedule.TotalFunding().String() != "105000" {
		t.Errorf("total = %s", schedule.TotalFunding())
	}
}

func TestInstalmentReleased(t *testing.T) {
	var i Instalment
	if i.Released() {
		t.Error("fresh instalment reported released")
	}
	i.Paid = true
	if !i.Released() {
		t.Error("paid instalment not released")
	}
	i = Instalment{ReleaseDate: datePtr(2024, time.May, 1)}
	if !i.Released() {
		t.Error("dated instalment not released")
	}
}
