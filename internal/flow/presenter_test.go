package flow

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/swiftvtu/vtu_api/internal/models"
)

func presenterFixture() (models.Selection, models.TransactionOutcome, time.Time) {
	plan := models.Plan{ID: "p1", Size: "1GB", Validate: "30", Price: 500}
	sel := models.Selection{
		Network:  models.NetworkAirtel,
		PlanType: "SME",
		Plan:     &plan,
		Phone:    "08021234567",
	}
	out := models.TransactionOutcome{
		Status:          models.OutcomeSuccess,
		Message:         "Transaction successful",
		TransactionID:   "TRX-42",
		TransactionTime: "2025-06-01 12:00:00",
		Reference:       "REF-7",
	}
	now := time.Date(2025, 6, 1, 12, 0, 5, 0, time.Local)
	return sel, out, now
}

func TestResult_SuccessFields(t *testing.T) {
	sel, out, now := presenterFixture()
	view := Result(sel, out, now)

	if view.StatusText != "TRANSACTION SUCCESSFUL" || view.StatusTone != "green" {
		t.Errorf("status copy = (%q, %q)", view.StatusText, view.StatusTone)
	}
	if view.Amount != "₦500.00" {
		t.Errorf("amount = %q", view.Amount)
	}
	if view.TransactionType != "DATA" {
		t.Errorf("transaction type = %q", view.TransactionType)
	}
	if view.ExpiryTime != "2025-07-01 12:00:00" {
		t.Errorf("expiry = %q, want transaction time + 30 days", view.ExpiryTime)
	}
	if !strings.Contains(view.CustomerMessage, "08021234567") || !strings.Contains(view.CustomerMessage, "REF-7") {
		t.Errorf("customer message = %q", view.CustomerMessage)
	}
}

func TestResult_NonSuccessHasNoExpiryOrCustomerMessage(t *testing.T) {
	sel, out, now := presenterFixture()
	for _, status := range []models.OutcomeStatus{models.OutcomeInsufficient, models.OutcomeIncorrectPin, models.OutcomeFailure} {
		out.Status = status
		view := Result(sel, out, now)
		if view.ExpiryTime != "" || view.CustomerMessage != "" {
			t.Errorf("%s: expiry/customer message set on non-success", status)
		}
	}
}

func TestResult_StatusCopyTable(t *testing.T) {
	sel, out, now := presenterFixture()
	cases := []struct {
		status models.OutcomeStatus
		text   string
		tone   string
	}{
		{models.OutcomeSuccess, "TRANSACTION SUCCESSFUL", "green"},
		{models.OutcomeInsufficient, "INSUFFICIENT BALANCE", "amber"},
		{models.OutcomeIncorrectPin, "INCORRECT PIN", "red"},
		{models.OutcomeFailure, "TRANSACTION FAILED", "red"},
	}
	for _, tc := range cases {
		out.Status = tc.status
		view := Result(sel, out, now)
		if view.StatusText != tc.text || view.StatusTone != tc.tone {
			t.Errorf("%s: got (%q, %q), want (%q, %q)", tc.status, view.StatusText, view.StatusTone, tc.text, tc.tone)
		}
	}
}

func TestReceipt_ShortLabels(t *testing.T) {
	sel, out, now := presenterFixture()
	cases := map[models.OutcomeStatus]string{
		models.OutcomeSuccess:      "SUCCESSFUL",
		models.OutcomeInsufficient: "INSUFFICIENT BALANCE",
		models.OutcomeIncorrectPin: "INCORRECT PIN",
		models.OutcomeFailure:      "FAILED",
	}
	for status, want := range cases {
		out.Status = status
		view := Receipt(sel, out, now)
		if view.StatusText != want {
			t.Errorf("%s: receipt label = %q, want %q", status, view.StatusText, want)
		}
	}
	out.Status = models.OutcomeSuccess
	view := Receipt(sel, out, now)
	if view.TransactionType != "Data Purchase" {
		t.Errorf("receipt transaction type = %q", view.TransactionType)
	}
}

func TestDerivation_IdempotentAndConsistentAcrossViews(t *testing.T) {
	sel, out, now := presenterFixture()

	first := Result(sel, out, now)
	second := Result(sel, out, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("result derivation not idempotent:\n%+v\n%+v", first, second)
	}

	receipt1 := Receipt(sel, out, now)
	receipt2 := Receipt(sel, out, now)
	if !reflect.DeepEqual(receipt1, receipt2) {
		t.Errorf("receipt derivation not idempotent")
	}

	// Result and receipt must agree on the shared fields.
	if first.TransactionID != receipt1.TransactionID ||
		first.TransactionTime != receipt1.Time ||
		first.Amount != receipt1.Amount ||
		first.MobileNumber != receipt1.MobileNumber {
		t.Errorf("result/receipt drift:\n%+v\n%+v", first, receipt1)
	}
}

func TestExpiry_UnparsableTimeAnchorsOnNow(t *testing.T) {
	sel, out, now := presenterFixture()
	out.TransactionTime = "garbage"
	view := Result(sel, out, now)
	want := now.AddDate(0, 0, 30).Format("2006-01-02 15:04:05")
	if view.ExpiryTime != want {
		t.Errorf("expiry = %q, want %q", view.ExpiryTime, want)
	}
}
