package flow

import (
	"fmt"
	"time"

	"github.com/swiftvtu/vtu_api/internal/format"
	"github.com/swiftvtu/vtu_api/internal/models"
)

// StatusCopy is a status display entry: headline text plus a tone the
// client maps to a color.
type StatusCopy struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

var resultCopy = map[models.OutcomeStatus]StatusCopy{
	models.OutcomeSuccess:      {"TRANSACTION SUCCESSFUL", "green"},
	models.OutcomeInsufficient: {"INSUFFICIENT BALANCE", "amber"},
	models.OutcomeIncorrectPin: {"INCORRECT PIN", "red"},
	models.OutcomeFailure:      {"TRANSACTION FAILED", "red"},
}

var receiptCopy = map[models.OutcomeStatus]StatusCopy{
	models.OutcomeSuccess:      {"SUCCESSFUL", "green"},
	models.OutcomeInsufficient: {"INSUFFICIENT BALANCE", "amber"},
	models.OutcomeIncorrectPin: {"INCORRECT PIN", "red"},
	models.OutcomeFailure:      {"FAILED", "red"},
}

// ConfirmView is the step-2 summary of the current selection.
type ConfirmView struct {
	Network      string `json:"network"`
	PlanName     string `json:"planName"`
	PlanType     string `json:"planType"`
	Validity     string `json:"validity"`
	MobileNumber string `json:"mobileNumber"`
	Amount       string `json:"amount"`
}

// ResultView is the step-4 projection of a transaction outcome.
type ResultView struct {
	StatusText      string `json:"statusText"`
	StatusTone      string `json:"statusTone"`
	StatusDetail    string `json:"statusDetail"`
	CustomerMessage string `json:"customerMessage,omitempty"`
	Amount          string `json:"amount"`
	TransactionID   string `json:"transactionId"`
	TransactionType string `json:"transactionType"`
	Network         string `json:"network"`
	PlanType        string `json:"planType"`
	PlanSize        string `json:"planSize"`
	MobileNumber    string `json:"mobileNumber"`
	TransactionTime string `json:"transactionTime"`
	Reference       string `json:"reference,omitempty"`
	ExpiryTime      string `json:"expiryTime,omitempty"`
}

// ReceiptView is the step-5 projection. It reproduces the result view's
// identifiers and timestamps exactly, with the receipt's own short labels.
type ReceiptView struct {
	StatusText      string `json:"statusText"`
	StatusTone      string `json:"statusTone"`
	StatusDetail    string `json:"statusDetail"`
	Amount          string `json:"amount"`
	TransactionType string `json:"transactionType"`
	TransactionID   string `json:"transactionId"`
	Network         string `json:"network"`
	PlanType        string `json:"planType"`
	PlanSize        string `json:"planSize"`
	MobileNumber    string `json:"mobileNumber"`
	Time            string `json:"time"`
}

// ConfirmSummary projects the step-2 confirmation details. The caller
// guarantees a plan is selected (the step-2 guard enforces it).
func ConfirmSummary(sel models.Selection) ConfirmView {
	view := ConfirmView{
		Network:      string(sel.Network),
		PlanType:     sel.PlanType,
		MobileNumber: sel.Phone,
	}
	if sel.Plan != nil {
		view.PlanName = sel.Plan.Size
		view.Validity = sel.Plan.Validate
		view.Amount = format.Currency(sel.Plan.Price)
	}
	return view
}

// Result projects the result screen fields. It is a pure function of its
// arguments: the same (Selection, TransactionOutcome, now) always yields the
// same view.
func Result(sel models.Selection, out models.TransactionOutcome, now time.Time) ResultView {
	sc := resultCopy[out.Status]
	view := ResultView{
		StatusText:      sc.Text,
		StatusTone:      sc.Tone,
		StatusDetail:    out.Message,
		TransactionID:   out.TransactionID,
		TransactionType: "DATA",
		Network:         string(sel.Network),
		PlanType:        sel.PlanType,
		MobileNumber:    sel.Phone,
		TransactionTime: out.TransactionTime,
		Reference:       out.Reference,
	}
	if sel.Plan != nil {
		view.Amount = format.Currency(sel.Plan.Price)
		view.PlanSize = sel.Plan.Size
	}
	if out.Status == models.OutcomeSuccess && sel.Plan != nil {
		view.ExpiryTime = expiryTime(out, sel.Plan.ValidityDays(), now)
		reference := out.Reference
		if reference == "" {
			reference = "N/A"
		}
		view.CustomerMessage = fmt.Sprintf(
			"Dear Customer, your purchase of %s %s Data plan for phone number %s was successful. Reference: %s. Expiry Date: %s",
			sel.Plan.Size, sel.Plan.Validate, sel.Phone, reference, view.ExpiryTime,
		)
	}
	return view
}

// Receipt projects the receipt screen fields from the same inputs as Result.
func Receipt(sel models.Selection, out models.TransactionOutcome, now time.Time) ReceiptView {
	sc := receiptCopy[out.Status]
	view := ReceiptView{
		StatusText:      sc.Text,
		StatusTone:      sc.Tone,
		StatusDetail:    out.Message,
		TransactionType: "Data Purchase",
		TransactionID:   out.TransactionID,
		Network:         string(sel.Network),
		PlanType:        sel.PlanType,
		MobileNumber:    sel.Phone,
		Time:            out.TransactionTime,
	}
	if sel.Plan != nil {
		view.Amount = format.Currency(sel.Plan.Price)
		view.PlanSize = sel.Plan.Size
	}
	return view
}

// expiryTime computes transaction time + validity days. When the recorded
// transaction time does not parse, now anchors the expiry instead.
func expiryTime(out models.TransactionOutcome, validityDays int, now time.Time) string {
	anchor, ok := format.ParseTimestamp(out.TransactionTime)
	if !ok {
		anchor = now
	}
	return format.Timestamp(anchor.AddDate(0, 0, validityDays))
}
