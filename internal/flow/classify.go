package flow

import (
	"strings"
	"time"

	"github.com/swiftvtu/vtu_api/internal/format"
	"github.com/swiftvtu/vtu_api/internal/models"
	"github.com/swiftvtu/vtu_api/internal/utils"
	"github.com/swiftvtu/vtu_api/pkg/vtupay"
)

// Fixed outcome copy.
const (
	msgTransactionSuccess = "Transaction successful"
	msgTransactionFailed  = "Transaction failed. Please try again."
	msgNetworkError       = "Network error. Please try again."
	msgFieldsRequired     = "Please complete all required fields"
	msgIncompleteInputs   = "Please complete all required information"
)

// rejectionRule rewrites a non-success outcome when the provider message
// contains its marker. Rules apply in order and the first match wins; the
// matching is a best-effort heuristic over free-text provider messages.
type rejectionRule struct {
	marker string
	apply  func(o *models.TransactionOutcome)
}

var rejectionRules = []rejectionRule{
	{"insufficient", func(o *models.TransactionOutcome) { o.Status = models.OutcomeInsufficient }},
	{"pin", func(o *models.TransactionOutcome) { o.Status = models.OutcomeIncorrectPin }},
	{"required", func(o *models.TransactionOutcome) { o.Message = msgFieldsRequired }},
}

// Classify resolves a payment response (or transport error) into a
// TransactionOutcome. The outcome is complete at creation: a missing
// transaction id is replaced with a generated token and a missing
// transaction time with the submission time, so downstream projections stay
// pure and reproducible.
func Classify(resp *vtupay.PurchaseResponse, callErr error, priorBalance float64, now time.Time) models.TransactionOutcome {
	var outcome models.TransactionOutcome

	switch {
	case callErr != nil || resp == nil:
		outcome.Status = models.OutcomeFailure
		outcome.Message = msgNetworkError
	case resp.Status == vtupay.StatusSuccess:
		outcome.Status = models.OutcomeSuccess
		outcome.Message = resp.Message
		if outcome.Message == "" {
			outcome.Message = msgTransactionSuccess
		}
		if resp.Transaction != nil {
			outcome.TransactionID = resp.Transaction.TransactionID
			outcome.TransactionTime = resp.Transaction.TransactionTime
			outcome.Reference = resp.Transaction.Reference
		}
		balance := priorBalance
		if resp.NewBalance != nil {
			balance = float64(*resp.NewBalance)
		}
		outcome.NewBalance = &balance
	default:
		outcome.Status = models.OutcomeFailure
		outcome.Message = resp.Message
		if outcome.Message == "" {
			outcome.Message = msgTransactionFailed
		}
		lower := strings.ToLower(resp.Message)
		for _, rule := range rejectionRules {
			if strings.Contains(lower, rule.marker) {
				rule.apply(&outcome)
				break
			}
		}
	}

	fillFallbacks(&outcome, now)
	return outcome
}

// incompleteOutcome is the immediate failure used when submission inputs are
// missing; no request is sent.
func incompleteOutcome(now time.Time) models.TransactionOutcome {
	outcome := models.TransactionOutcome{
		Status:  models.OutcomeFailure,
		Message: msgIncompleteInputs,
	}
	fillFallbacks(&outcome, now)
	return outcome
}

func fillFallbacks(o *models.TransactionOutcome, now time.Time) {
	if o.TransactionID == "" {
		o.TransactionID = utils.GenerateTransactionToken()
	}
	if o.TransactionTime == "" {
		o.TransactionTime = format.Timestamp(now)
	}
}
