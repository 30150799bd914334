package models

// OutcomeStatus classifies the result of a payment submission.
type OutcomeStatus string

const (
	OutcomeSuccess      OutcomeStatus = "success"
	OutcomeInsufficient OutcomeStatus = "insufficient"
	OutcomeIncorrectPin OutcomeStatus = "incorrect_pin"
	OutcomeFailure      OutcomeStatus = "failure"
)

// TransactionOutcome is created once per payment submission attempt and is
// immutable afterwards. TransactionID and TransactionTime are always
// populated at creation (falling back to a generated token and the submit
// time) so the result and receipt views reproduce identical values.
type TransactionOutcome struct {
	Status          OutcomeStatus `json:"status"`
	Message         string        `json:"message"`
	TransactionID   string        `json:"transactionId"`
	TransactionTime string        `json:"transactionTime"`
	Reference       string        `json:"reference,omitempty"`
	NewBalance      *float64      `json:"newBalance,omitempty"`
}
