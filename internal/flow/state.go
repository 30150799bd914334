// Package flow implements the purchase state machine for the mobile-data
// top-up flow: step navigation with validation gates, catalog application,
// PIN capture and submission, and the result/receipt projections.
package flow

import (
	"errors"
	"fmt"

	"github.com/swiftvtu/vtu_api/internal/models"
	"github.com/swiftvtu/vtu_api/internal/phone"
)

// Step is the purchase flow step, requested by index 1..5.
type Step int

const (
	StepSelectPlan Step = iota + 1
	StepConfirm
	StepPin
	StepResult
	StepReceipt
)

// PinLength is the exact number of digits that triggers payment submission.
const PinLength = 4

// State is the owned flow state for one session. It is mutated only through
// Machine transition methods; handlers treat it as opaque.
type State struct {
	Step           Step                       `json:"step"`
	Selection      models.Selection           `json:"selection"`
	Pin            string                     `json:"pin,omitempty"`
	Balance        float64                    `json:"balance"`
	Plans          []models.Plan              `json:"plans,omitempty"`
	CatalogMessage string                     `json:"catalogMessage,omitempty"`
	CatalogGen     int                        `json:"catalogGen"`
	Outcome        *models.TransactionOutcome `json:"outcome,omitempty"`
}

// NewState returns the initial flow state: step 1 with the default
// network/type filter applied and nothing else selected.
func NewState() *State {
	return &State{
		Step: StepSelectPlan,
		Selection: models.Selection{
			Network:  models.NetworkAirtel,
			PlanType: "SME",
		},
	}
}

// FlowError is a user-facing refusal: the transition is rejected, the state
// is unchanged and Message is shown inline.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string { return e.Message }

var (
	ErrNoPlanSelected  = &FlowError{"NO_PLAN_SELECTED", "Please select a data plan to continue"}
	ErrIncomplete      = &FlowError{"INCOMPLETE_SELECTION", "Please complete all required information"}
	ErrInvalidPlan     = &FlowError{"INVALID_PLAN", "Invalid plan data. Please try again."}
	ErrUnknownPlan     = &FlowError{"UNKNOWN_PLAN", "Selected plan is no longer available"}
	ErrInvalidStep     = &FlowError{"INVALID_STEP", "Unknown step"}
	ErrStepUnreachable = &FlowError{"STEP_UNREACHABLE", "Complete the payment to view this step"}
	ErrNotPinStep      = &FlowError{"NOT_PIN_STEP", "PIN entry is only available on the payment step"}
	ErrInvalidDigit    = &FlowError{"INVALID_DIGIT", "PIN accepts digits only"}
	ErrInvalidType     = &FlowError{"INVALID_TYPE", "Please select a plan type"}
	ErrInvalidNetwork  = &FlowError{"INVALID_NETWORK", "Unknown network"}
)

// phoneFlowError maps a phone validation failure to its user-facing copy.
func phoneFlowError(err error, network models.NetworkID) *FlowError {
	switch {
	case errors.Is(err, phone.ErrEmptyNumber):
		return &FlowError{"PHONE_REQUIRED", "Please enter a phone number"}
	case errors.Is(err, phone.ErrBadLength):
		return &FlowError{"PHONE_LENGTH", "Phone number must be 11 digits"}
	default:
		return &FlowError{
			"PHONE_NETWORK_MISMATCH",
			fmt.Sprintf("Phone number does not match %s network", network),
		}
	}
}
