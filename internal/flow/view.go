package flow

import (
	"time"

	"github.com/swiftvtu/vtu_api/internal/format"
	"github.com/swiftvtu/vtu_api/internal/models"
)

// FlowView is the full projection of a flow state for the client: the
// current step, the selection, and the projection belonging to that step.
type FlowView struct {
	Step           int           `json:"step"`
	Network        string        `json:"network"`
	PlanType       string        `json:"planType"`
	Phone          string        `json:"phone,omitempty"`
	Balance        string        `json:"balance"`
	Plans          []models.Plan `json:"plans,omitempty"`
	CatalogMessage string        `json:"catalogMessage,omitempty"`
	PinEntered     int           `json:"pinEntered"`
	Confirm        *ConfirmView  `json:"confirm,omitempty"`
	Result         *ResultView   `json:"result,omitempty"`
	Receipt        *ReceiptView  `json:"receipt,omitempty"`
}

// Snapshot derives the client view of a state. Derivation is side-effect
// free; rendering a view never mutates the flow.
func Snapshot(st *State, now time.Time) FlowView {
	view := FlowView{
		Step:           int(st.Step),
		Network:        string(st.Selection.Network),
		PlanType:       st.Selection.PlanType,
		Phone:          st.Selection.Phone,
		Balance:        format.Currency(st.Balance),
		PinEntered:     len(st.Pin),
		CatalogMessage: st.CatalogMessage,
	}

	switch st.Step {
	case StepSelectPlan:
		view.Plans = st.Plans
	case StepConfirm:
		confirm := ConfirmSummary(st.Selection)
		view.Confirm = &confirm
	case StepResult:
		if st.Outcome != nil {
			result := Result(st.Selection, *st.Outcome, now)
			view.Result = &result
		}
	case StepReceipt:
		if st.Outcome != nil {
			receipt := Receipt(st.Selection, *st.Outcome, now)
			view.Receipt = &receipt
		}
	}
	return view
}
