package flow

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/swiftvtu/vtu_api/internal/models"
	"github.com/swiftvtu/vtu_api/internal/phone"
	"github.com/swiftvtu/vtu_api/pkg/vtupay"
)

// Provider is the upstream surface the flow depends on. *vtupay.Client
// satisfies it; tests substitute fakes.
type Provider interface {
	GetPlans(ctx context.Context, network, planType string) (*vtupay.PlansResponse, error)
	GetBalance(ctx context.Context) (*vtupay.BalanceResponse, error)
	BuyData(ctx context.Context, req vtupay.PurchaseRequest) (*vtupay.PurchaseResponse, error)
}

// Machine owns the transition rules of the purchase flow. It holds no
// per-session state itself; every method operates on a caller-owned State.
type Machine struct {
	provider Provider
	now      func() time.Time
}

// NewMachine constructs a Machine over the given provider.
func NewMachine(provider Provider) *Machine {
	return &Machine{provider: provider, now: time.Now}
}

// Init loads the wallet balance and the catalog for the default filter.
// Both calls fail soft: a broken upstream still yields a renderable step 1.
func (m *Machine) Init(ctx context.Context, st *State) {
	m.RefreshBalance(ctx, st)
	m.reloadPlans(ctx, st)
}

// SelectNetwork applies a network choice. The current plan and phone number
// are invalidated and the catalog is reloaded for the new filter.
func (m *Machine) SelectNetwork(ctx context.Context, st *State, raw string) error {
	network, err := models.ParseNetwork(raw)
	if err != nil {
		return ErrInvalidNetwork
	}
	st.Selection.Network = network
	st.Selection.Plan = nil
	st.Selection.Phone = ""
	m.reloadPlans(ctx, st)
	return nil
}

// SelectType applies a plan-type choice with the same reset semantics as a
// network change.
func (m *Machine) SelectType(ctx context.Context, st *State, planType string) error {
	if planType == "" {
		return ErrInvalidType
	}
	st.Selection.PlanType = planType
	st.Selection.Plan = nil
	st.Selection.Phone = ""
	m.reloadPlans(ctx, st)
	return nil
}

// SelectPlan picks a plan from the currently loaded catalog by id.
func (m *Machine) SelectPlan(st *State, planID string) error {
	for i := range st.Plans {
		if st.Plans[i].ID == planID {
			p := st.Plans[i]
			if !p.Usable() {
				return ErrInvalidPlan
			}
			st.Selection.Plan = &p
			return nil
		}
	}
	return ErrUnknownPlan
}

// EnterPhone stores the phone number after digit-only, 11-char sanitation.
// Full validation happens on the step-2 transition.
func (m *Machine) EnterPhone(st *State, raw string) {
	st.Selection.Phone = phone.Sanitize(raw)
}

// GoToStep requests a transition to step n (1..5). The machine is the sole
// authority on legality; a refusal leaves the state unchanged.
func (m *Machine) GoToStep(st *State, n int) error {
	if n < int(StepSelectPlan) || n > int(StepReceipt) {
		return ErrInvalidStep
	}
	target := Step(n)

	switch target {
	case StepConfirm:
		if st.Selection.Plan == nil {
			return ErrNoPlanSelected
		}
		if err := phone.Validate(st.Selection.Phone, st.Selection.Network); err != nil {
			return phoneFlowError(err, st.Selection.Network)
		}
	case StepPin:
		if st.Selection.Plan == nil || st.Selection.Phone == "" {
			return ErrIncomplete
		}
	case StepResult, StepReceipt:
		// Only reachable once a payment submission has produced an outcome.
		if st.Outcome == nil {
			return ErrStepUnreachable
		}
	}

	st.Step = target
	return nil
}

// AppendPinDigit accumulates one PIN digit on the payment step. The fourth
// digit triggers the payment submission exactly once; after submission the
// PIN is cleared and the state sits on the result step.
func (m *Machine) AppendPinDigit(ctx context.Context, st *State, digit byte) error {
	if st.Step != StepPin {
		return ErrNotPinStep
	}
	if digit < '0' || digit > '9' {
		return ErrInvalidDigit
	}
	if len(st.Pin) >= PinLength {
		return nil
	}
	st.Pin += string(digit)
	if len(st.Pin) == PinLength {
		m.submit(ctx, st)
	}
	return nil
}

// DeletePinDigit removes the last entered PIN digit.
func (m *Machine) DeletePinDigit(st *State) {
	if st.Pin != "" {
		st.Pin = st.Pin[:len(st.Pin)-1]
	}
}

// ClearPin discards all entered PIN digits.
func (m *Machine) ClearPin(st *State) {
	st.Pin = ""
}

// Restart implements "top up again": plan, phone, PIN and outcome are
// discarded and the flow returns to step 1. The loaded catalog and wallet
// balance are kept.
func (m *Machine) Restart(st *State) {
	st.Selection.Plan = nil
	st.Selection.Phone = ""
	st.Pin = ""
	st.Outcome = nil
	st.Step = StepSelectPlan
}

// RefreshBalance fetches the wallet balance. The stored balance is replaced
// only by a successful response; it is never adjusted locally.
func (m *Machine) RefreshBalance(ctx context.Context, st *State) {
	resp, err := m.provider.GetBalance(ctx)
	if err != nil {
		log.Error().Err(err).Msg("wallet balance fetch failed")
		return
	}
	if resp.Status != vtupay.StatusSuccess {
		log.Warn().Str("status", resp.Status).Msg("wallet balance rejected")
		return
	}
	st.Balance = float64(resp.Balance)
}

// reloadPlans fetches the catalog for the current (network, type) filter.
// A generation counter guards against a stale response being applied over a
// newer one; the last issued request wins.
func (m *Machine) reloadPlans(ctx context.Context, st *State) {
	st.CatalogGen++
	gen := st.CatalogGen

	resp, err := m.provider.GetPlans(ctx, string(st.Selection.Network), st.Selection.PlanType)
	if gen != st.CatalogGen {
		return // superseded by a newer filter change
	}

	st.Plans = nil
	switch {
	case err != nil:
		log.Error().Err(err).
			Str("network", string(st.Selection.Network)).
			Str("type", st.Selection.PlanType).
			Msg("plan catalog load failed")
		st.CatalogMessage = "Error loading plans. Please try again."
	case resp.Status != vtupay.StatusSuccess:
		st.CatalogMessage = resp.Message
		if st.CatalogMessage == "" {
			st.CatalogMessage = "No plans available"
		}
	default:
		st.Plans = m.applyCatalog(resp.Plans)
		st.CatalogMessage = ""
		if len(st.Plans) == 0 {
			st.CatalogMessage = "No plans found for selected network and type"
		}
	}
}

// applyCatalog converts provider plan items, silently dropping any entry
// with a missing field. A bad item never fails the whole catalog.
func (m *Machine) applyCatalog(items []vtupay.PlanItem) []models.Plan {
	plans := make([]models.Plan, 0, len(items))
	for _, item := range items {
		p := models.Plan{
			ID:       string(item.ID),
			Size:     item.Size,
			Validate: string(item.Validate),
			Price:    float64(item.Price),
		}
		if !p.Usable() {
			log.Warn().
				Str("plan_id", p.ID).
				Str("size", p.Size).
				Msg("dropping malformed plan from catalog")
			continue
		}
		plans = append(plans, p)
	}
	return plans
}

// submit sends the payment request and resolves it to a TransactionOutcome.
// Every path clears the PIN and lands on the result step; the machine never
// stays on PIN entry after a submission completes.
func (m *Machine) submit(ctx context.Context, st *State) {
	now := m.now()
	sel := st.Selection

	var outcome models.TransactionOutcome
	if sel.Network == "" || sel.Phone == "" || sel.PlanType == "" || sel.Plan == nil || len(st.Pin) != PinLength {
		outcome = incompleteOutcome(now)
	} else {
		resp, err := m.provider.BuyData(ctx, vtupay.PurchaseRequest{
			Network: string(sel.Network),
			Phone:   sel.Phone,
			Type:    sel.PlanType,
			PlanID:  sel.Plan.ID,
			Pin:     st.Pin,
			Amount:  sel.Plan.Price,
		})
		if err != nil {
			log.Error().Err(err).Msg("payment submission failed")
		}
		outcome = Classify(resp, err, st.Balance, now)
	}

	if outcome.Status == models.OutcomeSuccess && outcome.NewBalance != nil {
		st.Balance = *outcome.NewBalance
	}
	st.Outcome = &outcome
	st.Pin = ""
	st.Step = StepResult

	log.Info().
		Str("status", string(outcome.Status)).
		Str("transaction_id", outcome.TransactionID).
		Str("network", string(sel.Network)).
		Msg("payment submission resolved")
}
