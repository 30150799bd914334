package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/swiftvtu/vtu_api/internal/flow"
	"github.com/swiftvtu/vtu_api/internal/middleware"
	"github.com/swiftvtu/vtu_api/internal/session"
	"github.com/swiftvtu/vtu_api/internal/utils"
)

// FlowHandler translates HTTP actions into purchase flow transitions. Each
// request loads the session's flow state, applies exactly one transition and
// persists the result.
type FlowHandler struct {
	machine *flow.Machine
	store   *session.Store
}

// NewFlowHandler constructs a FlowHandler.
func NewFlowHandler(machine *flow.Machine, store *session.Store) *FlowHandler {
	return &FlowHandler{machine: machine, store: store}
}

// GetFlow handles GET /v1/flow
func (h *FlowHandler) GetFlow(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	h.respond(c, st, "Flow retrieved")
}

// SelectNetwork handles POST /v1/flow/network
func (h *FlowHandler) SelectNetwork(c *gin.Context) {
	var req struct {
		Network string `json:"network" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}
	h.transition(c, "Network selected", func(st *flow.State) error {
		return h.machine.SelectNetwork(c.Request.Context(), st, req.Network)
	})
}

// SelectType handles POST /v1/flow/type
func (h *FlowHandler) SelectType(c *gin.Context) {
	var req struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}
	h.transition(c, "Plan type selected", func(st *flow.State) error {
		return h.machine.SelectType(c.Request.Context(), st, req.Type)
	})
}

// SelectPlan handles POST /v1/flow/plan
func (h *FlowHandler) SelectPlan(c *gin.Context) {
	var req struct {
		PlanID string `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}
	h.transition(c, "Plan selected", func(st *flow.State) error {
		return h.machine.SelectPlan(st, req.PlanID)
	})
}

// EnterPhone handles POST /v1/flow/phone
func (h *FlowHandler) EnterPhone(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}
	h.transition(c, "Phone number stored", func(st *flow.State) error {
		h.machine.EnterPhone(st, req.Phone)
		return nil
	})
}

// GoToStep handles POST /v1/flow/step
func (h *FlowHandler) GoToStep(c *gin.Context) {
	var req struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}
	h.transition(c, "Step changed", func(st *flow.State) error {
		return h.machine.GoToStep(st, req.Step)
	})
}

// AppendPin handles POST /v1/flow/pin
func (h *FlowHandler) AppendPin(c *gin.Context) {
	var req struct {
		Digit string `json:"digit" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Digit) != 1 {
		utils.Error(c, 400, "MISSING_FIELD", "Provide a single PIN digit")
		return
	}
	h.transition(c, "PIN digit accepted", func(st *flow.State) error {
		return h.machine.AppendPinDigit(c.Request.Context(), st, req.Digit[0])
	})
}

// DeletePin handles DELETE /v1/flow/pin
func (h *FlowHandler) DeletePin(c *gin.Context) {
	h.transition(c, "PIN digit removed", func(st *flow.State) error {
		h.machine.DeletePinDigit(st)
		return nil
	})
}

// ClearPin handles POST /v1/flow/pin/clear
func (h *FlowHandler) ClearPin(c *gin.Context) {
	h.transition(c, "PIN cleared", func(st *flow.State) error {
		h.machine.ClearPin(st)
		return nil
	})
}

// Restart handles POST /v1/flow/restart ("top up again").
func (h *FlowHandler) Restart(c *gin.Context) {
	h.transition(c, "Flow restarted", func(st *flow.State) error {
		h.machine.Restart(st)
		return nil
	})
}

// loadState fetches the session's flow state, starting a fresh flow when
// none exists yet. A false return means a response has been written.
func (h *FlowHandler) loadState(c *gin.Context) (*flow.State, bool) {
	sessionID := middleware.SessionID(c)
	st, err := h.store.Load(c.Request.Context(), sessionID)
	switch {
	case errors.Is(err, session.ErrNotFound):
		st = flow.NewState()
		h.machine.Init(c.Request.Context(), st)
		if err := h.store.Save(c.Request.Context(), sessionID, st); err != nil {
			log.Error().Err(err).Msg("failed to save fresh flow state")
			utils.Error(c, 500, "SESSION_ERROR", "Failed to start flow")
			return nil, false
		}
	case err != nil:
		log.Error().Err(err).Msg("failed to load flow state")
		utils.Error(c, 500, "SESSION_ERROR", "Failed to load flow")
		return nil, false
	}
	return st, true
}

// transition runs one state transition. A FlowError is a refusal: the state
// is not persisted and the user copy is returned; any other error from the
// transition never occurs by construction.
func (h *FlowHandler) transition(c *gin.Context, message string, apply func(st *flow.State) error) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}

	if err := apply(st); err != nil {
		var fe *flow.FlowError
		if errors.As(err, &fe) {
			utils.Error(c, 400, fe.Code, fe.Message)
			return
		}
		log.Error().Err(err).Msg("flow transition failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		return
	}

	if err := h.store.Save(c.Request.Context(), middleware.SessionID(c), st); err != nil {
		log.Error().Err(err).Msg("failed to save flow state")
		utils.Error(c, 500, "SESSION_ERROR", "Failed to save flow")
		return
	}
	h.respond(c, st, message)
}

func (h *FlowHandler) respond(c *gin.Context, st *flow.State, message string) {
	utils.Success(c, 200, message, flow.Snapshot(st, time.Now()))
}
