package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/swiftvtu/vtu_api/internal/flow"
	"github.com/swiftvtu/vtu_api/internal/format"
	"github.com/swiftvtu/vtu_api/internal/middleware"
	"github.com/swiftvtu/vtu_api/internal/session"
	"github.com/swiftvtu/vtu_api/internal/utils"
)

// WalletHandler exposes the wallet balance endpoint.
type WalletHandler struct {
	machine *flow.Machine
	store   *session.Store
}

// NewWalletHandler constructs a WalletHandler.
func NewWalletHandler(machine *flow.Machine, store *session.Store) *WalletHandler {
	return &WalletHandler{machine: machine, store: store}
}

// GetBalance handles GET /v1/wallet/balance. The balance is refreshed from
// the provider and stored back on the session's flow state.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	flowHandler := FlowHandler{machine: h.machine, store: h.store}
	st, ok := flowHandler.loadState(c)
	if !ok {
		return
	}

	h.machine.RefreshBalance(c.Request.Context(), st)
	if err := h.store.Save(c.Request.Context(), middleware.SessionID(c), st); err != nil {
		utils.Error(c, 500, "SESSION_ERROR", "Failed to save flow")
		return
	}

	utils.Success(c, 200, "Balance retrieved", gin.H{
		"balance":   st.Balance,
		"formatted": format.Currency(st.Balance),
	})
}
