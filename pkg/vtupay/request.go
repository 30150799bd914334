package vtupay

// PurchaseRequest is the data purchase payload sent to the provider.
type PurchaseRequest struct {
	Network string  `json:"network"`
	Phone   string  `json:"phone"`
	Type    string  `json:"type"`
	PlanID  string  `json:"plan_id"`
	Pin     string  `json:"pin"`
	Amount  float64 `json:"amount"`
}
