package vtupay

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StatusSuccess is the provider's top-level success marker. Everything else
// is treated as a rejection carrying a human-readable message.
const StatusSuccess = "success"

// FlexString decodes from either a JSON string or a JSON number. The
// provider is inconsistent about plan ids and validity values.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// FlexFloat decodes from either a JSON number or a numeric JSON string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// PlanItem is a single catalog entry as sent by the provider.
type PlanItem struct {
	ID       FlexString `json:"id"`
	Size     string     `json:"size"`
	Validate FlexString `json:"validate"`
	Price    FlexFloat  `json:"price"`
}

// PlansResponse is the catalog payload.
type PlansResponse struct {
	Status  string     `json:"status"`
	Plans   []PlanItem `json:"plans"`
	Message string     `json:"message,omitempty"`
}

// BalanceResponse is the wallet balance payload.
type BalanceResponse struct {
	Status  string    `json:"status"`
	Balance FlexFloat `json:"balance"`
	Message string    `json:"message,omitempty"`
}

// TransactionData carries the provider's identifiers for a completed
// purchase.
type TransactionData struct {
	TransactionID   string `json:"transaction_id"`
	TransactionTime string `json:"transaction_time"`
	Reference       string `json:"reference"`
}

// PurchaseResponse is the data purchase result payload.
type PurchaseResponse struct {
	Status      string           `json:"status"`
	Message     string           `json:"message,omitempty"`
	Transaction *TransactionData `json:"transaction,omitempty"`
	NewBalance  *FlexFloat       `json:"new_balance,omitempty"`
}
