package vtupay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetPlans_DecodesFlexibleFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/plans" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("network"); got != "MTN" {
			t.Errorf("network query = %q", got)
		}
		if got := r.URL.Query().Get("type"); got != "SME" {
			t.Errorf("type query = %q", got)
		}
		// id and validate arrive as number or string; price as either too.
		w.Write([]byte(`{"status":"success","plans":[
			{"id":12,"size":"1GB","validate":"30","price":"500.00"},
			{"id":"p2","size":"2GB","validate":7,"price":900}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	resp, err := c.GetPlans(context.Background(), "MTN", "SME")
	if err != nil {
		t.Fatalf("GetPlans: %v", err)
	}
	if resp.Status != StatusSuccess || len(resp.Plans) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Plans[0].ID != "12" || resp.Plans[0].Price != 500 {
		t.Errorf("plan 0 = %+v", resp.Plans[0])
	}
	if resp.Plans[1].Validate != "7" || resp.Plans[1].Price != 900 {
		t.Errorf("plan 1 = %+v", resp.Plans[1])
	}
}

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","balance":"12500.50"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	resp, err := c.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if float64(resp.Balance) != 12500.50 {
		t.Errorf("balance = %v", resp.Balance)
	}
}

func TestBuyData_SendsPayloadAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/data/purchase" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("authorization = %q", got)
		}
		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.PlanID != "p1" || req.Pin != "1234" || req.Amount != 500 {
			t.Errorf("request = %+v", req)
		}
		w.Write([]byte(`{"status":"success","message":"ok","transaction":{"transaction_id":"T1","transaction_time":"2025-06-01 12:00:00","reference":"R1"},"new_balance":2000}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "sk-test"})
	resp, err := c.BuyData(context.Background(), PurchaseRequest{
		Network: "AIRTEL", Phone: "08021234567", Type: "SME", PlanID: "p1", Pin: "1234", Amount: 500,
	})
	if err != nil {
		t.Fatalf("BuyData: %v", err)
	}
	if resp.Transaction == nil || resp.Transaction.TransactionID != "T1" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.NewBalance == nil || float64(*resp.NewBalance) != 2000 {
		t.Errorf("new balance = %v", resp.NewBalance)
	}
}

func TestSend_NonSuccessStatusCodeIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"status":"error"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.GetPlans(context.Background(), "MTN", "SME"); err == nil {
		t.Error("expected error for 502 response")
	}
}

func TestSend_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.GetBalance(context.Background()); err == nil {
		t.Error("expected error for malformed body")
	}
}
