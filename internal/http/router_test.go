package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"tablepos/internal/config"
	"tablepos/internal/models"
	"tablepos/internal/store"

	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.Config{
		Env:            "test",
		ReceiptHeader:  "RESTAURACE",
		ReceiptFooter:  "Harukoid s.r.o.",
		CurrencySuffix: "Kč",
	}
	server := httptest.NewServer(NewRouter(st, zap.NewNop(), cfg))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestOrderPaymentHistoryFlow(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	// Create an order for table 1 with řízek and guláš.
	status, env := doJSON(t, client, http.MethodPost, server.URL+"/api/orders", map[string]any{
		"tableId": 1,
		"itemIds": []int64{1, 2},
	})
	if status != http.StatusCreated || !env.Success {
		t.Fatalf("create order: status %d, envelope %+v", status, env)
	}
	var order models.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Total != 280 || order.Status != models.StatusPending {
		t.Fatalf("unexpected order: %+v", order)
	}

	id := strconv.FormatInt(order.ID, 10)

	// Kitchen marks it ready.
	status, _ = doJSON(t, client, http.MethodPatch, server.URL+"/api/orders/"+id+"/status", map[string]any{
		"status": "ready",
	})
	if status != http.StatusOK {
		t.Fatalf("set ready: status %d", status)
	}

	// Quote matches the order total.
	status, env = doJSON(t, client, http.MethodPost, server.URL+"/api/payments/quote", map[string]any{
		"orderIds": []int64{order.ID},
	})
	if status != http.StatusOK {
		t.Fatalf("quote: status %d", status)
	}
	var quote struct {
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.Total != 280 {
		t.Fatalf("expected quote 280, got %v", quote.Total)
	}

	// Cash payment with change.
	status, env = doJSON(t, client, http.MethodPost, server.URL+"/api/payments", map[string]any{
		"orderIds":       []int64{order.ID},
		"paymentMethod":  "cash",
		"amountReceived": 300,
	})
	if status != http.StatusOK {
		t.Fatalf("payment: status %d, envelope %+v", status, env)
	}
	var payment struct {
		Total          float64 `json:"total"`
		Change         float64 `json:"change"`
		RemainingCount int     `json:"remainingCount"`
	}
	if err := json.Unmarshal(env.Data, &payment); err != nil {
		t.Fatalf("decode payment: %v", err)
	}
	if payment.Total != 280 || payment.Change != 20 || payment.RemainingCount != 0 {
		t.Fatalf("unexpected payment result: %+v", payment)
	}

	// Order moved to history, exactly once.
	status, env = doJSON(t, client, http.MethodGet, server.URL+"/api/history", nil)
	if status != http.StatusOK {
		t.Fatalf("history: status %d", status)
	}
	var view struct {
		Transactions []models.HistoryRecord `json:"transactions"`
		Stats        struct {
			Revenue float64 `json:"revenue"`
			Count   int     `json:"count"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if view.Stats.Count != 1 || view.Stats.Revenue != 280 {
		t.Fatalf("unexpected history stats: %+v", view.Stats)
	}
	if len(view.Transactions) != 1 || view.Transactions[0].Status != models.StatusPaid {
		t.Fatalf("unexpected history records: %+v", view.Transactions)
	}

	status, _ = doJSON(t, client, http.MethodGet, server.URL+"/api/orders", nil)
	if status != http.StatusOK {
		t.Fatalf("orders list: status %d", status)
	}

	// Receipt is printable.
	resp, err := client.Get(server.URL + "/api/history/" + id + "/receipt")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receipt: status %d", resp.StatusCode)
	}
	var text bytes.Buffer
	if _, err := text.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read receipt: %v", err)
	}
	if !strings.Contains(text.String(), "Transakce #") {
		t.Fatalf("receipt body missing transaction line:\n%s", text.String())
	}
}

func TestPaymentRejectsPendingSelection(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	_, env := doJSON(t, client, http.MethodPost, server.URL+"/api/orders", map[string]any{
		"tableId": 2,
		"itemIds": []int64{3},
	})
	var order models.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}

	status, env := doJSON(t, client, http.MethodPost, server.URL+"/api/payments", map[string]any{
		"orderIds":       []int64{order.ID},
		"paymentMethod":  "card",
		"amountReceived": 0,
	})
	if status != http.StatusBadRequest || env.Error != "ORDER_NOT_READY" {
		t.Fatalf("expected ORDER_NOT_READY, got status %d, envelope %+v", status, env)
	}
}

func TestPaymentRejectsInsufficientCash(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	_, env := doJSON(t, client, http.MethodPost, server.URL+"/api/orders", map[string]any{
		"tableId": 1,
		"itemIds": []int64{1},
	})
	var order models.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	id := strconv.FormatInt(order.ID, 10)
	if status, _ := doJSON(t, client, http.MethodPatch, server.URL+"/api/orders/"+id+"/status", map[string]any{"status": "ready"}); status != http.StatusOK {
		t.Fatalf("set ready failed")
	}

	status, env := doJSON(t, client, http.MethodPost, server.URL+"/api/payments", map[string]any{
		"orderIds":       []int64{order.ID},
		"paymentMethod":  "cash",
		"amountReceived": 90,
	})
	if status != http.StatusBadRequest || env.Error != "INSUFFICIENT_CASH" {
		t.Fatalf("expected INSUFFICIENT_CASH, got status %d, envelope %+v", status, env)
	}

	// The rejected payment must leave the order active.
	status, env = doJSON(t, client, http.MethodGet, server.URL+"/api/orders", nil)
	if status != http.StatusOK {
		t.Fatalf("orders list: status %d", status)
	}
	var active []models.Order
	if err := json.Unmarshal(env.Data, &active); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(active) != 1 || active[0].Status != models.StatusReady {
		t.Fatalf("rejected payment mutated state: %+v", active)
	}
}

func TestCategoryDeleteInUse(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	if status, _ := doJSON(t, client, http.MethodPost, server.URL+"/api/categories", map[string]any{"name": "Speciality"}); status != http.StatusCreated {
		t.Fatalf("create category failed")
	}
	if status, _ := doJSON(t, client, http.MethodPost, server.URL+"/api/menu", map[string]any{
		"name": "Tatarák", "price": 220, "category": "Speciality",
	}); status != http.StatusCreated {
		t.Fatalf("create menu item failed")
	}

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/categories/Speciality", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for category in use, got %d", resp.StatusCode)
	}
}
