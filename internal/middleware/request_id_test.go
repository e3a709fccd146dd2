package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if seen == "" {
		t.Fatalf("expected a request id on the inbound request")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("expected response id %q to match request id %q", got, seen)
	}
}

func TestRequestIDKeepsInboundID(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{name: "request id header", header: "X-Request-Id"},
		{name: "correlation id header", header: "X-Correlation-Id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			req.Header.Set(tc.header, "till-7")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("X-Request-Id"); got != "till-7" {
				t.Fatalf("expected inbound id to be kept, got %q", got)
			}
		})
	}
}
