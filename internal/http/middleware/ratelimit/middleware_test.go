package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(WithLimit(time.Hour, 2))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		statuses = append(statuses, res.Code)
	}

	expected := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for idx := range expected {
		if e, g := expected[idx], statuses[idx]; e != g {
			t.Errorf("request #%d: expected status %v, got %v", idx, e, g)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("other client: expected status %v, got %v", e, g)
	}
}

func TestRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.254")

	if e, g := "10.0.0.1", RemoteAddr(req, false); e != g {
		t.Errorf("expected %v, got %v", e, g)
	}

	if e, g := "192.168.1.1", RemoteAddr(req, true); e != g {
		t.Errorf("expected %v, got %v", e, g)
	}
}
