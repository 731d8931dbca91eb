package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpCtx "github.com/bornholm/todoshare/internal/http/context"
	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "root:"+r.URL.Path+":"+httpCtx.BaseURL(r.Context()).Path)
	})

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "metrics")
	})

	header := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "true")
			next.ServeHTTP(w, r)
		})
	}

	server := NewServer(
		WithBaseURL("/todos"),
		WithMount("/metrics", metrics),
		WithMount("/", root),
		WithMiddleware(header),
	)

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Path         string
		ExpectedBody string
	}

	testCases := []testCase{
		{Path: "/todos/", ExpectedBody: "root:/:/todos/"},
		{Path: "/todos/a1b2c3d4", ExpectedBody: "root:/a1b2c3d4:/todos/"},
		{Path: "/todos/metrics", ExpectedBody: "metrics"},
	}

	for _, tc := range testCases {
		t.Run(tc.Path, func(t *testing.T) {
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, tc.Path, nil))

			if e, g := http.StatusOK, res.Code; e != g {
				t.Fatalf("expected status %v, got %v", e, g)
			}

			if e, g := tc.ExpectedBody, strings.TrimSpace(res.Body.String()); e != g {
				t.Errorf("expected body %v, got %v", e, g)
			}

			if e, g := "true", res.Header().Get("X-Test"); e != g {
				t.Errorf("expected header %v, got %v", e, g)
			}
		})
	}
}

func TestServerHandlerRecoversPanics(t *testing.T) {
	server := NewServer(
		WithMount("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/panic" {
				panic("boom")
			}

			w.WriteHeader(http.StatusNoContent)
		})),
	)

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if e, g := http.StatusInternalServerError, res.Code; e != g {
		t.Errorf("expected status %v, got %v", e, g)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

	if e, g := http.StatusNoContent, res.Code; e != g {
		t.Errorf("expected status %v, got %v", e, g)
	}
}
