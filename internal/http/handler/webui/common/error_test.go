package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestHandleError(t *testing.T) {
	type testCase struct {
		Err            error
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []testCase{
		{
			Err:            NewError("missing text", `Missing "text" in form data`, http.StatusBadRequest),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   `Missing "text" in form data`,
		},
		{
			Err:            errors.Wrap(NewHTTPError(http.StatusNotFound), "wrapped"),
			ExpectedStatus: http.StatusNotFound,
			ExpectedBody:   "Not Found",
		},
		{
			Err:            errors.New("unexpected"),
			ExpectedStatus: http.StatusInternalServerError,
			ExpectedBody:   "Internal Server Error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Err.Error(), func(t *testing.T) {
			res := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(res, req, tc.Err)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("expected status %v, got %v", e, g)
			}

			if e, g := tc.ExpectedBody, strings.TrimSpace(res.Body.String()); e != g {
				t.Errorf("expected body %v, got %v", e, g)
			}
		})
	}
}

func TestHandleJSONError(t *testing.T) {
	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/update_todo", nil)

	HandleJSONError(res, req, NewError("todo not found", "Todo not found", http.StatusNotFound))

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("expected status %v, got %v", e, g)
	}

	if e, g := `{"error":"Todo not found"}`, strings.TrimSpace(res.Body.String()); e != g {
		t.Errorf("expected body %v, got %v", e, g)
	}

	if e, g := "application/json", res.Header().Get("Content-Type"); e != g {
		t.Errorf("expected content type %v, got %v", e, g)
	}
}
