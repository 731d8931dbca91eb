package webui

import (
	"encoding/json"
	"net/http"

	httpCtx "github.com/bornholm/todoshare/internal/http/context"
	"github.com/bornholm/todoshare/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

var (
	errInvalidJSONBody = common.NewError("invalid json body", "Invalid JSON body", http.StatusBadRequest)
	errInvalidFormBody = common.NewError("invalid form body", "Invalid form data", http.StatusBadRequest)
)

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.WithStack(errInvalidJSONBody)
	}

	return nil
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := r.ParseForm(); err != nil {
		return errors.WithStack(errInvalidFormBody)
	}

	return nil
}

func writeSuccess(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, r, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}

func redirectToBaseURL(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, httpCtx.BaseURL(r.Context()).Path, http.StatusSeeOther)
}
