package webui

import (
	"io"
	"net/http"
)

const (
	VerificationFilename = "6ee0f9bfa3e3dd568497b8062fba8521.txt"
	verificationContent  = "12c799e1e1c52e9b3d20f6420f5e46a0589222ba"
)

func (h *Handler) getVerificationFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain;charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, verificationContent)
}
