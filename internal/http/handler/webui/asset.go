package webui

import (
	"net/http"

	"github.com/bornholm/todoshare/internal/http/handler/webui/component"
)

var assets = component.Assets()

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFileFS(w, r, assets, r.PathValue("file"))
}
