package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/store"
	"github.com/go-chi/chi/v5"
)

// login serves the client configuration handed out on first sync.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.BundleService.LoginConfig(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

// manifest serves the "<name>:<md5>" listing of all published bundles.
func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	listing, err := h.services.BundleService.Listing(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(listing)
}

func (h *Handler) bundle(w http.ResponseWriter, r *http.Request) {
	// chi keeps the raw segment when the path carries escapes
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", store.ErrInvalidBundleName, err))
		return
	}

	content, modTime, err := h.services.BundleService.OpenBundle(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer content.Close()

	logger.FromRequest(r).Debug().Str("bundle", name).Msg("serving bundle")

	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeContent(w, r, name, modTime, content)
}
