package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/stoq-client/internal/app"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	store.ErrBundleNotFound:      {http.StatusNotFound, app.MsgBundleNotFound},
	store.ErrInvalidBundleName:   {http.StatusBadRequest, app.MsgInvalidBundleName},
	store.ErrConfigNotConfigured: {http.StatusNotFound, app.MsgConfigNotAvailable},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.status).Send()
	}

	http.Error(w, resp.message, resp.status)
}
