package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/stoq-client/internal/app"
	"github.com/MKhiriev/stoq-client/internal/crypto"
	"github.com/MKhiriev/stoq-client/internal/logger"
)

const basicAuthChallenge = `Basic realm="stoq", charset="UTF-8"`

// basicAuth is an HTTP middleware that enforces HTTP Basic authentication.
//
// The username must equal the configured one and the transmitted password
// must match the configured bcrypt hash. Clients using the md5 password
// scheme transmit the hex MD5 of the password, so for them the hash is
// computed over that digest.
//
// Rejected requests get 401 Unauthorized with a WWW-Authenticate challenge.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, ok := r.BasicAuth()
		if !ok {
			err := ErrInvalidAuthorizationHeader
			if r.Header.Get("Authorization") == "" {
				err = ErrEmptyAuthorizationHeader
			}
			log.Err(err).Send()
			unauthorized(w)
			return
		}

		if !h.checkCredentials(username, password) {
			log.Err(ErrInvalidCredentials).Str("username", username).Send()
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) checkCredentials(username, password string) bool {
	userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) == 1
	passwordMatches := crypto.ComparePassword(h.passwordHash, password)
	return userMatches && passwordMatches
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", basicAuthChallenge)
	http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
}
