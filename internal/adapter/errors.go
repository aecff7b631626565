package adapter

import (
	"errors"

	"github.com/MKhiriev/stoq-client/internal/crypto"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrUnknownPasswordScheme = crypto.ErrUnknownPasswordScheme
	ErrInvalidServer         = errors.New("invalid server address")
)
