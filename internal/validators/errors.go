package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidServerAddress = errors.New("invalid server address")
	ErrInvalidServerPort    = errors.New("invalid server port")
	ErrEmptyUsername        = errors.New("username is required")
	ErrInvalidBundleName    = errors.New("invalid bundle name")
)
