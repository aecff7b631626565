package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/stoq-client/models"
)

const (
	FieldAddress  = "address"
	FieldPort     = "port"
	FieldUsername = "username"
	FieldBundles  = "bundles"
)

// SyncRequest is what a sync attempt is started with.
type SyncRequest struct {
	Server      models.ServerKey
	Credentials models.Credentials
	Bundles     []string
}

type SyncValidator struct {
}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ServerKey:
		return v.validateServerKey(value, fields...)
	case *models.ServerKey:
		return v.validateServerKey(*value, fields...)

	case SyncRequest:
		return v.validateSyncRequest(value, fields...)
	case *SyncRequest:
		return v.validateSyncRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateServerKey(key models.ServerKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldPort}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if strings.TrimSpace(key.Address) == "" {
				return ErrInvalidServerAddress
			}
		case FieldPort:
			if key.Port < 1 || key.Port > 65535 {
				return ErrInvalidServerPort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateSyncRequest(request SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldPort, FieldUsername, FieldBundles}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress, FieldPort:
			if err := v.validateServerKey(request.Server, f); err != nil {
				return err
			}
		case FieldUsername:
			if strings.TrimSpace(request.Credentials.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldBundles:
			for _, name := range request.Bundles {
				if !ValidBundleName(name) {
					return ErrInvalidBundleName
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidBundleName reports whether name is a single, non-special path
// element.
func ValidBundleName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
