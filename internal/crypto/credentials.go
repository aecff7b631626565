package crypto

import (
	"fmt"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// EncodePassword returns the password as it is transmitted in the Basic Auth
// header for the given scheme. An empty scheme is md5, which is what existing
// bundle servers expect.
func EncodePassword(scheme, password string) (string, error) {
	switch scheme {
	case "", config.PasswordSchemeMD5:
		return utils.HashString(password), nil
	case config.PasswordSchemePlain:
		return password, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPasswordScheme, scheme)
	}
}

// HashPassword returns the bcrypt hash the publisher stores for a
// transmitted password. A cost of 0 selects bcrypt.DefaultCost.
func HashPassword(transmitted string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(transmitted), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether received matches the stored bcrypt hash.
func ComparePassword(hash []byte, received string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(received)) == nil
}
