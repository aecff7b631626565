package crypto

import "errors"

// ErrUnknownPasswordScheme is returned for a password scheme other than md5
// or plain.
var ErrUnknownPasswordScheme = errors.New("unknown password scheme")
