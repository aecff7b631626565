package discovery

import "errors"

var (
	// ErrLookupFailure is logged when an mDNS entry cannot be turned into a
	// server announcement (for example it carries no address). The entry is
	// ignored.
	ErrLookupFailure = errors.New("service info lookup failed")

	ErrAnnounce = errors.New("failed to announce service")
)
