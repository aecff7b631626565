package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidDiscoveryConfigs indicates a missing mDNS service type or domain.
	ErrInvalidDiscoveryConfigs = errors.New("invalid discovery configuration")
	// ErrInvalidSyncConfigs indicates invalid bundle synchronization settings.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLaunchConfigs indicates a missing interpreter or search path variable.
	ErrInvalidLaunchConfigs = errors.New("invalid launch configuration")
	// ErrInvalidBackupConfigs indicates a missing backup interpreter or script.
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrInvalidPublisherConfigs indicates invalid bundle publisher settings.
	ErrInvalidPublisherConfigs = errors.New("invalid publisher configuration")
)
