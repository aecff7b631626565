package service

import (
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/store"
)

type Services struct {
	BundleService BundleService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		BundleService: NewBundleService(storages.Bundles, logger),
	}
}
