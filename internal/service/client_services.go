package service

import (
	"github.com/MKhiriev/stoq-client/internal/adapter"
	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/store"
)

type ClientServices struct {
	SyncService ClientSyncService
}

func NewClientServices(storages *store.ClientStorages, newAdapter adapter.Factory, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SyncService: NewClientSyncService(storages, newAdapter, cfg, logger),
	}
}
