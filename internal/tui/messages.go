package tui

import "github.com/MKhiriev/stoq-client/models"

type serverAddedMsg struct {
	server models.ServerAnnouncement
}

type serverRemovedMsg struct {
	key models.ServerKey
}

type syncDoneMsg struct {
	server models.ServerKey
	result models.SyncResult
	err    error
}
