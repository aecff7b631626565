package discovery

import "github.com/MKhiriev/stoq-client/models"

// Observer receives registry changes. Methods are called from the goroutine
// that changed the registry and must return promptly; presentation layers
// should hand the value off to their own loop.
type Observer interface {
	// ServerAdded is called when a server is first announced and again when
	// its announcement changes.
	ServerAdded(server models.ServerAnnouncement)

	// ServerRemoved is called when a known server is withdrawn.
	ServerRemoved(key models.ServerKey)
}

// ObserverFuncs adapts a pair of functions to [Observer]. Nil functions are
// skipped.
type ObserverFuncs struct {
	Added   func(models.ServerAnnouncement)
	Removed func(models.ServerKey)
}

func (o ObserverFuncs) ServerAdded(server models.ServerAnnouncement) {
	if o.Added != nil {
		o.Added(server)
	}
}

func (o ObserverFuncs) ServerRemoved(key models.ServerKey) {
	if o.Removed != nil {
		o.Removed(key)
	}
}
