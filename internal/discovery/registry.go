package discovery

import (
	"cmp"
	"slices"
	"sync"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/models"
)

// Registry is the live set of announced servers keyed by (address, port).
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	servers   map[models.ServerKey]models.ServerAnnouncement
	observers []Observer

	logger *logger.Logger
}

func NewRegistry(logger *logger.Logger) *Registry {
	return &Registry{
		servers: make(map[models.ServerKey]models.ServerAnnouncement),
		logger:  logger,
	}
}

// Subscribe registers o for every later change.
func (r *Registry) Subscribe(o Observer) {
	r.mu.Lock()
	r.observers = append(r.observers, o)
	r.mu.Unlock()
}

// Announce inserts server or replaces the properties of the entry with the
// same key. Observers are told in both cases.
func (r *Registry) Announce(server models.ServerAnnouncement) {
	server = server.WithProperties(server.Properties)

	r.mu.Lock()
	_, known := r.servers[server.Key]
	r.servers[server.Key] = server
	observers := r.observers
	r.mu.Unlock()

	r.logger.Info().
		Str("server", server.Key.String()).
		Str("instance", server.Instance).
		Bool("update", known).
		Msg("server announced")

	for _, o := range observers {
		o.ServerAdded(server.WithProperties(server.Properties))
	}
}

// Withdraw removes the server with key. Withdrawing an unknown key is logged
// and otherwise ignored. It reports whether an entry was removed.
func (r *Registry) Withdraw(key models.ServerKey) bool {
	r.mu.Lock()
	_, known := r.servers[key]
	delete(r.servers, key)
	observers := r.observers
	r.mu.Unlock()

	if !known {
		r.logger.Warn().Str("server", key.String()).Msg("withdraw for unknown server ignored")
		return false
	}

	r.logger.Info().Str("server", key.String()).Msg("server withdrawn")
	for _, o := range observers {
		o.ServerRemoved(key)
	}
	return true
}

// Get returns the announcement stored for key.
func (r *Registry) Get(key models.ServerKey) (models.ServerAnnouncement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	server, ok := r.servers[key]
	if !ok {
		return models.ServerAnnouncement{}, false
	}
	return server.WithProperties(server.Properties), true
}

// List returns a snapshot of all servers ordered by address, then port.
func (r *Registry) List() []models.ServerAnnouncement {
	r.mu.RLock()
	list := make([]models.ServerAnnouncement, 0, len(r.servers))
	for _, server := range r.servers {
		list = append(list, server.WithProperties(server.Properties))
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b models.ServerAnnouncement) int {
		return compareKeys(a.Key, b.Key)
	})
	return list
}

// Len returns the number of known servers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.servers)
}

func compareKeys(a, b models.ServerKey) int {
	if c := cmp.Compare(a.Address, b.Address); c != 0 {
		return c
	}
	return cmp.Compare(a.Port, b.Port)
}
