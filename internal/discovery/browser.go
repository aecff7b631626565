package discovery

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/grandcat/zeroconf"
)

const defaultRefreshInterval = 30 * time.Second

type browseFunc func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error

// Browser feeds a [Registry] from mDNS.
//
// The resolver reports each service instance once per browse session and
// drops goodbye packets and address-less entries before delivering them, so
// Browser browses in rounds of RefreshInterval and withdraws servers that were
// not seen for two and a half intervals. Withdrawal latency therefore comes
// from the sweep. TTL 0 and address-less entries are still handled for
// resolvers that do deliver them.
//
// Each round's entries channel is owned by the resolver: it is closed once the
// resolver has shut down, and round reads it until then.
type Browser struct {
	serviceType string
	domain      string
	refresh     time.Duration
	staleAfter  time.Duration

	registry *Registry
	browse   browseFunc
	now      func() time.Time

	mu        sync.Mutex
	lastSeen  map[models.ServerKey]time.Time
	instances map[string]models.ServerKey

	logger *logger.Logger
}

func NewBrowser(cfg config.ClientDiscovery, registry *Registry, logger *logger.Logger) *Browser {
	refresh := cfg.RefreshInterval
	if refresh <= 0 {
		refresh = defaultRefreshInterval
	}

	return &Browser{
		serviceType: cfg.ServiceType,
		domain:      cfg.Domain,
		refresh:     refresh,
		staleAfter:  2*refresh + refresh/2,
		registry:    registry,
		browse:      zeroconfBrowse,
		now:         time.Now,
		lastSeen:    make(map[models.ServerKey]time.Time),
		instances:   make(map[string]models.ServerKey),
		logger:      logger,
	}
}

// Run browses until ctx is cancelled. It returns an error only when the
// resolver cannot be started.
func (b *Browser) Run(ctx context.Context) error {
	b.logger.Info().
		Str("service", b.serviceType).
		Str("domain", b.domain).
		Dur("refresh", b.refresh).
		Msg("browsing for servers")

	for ctx.Err() == nil {
		if err := b.round(ctx); err != nil {
			return err
		}
		b.sweep()
	}
	return nil
}

func (b *Browser) round(ctx context.Context) error {
	roundCtx, cancel := context.WithTimeout(ctx, b.refresh)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	if err := b.browse(roundCtx, b.serviceType, b.domain, entries); err != nil {
		return fmt.Errorf("browse %s: %w", b.serviceType, err)
	}

	for {
		select {
		case <-roundCtx.Done():
			// the resolver shuts down only after its pending send completes
			for range entries {
			}
			return nil
		case entry, ok := <-entries:
			if !ok {
				<-roundCtx.Done()
				return nil
			}
			b.handleEntry(entry)
		}
	}
}

func (b *Browser) handleEntry(entry *zeroconf.ServiceEntry) {
	if entry == nil {
		return
	}
	if entry.TTL == 0 {
		b.withdrawInstance(entry.Instance)
		return
	}

	server, err := announcementFromEntry(entry)
	if err != nil {
		b.logger.Warn().Err(err).Msg("mDNS entry ignored")
		return
	}

	b.mu.Lock()
	previous, moved := b.instances[server.Instance]
	moved = moved && previous != server.Key
	if moved {
		delete(b.lastSeen, previous)
	}
	b.instances[server.Instance] = server.Key
	b.lastSeen[server.Key] = b.now()
	b.mu.Unlock()

	if moved {
		b.registry.Withdraw(previous)
	}

	if known, ok := b.registry.Get(server.Key); ok &&
		known.Instance == server.Instance &&
		maps.Equal(known.Properties, server.Properties) {
		return
	}
	b.registry.Announce(server)
}

func (b *Browser) withdrawInstance(instance string) {
	b.mu.Lock()
	key, ok := b.instances[instance]
	if ok {
		delete(b.instances, instance)
		delete(b.lastSeen, key)
	}
	b.mu.Unlock()

	if !ok {
		b.logger.Warn().Err(ErrLookupFailure).Str("instance", instance).Msg("goodbye for unknown instance ignored")
		return
	}
	b.registry.Withdraw(key)
}

// sweep withdraws servers not seen within staleAfter.
func (b *Browser) sweep() {
	now := b.now()

	b.mu.Lock()
	var stale []models.ServerKey
	for key, seen := range b.lastSeen {
		if now.Sub(seen) > b.staleAfter {
			stale = append(stale, key)
			delete(b.lastSeen, key)
		}
	}
	for instance, key := range b.instances {
		if slices.Contains(stale, key) {
			delete(b.instances, instance)
		}
	}
	b.mu.Unlock()

	slices.SortFunc(stale, compareKeys)
	for _, key := range stale {
		b.logger.Info().Str("server", key.String()).Msg("server announcement expired")
		b.registry.Withdraw(key)
	}
}

func zeroconfBrowse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("create resolver: %w", err)
	}
	return resolver.Browse(ctx, service, domain, entries)
}
