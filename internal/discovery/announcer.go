package discovery

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/grandcat/zeroconf"
)

// Announcer advertises one service instance over mDNS while it runs.
type Announcer struct {
	instance    string
	serviceType string
	domain      string
	port        int
	properties  map[string]string

	register func(instance, service, domain string, port int, text []string) (shutdowner, error)

	logger *logger.Logger
}

type shutdowner interface {
	Shutdown()
}

func NewAnnouncer(instance, serviceType, domain string, port int, properties map[string]string, logger *logger.Logger) *Announcer {
	return &Announcer{
		instance:    instance,
		serviceType: serviceType,
		domain:      domain,
		port:        port,
		properties:  properties,
		register:    zeroconfRegister,
		logger:      logger,
	}
}

// Run registers the instance, keeps it announced until ctx is cancelled and
// then sends the goodbye.
func (a *Announcer) Run(ctx context.Context) error {
	server, err := a.register(a.instance, a.serviceType, a.domain, a.port, formatTXT(a.properties))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAnnounce, a.instance, err)
	}

	a.logger.Info().
		Str("instance", a.instance).
		Str("service", a.serviceType).
		Int("port", a.port).
		Msg("service announced")

	<-ctx.Done()
	server.Shutdown()

	a.logger.Info().Str("instance", a.instance).Msg("service announcement withdrawn")
	return nil
}

func zeroconfRegister(instance, service, domain string, port int, text []string) (shutdowner, error) {
	return zeroconf.Register(instance, service, domain, port, text, nil)
}
