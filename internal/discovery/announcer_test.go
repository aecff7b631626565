package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct{ shutdown chan struct{} }

func (s *fakeServer) Shutdown() { close(s.shutdown) }

func TestAnnouncer_RegistersUntilCancelled(t *testing.T) {
	srv := &fakeServer{shutdown: make(chan struct{})}
	a := NewAnnouncer("shop", "_stoqserver._tcp", "local.", 6971, map[string]string{"version": "1"}, logger.Nop())
	a.register = func(instance, service, domain string, port int, text []string) (shutdowner, error) {
		assert.Equal(t, "shop", instance)
		assert.Equal(t, "_stoqserver._tcp", service)
		assert.Equal(t, "local.", domain)
		assert.Equal(t, 6971, port)
		assert.Equal(t, []string{"version=1"}, text)
		return srv, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}

	select {
	case <-srv.shutdown:
	default:
		t.Fatal("server was not shut down")
	}
}

func TestAnnouncer_RegisterFailure(t *testing.T) {
	boom := errors.New("boom")
	a := NewAnnouncer("shop", "_stoqserver._tcp", "local.", 6971, nil, logger.Nop())
	a.register = func(string, string, string, int, []string) (shutdowner, error) {
		return nil, boom
	}

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrAnnounce)
	assert.ErrorIs(t, err, boom)
}
