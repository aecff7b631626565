package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/crypto"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/utils"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath    = "/login"
	manifestPath = "/md5sum"
	bundlePath   = "/eggs/{name}"

	traceIDHeader = "X-Trace-ID"

	// maxErrorBody caps how much of an error response is read into the
	// returned error.
	maxErrorBody = 4 << 10
)

type httpBundleAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewFactory returns a [Factory] producing HTTP adapters configured from cfg.
func NewFactory(cfg config.ClientSync, logger *logger.Logger) Factory {
	return func(server models.ServerKey, creds models.Credentials) (BundleServerAdapter, error) {
		return NewHTTPBundleAdapter(cfg, server, creds, logger)
	}
}

// NewHTTPBundleAdapter constructs an HTTP implementation of
// [BundleServerAdapter] for server. The base URL is
// <cfg.Scheme>://<address>:<port>; every request carries HTTP Basic Auth with
// creds.Username and the password encoded by cfg.PasswordScheme.
//
// Returns an error if the server key is incomplete or the password scheme is
// unknown.
func NewHTTPBundleAdapter(cfg config.ClientSync, server models.ServerKey, creds models.Credentials, logger *logger.Logger) (BundleServerAdapter, error) {
	if strings.TrimSpace(server.Address) == "" || server.Port <= 0 || server.Port > 65535 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServer, server.String())
	}

	password, err := crypto.EncodePassword(cfg.PasswordScheme, creds.Password)
	if err != nil {
		return nil, err
	}

	scheme := cfg.Scheme
	if scheme == "" {
		scheme = config.DefaultScheme
	}

	client := resty.New().
		SetBaseURL(scheme+"://"+server.HostPort()).
		SetBasicAuth(creds.Username, password)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpBundleAdapter{client: client, logger: logger}, nil
}

// FetchConfig implements [BundleServerAdapter]. It GETs /login.
func (h *httpBundleAdapter) FetchConfig(ctx context.Context) ([]byte, error) {
	resp, err := h.request(ctx).Get(loginPath)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// FetchManifest implements [BundleServerAdapter]. It GETs /md5sum.
func (h *httpBundleAdapter) FetchManifest(ctx context.Context) ([]byte, error) {
	resp, err := h.request(ctx).Get(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("manifest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// FetchBundle implements [BundleServerAdapter]. It GETs /eggs/<name> without
// buffering the body, so large bundles stream straight into the cache.
func (h *httpBundleAdapter) FetchBundle(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := h.request(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("name", name).
		Get(bundlePath)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return nil, fmt.Errorf("bundle %s request: %w", name, err)
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		defer body.Close()
		msg, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return nil, mapHTTPStatus(resp.StatusCode(), string(msg))
	}

	h.logger.Debug().Str("bundle", name).Int64("size", resp.RawResponse.ContentLength).Msg("bundle download started")
	return body, nil
}

func (h *httpBundleAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if attemptID, ok := utils.GetAttemptIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, attemptID)
	}
	return req
}
