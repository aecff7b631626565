// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/stoq-client/internal/adapter"
	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/mock"
	"github.com/MKhiriev/stoq-client/internal/store"
	"github.com/MKhiriev/stoq-client/internal/utils"
	"github.com/MKhiriev/stoq-client/internal/validators"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testServer = models.ServerKey{Address: "192.168.0.10", Port: 6971}
	testCreds  = models.Credentials{Username: "admin", Password: "secret"}
	testSync   = config.ClientSync{
		Bundles:          []string{"kiwi.egg", "stoq.egg"},
		ExecutableBundle: "stoq.egg",
	}
)

func factoryOf(a adapter.BundleServerAdapter) adapter.Factory {
	return func(models.ServerKey, models.Credentials) (adapter.BundleServerAdapter, error) {
		return a, nil
	}
}

// newTestSyncSvc builds a clientSyncService with mocked cache, config store and adapter.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (
	ClientSyncService,
	*mock.MockBundleServerAdapter,
	*mock.MockBundleCache,
	*mock.MockConfigFileStore,
) {
	t.Helper()
	mockAdapter := mock.NewMockBundleServerAdapter(ctrl)
	mockCache := mock.NewMockBundleCache(ctrl)
	mockConfig := mock.NewMockConfigFileStore(ctrl)

	mockCache.EXPECT().Path(gomock.Any()).DoAndReturn(func(name string) string {
		return "/cache/" + name
	}).AnyTimes()

	storages := &store.ClientStorages{BundleCache: mockCache, ConfigFile: mockConfig}
	svc := NewClientSyncService(storages, factoryOf(mockAdapter), testSync, logger.Nop())
	return svc, mockAdapter, mockCache, mockConfig
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

// ── Cache hits ───────────────────────────────────────────────────────────────

func TestSynchronize_AllCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockCache, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(true, nil)
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return([]byte("kiwi.egg:aaa\nstoq.egg:bbb\n"), nil)
	mockCache.EXPECT().Checksum("kiwi.egg").Return("aaa", true, nil)
	mockCache.EXPECT().Checksum("stoq.egg").Return("BBB", true, nil)

	res, err := svc.Synchronize(context.Background(), testServer, testCreds)

	require.NoError(t, err)
	assert.Empty(t, res.Downloaded)
	assert.Equal(t, []string{"/cache/kiwi.egg", "/cache/stoq.egg"}, res.SearchPaths)
	assert.Equal(t, "/cache/stoq.egg", res.ExecutablePath)
	assert.NotEmpty(t, res.AttemptID)
}

// ── Downloads ────────────────────────────────────────────────────────────────

func TestSynchronize_StaleBundleDownloadedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockCache, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(true, nil)
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return([]byte("kiwi.egg:aaa\nstoq.egg:bbb\n"), nil)
	mockCache.EXPECT().Checksum("kiwi.egg").Return("aaa", true, nil)
	gomock.InOrder(
		mockCache.EXPECT().Checksum("stoq.egg").Return("old", true, nil),
		mockAdapter.EXPECT().FetchBundle(gomock.Any(), "stoq.egg").Return(body("new"), nil).Times(1),
		mockCache.EXPECT().Write("stoq.egg", gomock.Any()).DoAndReturn(func(_ string, r io.Reader) error {
			data, err := io.ReadAll(r)
			assert.NoError(t, err)
			assert.Equal(t, "new", string(data))
			return nil
		}),
		mockCache.EXPECT().Checksum("stoq.egg").Return("bbb", true, nil),
	)

	res, err := svc.Synchronize(context.Background(), testServer, testCreds)

	require.NoError(t, err)
	assert.Equal(t, []string{"stoq.egg"}, res.Downloaded)
	assert.Equal(t, "/cache/stoq.egg", res.ExecutablePath)
}

func TestSynchronize_MissingBundleDownloaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockCache, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(true, nil)
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return([]byte("kiwi.egg:aaa\nstoq.egg:bbb\n"), nil)
	gomock.InOrder(
		mockCache.EXPECT().Checksum("kiwi.egg").Return("", false, nil),
		mockAdapter.EXPECT().FetchBundle(gomock.Any(), "kiwi.egg").Return(body("k"), nil),
		mockCache.EXPECT().Write("kiwi.egg", gomock.Any()).Return(nil),
		mockCache.EXPECT().Checksum("kiwi.egg").Return("aaa", true, nil),
	)
	mockCache.EXPECT().Checksum("stoq.egg").Return("bbb", true, nil)

	res, err := svc.Synchronize(context.Background(), testServer, testCreds)

	require.NoError(t, err)
	assert.Equal(t, []string{"kiwi.egg"}, res.Downloaded)
	assert.Len(t, res.SearchPaths, 2)
}

func TestSynchronize_PersistentMismatchIsIntegrityError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockCache, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(true, nil)
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return([]byte("kiwi.egg:aaa\nstoq.egg:bbb\n"), nil)
	gomock.InOrder(
		mockCache.EXPECT().Checksum("kiwi.egg").Return("zzz", true, nil),
		mockAdapter.EXPECT().FetchBundle(gomock.Any(), "kiwi.egg").Return(body("corrupt"), nil).Times(1),
		mockCache.EXPECT().Write("kiwi.egg", gomock.Any()).Return(nil),
		mockCache.EXPECT().Checksum("kiwi.egg").Return("yyy", true, nil),
	)

	_, err := svc.Synchronize(context.Background(), testServer, testCreds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)

	var integrityErr *IntegrityError
	require.True(t, errors.As(err, &integrityErr))
	assert.Equal(t, "kiwi.egg", integrityErr.Bundle)
	assert.Equal(t, "aaa", integrityErr.Expected)
	assert.Equal(t, "yyy", integrityErr.Actual)
}

func TestSynchronize_DownloadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockCache, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(true, nil)
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return([]byte("kiwi.egg:aaa\nstoq.egg:bbb\n"), nil)
	mockCache.EXPECT().Checksum("kiwi.egg").Return("", false, nil)
	mockAdapter.EXPECT().FetchBundle(gomock.Any(), "kiwi.egg").
		Return(nil, fmt.Errorf("%w: bundle was not found", adapter.ErrNotFound))

	_, err := svc.Synchronize(context.Background(), testServer, testCreds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBundleDownload)
	assert.ErrorIs(t, err, store.ErrBundleNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── Manifest failures ────────────────────────────────────────────────────────

func TestSynchronize_ManifestFailures(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		fetchErr error
		extra    error
	}{
		{name: "unreachable", fetchErr: errors.New("connection refused")},
		{name: "unauthorized", fetchErr: fmt.Errorf("%w: invalid login/password", adapter.ErrUnauthorized), extra: ErrWrongPassword},
		{name: "malformed", body: []byte("kiwi.egg:aaa\nstoq.egg\n"), extra: ErrMalformedManifest},
		{name: "required bundle missing", body: []byte("kiwi.egg:aaa\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _, mockConfig := newTestSyncSvc(t, ctrl)

			mockConfig.EXPECT().Exists().Return(true, nil)
			mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return(tt.body, tt.fetchErr)

			_, err := svc.Synchronize(context.Background(), testServer, testCreds)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrManifestFetch)
			if tt.extra != nil {
				assert.ErrorIs(t, err, tt.extra)
			}
		})
	}
}

// ── Config file ──────────────────────────────────────────────────────────────

func TestSynchronize_FetchesConfigWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockCache, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(false, nil)
	mockAdapter.EXPECT().FetchConfig(gomock.Any()).Return([]byte("[General]\n"), nil)
	mockConfig.EXPECT().Save(gomock.Any()).DoAndReturn(func(r io.Reader) error {
		data, err := io.ReadAll(r)
		assert.NoError(t, err)
		assert.Equal(t, "[General]\n", string(data))
		return nil
	})
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return([]byte("kiwi.egg:aaa\nstoq.egg:bbb\n"), nil)
	mockCache.EXPECT().Checksum("kiwi.egg").Return("aaa", true, nil)
	mockCache.EXPECT().Checksum("stoq.egg").Return("bbb", true, nil)

	_, err := svc.Synchronize(context.Background(), testServer, testCreds)
	require.NoError(t, err)
}

func TestSynchronize_ConfigFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, mockConfig := newTestSyncSvc(t, ctrl)

	mockConfig.EXPECT().Exists().Return(false, nil)
	mockAdapter.EXPECT().FetchConfig(gomock.Any()).Return(nil, fmt.Errorf("%w: ", adapter.ErrInternalServerError))

	_, err := svc.Synchronize(context.Background(), testServer, testCreds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigFetch)
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestSynchronize_AdapterFactoryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.ClientStorages{
		BundleCache: mock.NewMockBundleCache(ctrl),
		ConfigFile:  mock.NewMockConfigFileStore(ctrl),
	}
	factory := func(models.ServerKey, models.Credentials) (adapter.BundleServerAdapter, error) {
		return nil, adapter.ErrUnknownPasswordScheme
	}
	svc := NewClientSyncService(storages, factory, testSync, logger.Nop())

	_, err := svc.Synchronize(context.Background(), testServer, testCreds)
	assert.ErrorIs(t, err, adapter.ErrUnknownPasswordScheme)
}

func TestSynchronize_NoBundles(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.ClientStorages{
		BundleCache: mock.NewMockBundleCache(ctrl),
		ConfigFile:  mock.NewMockConfigFileStore(ctrl),
	}
	svc := NewClientSyncService(storages, factoryOf(mock.NewMockBundleServerAdapter(ctrl)), config.ClientSync{}, logger.Nop())

	_, err := svc.Synchronize(context.Background(), testServer, testCreds)
	assert.ErrorIs(t, err, ErrNoBundlesConfigured)
}

func TestSynchronize_InvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		server  models.ServerKey
		creds   models.Credentials
		wantErr error
	}{
		{name: "no address", server: models.ServerKey{Port: 6971}, creds: testCreds, wantErr: validators.ErrInvalidServerAddress},
		{name: "no port", server: models.ServerKey{Address: "192.168.0.10"}, creds: testCreds, wantErr: validators.ErrInvalidServerPort},
		{name: "no username", server: testServer, creds: models.Credentials{Password: "secret"}, wantErr: validators.ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storages := &store.ClientStorages{
				BundleCache: mock.NewMockBundleCache(ctrl),
				ConfigFile:  mock.NewMockConfigFileStore(ctrl),
			}
			// the adapter must never be built for a rejected request
			factory := func(models.ServerKey, models.Credentials) (adapter.BundleServerAdapter, error) {
				t.Fatal("adapter factory called")
				return nil, nil
			}
			svc := NewClientSyncService(storages, factory, testSync, logger.Nop())

			_, err := svc.Synchronize(context.Background(), tt.server, tt.creds)

			assert.ErrorIs(t, err, ErrInvalidSyncRequest)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Real file cache ──────────────────────────────────────────────────────────

func TestSynchronize_SecondRunIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBundleServerAdapter(ctrl)

	root := t.TempDir()
	storages, err := store.NewClientStorages(config.ClientSync{
		CacheDir:   filepath.Join(root, "eggs"),
		ConfigFile: filepath.Join(root, "stoq.conf"),
	}, logger.Nop())
	require.NoError(t, err)

	contents := map[string]string{"kiwi.egg": "kiwi-v1", "stoq.egg": "stoq-v1"}
	manifest := models.Manifest{}
	for name, c := range contents {
		manifest[name] = utils.HashString(c)
	}

	mockAdapter.EXPECT().FetchConfig(gomock.Any()).Return([]byte("conf"), nil).Times(1)
	mockAdapter.EXPECT().FetchManifest(gomock.Any()).Return(FormatManifest(manifest), nil).Times(2)
	mockAdapter.EXPECT().FetchBundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(contents[name]))), nil
		}).Times(2)

	svc := NewClientSyncService(storages, factoryOf(mockAdapter), testSync, logger.Nop())

	first, err := svc.Synchronize(context.Background(), testServer, testCreds)
	require.NoError(t, err)
	assert.Equal(t, []string{"kiwi.egg", "stoq.egg"}, first.Downloaded)

	second, err := svc.Synchronize(context.Background(), testServer, testCreds)
	require.NoError(t, err)
	assert.Empty(t, second.Downloaded)
	assert.Equal(t, first.SearchPaths, second.SearchPaths)
	assert.Equal(t, filepath.Join(root, "eggs", "stoq.egg"), second.ExecutablePath)
	assert.NotEqual(t, first.AttemptID, second.AttemptID)
}
