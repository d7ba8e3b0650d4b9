package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/config"
)

func newProfileService(baseURL string) *ProfileService {
	cfg := config.GravatarConfig{
		BaseURL:  baseURL,
		APIKey:   "test-key",
		CacheTTL: time.Minute,
	}
	return NewProfileService(nil, cfg, zerolog.Nop())
}

func TestProfileHashesNormalizedEmail(t *testing.T) {
	sum := sha256.Sum256([]byte("user@example.com"))
	wantHash := hex.EncodeToString(sum[:])

	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"display_name":"User"}`))
	}))
	defer srv.Close()

	svc := newProfileService(srv.URL)

	// Mixed case and surrounding whitespace normalize away; the raw address
	// never reaches the upstream.
	raw, err := svc.Profile(context.Background(), "  User@Example.COM ")
	require.NoError(t, err)

	assert.JSONEq(t, `{"display_name":"User"}`, string(raw))
	assert.Equal(t, "/"+wantHash, gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestProfileNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newProfileService(srv.URL)

	_, err := svc.Profile(context.Background(), "nobody@example.com")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProfileUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broken"))
	}))
	defer srv.Close()

	svc := newProfileService(srv.URL)

	_, err := svc.Profile(context.Background(), "user@example.com")
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestProfileEmptyEmail(t *testing.T) {
	svc := newProfileService("http://unused")

	_, err := svc.Profile(context.Background(), "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
