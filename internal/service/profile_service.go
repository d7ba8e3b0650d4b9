package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/config"
)

// ProfileService proxies Gravatar profile lookups. Responses are cached in
// Redis keyed by the email hash; the cache is best-effort and a cache fault
// never fails the lookup.
type ProfileService struct {
	cache  *redis.Client
	client *http.Client
	cfg    config.GravatarConfig
	log    zerolog.Logger
}

func NewProfileService(cache *redis.Client, cfg config.GravatarConfig, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		cache:  cache,
		client: &http.Client{Timeout: 10 * time.Second},
		cfg:    cfg,
		log:    log,
	}
}

// Profile fetches the Gravatar profile for an email address. The email is
// normalized and SHA-256 hashed before it leaves the service; the raw address
// is never sent upstream.
func (s *ProfileService) Profile(ctx context.Context, email string) (json.RawMessage, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, apperr.Validation("email query param required")
	}

	sum := sha256.Sum256([]byte(email))
	hash := hex.EncodeToString(sum[:])

	if cached := s.cacheGet(ctx, hash); cached != nil {
		return cached, nil
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.BaseURL, "/"), hash)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Storage("build gravatar request", err)
	}
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Storage("gravatar request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Storage("read gravatar response", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperr.NotFound("profile not found")
	case resp.StatusCode != http.StatusOK:
		return nil, apperr.Storage(
			fmt.Sprintf("gravatar api status %d", resp.StatusCode),
			fmt.Errorf("%s", strings.TrimSpace(string(body))),
		)
	}

	s.cacheSet(ctx, hash, body)
	return body, nil
}

func (s *ProfileService) cacheGet(ctx context.Context, hash string) json.RawMessage {
	if s.cache == nil {
		return nil
	}
	val, err := s.cache.Get(ctx, profileCacheKey(hash)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Msg("profile cache read failed")
		}
		return nil
	}
	return val
}

func (s *ProfileService) cacheSet(ctx context.Context, hash string, body []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, profileCacheKey(hash), body, s.cfg.CacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("profile cache write failed")
	}
}

func profileCacheKey(hash string) string {
	return "gravatar:" + hash
}
