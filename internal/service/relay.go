package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RelayService fetches externally hosted assets on behalf of the browser,
// for origins the hosting platform will not let the browser load directly.
// It is a stateless pass-through; nothing is cached server-side.
type RelayService struct {
	httpClient   *http.Client
	allowedHosts []string
}

// RelayServiceConfig holds relay service settings
type RelayServiceConfig struct {
	// AllowedHosts restricts fetchable origins, matched by host suffix.
	// Empty means any host.
	AllowedHosts []string
	Timeout      time.Duration
}

// NewRelayService creates a new asset relay service
func NewRelayService(cfg RelayServiceConfig) *RelayService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &RelayService{
		httpClient:   &http.Client{Timeout: timeout},
		allowedHosts: cfg.AllowedHosts,
	}
}

// Asset is one relayed asset. The caller must close Body.
type Asset struct {
	Body        io.ReadCloser
	ContentType string
}

// DefaultAssetContentType is assumed when the origin omits a content type.
const DefaultAssetContentType = "image/jpeg"

// Fetch retrieves the asset at rawURL and returns its bytes and content
// type. The URL must be absolute http(s) and, when an allow-list is
// configured, its host must match one of the allowed suffixes.
func (s *RelayService) Fetch(ctx context.Context, rawURL string) (*Asset, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidAssetURL
	}
	if !s.hostAllowed(parsed.Hostname()) {
		return nil, fmt.Errorf("%w: %s", ErrAssetHostNotAllowed, parsed.Hostname())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetFetchFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetFetchFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: origin returned status %d", ErrAssetFetchFailed, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultAssetContentType
	}
	return &Asset{Body: resp.Body, ContentType: contentType}, nil
}

func (s *RelayService) hostAllowed(host string) bool {
	if len(s.allowedHosts) == 0 {
		return true
	}
	for _, allowed := range s.allowedHosts {
		allowed = strings.TrimSpace(allowed)
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
