// Package catalogsync fetches mod catalog documents over HTTP and feeds
// the parsed entries into a ckanreg.Registry, fulfilling the core's
// "callers parse catalog documents and hand CkanModule values to
// addAvailable" ingestion contract (the core itself performs no
// network I/O and does not validate catalog syntax).
//
// Fetches go through a chain of mirror URLs tried in order, each
// individually retried with exponential backoff, and results are cached
// in-memory with a TTL so repeated syncs against an unchanged catalog
// don't re-fetch every time.
package catalogsync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jellydator/ttlcache/v3"

	"github.com/ksp-mods/ckanreg"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultCacheTTL       = 10 * time.Minute
)

// entry is the wire shape of one catalog record. Field names follow the
// conventional CKAN metadata vocabulary; unrecognized fields are
// ignored, matching the core's "does not validate catalog document
// syntax" contract, and absent optional fields leave the matching
// CkanModule field empty. A recognized field with the wrong JSON type
// fails parsing of the whole document.
type entry struct {
	Identifier  string          `json:"identifier"`
	Version     string          `json:"version"`
	KSPVersion  string          `json:"ksp_version,omitempty"`
	KSPVersionMin string        `json:"ksp_version_min,omitempty"`
	KSPVersionMax string        `json:"ksp_version_max,omitempty"`
	Depends     []relationship  `json:"depends,omitempty"`
	Conflicts   []relationship  `json:"conflicts,omitempty"`
	Recommends  []relationship  `json:"recommends,omitempty"`
	Suggests    []relationship  `json:"suggests,omitempty"`
	Provides    []string        `json:"provides,omitempty"`
	Replacement string          `json:"replaced_by,omitempty"`
}

type relationship struct {
	Name          string `json:"name"`
	VersionExact  string `json:"version,omitempty"`
	VersionMin    string `json:"min_version,omitempty"`
	VersionMax    string `json:"max_version,omitempty"`
}

func (e entry) toModule() ckanreg.CkanModule {
	return ckanreg.CkanModule{
		Identifier: e.Identifier,
		Version:    e.Version,
		HostRange: ckanreg.HostRange{
			Min:   e.KSPVersionMin,
			Max:   e.KSPVersionMax,
			Exact: e.KSPVersion,
		},
		Depends:     toDescriptors(e.Depends),
		Conflicts:   toDescriptors(e.Conflicts),
		Recommends:  toDescriptors(e.Recommends),
		Suggests:    toDescriptors(e.Suggests),
		Provides:    e.Provides,
		Replacement: e.Replacement,
	}
}

func toDescriptors(rels []relationship) []ckanreg.RelationshipDescriptor {
	if len(rels) == 0 {
		return nil
	}
	out := make([]ckanreg.RelationshipDescriptor, len(rels))
	for i, r := range rels {
		out[i] = ckanreg.RelationshipDescriptor{
			Name:         r.Name,
			VersionExact: r.VersionExact,
			VersionMin:   r.VersionMin,
			VersionMax:   r.VersionMax,
		}
	}
	return out
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets a structured logger for fetch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Syncer) { s.logger = l }
}

// WithHTTPClient overrides the HTTP client used for fetches, e.g. to
// inject a transport with custom TLS settings in tests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Syncer) { s.client = c }
}

// WithCacheTTL overrides how long a fetched document is served from
// cache before the next Sync call re-fetches it.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Syncer) { s.cacheTTL = d }
}

// Syncer fetches a catalog document from a chain of mirror URLs, trying
// each in order until one succeeds, and loads the result into a
// ckanreg.Registry.
type Syncer struct {
	mirrors  []string
	client   *http.Client
	cache    *ttlcache.Cache[string, []byte]
	cacheTTL time.Duration
	logger   *slog.Logger
}

// New returns a Syncer that fetches from mirrors in order, falling back
// to the next URL on any error (network failure, non-2xx status, or a
// context deadline).
func New(mirrors []string, opts ...Option) *Syncer {
	s := &Syncer{
		mirrors:  mirrors,
		client:   &http.Client{Timeout: defaultRequestTimeout},
		cacheTTL: defaultCacheTTL,
	}
	for _, o := range opts {
		o(s)
	}

	s.cache = ttlcache.New[string, []byte](
		ttlcache.WithTTL[string, []byte](s.cacheTTL),
	)
	go s.cache.Start()

	return s
}

// Close stops the syncer's background cache eviction goroutine.
func (s *Syncer) Close() {
	s.cache.Stop()
}

func (s *Syncer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.New(discardHandler{})
}

// Sync fetches the catalog (from cache if still fresh, otherwise from
// the mirror chain) and adds every parsed entry to r via AddAvailable.
// It does not clear r's existing available index first — callers that
// want a full replace should call r.ClearAvailable() themselves.
func (s *Syncer) Sync(ctx context.Context, r *ckanreg.Registry) error {
	data, err := s.fetch(ctx)
	if err != nil {
		return fmt.Errorf("catalogsync: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("catalogsync: parse catalog document: %w", err)
	}

	for _, e := range entries {
		r.AddAvailable(e.toModule())
	}
	return nil
}

// fetch returns the raw catalog document, using the in-memory cache
// keyed by the mirror list's canonical identity when available.
func (s *Syncer) fetch(ctx context.Context) ([]byte, error) {
	cacheKey := s.mirrors[0]
	if item := s.cache.Get(cacheKey); item != nil {
		return item.Value(), nil
	}

	var lastErr error
	for _, url := range s.mirrors {
		data, err := s.fetchOne(ctx, url)
		if err != nil {
			s.log().Warn("catalog mirror fetch failed, trying next", "url", url, "error", err)
			lastErr = err
			continue
		}
		s.cache.Set(cacheKey, data, ttlcache.DefaultTTL)
		return data, nil
	}
	return nil, fmt.Errorf("all %d catalog mirrors failed: %w", len(s.mirrors), lastErr)
}

// fetchOne retries a single URL with exponential backoff, bounded by
// ctx, before giving up.
func (s *Syncer) fetchOne(ctx context.Context, url string) ([]byte, error) {
	var result []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return err // network errors are retryable
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden {
			return backoff.Permanent(fmt.Errorf("%s: status %d", url, resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: status %d", url, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		result = body
		return nil
	}

	boff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, boff); err != nil {
		return nil, err
	}
	return result, nil
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
