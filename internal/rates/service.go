// Package rates fetches and caches currency exchange rates for the
// price display layer. The cache is owned by the Service and injected
// where needed; there is no package-level singleton.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const defaultURL = "https://api.exchangerate-api.com/v4/latest/XAF"

// Rates holds the conversion factors from the base currency (FCFA).
type Rates struct {
	FCFA float64 `json:"FCFA"`
	EUR  float64 `json:"EUR"`
	USD  float64 `json:"USD"`
}

// fallbackRates are used when the provider is unreachable and no cache
// exists yet.
var fallbackRates = Rates{FCFA: 1, EUR: 0.00152, USD: 0.00165}

// CacheInfo describes the state of the rate cache.
type CacheInfo struct {
	HasCache    bool
	LastUpdated time.Time
	ExpiresAt   time.Time
}

type cached struct {
	rates       Rates
	lastUpdated time.Time
	expiresAt   time.Time
}

// Service fetches live rates with a time-bounded cache.
type Service struct {
	mu     sync.Mutex
	client *http.Client
	url    string
	ttl    time.Duration
	now    func() time.Time
	cache  *cached
}

// Option configures a Service.
type Option func(*Service)

func WithURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.url = url
		}
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    defaultURL,
		ttl:    time.Hour,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rates returns the cached rates when still valid, otherwise fetches
// fresh ones. A failed fetch falls back to the stale cache and, as the
// last resort, to the hardcoded rates; the caller always gets usable
// values.
func (s *Service) Rates(ctx context.Context) (Rates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cache != nil && now.Before(s.cache.expiresAt) {
		return s.cache.rates, nil
	}

	rates, err := s.fetch(ctx)
	if err != nil {
		log.Printf("failed to fetch live exchange rates: %v", err)
		if s.cache != nil {
			return s.cache.rates, nil
		}
		return fallbackRates, nil
	}

	s.cache = &cached{
		rates:       rates,
		lastUpdated: now,
		expiresAt:   now.Add(s.ttl),
	}
	return rates, nil
}

// CacheInfo reports the cache state for the monitoring endpoint.
func (s *Service) CacheInfo() CacheInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil {
		return CacheInfo{}
	}
	return CacheInfo{
		HasCache:    true,
		LastUpdated: s.cache.lastUpdated,
		ExpiresAt:   s.cache.expiresAt,
	}
}

type providerResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (s *Service) fetch(ctx context.Context) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Rates{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Rates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rates{}, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Rates{}, err
	}

	rates := Rates{FCFA: 1, EUR: body.Rates["EUR"], USD: body.Rates["USD"]}
	if rates.EUR == 0 {
		rates.EUR = fallbackRates.EUR
	}
	if rates.USD == 0 {
		rates.USD = fallbackRates.USD
	}
	return rates, nil
}
