package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func rateProvider(t *testing.T, hits *int32, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRatesFetchesAndCaches(t *testing.T) {
	var hits int32
	srv := rateProvider(t, &hits, `{"base":"XAF","rates":{"EUR":0.0015,"USD":0.0017}}`, http.StatusOK)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := New(WithURL(srv.URL), WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	got, err := svc.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	want := Rates{FCFA: 1, EUR: 0.0015, USD: 0.0017}
	if got != want {
		t.Fatalf("rates = %+v, want %+v", got, want)
	}

	// A second call inside the TTL is served from cache.
	now = now.Add(30 * time.Minute)
	if _, err := svc.Rates(context.Background()); err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("provider hit %d times, want 1", n)
	}

	info := svc.CacheInfo()
	if !info.HasCache {
		t.Fatal("expected a populated cache")
	}
	if info.ExpiresAt.Sub(info.LastUpdated) != time.Hour {
		t.Errorf("cache window = %v, want 1h", info.ExpiresAt.Sub(info.LastUpdated))
	}
}

func TestRatesRefreshesAfterTTL(t *testing.T) {
	var hits int32
	srv := rateProvider(t, &hits, `{"base":"XAF","rates":{"EUR":0.0015,"USD":0.0017}}`, http.StatusOK)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := New(WithURL(srv.URL), WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	if _, err := svc.Rates(context.Background()); err != nil {
		t.Fatalf("Rates: %v", err)
	}
	now = now.Add(2 * time.Hour)
	if _, err := svc.Rates(context.Background()); err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("provider hit %d times, want 2", n)
	}
}

func TestRatesFallsBackToStaleCache(t *testing.T) {
	var hits int32
	srv := rateProvider(t, &hits, `{"base":"XAF","rates":{"EUR":0.0015,"USD":0.0017}}`, http.StatusOK)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := New(WithURL(srv.URL), WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	first, err := svc.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}

	// Provider goes away; the expired cache is still served.
	srv.Close()
	now = now.Add(2 * time.Hour)
	got, err := svc.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if got != first {
		t.Errorf("stale fallback = %+v, want cached %+v", got, first)
	}
}

func TestRatesFallsBackToDefaultsWithoutCache(t *testing.T) {
	svc := New(WithURL("http://127.0.0.1:0"), WithHTTPClient(&http.Client{Timeout: time.Second}))

	got, err := svc.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if got != fallbackRates {
		t.Errorf("rates = %+v, want fallback %+v", got, fallbackRates)
	}
	if svc.CacheInfo().HasCache {
		t.Error("a failed fetch must not populate the cache")
	}
}

func TestRatesProviderErrorStatus(t *testing.T) {
	var hits int32
	srv := rateProvider(t, &hits, `oops`, http.StatusBadGateway)

	svc := New(WithURL(srv.URL))
	got, err := svc.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if got != fallbackRates {
		t.Errorf("rates = %+v, want fallback %+v", got, fallbackRates)
	}
}

func TestRatesMissingCurrenciesFilledFromFallback(t *testing.T) {
	var hits int32
	srv := rateProvider(t, &hits, `{"base":"XAF","rates":{"EUR":0.0015}}`, http.StatusOK)

	svc := New(WithURL(srv.URL))
	got, err := svc.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if got.EUR != 0.0015 {
		t.Errorf("EUR = %v, want provider value 0.0015", got.EUR)
	}
	if got.USD != fallbackRates.USD {
		t.Errorf("USD = %v, want fallback %v", got.USD, fallbackRates.USD)
	}
}
