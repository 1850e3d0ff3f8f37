package handlers

import (
	"log"
	"net/http"
	"time"
)

// GetStatsHandler godoc
// @Summary Catalog statistics
// @Description Total product count and today's scan count. The scan count prefers the Redis counter and falls back to the database.
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {string} string "Internal error"
// @Router /stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	total, err := productRepo.TotalCount()
	if err != nil {
		http.Error(w, "could not fetch statistics", http.StatusInternalServerError)
		return
	}

	scansToday, err := scanService.TodayCount()
	if err != nil {
		scansToday, err = scanRepo.CountToday()
		if err != nil {
			log.Printf("failed to count today's scans: %v", err)
			http.Error(w, "could not fetch statistics", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		TotalProducts: total,
		ScansToday:    scansToday,
		LastUpdate:    time.Now().UTC(),
	})
}

// GetExchangeRatesHandler godoc
// @Summary Current exchange rates with cache metadata
// @Tags stats
// @Produce json
// @Success 200 {object} RatesResponse
// @Failure 500 {string} string "Internal error"
// @Router /exchange-rates [get]
func GetExchangeRatesHandler(w http.ResponseWriter, r *http.Request) {
	rates, err := ratesService.Rates(r.Context())
	if err != nil {
		http.Error(w, "could not fetch exchange rates", http.StatusInternalServerError)
		return
	}

	info := ratesService.CacheInfo()
	resp := RatesResponse{Rates: rates}
	if info.HasCache {
		resp.Cache.LastUpdated = &info.LastUpdated
		resp.Cache.ExpiresAt = &info.ExpiresAt
	}
	writeJSON(w, http.StatusOK, resp)
}
