// Package scanlog keeps lightweight scan telemetry in Redis: a per-day
// scan counter for the stats endpoint and an event log that is rolled
// up into a daily summary.
package scanlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const dailyLogKey = "scans:log:daily"

type ScanEvent struct {
	ProductID string    `json:"product_id"`
	Barcode   string    `json:"barcode"`
	Time      time.Time `json:"time"`
}

// Service wraps the Redis client used for scan counters. A nil Service
// is valid and turns every method into a no-op, so Redis stays optional.
type Service struct {
	rdb *redis.Client
	ctx context.Context
}

func NewService(rdb *redis.Client, ctx context.Context) *Service {
	return &Service{rdb: rdb, ctx: ctx}
}

func dailyCountKey(t time.Time) string {
	return "scans:count:" + t.Format("2006-01-02")
}

// RecordScan increments today's counter and appends the event to the
// daily log. Failures are logged, never propagated: telemetry must not
// break a barcode lookup.
func (s *Service) RecordScan(productID, barcode string) {
	if s == nil {
		return
	}
	now := time.Now()
	key := dailyCountKey(now)
	if err := s.rdb.Incr(s.ctx, key).Err(); err != nil {
		log.Printf("failed to increment scan counter: %v", err)
		return
	}
	s.rdb.Expire(s.ctx, key, 48*time.Hour)

	data, _ := json.Marshal(ScanEvent{ProductID: productID, Barcode: barcode, Time: now})
	if err := s.rdb.RPush(s.ctx, dailyLogKey, data).Err(); err != nil {
		log.Printf("failed to append scan log: %v", err)
	}
}

// TodayCount reads today's scan counter.
func (s *Service) TodayCount() (int, error) {
	if s == nil {
		return 0, redis.Nil
	}
	n, err := s.rdb.Get(s.ctx, dailyCountKey(time.Now())).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// StartDailySummary logs a per-product rollup of the day's scans every
// evening and clears the log.
func (s *Service) StartDailySummary(hour int) {
	if s == nil {
		return
	}
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(time.Until(next))
		s.logDailySummary()
	}
}

func (s *Service) logDailySummary() {
	entries, err := s.rdb.LRange(s.ctx, dailyLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = s.rdb.Del(s.ctx, dailyLogKey).Err()

	byProduct := make(map[string]int)
	for _, item := range entries {
		var event ScanEvent
		if err := json.Unmarshal([]byte(item), &event); err == nil {
			byProduct[event.Barcode]++
		}
	}

	summary := fmt.Sprintf("daily scan summary: %d scans over %d products", len(entries), len(byProduct))
	for barcode, count := range byProduct {
		summary += fmt.Sprintf("\n  %s: %d", barcode, count)
	}
	log.Println(summary)
}
