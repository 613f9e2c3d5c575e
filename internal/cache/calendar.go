package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

const keyPrefix = "calendar:"

// CalendarCache guarda o calendário mensal (com ids) no Redis.
// Falhas do Redis nunca chegam ao chamador: viram cache miss.
type CalendarCache struct {
	cli *redis.Client
	ttl time.Duration
}

func NewCalendarCache(cli *redis.Client, ttl time.Duration) *CalendarCache {
	return &CalendarCache{cli: cli, ttl: ttl}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%s%04d-%02d", keyPrefix, year, month)
}

func (c *CalendarCache) Get(ctx context.Context, year, month int) (*availability.Calendar, bool) {
	raw, err := c.cli.Get(ctx, monthKey(year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WarnContext(ctx, "calendar cache get failed", "error", err)
		}
		return nil, false
	}

	var cal availability.Calendar
	if err := json.Unmarshal(raw, &cal); err != nil {
		logger.WarnContext(ctx, "calendar cache decode failed", "error", err)
		return nil, false
	}
	return &cal, true
}

func (c *CalendarCache) Set(ctx context.Context, cal *availability.Calendar) {
	raw, err := json.Marshal(cal)
	if err != nil {
		logger.WarnContext(ctx, "calendar cache encode failed", "error", err)
		return
	}

	if err := c.cli.Set(ctx, monthKey(cal.Year, cal.Month), raw, c.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "calendar cache set failed", "error", err)
	}
}

// Invalidate remove todos os meses que r toca. r é semiaberto.
func (c *CalendarCache) Invalidate(ctx context.Context, r dates.Range) {
	keys := monthKeys(r)
	if len(keys) == 0 {
		return
	}

	if err := c.cli.Del(ctx, keys...).Err(); err != nil {
		logger.WarnContext(ctx, "calendar cache invalidate failed",
			"keys", keys,
			"error", err,
		)
	}
}

func (c *CalendarCache) InvalidateAll(ctx context.Context) {
	iter := c.cli.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.WarnContext(ctx, "calendar cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := c.cli.Del(ctx, keys...).Err(); err != nil {
		logger.WarnContext(ctx, "calendar cache flush failed", "error", err)
	}
}

func monthKeys(r dates.Range) []string {
	if !r.End.After(r.Start) {
		return nil
	}

	last := r.End.AddDate(0, 0, -1)
	cur := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, time.UTC)

	var keys []string
	for !cur.After(last) {
		keys = append(keys, monthKey(cur.Year(), int(cur.Month())))
		cur = cur.AddDate(0, 1, 0)
	}
	return keys
}

var _ availability.CalendarCache = (*CalendarCache)(nil)
