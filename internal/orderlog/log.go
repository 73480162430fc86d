// internal/orderlog/log.go
package orderlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	listKey    = "storefront:orders:recent"
	maxEntries = 100
)

// Entry is one recorded order submission. The trail is operational
// visibility only; Printify remains the system of record.
type Entry struct {
	OrderID     string    `json:"orderId"`
	ShopID      string    `json:"shopId"`
	Status      string    `json:"status,omitempty"`
	ItemCount   int       `json:"itemCount"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Log keeps a capped list of recent order submissions in Redis. A nil
// client disables it; every method is safe to call regardless.
type Log struct {
	rdb *redis.Client
	log *zap.SugaredLogger
}

func New(rdb *redis.Client, log *zap.SugaredLogger) *Log {
	return &Log{rdb: rdb, log: log}
}

func (l *Log) Enabled() bool { return l != nil && l.rdb != nil }

// Record appends best-effort: storage problems never fail the order path.
func (l *Log) Record(ctx context.Context, e Entry) {
	if !l.Enabled() {
		return
	}
	b, err := json.Marshal(e)
	if err != nil {
		return
	}
	pipe := l.rdb.TxPipeline()
	pipe.LPush(ctx, listKey, b)
	pipe.LTrim(ctx, listKey, 0, maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		l.log.Warnw("order trail write failed", "err", err)
	}
}

// Recent returns up to n entries, newest first. Failures come back as an
// empty list, matching the rest of the read path's degrade-not-fail
// policy.
func (l *Log) Recent(ctx context.Context, n int64) []Entry {
	if !l.Enabled() {
		return []Entry{}
	}
	vals, err := l.rdb.LRange(ctx, listKey, 0, n-1).Result()
	if err != nil {
		l.log.Warnw("order trail read failed", "err", err)
		return []Entry{}
	}
	out := make([]Entry, 0, len(vals))
	for _, v := range vals {
		var e Entry
		if err := json.Unmarshal([]byte(v), &e); err == nil {
			out = append(out, e)
		}
	}
	return out
}
