// internal/webhooks/payments.go
package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"merchstore/pkg/middleware"
)

// Payment notifications are an external boundary: the payment processor
// calls in, the storefront acknowledges and records. No payment state is
// interpreted here.

// EnsureSchema creates the event table when a database is configured.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return nil
	}
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS payment_events (
			id          BIGSERIAL PRIMARY KEY,
			request_id  TEXT,
			event_type  TEXT,
			payload     JSONB,
			received_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

// Recorder logs and persists inbound payment notifications. The pool may
// be nil, in which case events are logged only.
type Recorder struct {
	pool *pgxpool.Pool
	log  *zap.SugaredLogger
}

func NewRecorder(pool *pgxpool.Pool, log *zap.SugaredLogger) *Recorder {
	return &Recorder{pool: pool, log: log}
}

// HandlePayment always acknowledges with 202: a retrying processor must
// not be failed because our event log hiccuped.
func (rec *Recorder) HandlePayment(w http.ResponseWriter, r *http.Request) {
	payload, _ := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	eventType := ""
	var probe struct {
		Type  string `json:"type"`
		Event string `json:"event"`
	}
	if err := json.Unmarshal(payload, &probe); err == nil {
		eventType = probe.Type
		if eventType == "" {
			eventType = probe.Event
		}
	}
	reqID := middleware.RequestIDFrom(r.Context())
	rec.log.Infow("payment notification", "type", eventType, "bytes", len(payload), "request_id", reqID)
	if rec.pool != nil {
		stored := payload
		if !json.Valid(stored) {
			stored, _ = json.Marshal(map[string]string{"raw": string(payload)})
		}
		if _, err := rec.pool.Exec(r.Context(), `
			INSERT INTO payment_events(request_id, event_type, payload) VALUES ($1,$2,$3)`,
			reqID, eventType, stored); err != nil {
			rec.log.Warnw("payment event insert failed", "err", err)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"received":true}`))
}
