package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sagelight/outreach/internal/metrics"
	"github.com/sagelight/outreach/internal/notification"
	"github.com/sagelight/outreach/internal/storage"
)

// job pairs a message with the delivery-log kind it is recorded under.
type job struct {
	kind string
	msg  notification.Message
}

// dispatcher sends notification jobs concurrently with joint failure
// semantics and records every attempt in the delivery log.
type dispatcher struct {
	provider notification.Provider
	store    storage.DeliveryStore
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func newDispatcher(provider notification.Provider, store storage.DeliveryStore, m *metrics.Metrics, logger *slog.Logger) *dispatcher {
	return &dispatcher{provider: provider, store: store, metrics: m, logger: logger}
}

// sendAll dispatches all jobs concurrently and waits for every send to
// finish. If any send fails, the first failure is returned as a
// NotificationError; there is no partial retry. Each attempt is logged
// to the delivery store regardless of outcome.
func (d *dispatcher) sendAll(ctx context.Context, jobs ...job) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, j := range jobs {
		j := j // capture per-iteration; required while the go directive is below 1.22
		g.Go(func() error {
			sendErr := d.provider.Send(gctx, j.msg)

			status := "sent"
			errMsg := ""
			if sendErr != nil {
				status = "failed"
				errMsg = sendErr.Error()
				d.logger.Error("notification send failed",
					slog.String("kind", j.kind),
					slog.String("recipient", j.msg.To),
					slog.Any("error", sendErr),
				)
			}
			d.metrics.EmailSendTotal.WithLabelValues(j.kind, status).Inc()

			// Logging is best-effort and must survive request cancellation.
			entry := storage.DeliveryLogEntry{
				Kind:      j.kind,
				Provider:  d.provider.Name(),
				Recipient: j.msg.To,
				Subject:   j.msg.Subject,
				Status:    status,
				ErrorMsg:  errMsg,
				CreatedAt: time.Now().UTC(),
			}
			if logErr := d.store.LogDelivery(context.Background(), entry); logErr != nil {
				d.logger.Warn("failed to record delivery",
					slog.String("kind", j.kind),
					slog.Any("error", logErr),
				)
			}

			if sendErr != nil {
				return &NotificationError{Kind: j.kind, Err: sendErr}
			}
			return nil
		})
	}

	return g.Wait()
}
