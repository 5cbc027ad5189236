// Package worker implements the buffered notification dispatcher. It decouples
// progression mutations from notification fan-out, providing:
// - Non-blocking emission with load shedding when the queue is full
// - A bounded in-memory ring of recent notifications for the UI dropdown
// - Optional pub/sub publishing for connected front ends
// - Graceful shutdown with drain guarantees
package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/gamehub/progression-api/internal/models"
)

// Channel notifications are published on when a Publisher is configured.
const PublishChannel = "gamehub:notifications"

// Prometheus metrics
var (
	notificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamehub_notifications_emitted_total",
		Help: "Total number of notifications emitted, by kind",
	}, []string{"kind"})

	notificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamehub_notifications_dropped_total",
		Help: "Total number of notifications dropped due to a full queue",
	})

	notificationQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gamehub_notification_queue_depth",
		Help: "Current depth of the notification queue",
	})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamehub_notification_publish_failures_total",
		Help: "Total number of failed pub/sub publishes",
	})
)

// Publisher sends a serialized notification to connected clients. The Redis
// store satisfies this; nil disables publishing.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Config configures the dispatcher.
type Config struct {
	QueueSize   int
	HistorySize int
	Publisher   Publisher
	Logger      *zap.Logger
}

// Dispatcher receives notifications from the services and fans them out.
// It implements logic.Notifier.
type Dispatcher struct {
	config  Config
	queue   chan models.Notification
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *zap.SugaredLogger
	started bool

	mu      sync.RWMutex
	history []models.Notification
}

// New creates a dispatcher. Call Start before emitting.
func New(cfg Config) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 50
	}

	return &Dispatcher{
		config: cfg,
		queue:  make(chan models.Notification, cfg.QueueSize),
		logger: cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.started = true

	d.wg.Add(1)
	go d.run()

	go d.reportQueueDepth()

	d.logger.Infow("Notification dispatcher started",
		"queueSize", d.config.QueueSize,
		"historySize", d.config.HistorySize,
	)
}

// Stop shuts the dispatcher down, draining anything already queued.
func (d *Dispatcher) Stop() {
	if !d.started {
		return
	}
	d.cancel()
	close(d.queue)
	d.wg.Wait()
	d.logger.Info("Notification dispatcher stopped")
}

// Notify enqueues a notification without blocking. When the queue is full the
// notification is dropped and counted; progression writes must never stall on
// notification fan-out.
func (d *Dispatcher) Notify(kind, title, message string) {
	n := models.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	// Protect against sending on a closed channel during shutdown.
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warnw("Notification dropped (dispatcher stopped)", "kind", kind)
		}
	}()

	select {
	case d.queue <- n:
		notificationsEmitted.WithLabelValues(kind).Inc()
	default:
		notificationsDropped.Inc()
		d.logger.Warnw("Notification queue full, dropping", "kind", kind, "title", title)
	}
}

// Recent returns up to limit notifications, newest first.
func (d *Dispatcher) Recent(limit int) []models.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if limit <= 0 || limit > len(d.history) {
		limit = len(d.history)
	}

	out := make([]models.Notification, 0, limit)
	for i := len(d.history) - 1; i >= len(d.history)-limit; i-- {
		out = append(out, d.history[i])
	}
	return out
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for n := range d.queue {
		d.record(n)
		d.publish(n)
	}
}

func (d *Dispatcher) record(n models.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.history = append(d.history, n)
	if len(d.history) > d.config.HistorySize {
		d.history = d.history[len(d.history)-d.config.HistorySize:]
	}
}

func (d *Dispatcher) publish(n models.Notification) {
	if d.config.Publisher == nil {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		d.logger.Errorw("Failed to encode notification", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.config.Publisher.Publish(ctx, PublishChannel, payload); err != nil {
		publishFailures.Inc()
		d.logger.Warnw("Failed to publish notification", "kind", n.Kind, "error", err)
	}
}

func (d *Dispatcher) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			notificationQueueDepth.Set(float64(len(d.queue)))
		case <-d.ctx.Done():
			return
		}
	}
}
