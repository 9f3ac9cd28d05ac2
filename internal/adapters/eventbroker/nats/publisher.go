package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"workspace-drive/internal/config"
	"workspace-drive/internal/core/domain"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// streamMaxAge bounds how long lifecycle events are kept in the stream
const streamMaxAge = 7 * 24 * time.Hour

// defaultPublishTimeout applies when the config carries no publish timeout
const defaultPublishTimeout = 2 * time.Second

// Publisher is a struct publishing file lifecycle events on JetStream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects to NATS and makes sure the events stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	p := &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}
	if err := p.ensureStream(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

func (p *Publisher) ensureStream(ctx context.Context) error {
	_, err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     p.config.StreamName,
		Subjects: []string{p.config.SubjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   streamMaxAge,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", p.config.StreamName, err)
	}
	return nil
}

// Subject returns the subject an event type is published on
func (p *Publisher) Subject(eventType domain.EventType) string {
	return p.config.SubjectPrefix + "." + string(eventType)
}

// Publish sends event and waits for the stream acknowledgement, at most the publish timeout.
// The wait ignores cancellation of ctx.
func (p *Publisher) Publish(ctx context.Context, event domain.FileEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	timeout := p.config.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	msgID := fmt.Sprintf("%s-%s-%d", event.FileID.Hex(), event.Type, event.OccurredAt.UnixNano())
	if _, err := p.js.Publish(pubCtx, p.Subject(event.Type), data, jetstream.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

// Close graceful shutdown
func (p *Publisher) Close() error {
	if p.conn != nil {
		return p.conn.Drain()
	}
	return nil
}
