// Package mq carries board activity events to a message broker.
package mq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suggestion-board/board/config"
)

// Message is a broker-agnostic delivery handed to subscribers.
type Message struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

// Handler processes a message. A non-nil error requeues it.
type Handler func(ctx context.Context, msg Message) error

// Backend is implemented by each supported broker.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Subscribe(ctx context.Context, channel string, handler Handler) error
	Close() error
}

// MQ wraps a backend with a stable API.
type MQ struct {
	backend Backend
}

// New wraps an already constructed backend.
func New(backend Backend) *MQ {
	return &MQ{backend: backend}
}

// Open builds the backend selected by cfg.Backend: "rabbitmq", "pubsub" or
// "none". Unknown values are rejected.
func Open(ctx context.Context, cfg config.MQConfig) (*MQ, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.Backend {
	case "", "none":
		backend = Nop{}
	case "rabbitmq":
		backend, err = NewRabbitMQClient(cfg.RabbitMQ)
	case "pubsub":
		backend, err = NewPubSubClient(ctx, cfg.PubSub)
	default:
		return nil, fmt.Errorf("unknown mq backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	slog.InfoContext(ctx, "activity broker ready", "backend", cfg.Backend, "channel", cfg.Channel)
	return &MQ{backend: backend}, nil
}

// Publish sends a message to the named channel.
func (m *MQ) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	return m.backend.Publish(ctx, channel, data, attrs)
}

// Subscribe consumes messages from the named channel until ctx is done.
func (m *MQ) Subscribe(ctx context.Context, channel string, handler Handler) error {
	return m.backend.Subscribe(ctx, channel, handler)
}

// Enabled reports whether messages actually leave the process.
func (m *MQ) Enabled() bool {
	_, nop := m.backend.(Nop)
	return !nop
}

// Close closes the underlying backend.
func (m *MQ) Close() error {
	return m.backend.Close()
}

// Nop discards published messages. Subscribing blocks until ctx is done.
type Nop struct{}

func (Nop) Publish(context.Context, string, []byte, map[string]string) (string, error) {
	return "", nil
}

func (Nop) Subscribe(ctx context.Context, _ string, _ Handler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (Nop) Close() error { return nil }
