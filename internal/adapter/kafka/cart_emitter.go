package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.CartEventEmitter = (*CartEventEmitter)(nil)

type emitter interface {
	EmitSync(key string, msg any) error
	Finish() error
}

// A CartEventEmitter publishes cart changes to a stream keyed
// by product ID.
type CartEventEmitter struct {
	ge emitter
}

// NewCartEventEmitter connects to seedBrokers. A nil tlsConfig
// leaves the connection in plain text.
func NewCartEventEmitter(
	seedBrokers []string, topic string, serde Serde, tlsConfig *tls.Config,
) (*CartEventEmitter, error) {
	const op = "NewCartEventEmitter"

	if len(seedBrokers) == 0 {
		return nil, opErr(errors.New("no seed brokers"), op)
	}
	if serde == nil {
		return nil, opErr(errors.New("serde is nil"), op)
	}

	cfg := goka.DefaultConfig()
	if tlsConfig != nil {
		cfg.Net.TLS.Enable = true
		cfg.Net.TLS.Config = tlsConfig
	}

	ge, err := goka.NewEmitter(
		seedBrokers,
		goka.Stream(topic),
		newCartEventCodec(serde),
		goka.WithEmitterProducerBuilder(goka.ProducerBuilderWithConfig(cfg)),
		goka.WithEmitterTopicManagerBuilder(
			goka.TopicManagerBuilderWithConfig(cfg, goka.NewTopicManagerConfig()),
		),
	)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &CartEventEmitter{ge}, nil
}

func (e *CartEventEmitter) EmitCartEvent(
	ctx context.Context, ev domain.CartEvent,
) error {
	const op = "CartEventEmitter.EmitCartEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	key := strconv.Itoa(ev.ProductID)
	if err := e.ge.EmitSync(key, cartEventToSchemaV1(ev)); err != nil {
		return opErr(err, op)
	}
	return nil
}

func (e *CartEventEmitter) Close() {
	const op = "CartEventEmitter.Close"
	log := slog.With("op", op)

	log.Info("closing emitter...")
	if err := e.ge.Finish(); err != nil {
		log.Error("failed to finish gracefully", "err", err)
		return
	}
	log.Info("emitter is closed")
}

// A cartEventCodec used for serde [schema.CartEventV1]
type cartEventCodec struct {
	serde Serde
}

func newCartEventCodec(s Serde) cartEventCodec {
	return cartEventCodec{s}
}

func (c cartEventCodec) Encode(v any) ([]byte, error) {
	const op = "cartEventCodec.Encode"
	if _, ok := v.(schema.CartEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c cartEventCodec) Decode(data []byte) (any, error) {
	const op = "cartEventCodec.Decode"
	var s schema.CartEventV1
	if err := c.serde.Decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

func cartEventToSchemaV1(v domain.CartEvent) (s schema.CartEventV1) {
	s.Action = v.Action
	s.ProductID = int64(v.ProductID)
	s.Title = v.Title
	s.Price = v.Price.String()
	s.Quantity = int64(v.Quantity)
	s.TotalQuantity = int64(v.TotalQuantity)
	s.OccurredAt = v.OccurredAt
	return
}
