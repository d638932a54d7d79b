// Package events publishes booking lifecycle records for downstream
// consumers. Publishing is best-effort; callers must never fail a
// booking operation because the broker is down.
package events

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"travelease/config"
	"travelease/infras/kafka"
	"travelease/infras/otel"
	"travelease/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     int       `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	HotelID       int       `json:"hotel_id"`
	UserID        int       `json:"user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

// New returns the Kafka publisher when Kafka is enabled, otherwise a
// noop publisher so the rest of the service needs no branching.
func New(cfg *config.Config, otl otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, booking events will not be published")

		return NewNoop()
	}

	return &kafkaPublisher{
		client: kafka.New(cfg),
		topic:  cfg.Kafka.BookingTopic,
		otel:   otl,
	}
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func (p *kafkaPublisher) Publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("event.type", event.Type)

	message := kafka.Message{
		Key:   strconv.Itoa(event.BookingID),
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.topic, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Int("bookingID", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func NewNoop() Publisher {
	return &noopPublisher{}
}

func (p *noopPublisher) Publish(_ context.Context, _ BookingEvent) error {
	return nil
}
