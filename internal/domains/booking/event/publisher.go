// Package event bridges booking outcomes onto Kafka so out-of-process
// listeners hear about confirmed bookings.
package event

import (
	"context"
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher is a booking observer that publishes confirmations to the
// booking topic. Errors are log-only; a dropped event never fails the
// booking it describes.
type Publisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

var _ service.Observer = (*Publisher)(nil)

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) *Publisher {
	return &Publisher{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *Publisher) OnBookingSuccess(ctx context.Context, confirmation dto.BookingConfirmation) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".OnBookingSuccess")
	defer scope.End()

	message := kafka.Message{
		Key:   confirmation.BookingID,
		Value: confirmation,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).
			Str("bookingID", confirmation.BookingID).
			Str("topic", p.cfg.Kafka.BookingTopic).
			Msg("failed to publish booking confirmation")
	}
}

func (p *Publisher) OnBookingError(_ context.Context, _ string) {
	// Rejected submissions stay in-process; only confirmations leave.
}
