package event_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/booking/event"
	"lodge/internal/domains/booking/model/dto"
)

func TestPublisher_OnBookingSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "lodge.booking.confirmed"

	publisher := event.NewPublisher(mockKafka, cfg, mockOtel)

	confirmation := dto.BookingConfirmation{
		BookingID: "booking-id",
		RoomType:  "Single",
	}

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "lodge.booking.confirmed", gomock.Any()).
		Return(nil)

	publisher.OnBookingSuccess(context.Background(), confirmation)
}

func TestPublisher_OnBookingSuccess_SendFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "lodge.booking.confirmed"

	publisher := event.NewPublisher(mockKafka, cfg, mockOtel)

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "lodge.booking.confirmed", gomock.Any()).
		Return(errors.New("broker unreachable"))

	publisher.OnBookingSuccess(context.Background(), dto.BookingConfirmation{BookingID: "booking-id"})
}

func TestPublisher_OnBookingError_NoPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	publisher := event.NewPublisher(mockKafka, &config.Config{}, mockOtel)

	publisher.OnBookingError(context.Background(), "Name is required")
}
