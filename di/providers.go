package di

import (
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	billingService "lodge/internal/domains/billing/service"
	"lodge/internal/domains/booking/event"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	customerRepository "lodge/internal/domains/customer/repository"
	paymentRepository "lodge/internal/domains/payment/repository"
	roomTypeRepository "lodge/internal/domains/roomtype/repository"
)

// provideBookingService builds the booking workflow and attaches the Kafka
// confirmation publisher as its standing observer.
func provideBookingService(
	bookingRepo bookingRepository.Booking,
	customerRepo customerRepository.Customer,
	paymentRepo paymentRepository.Payment,
	roomTypeRepo roomTypeRepository.RoomType,
	billing billingService.Billing,
	db *postgres.Connection,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otl otel.Otel,
) bookingService.Booking {
	svc := bookingService.New(bookingRepo, customerRepo, paymentRepo, roomTypeRepo, billing, db, cfg, otl)
	svc.Attach(event.NewPublisher(kafkaClient, cfg, otl))

	return svc
}
