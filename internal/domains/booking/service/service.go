package service

import (
	"context"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	billingService "lodge/internal/domains/billing/service"
	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepository "lodge/internal/domains/customer/repository"
	"lodge/internal/domains/payment/method"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepository "lodge/internal/domains/payment/repository"
	roomTypeRepository "lodge/internal/domains/roomtype/repository"
	"lodge/shared/constant"
	"lodge/shared/dates"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const msgPersistenceFailure = "An error occurred while saving the booking"

// Booking runs the submission workflow: validate the form, check
// availability, price the stay, and persist customer, booking, and payment
// as one unit. Observers hear about every outcome.
type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.BookingConfirmation, error)
	IsAvailable(ctx context.Context, roomType string, checkin, checkout time.Time) bool
	Attach(observer Observer)
	Detach(observer Observer)
}

type serviceImpl struct {
	bookingRepo  repository.Booking
	customerRepo customerRepository.Customer
	paymentRepo  paymentRepository.Payment
	roomTypeRepo roomTypeRepository.RoomType
	billing      billingService.Billing
	txer         postgres.Transactor
	cfg          *config.Config
	otel         otel.Otel
	observers    observerList
}

func New(
	bookingRepo repository.Booking,
	customerRepo customerRepository.Customer,
	paymentRepo paymentRepository.Payment,
	roomTypeRepo roomTypeRepository.RoomType,
	billing billingService.Billing,
	txer postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		roomTypeRepo: roomTypeRepo,
		billing:      billing,
		txer:         txer,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Attach(observer Observer) {
	s.observers.attach(observer)
}

func (s *serviceImpl) Detach(observer Observer) {
	s.observers.detach(observer)
}

// Submit is not idempotent: resubmitting the same form creates a second
// customer, booking, and payment row set.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.BookingConfirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if msg := validateRequiredFields(req); msg != constant.Empty {
		s.observers.notifyError(ctx, msg)

		return res, failure.BadRequestFromString(msg) // nolint:wrapcheck
	}

	checkin, checkout := req.Dates()

	if err := dates.ValidateRangeMax(checkin, checkout, timezone.Now(), s.cfg.Booking.MaxStayNights); err != nil {
		s.observers.notifyError(ctx, err.Error())

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == constant.Empty {
		paymentMethod = method.Cash
	}

	processor, err := method.ForMethod(paymentMethod)
	if err != nil {
		s.observers.notifyError(ctx, err.Error())

		return res, err
	}

	if !s.IsAvailable(ctx, req.RoomType, checkin, checkout) {
		msg := "Selected room is not available for these dates!"
		s.observers.notifyError(ctx, msg)

		return res, failure.Conflict(msg) // nolint:wrapcheck
	}

	bill, err := s.billing.QuoteDates(ctx, req.RoomType, checkin, checkout)
	if err != nil {
		s.observers.notifyError(ctx, err.Error())

		return res, err
	}

	if err = processor.Process(ctx, bill.Total); err != nil {
		s.observers.notifyError(ctx, "Payment processing failed")

		return res, err
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	customer := customerModel.Customer{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Metadata: newMetadata(actor),
	}

	booking := bookingModel.Booking{
		ID:           uuid.NewString(),
		CustomerID:   customer.ID,
		RoomType:     req.RoomType,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Status:       constant.BookingStatusActive,
		Metadata:     newMetadata(actor),
	}

	payment := paymentModel.Payment{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Method:    paymentMethod,
		Amount:    bill.Total,
		Status:    constant.PaymentStatusPending,
		Metadata:  newMetadata(actor),
	}

	err = s.txer.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.customerRepo.InsertTx(ctx, tx, customer); err != nil {
			return err
		}

		if err := s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.paymentRepo.InsertTx(ctx, tx, payment)
	})
	if err != nil {
		log.Error().Err(err).
			Str("roomType", req.RoomType).
			Str("checkinDate", req.CheckinDate).
			Str("checkoutDate", req.CheckoutDate).
			Msg("failed to persist booking")

		s.observers.notifyError(ctx, msgPersistenceFailure)

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	res = dto.BookingConfirmation{
		BookingID:     booking.ID,
		CustomerID:    customer.ID,
		Name:          req.Name,
		RoomType:      req.RoomType,
		CheckinDate:   dates.Format(checkin),
		CheckoutDate:  dates.Format(checkout),
		PaymentMethod: paymentMethod,
		Bill:          bill,
	}

	s.observers.notifySuccess(ctx, res)

	return res, nil
}

// validateRequiredFields mirrors the form-level checks: every field must be
// present and the room type must actually be picked, not the placeholder.
func validateRequiredFields(req dto.SubmitBookingRequest) string {
	if req.Name == constant.Empty {
		return "Name is required"
	}

	if req.Phone == constant.Empty {
		return "Phone is required"
	}

	if req.Address == constant.Empty {
		return "Address is required"
	}

	if req.RoomType == constant.Empty || req.RoomType == constant.RoomTypeNotSelected {
		return "Room Type is required"
	}

	if req.CheckinDate == constant.Empty {
		return "Checkin Date is required"
	}

	if req.CheckoutDate == constant.Empty {
		return "Checkout Date is required"
	}

	return constant.Empty
}

func newMetadata(actor string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}
