package service

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/billing/model/dto"
	roomTypeModel "lodge/internal/domains/roomtype/model"
	roomTypeRepository "lodge/internal/domains/roomtype/repository"
	"lodge/shared/constant"
	"lodge/shared/dates"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// Billing prices stays. Quote parses and validates the requested range
// before pricing it against the current nightly rate.
type Billing interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.BillBreakdown, error)
	QuoteDates(ctx context.Context, roomType string, checkin, checkout time.Time) (dto.BillBreakdown, error)
}

type serviceImpl struct {
	roomTypeRepo roomTypeRepository.RoomType
	cfg          *config.Config
	otel         otel.Otel
}

func New(roomTypeRepo roomTypeRepository.RoomType, cfg *config.Config, otel otel.Otel) Billing {
	return &serviceImpl{
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.BillBreakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkin, err := dates.Parse(req.CheckinDate)
	if err != nil {
		return res, failure.BadRequest(fmt.Errorf("invalid check-in date: %w", err)) // nolint:wrapcheck
	}

	checkout, err := dates.Parse(req.CheckoutDate)
	if err != nil {
		return res, failure.BadRequest(fmt.Errorf("invalid check-out date: %w", err)) // nolint:wrapcheck
	}

	return s.QuoteDates(ctx, req.RoomType, checkin, checkout)
}

func (s *serviceImpl) QuoteDates(ctx context.Context, roomType string, checkin, checkout time.Time) (res dto.BillBreakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	if roomType == constant.Empty || roomType == constant.RoomTypeNotSelected {
		return res, failure.BadRequestFromString("room type is required") // nolint:wrapcheck
	}

	if err = dates.ValidateRangeMax(checkin, checkout, timezone.Now(), s.cfg.Booking.MaxStayNights); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	rate, err := s.roomTypeRepo.Get(ctx, filterByRoomType(roomType))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type for quote")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if rate.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return dto.NewBillBreakdown(rate.RoomType, rate.Price, checkin, checkout), nil
}

func filterByRoomType(roomType string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomTypeModel.FieldRoomType,
				Value:    roomType,
				Operator: gDto.FilterOperatorEq,
				Table:    roomTypeModel.TableName,
			},
		},
	}
}
