package service

import (
	"context"
	"lodge/internal/domains/booking/model"
	roomTypeModel "lodge/internal/domains/roomtype/model"
	"lodge/shared/constant"
	"lodge/shared/dates"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// IsAvailable reports whether a room of the given type can be booked for the
// requested range. It fails closed: any lookup failure reads as unavailable
// rather than risking an overbooking.
func (s *serviceImpl) IsAvailable(ctx context.Context, roomType string, checkin, checkout time.Time) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()

	if err := dates.ValidateRangeMax(checkin, checkout, timezone.Now(), s.cfg.Booking.MaxStayNights); err != nil {
		log.Warn().Err(err).Str("roomType", roomType).Msg("availability check on invalid range")

		return false
	}

	rate, err := s.roomTypeRepo.Get(ctx, filterRoomTypeByName(roomType))
	if err != nil {
		log.Error().Err(err).Str("roomType", roomType).Msg("failed to resolve room type for availability check")

		return false
	}

	if rate.ID == constant.Empty {
		log.Warn().Str("roomType", roomType).Msg("availability check on unknown room type")

		return false
	}

	active, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filterActiveBookingsInWindow(roomType, checkin, checkout))
	if err != nil {
		log.Error().Err(err).Str("roomType", roomType).Msg("failed to fetch active bookings for availability check")

		return false
	}

	overlapping := 0

	for _, booking := range active {
		if dates.Overlaps(booking.CheckinDate, booking.CheckoutDate, checkin, checkout) {
			overlapping++
		}
	}

	return overlapping < rate.Capacity
}

func filterRoomTypeByName(roomType string) gDto.FilterGroup {
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

// filterActiveBookingsInWindow restricts the candidate rows to active stays
// of the type that start before the requested checkout and end after the
// requested check-in. The comparisons are strict, so stays touching the
// boundary fall outside the window, matching the overlap predicate.
func filterActiveBookingsInWindow(roomType string, checkin, checkout time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomType,
				Value:    roomType,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingStatusActive,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldCheckinDate,
				Value:    checkout,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldCheckoutDate,
				Value:    checkin,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}
