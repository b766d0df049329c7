package booking

import (
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/shared/constant"
	"lodge/shared/dates"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)
	})

	router.Get("/availability", handler.CheckAvailability)
}

// SubmitBooking runs the booking workflow for a submitted form.
// @Summary Submit a booking
// @Description Validate the form, check availability, and persist the booking with its customer and payment.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Submit Booking Request"
// @Success 201 {object} dto.BookingConfirmation "Booking confirmation with bill breakdown"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	confirmation, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking submitted successfully")

	response.WithJSON(w, http.StatusCreated, confirmation)
}

// CheckAvailability reports whether a room type can be booked for a range.
// @Summary Check room availability
// @Description Check whether a room of the given type is free for the requested dates.
// @Tags Booking
// @Accept json
// @Produce json
// @Param room_type query string true "Room type name"
// @Param checkin query string true "Check-in date (YYYY-MM-DD)"
// @Param checkout query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse "Availability flag"
// @Failure 400 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := r.URL.Query()

	roomType := query.Get(constant.RequestParamRoomType)
	if roomType == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("room_type is required"))

		return
	}

	checkin, err := dates.Parse(query.Get(constant.RequestParamCheckin))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("checkin must be a YYYY-MM-DD date"))

		return
	}

	checkout, err := dates.Parse(query.Get(constant.RequestParamCheckout))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("checkout must be a YYYY-MM-DD date"))

		return
	}

	available := handler.service.IsAvailable(ctx, roomType, checkin, checkout)

	scope.AddEvent("Availability checked")

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{Available: available})
}
