package billing

import (
	"lodge/infras/otel"
	"lodge/internal/domains/billing/model/dto"
	"lodge/internal/domains/billing/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billing", func(routerGroup chi.Router) {
		routerGroup.Get("/quote", handler.GetQuote)
	})
}

// GetQuote prices a stay without booking it.
// @Summary Quote a stay
// @Description Price a stay for a room type and date range, itemized with tax and service charge.
// @Tags Billing
// @Accept json
// @Produce json
// @Param room_type query string true "Room type name"
// @Param checkin query string true "Check-in date (YYYY-MM-DD)"
// @Param checkout query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} dto.BillBreakdown "Itemized bill"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billing/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	query := r.URL.Query()

	req := dto.QuoteRequest{
		RoomType:     query.Get(constant.RequestParamRoomType),
		CheckinDate:  query.Get(constant.RequestParamCheckin),
		CheckoutDate: query.Get(constant.RequestParamCheckout),
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay quoted successfully")

	response.WithJSON(w, http.StatusOK, quote)
}
