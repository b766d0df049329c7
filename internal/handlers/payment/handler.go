package payment

import (
	"lodge/infras/otel"
	"lodge/internal/domains/payment/method"
	"lodge/shared/constant"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/methods", handler.GetMethods)
		routerGroup.Get("/methods/{method}/fields", handler.GetMethodFields)
	})
}

// GetMethods lists the supported payment methods.
// @Summary Get payment methods
// @Description List the supported payment methods in presentation order.
// @Tags Payment
// @Accept json
// @Produce json
// @Success 200 {array} string "Payment method names"
// @Router /v1/payments/methods [get]
func (handler *Handler) GetMethods(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMethods")
	defer scope.End()

	scope.AddEvent("Payment methods retrieved successfully")

	response.WithJSON(w, http.StatusOK, method.Methods())
}

// GetMethodFields lists the input fields a payment method requires.
// @Summary Get payment method fields
// @Description List the ordered input fields required by a payment method.
// @Tags Payment
// @Accept json
// @Produce json
// @Param method path string true "Payment method name"
// @Success 200 {array} method.Field "Ordered field descriptors"
// @Failure 400 {object} response.Error
// @Router /v1/payments/methods/{method}/fields [get]
func (handler *Handler) GetMethodFields(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMethodFields")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamMethod)

	processor, err := method.ForMethod(name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("method", name).Msg("unsupported payment method requested")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment method fields retrieved successfully")

	response.WithJSON(w, http.StatusOK, processor.Fields())
}
