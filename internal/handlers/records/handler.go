package records

import (
	"lodge/infras/otel"
	"lodge/internal/domains/records/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Records
	otel    otel.Otel
}

func New(service service.Records, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/records", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRecords)
	})
}

// GetRecords lists booking records under the requested filter.
// @Summary Get booking records
// @Description List booking history filtered as all, active, upcoming, or completed, each row enriched with its bill.
// @Tags Records
// @Accept json
// @Produce json
// @Param filter query string false "Filter kind: all, active, upcoming, completed" default(all)
// @Success 200 {object} dto.GetRecordsResponse "Filtered records"
// @Failure 400 {object} response.Error
// @Router /v1/records [get]
func (handler *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecords")
	defer scope.End()

	kind := r.URL.Query().Get(constant.RequestParamFilter)
	if kind == constant.Empty {
		kind = string(service.KindAll)
	}

	records, err := handler.service.SetFilter(ctx, kind)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Records retrieved successfully")

	response.WithJSON(w, http.StatusOK, records)
}
