package router

import (
	"lodge/internal/handlers/billing"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/records"
	"lodge/internal/handlers/roomtype"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	RoomType roomtype.Handler
	Booking  booking.Handler
	Billing  billing.Handler
	Records  records.Handler
	Payment  payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Records.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
