package service

import (
	"context"
	"lodge/internal/domains/booking/model/dto"
	"slices"
	"sync"
)

// Observer receives the outcome of a booking submission. Observers are
// notified synchronously, in attachment order.
type Observer interface {
	OnBookingSuccess(ctx context.Context, confirmation dto.BookingConfirmation)
	OnBookingError(ctx context.Context, message string)
}

type observerList struct {
	mu        sync.RWMutex
	observers []Observer
}

func (l *observerList) attach(observer Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.observers = append(l.observers, observer)
}

func (l *observerList) detach(observer Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.observers = slices.DeleteFunc(l.observers, func(o Observer) bool {
		return o == observer
	})
}

func (l *observerList) notifySuccess(ctx context.Context, confirmation dto.BookingConfirmation) {
	l.mu.RLock()
	observers := slices.Clone(l.observers)
	l.mu.RUnlock()

	for _, observer := range observers {
		observer.OnBookingSuccess(ctx, confirmation)
	}
}

func (l *observerList) notifyError(ctx context.Context, message string) {
	l.mu.RLock()
	observers := slices.Clone(l.observers)
	l.mu.RUnlock()

	for _, observer := range observers {
		observer.OnBookingError(ctx, message)
	}
}
