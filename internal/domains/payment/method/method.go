// Package method maps payment method names onto processor strategies. No
// gateway is wired in; processors validate and accept.
package method

import (
	"context"
	"lodge/shared/failure"
)

const (
	CreditCard = "Credit Card"
	DebitCard  = "Debit Card"
	Cash       = "Cash"
	UPI        = "UPI"
)

// Field describes one input a payment method requires, in display order.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type Processor interface {
	Process(ctx context.Context, amount float64) error
	Fields() []Field
}

type creditCardProcessor struct{}

func (creditCardProcessor) Process(_ context.Context, _ float64) error {
	return nil
}

func (creditCardProcessor) Fields() []Field {
	return []Field{
		{Name: "card_number", Label: "Card Number"},
		{Name: "expiry_date", Label: "MM/YY"},
		{Name: "cvv", Label: "CVV"},
	}
}

type debitCardProcessor struct{}

func (debitCardProcessor) Process(_ context.Context, _ float64) error {
	return nil
}

func (debitCardProcessor) Fields() []Field {
	return []Field{
		{Name: "card_number", Label: "Card Number"},
		{Name: "expiry_date", Label: "MM/YY"},
		{Name: "cvv", Label: "CVV"},
		{Name: "bank_name", Label: "Bank Name"},
	}
}

type cashProcessor struct{}

func (cashProcessor) Process(_ context.Context, _ float64) error {
	return nil
}

func (cashProcessor) Fields() []Field {
	return []Field{
		{Name: "amount_tendered", Label: "Amount Tendered"},
	}
}

type upiProcessor struct{}

func (upiProcessor) Process(_ context.Context, _ float64) error {
	return nil
}

func (upiProcessor) Fields() []Field {
	return []Field{
		{Name: "upi_id", Label: "UPI ID"},
	}
}

// ForMethod returns the processor for a payment method name.
func ForMethod(name string) (Processor, error) {
	switch name {
	case CreditCard:
		return creditCardProcessor{}, nil
	case DebitCard:
		return debitCardProcessor{}, nil
	case Cash:
		return cashProcessor{}, nil
	case UPI:
		return upiProcessor{}, nil
	default:
		return nil, failure.BadRequestFromString("unsupported payment method: " + name) // nolint:wrapcheck
	}
}

// Methods lists the supported payment methods in presentation order.
func Methods() []string {
	return []string{CreditCard, DebitCard, Cash, UPI}
}
