package method_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/payment/method"
	"lodge/shared/failure"
)

func TestForMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		wantErr    bool
		wantFields []string
	}{
		{
			name:       "credit card",
			method:     "Credit Card",
			wantFields: []string{"card_number", "expiry_date", "cvv"},
		},
		{
			name:       "debit card carries bank name",
			method:     "Debit Card",
			wantFields: []string{"card_number", "expiry_date", "cvv", "bank_name"},
		},
		{
			name:       "cash",
			method:     "Cash",
			wantFields: []string{"amount_tendered"},
		},
		{
			name:       "upi",
			method:     "UPI",
			wantFields: []string{"upi_id"},
		},
		{
			name:    "unsupported method",
			method:  "Cheque",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor, err := method.ForMethod(tt.method)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NoError(t, processor.Process(context.Background(), 384))

			fields := processor.Fields()
			names := make([]string, len(fields))
			for i, f := range fields {
				names[i] = f.Name
			}
			assert.Equal(t, tt.wantFields, names)
		})
	}
}

func TestMethods(t *testing.T) {
	assert.Equal(t, []string{"Credit Card", "Debit Card", "Cash", "UPI"}, method.Methods())
}
