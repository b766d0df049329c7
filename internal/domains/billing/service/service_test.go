package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/billing/model/dto"
	"lodge/internal/domains/billing/service"
	roomTypeMocks "lodge/internal/domains/roomtype/mocks"
	roomTypeModel "lodge/internal/domains/roomtype/model"
	"lodge/shared/dates"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

func TestBillingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.MaxStayNights = 30

	svc := service.New(mockRoomTypeRepo, cfg, mockOtel)

	today := dates.Day(timezone.Now())
	checkin := dates.Format(today)
	checkout := dates.Format(today.AddDate(0, 0, 3))

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantTotal float64
	}{
		{
			name: "three nights at the single rate",
			req: dto.QuoteRequest{
				RoomType:     "Single",
				CheckinDate:  checkin,
				CheckoutDate: checkout,
			},
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomTypeModel.RoomType{ID: "single-id", RoomType: "Single", Price: 100}, nil)
			},
			wantErr:   false,
			wantTotal: 384,
		},
		{
			name: "unknown room type",
			req: dto.QuoteRequest{
				RoomType:     "Penthouse",
				CheckinDate:  checkin,
				CheckoutDate: checkout,
			},
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomTypeModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room type not selected",
			req: dto.QuoteRequest{
				RoomType:     "Select Room Type",
				CheckinDate:  checkin,
				CheckoutDate: checkout,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "malformed check-in date",
			req: dto.QuoteRequest{
				RoomType:     "Single",
				CheckinDate:  "not-a-date",
				CheckoutDate: checkout,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "check-out before check-in",
			req: dto.QuoteRequest{
				RoomType:     "Single",
				CheckinDate:  checkout,
				CheckoutDate: checkin,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error",
			req: dto.QuoteRequest{
				RoomType:     "Single",
				CheckinDate:  checkin,
				CheckoutDate: checkout,
			},
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomTypeModel.RoomType{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.wantTotal, result.Total, 1e-9)
			}
		})
	}
}

func TestBillingService_QuoteDates_Breakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.MaxStayNights = 30

	svc := service.New(mockRoomTypeRepo, cfg, mockOtel)

	mockRoomTypeRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomTypeModel.RoomType{ID: "single-id", RoomType: "Single", Price: 100}, nil)

	today := dates.Day(timezone.Now())
	result, err := svc.QuoteDates(context.Background(), "Single", today, today.Add(3*24*time.Hour))

	assert.NoError(t, err)
	assert.InDelta(t, 3.0, result.Nights, 1e-9)
	assert.InDelta(t, 300.0, result.RoomCharge, 1e-9)
	assert.InDelta(t, 54.0, result.Tax, 1e-9)
	assert.InDelta(t, 30.0, result.ServiceCharge, 1e-9)
	assert.InDelta(t, 384.0, result.Total, 1e-9)
}
