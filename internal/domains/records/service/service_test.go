package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	recordsMocks "lodge/internal/domains/records/mocks"
	"lodge/internal/domains/records/model"
	"lodge/internal/domains/records/model/dto"
	"lodge/internal/domains/records/service"
	"lodge/shared/dates"
	"lodge/shared/timezone"
)

type capturingObserver struct {
	updates [][]dto.RecordResponse
}

func (o *capturingObserver) Update(_ context.Context, records []dto.RecordResponse) {
	o.updates = append(o.updates, records)
}

func newRecordsService(t *testing.T) (service.Records, *recordsMocks.MockRecords) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := recordsMocks.NewMockRecords(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func sampleRows() []model.Record {
	today := dates.Day(timezone.Now())

	row := func(id string, checkin, checkout time.Time, status string) model.Record {
		return model.Record{
			ID:           id,
			RoomType:     "Single",
			CheckinDate:  checkin,
			CheckoutDate: checkout,
			Status:       status,
			CustomerName: "John Doe",
			Price:        100,
		}
	}

	return []model.Record{
		row("upcoming-id", today.AddDate(0, 0, 5), today.AddDate(0, 0, 8), "active"),
		row("current-id", today.AddDate(0, 0, -1), today.AddDate(0, 0, 2), "active"),
		row("completed-id", today.AddDate(0, 0, -10), today.AddDate(0, 0, -7), "active"),
		row("cancelled-id", today.AddDate(0, 0, -4), today.AddDate(0, 0, -2), "cancelled"),
	}
}

func TestRecordsService_SetFilter(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		wantErr    bool
		wantIDs    []string
		wantStatus string
	}{
		{
			name:       "all keeps every row under its stored status",
			kind:       "all",
			wantIDs:    []string{"upcoming-id", "current-id", "completed-id", "cancelled-id"},
			wantStatus: "",
		},
		{
			name:       "active keeps the in-progress stay",
			kind:       "active",
			wantIDs:    []string{"current-id"},
			wantStatus: "Active",
		},
		{
			name:       "upcoming keeps the future stay",
			kind:       "upcoming",
			wantIDs:    []string{"upcoming-id"},
			wantStatus: "Upcoming",
		},
		{
			name:       "completed keeps the past stay",
			kind:       "completed",
			wantIDs:    []string{"completed-id"},
			wantStatus: "Completed",
		},
		{
			name:    "unknown filter",
			kind:    "archived",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newRecordsService(t)

			if !tt.wantErr {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(sampleRows(), nil)
			}

			observer := &capturingObserver{}
			svc.Attach(observer)

			result, err := svc.SetFilter(context.Background(), tt.kind)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, observer.updates)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, observer.updates, 1)

			ids := make([]string, len(result.Records))
			for i, record := range result.Records {
				ids[i] = record.BookingID
			}
			assert.Equal(t, tt.wantIDs, ids)

			if tt.wantStatus != "" {
				for _, record := range result.Records {
					assert.Equal(t, tt.wantStatus, record.Status)
				}
			}
		})
	}
}

func TestRecordsService_Load_EnrichesRows(t *testing.T) {
	svc, mockRepo := newRecordsService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleRows(), nil)

	result, err := svc.SetFilter(context.Background(), "upcoming")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)

	record := result.Records[0]
	assert.Equal(t, "John Doe", record.CustomerName)
	assert.InDelta(t, 3.0, record.Bill.Nights, 1e-9)
	assert.InDelta(t, 300.0, record.Bill.RoomCharge, 1e-9)
	assert.InDelta(t, 54.0, record.Bill.Tax, 1e-9)
	assert.InDelta(t, 30.0, record.Bill.ServiceCharge, 1e-9)
	assert.InDelta(t, 384.0, record.Bill.Total, 1e-9)
}

func TestRecordsService_Load_FetchFailureNotifiesEmpty(t *testing.T) {
	svc, mockRepo := newRecordsService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	observer := &capturingObserver{}
	svc.Attach(observer)

	result := svc.Load(context.Background())

	assert.Empty(t, result.Records)
	assert.Len(t, observer.updates, 1)
	assert.Empty(t, observer.updates[0])
}

func TestRecordsService_Detach(t *testing.T) {
	svc, mockRepo := newRecordsService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleRows(), nil).
		Times(2)

	observer := &capturingObserver{}
	svc.Attach(observer)

	svc.Load(context.Background())
	assert.Len(t, observer.updates, 1)

	svc.Detach(observer)

	svc.Load(context.Background())
	assert.Len(t, observer.updates, 1)
}
