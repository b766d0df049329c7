package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/records/service"
	"lodge/shared/failure"
)

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"all", "active", "upcoming", "completed"} {
		kind, err := service.ParseKind(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	_, err := service.ParseKind("archived")
	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestKind_Matches(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	today := day(0)

	tests := []struct {
		name     string
		kind     service.Kind
		checkin  time.Time
		checkout time.Time
		status   string
		want     bool
	}{
		{"all matches active rows", service.KindAll, day(-5), day(-2), "active", true},
		{"all matches cancelled rows", service.KindAll, day(1), day(3), "cancelled", true},
		{"active within stay", service.KindActive, day(-1), day(2), "active", true},
		{"active on check-in day", service.KindActive, day(0), day(2), "active", true},
		{"active on check-out day", service.KindActive, day(-2), day(0), "active", true},
		{"active excludes future stay", service.KindActive, day(1), day(3), "active", false},
		{"active excludes cancelled", service.KindActive, day(-1), day(2), "cancelled", false},
		{"upcoming before check-in", service.KindUpcoming, day(1), day(3), "active", true},
		{"upcoming excludes check-in day", service.KindUpcoming, day(0), day(2), "active", false},
		{"completed after check-out", service.KindCompleted, day(-5), day(-1), "active", true},
		{"completed excludes check-out day", service.KindCompleted, day(-2), day(0), "active", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Matches(today, tt.checkin, tt.checkout, tt.status))
		})
	}
}

func TestKind_Label(t *testing.T) {
	assert.Equal(t, "cancelled", service.KindAll.Label("cancelled"))
	assert.Equal(t, "Active", service.KindActive.Label("active"))
	assert.Equal(t, "Upcoming", service.KindUpcoming.Label("active"))
	assert.Equal(t, "Completed", service.KindCompleted.Label("active"))
}
