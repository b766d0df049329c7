package failure_test

import (
	"errors"
	"lodge/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("room type is required"),
			code:    http.StatusBadRequest,
			message: "room type is required",
		},
		{
			name:    "BadRequest wraps error",
			err:     failure.BadRequest(errors.New("bad payload")),
			code:    http.StatusBadRequest,
			message: "bad payload",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("room type not found"),
			code:    http.StatusNotFound,
			message: "room type not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room is not available"),
			code:    http.StatusConflict,
			message: "room is not available",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("db down")),
			code:    http.StatusInternalServerError,
			message: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for plain error, got %d", http.StatusInternalServerError, got)
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
