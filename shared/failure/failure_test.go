package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"gipnoze/shared/failure"
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
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad date"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("admin only"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("not your booking"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("zone already booked"), code: http.StatusConflict},
		{name: "InternalError", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil for nil input, got %v", err)
	}

	err := failure.BadRequest(errors.New("validation failed"))
	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected bad request code, got %d", failure.GetCode(err))
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback internal error code, got %d", got)
	}
}

func TestPredicates(t *testing.T) {
	if !failure.IsConflict(failure.Conflict("taken")) {
		t.Error("expected IsConflict to be true for conflict failure")
	}

	if failure.IsConflict(errors.New("plain")) {
		t.Error("expected IsConflict to be false for plain error")
	}

	if !failure.IsNotFound(failure.NotFound("missing")) {
		t.Error("expected IsNotFound to be true for not-found failure")
	}

	wrapped := errors.Join(errors.New("outer"), failure.NotFound("inner"))
	if !failure.IsNotFound(wrapped) {
		t.Error("expected IsNotFound to unwrap joined errors")
	}
}
