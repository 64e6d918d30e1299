package fiber

import (
	"errors"
	"fmt"
	"testing"

	gofiber "github.com/gofiber/fiber/v2"

	"github.com/aydenstechdungeon/modalkit/routing"
)

func TestAsAppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want int
	}{
		{"app error", ErrBadRequest, ErrorCodeBadRequest, gofiber.StatusBadRequest},
		{"wrapped action not found", fmt.Errorf("dispatch: %w", routing.ErrActionNotFound), ErrorCodeNotFound, gofiber.StatusNotFound},
		{"fiber not found", gofiber.ErrNotFound, ErrorCodeNotFound, gofiber.StatusNotFound},
		{"fiber too large", gofiber.ErrRequestEntityTooLarge, ErrorCodeTooLarge, gofiber.StatusRequestEntityTooLarge},
		{"plain error", errors.New("boom"), ErrorCodeInternal, gofiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsAppError(tt.err, false)
			if got.Code != tt.code || got.StatusCode != tt.want {
				t.Errorf("Expected %s/%d, got %s/%d", tt.code, tt.want, got.Code, got.StatusCode)
			}
		})
	}
}

func TestAsAppErrorHidesInternalMessage(t *testing.T) {
	got := AsAppError(errors.New("secret detail"), false)
	if got.Message != ErrInternal.Message {
		t.Errorf("Expected generic message, got %q", got.Message)
	}
	if got.Stack != "" {
		t.Error("Expected no stack outside dev mode")
	}
	if AsAppError(errors.New("x"), true).Stack == "" {
		t.Error("Expected stack in dev mode")
	}
}

func TestAppErrorWithDetailsCopies(t *testing.T) {
	detailed := ErrBadRequest.WithDetails(map[string]interface{}{"field": "id"})
	if ErrBadRequest.Details != nil {
		t.Error("Expected shared error to stay untouched")
	}
	if detailed.Details["field"] != "id" {
		t.Errorf("Expected details, got %v", detailed.Details)
	}
	if detailed.Error() != "BAD_REQUEST: Bad request" {
		t.Errorf("Unexpected message %q", detailed.Error())
	}
}
