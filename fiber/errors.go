package fiber

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	"github.com/a-h/templ"
	gofiber "github.com/gofiber/fiber/v2"

	"github.com/aydenstechdungeon/modalkit/routing"
)

// ErrorCode represents an error code.
type ErrorCode string

const (
	ErrorCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrorCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrorCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrorCodeTooLarge   ErrorCode = "PAYLOAD_TOO_LARGE"
)

// AppError represents an error returned to clients.
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Stack      string                 `json:"stack,omitempty"`
	StatusCode int                    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new application error.
func NewAppError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of the error carrying details.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithStack returns a copy of the error carrying a stack trace.
func (e *AppError) WithStack(stack string) *AppError {
	clone := *e
	clone.Stack = stack
	return &clone
}

// Common errors.
var (
	ErrInternal       = NewAppError(ErrorCodeInternal, "Internal server error", gofiber.StatusInternalServerError)
	ErrNotFound       = NewAppError(ErrorCodeNotFound, "Resource not found", gofiber.StatusNotFound)
	ErrActionNotFound = NewAppError(ErrorCodeNotFound, "Action not found", gofiber.StatusNotFound)
	ErrBadRequest     = NewAppError(ErrorCodeBadRequest, "Bad request", gofiber.StatusBadRequest)
)

// ErrorHandlerConfig holds error handler configuration.
type ErrorHandlerConfig struct {
	// DevMode adds stack traces to internal errors.
	DevMode bool
	// APIPrefix marks paths that always get JSON errors.
	APIPrefix string
}

// AsAppError converts any error into an AppError.
func AsAppError(err error, devMode bool) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, routing.ErrActionNotFound) {
		return ErrActionNotFound
	}
	var fiberErr *gofiber.Error
	if errors.As(err, &fiberErr) {
		code := ErrorCodeInternal
		switch fiberErr.Code {
		case gofiber.StatusNotFound:
			code = ErrorCodeNotFound
		case gofiber.StatusBadRequest:
			code = ErrorCodeBadRequest
		case gofiber.StatusRequestEntityTooLarge:
			code = ErrorCodeTooLarge
		}
		return NewAppError(code, fiberErr.Message, fiberErr.Code)
	}
	appErr = NewAppError(ErrorCodeInternal, ErrInternal.Message, gofiber.StatusInternalServerError)
	if devMode {
		appErr = appErr.WithStack(string(debug.Stack()))
	}
	return appErr
}

// ErrorHandler creates a Fiber error handler.
func ErrorHandler(config ErrorHandlerConfig) gofiber.ErrorHandler {
	return func(c *gofiber.Ctx, err error) error {
		appErr := AsAppError(err, config.DevMode)
		if appErr.StatusCode >= gofiber.StatusInternalServerError {
			log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
		}

		wantsJSON := strings.HasPrefix(c.Get(gofiber.HeaderAccept), gofiber.MIMEApplicationJSON)
		if wantsJSON || (config.APIPrefix != "" && strings.HasPrefix(c.Path(), config.APIPrefix)) {
			return c.Status(appErr.StatusCode).JSON(gofiber.Map{
				"error":   appErr.Code,
				"message": appErr.Message,
				"details": appErr.Details,
			})
		}

		c.Set(gofiber.HeaderContentType, gofiber.MIMETextHTMLCharsetUTF8)
		return c.Status(appErr.StatusCode).SendString(fmt.Sprintf(
			`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><title>Error - %s</title></head><body><h1>%s</h1><p>%s</p><a href="/">Go Home</a></body></html>`,
			appErr.Code, appErr.Code, templ.EscapeString(appErr.Message)))
	}
}

// NotFoundHandler creates a 404 handler.
func NotFoundHandler() gofiber.Handler {
	return func(c *gofiber.Ctx) error {
		return NewAppError(ErrorCodeNotFound, "Page not found: "+c.Path(), gofiber.StatusNotFound)
	}
}
