package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abubasith456/React-white-label/internal/service"
)

func TestStatusOf(t *testing.T) {
	cases := map[service.Kind]int{
		service.KindNotFound:           http.StatusNotFound,
		service.KindUnauthorized:       http.StatusUnauthorized,
		service.KindInvalidCredentials: http.StatusUnauthorized,
		service.KindForbidden:          http.StatusForbidden,
		service.KindBadRequest:         http.StatusBadRequest,
		service.KindInternal:           http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusOf(kind), "kind %d", kind)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
		logged bool
	}{
		{"service", service.ErrEmptyCart, http.StatusBadRequest, `{"error":"Cart is empty"}`, false},
		{"wrapped service", fmt.Errorf("checkout: %w", service.ErrUnknownTenant), http.StatusNotFound, `{"error":"Unknown tenant"}`, false},
		{"echo", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`, false},
		{"bind", errInvalidBody, http.StatusBadRequest, `{"error":"invalid body"}`, false},
		{"timeout", fmt.Errorf("load: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, `{"error":"request timed out"}`, true},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, `{"error":"internal error"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			ErrorHandler(zap.New(core))(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, tt.logged, logs.Len() == 1)
		})
	}
}

func TestErrorHandlerSkipsCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	ErrorHandler(nil)(errors.New("late"), c)
	assert.Equal(t, "done", rec.Body.String())
}
