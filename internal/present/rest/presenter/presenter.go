package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/tunedeck/tunedeck/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

// Status maps an error to its response status and client-facing body.
func Status(err error) (int, any) {
	var (
		httpErr    *echo.HTTPError
		authErr    domain.AuthError
		notFound   domain.NotFoundError
		validation *domain.ValidationError
		malformed  domain.MalformedRequestError
		conflict   domain.ConflictError
	)

	switch {
	case errors.As(err, &httpErr):
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, errorResponse{Error: msg}
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, errorResponse{Error: authErr.Message}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "Unauthorized"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "Forbidden"}
	case errors.As(err, &notFound):
		return http.StatusNotFound, errorResponse{Error: notFound.Error()}
	case errors.As(err, &validation):
		return http.StatusBadRequest, validationResponse{Error: "Validation failed", FieldErrors: validation.Fields}
	case errors.As(err, &malformed):
		return http.StatusBadRequest, errorResponse{Error: malformed.Error()}
	case errors.As(err, &conflict):
		return http.StatusConflict, errorResponse{Error: conflict.Error()}
	}
	return http.StatusInternalServerError, errorResponse{Error: "Internal server error"}
}

// ErrorHandler is installed as echo's HTTPErrorHandler. Handlers return
// domain errors and this is the only place they become responses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := Status(err)
	if status >= http.StatusInternalServerError {
		req := c.Request()
		attrs := []any{
			slog.String("error", err.Error()),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("module", "rest"),
		}
		if sc := trace.SpanContextFromContext(req.Context()); sc.HasTraceID() {
			attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
		}
		slog.ErrorContext(req.Context(), "request failed", attrs...)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to write error response", slog.String("error", err.Error()))
	}
}
