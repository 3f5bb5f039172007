package presenter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tunedeck/tunedeck/internal/domain"
)

func TestStatus(t *testing.T) {
	verr := &domain.ValidationError{}
	verr.Add("trackIds", "Playlist must have at least one track")

	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
		{domain.AuthError{Message: "Invalid password"}, http.StatusUnauthorized, "Invalid password"},
		{fmt.Errorf("wrapped: %w", domain.ErrForbidden), http.StatusForbidden, "Forbidden"},
		{domain.NotFoundError{Resource: "Playlist"}, http.StatusNotFound, "Playlist not found"},
		{fmt.Errorf("lookup: %w", domain.NotFoundError{Resource: "Artist"}), http.StatusNotFound, "Artist not found"},
		{verr, http.StatusBadRequest, "Validation failed"},
		{domain.MalformedRequestError{Cause: errors.New("eof")}, http.StatusBadRequest, "Invalid JSON"},
		{domain.ConflictError{Message: "Email is already registered"}, http.StatusConflict, "Email is already registered"},
		{echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests"), http.StatusTooManyRequests, "Too many requests"},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		status, body := Status(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		switch b := body.(type) {
		case errorResponse:
			assert.Equal(t, tc.msg, b.Error)
		case validationResponse:
			assert.Equal(t, tc.msg, b.Error)
			assert.Equal(t, verr.Fields, b.FieldErrors)
		default:
			t.Fatalf("unexpected body %T", body)
		}
	}
}
