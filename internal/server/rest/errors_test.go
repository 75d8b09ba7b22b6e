package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
		ok     bool
	}{
		{"validation with message", common.NewError(common.ErrValidation, "Title is required"), http.StatusBadRequest, "Title is required", true},
		{"wrapped conflict", fmt.Errorf("register: %w", common.NewError(common.ErrConflict, "User already exists")), http.StatusBadRequest, "User already exists", true},
		{"bare not found", common.ErrorNotFound, http.StatusNotFound, "Not found", true},
		{"unauthorized", common.NewError(common.ErrorUnauthorized, "Token is not valid"), http.StatusUnauthorized, "Token is not valid", true},
		{"disabled", common.ErrFeatureDisabled, http.StatusNotImplemented, "Not implemented", true},
		{"echo 404", echo.ErrNotFound, http.StatusNotFound, "Not Found", true},
		{"echo 500", echo.ErrInternalServerError, 0, "", false},
		{"plain", errors.New("db error: boom"), 0, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, msg, ok := statusFor(c.err)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.msg, msg)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Bearer "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken(""))
}
