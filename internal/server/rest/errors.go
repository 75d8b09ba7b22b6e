package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/labstack/echo/v4"
)

const msgInternal = "Something went wrong!"

type messageResponse struct {
	Message string `json:"message"`
}

type internalErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

var kindStatus = []struct {
	kind   error
	status int
	msg    string
}{
	{common.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{common.ErrConflict, http.StatusBadRequest, "Already exists"},
	{common.ErrorUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{common.ErrorNotFound, http.StatusNotFound, "Not found"},
	{common.ErrFeatureDisabled, http.StatusNotImplemented, "Not implemented"},
}

// statusFor maps err to a status and a client-safe message. ok is false for
// errors that must be reported as internal failures.
func statusFor(err error) (status int, msg string, ok bool) {
	for _, k := range kindStatus {
		if !errors.Is(err, k.kind) {
			continue
		}
		msg = k.msg
		var e *common.Error
		if errors.As(err, &e) {
			msg = e.Message
		}
		return k.status, msg, true
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		msg := http.StatusText(he.Code)
		if m, isString := he.Message.(string); isString {
			msg = m
		}
		return he.Code, msg, true
	}

	return 0, "", false
}

// handleError is the echo HTTPErrorHandler. Internal failures are logged in
// full and answered with a generic message plus the request id.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()

	status, msg, ok := statusFor(err)
	if !ok {
		id := requestID(c)
		s.logger.Error(ctx, "request failed", "request_id", id, "error", err)
		status = http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code > status {
			status = he.Code
		}
		if jerr := c.JSON(status, internalErrorResponse{Message: msgInternal, Code: id}); jerr != nil {
			s.logger.Error(ctx, "write error response", "error", jerr)
		}
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, messageResponse{Message: msg})
	}
	if err != nil {
		s.logger.Error(ctx, "write error response", "error", err)
	}
}
