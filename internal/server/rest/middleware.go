package rest

import (
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	userContextKey = "user"
	bodyLimit      = "1M"
	requestIDBytes = 16
)

func newRequestID() string {
	id, err := common.MakeRandHexString(requestIDBytes)
	if err != nil {
		return "unknown"
	}
	return id
}

func (s *Server) useMiddleware(e *echo.Echo) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    newRequestID,
		TargetHeader: common.RequestIDHeaderName,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			s.logger.Error(c.Request().Context(), "panic recovered",
				"request_id", requestID(c),
				"error", err,
				"stack", string(stack),
			)
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{s.config.AllowedOrigin},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit(bodyLimit))

	if s.config.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: s.config.RequestTimeout,
		}))
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(common.RequestIDHeaderName)
}

func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// requireUser resolves the bearer token to a user and stores it on the
// echo context. Handlers read it with currentUser.
func (s *Server) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := s.auth.Authenticate(ctx, bearerToken(c.Request().Header.Get(common.AuthorizationHeaderName)))
		if err != nil {
			s.logger.Warn(ctx, "authentication failed", "request_id", requestID(c), "error", err)
			return err
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

func currentUser(c echo.Context) *models.UserSummary {
	u, _ := c.Get(userContextKey).(*models.UserSummary)
	return u
}
