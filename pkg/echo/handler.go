package echo

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	declines "github.com/stripeguard/declines"
)

// Router is the subset of echo routing shared by *echo.Echo and *echo.Group.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// HandlerOptions is the options for the decline-code routes.
type HandlerOptions struct {
	DefaultLocale    declines.Locale
	DocVersionHeader bool
	RequestIDs       bool
	RequestIDPrefix  string
}

// Options is the type for the options for the decline-code routes.
type Options func(*HandlerOptions)

// WithDefaultLocale sets the locale used when a request does not carry one.
func WithDefaultLocale(locale declines.Locale) Options {
	return func(options *HandlerOptions) {
		options.DefaultLocale = locale
	}
}

// WithDocVersionHeader stamps X-Doc-Version on every response.
func WithDocVersionHeader() Options {
	return func(options *HandlerOptions) {
		options.DocVersionHeader = true
	}
}

// WithRequestIDs stamps X-Request-Id on every response, generating an ID
// when the request does not already carry a valid one.
func WithRequestIDs(prefix string) Options {
	return func(options *HandlerOptions) {
		options.RequestIDs = true
		options.RequestIDPrefix = prefix
	}
}

// RegisterRoutes registers the decline-code lookup routes on an Echo router.
// The surface matches the Gin adapter:
//
//	GET  /decline-codes            list all codes
//	GET  /decline-codes/:code      full record plus resolved message
//	POST /decline-codes/message    resolve a message from a gateway error body
func RegisterRoutes(router Router, opts ...Options) {
	options := &HandlerOptions{
		DefaultLocale: declines.LocaleEN,
	}
	for _, opt := range opts {
		opt(options)
	}

	stamp := func(c echo.Context) {
		header := c.Response().Header()
		if options.DocVersionHeader {
			header.Set("X-Doc-Version", declines.GetDocVersion())
		}
		if options.RequestIDs {
			id := c.Request().Header.Get("X-Request-Id")
			if !declines.IsValidRequestID(id) {
				id = declines.NewRequestID(options.RequestIDPrefix)
			}
			header.Set("X-Request-Id", id)
		}
	}

	localeFor := func(c echo.Context) declines.Locale {
		if raw := c.QueryParam("locale"); raw != "" {
			return declines.Locale(raw)
		}
		return options.DefaultLocale
	}

	router.GET("/decline-codes", func(c echo.Context) error {
		stamp(c)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"docVersion": declines.GetDocVersion(),
			"codes":      declines.GetAllDeclineCodes(),
		})
	})

	router.GET("/decline-codes/:code", func(c echo.Context) error {
		stamp(c)
		code := c.Param("code")
		if !declines.IsValidDeclineCode(code) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"docVersion": declines.GetDocVersion(),
				"error":      "unknown decline code",
			})
		}

		result := declines.GetDeclineDescription(code)
		response := map[string]interface{}{
			"docVersion": result.DocVersion,
			"code":       code,
			"info":       result.Code,
			"category":   result.Code.Category,
		}
		if message, ok := declines.GetDeclineMessage(code, localeFor(c)); ok {
			response["message"] = message
		}
		return c.JSON(http.StatusOK, response)
	})

	router.POST("/decline-codes/message", func(c echo.Context) error {
		stamp(c)
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "unreadable request body",
			})
		}

		if validation := declines.ValidateGatewayError(raw); !validation.Valid {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid gateway error document",
				"details": validation.Errors,
			})
		}

		locale := localeFor(c)
		message, ok := declines.MessageFromErrorJSON(raw, locale)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error": "no decline message for this error",
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": message,
			"locale":  locale,
		})
	})
}
