package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	declines "github.com/stripeguard/declines"
)

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

// RegisterRoutes registers the decline-code lookup routes on a Gin router:
//
//	GET  /decline-codes            list all codes
//	GET  /decline-codes/:code      full record plus resolved message
//	POST /decline-codes/message    resolve a message from a gateway error body
func RegisterRoutes(router gin.IRouter, opts ...Options) {
	options := &HandlerOptions{
		DefaultLocale: declines.LocaleEN,
	}
	for _, opt := range opts {
		opt(options)
	}

	stamp := func(c *gin.Context) {
		if options.DocVersionHeader {
			c.Header("X-Doc-Version", declines.GetDocVersion())
		}
		if options.RequestIDs {
			id := c.GetHeader("X-Request-Id")
			if !declines.IsValidRequestID(id) {
				id = declines.NewRequestID(options.RequestIDPrefix)
			}
			c.Header("X-Request-Id", id)
		}
	}

	localeFor := func(c *gin.Context) declines.Locale {
		if raw := c.Query("locale"); raw != "" {
			return declines.Locale(raw)
		}
		return options.DefaultLocale
	}

	router.GET("/decline-codes", func(c *gin.Context) {
		stamp(c)
		c.JSON(http.StatusOK, gin.H{
			"docVersion": declines.GetDocVersion(),
			"codes":      declines.GetAllDeclineCodes(),
		})
	})

	router.GET("/decline-codes/:code", func(c *gin.Context) {
		stamp(c)
		code := c.Param("code")
		if !declines.IsValidDeclineCode(code) {
			c.JSON(http.StatusNotFound, gin.H{
				"docVersion": declines.GetDocVersion(),
				"error":      "unknown decline code",
			})
			return
		}

		result := declines.GetDeclineDescription(code)
		response := gin.H{
			"docVersion": result.DocVersion,
			"code":       code,
			"info":       result.Code,
			"category":   result.Code.Category,
		}
		if message, ok := declines.GetDeclineMessage(code, localeFor(c)); ok {
			response["message"] = message
		}
		c.JSON(http.StatusOK, response)
	})

	router.POST("/decline-codes/message", func(c *gin.Context) {
		stamp(c)
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
			return
		}

		if validation := declines.ValidateGatewayError(raw); !validation.Valid {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid gateway error document",
				"details": validation.Errors,
			})
			return
		}

		locale := localeFor(c)
		message, ok := declines.MessageFromErrorJSON(raw, locale)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no decline message for this error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": message,
			"locale":  locale,
		})
	})
}
