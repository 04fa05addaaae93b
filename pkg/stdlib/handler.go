package stdlib

import (
	"encoding/json"
	"io"
	"net/http"

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

// NewHandler returns an http.Handler serving the decline-code lookup routes
// for hosts that use neither Gin nor Echo:
//
//	GET  /decline-codes            list all codes
//	GET  /decline-codes/{code}     full record plus resolved message
//	POST /decline-codes/message    resolve a message from a gateway error body
func NewHandler(opts ...Options) http.Handler {
	options := &HandlerOptions{
		DefaultLocale: declines.LocaleEN,
	}
	for _, opt := range opts {
		opt(options)
	}

	stamp := func(w http.ResponseWriter, r *http.Request) {
		if options.DocVersionHeader {
			w.Header().Set("X-Doc-Version", declines.GetDocVersion())
		}
		if options.RequestIDs {
			id := r.Header.Get("X-Request-Id")
			if !declines.IsValidRequestID(id) {
				id = declines.NewRequestID(options.RequestIDPrefix)
			}
			w.Header().Set("X-Request-Id", id)
		}
	}

	localeFor := func(r *http.Request) declines.Locale {
		if raw := r.URL.Query().Get("locale"); raw != "" {
			return declines.Locale(raw)
		}
		return options.DefaultLocale
	}

	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /decline-codes", func(w http.ResponseWriter, r *http.Request) {
		stamp(w, r)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"docVersion": declines.GetDocVersion(),
			"codes":      declines.GetAllDeclineCodes(),
		})
	})

	mux.HandleFunc("GET /decline-codes/{code}", func(w http.ResponseWriter, r *http.Request) {
		stamp(w, r)
		code := r.PathValue("code")
		if !declines.IsValidDeclineCode(code) {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"docVersion": declines.GetDocVersion(),
				"error":      "unknown decline code",
			})
			return
		}

		result := declines.GetDeclineDescription(code)
		response := map[string]interface{}{
			"docVersion": result.DocVersion,
			"code":       code,
			"info":       result.Code,
			"category":   result.Code.Category,
		}
		if message, ok := declines.GetDeclineMessage(code, localeFor(r)); ok {
			response["message"] = message
		}
		writeJSON(w, http.StatusOK, response)
	})

	mux.HandleFunc("POST /decline-codes/message", func(w http.ResponseWriter, r *http.Request) {
		stamp(w, r)
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "unreadable request body",
			})
			return
		}

		if validation := declines.ValidateGatewayError(raw); !validation.Valid {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid gateway error document",
				"details": validation.Errors,
			})
			return
		}

		locale := localeFor(r)
		message, ok := declines.MessageFromErrorJSON(raw, locale)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": "no decline message for this error",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": message,
			"locale":  locale,
		})
	})

	return mux
}
