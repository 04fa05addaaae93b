package stdlib

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	declines "github.com/stripeguard/declines"
)

func doRequest(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandler(t *testing.T) {
	handler := NewHandler()

	t.Run("list", func(t *testing.T) {
		rec, body := doRequest(t, handler, http.MethodGet, "/decline-codes", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		codes, ok := body["codes"].([]interface{})
		require.True(t, ok)
		assert.Len(t, codes, 44)
	})

	t.Run("get with locale", func(t *testing.T) {
		rec, body := doRequest(t, handler, http.MethodGet, "/decline-codes/insufficient_funds?locale=ja", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "別のお支払い方法を使用してもう一度お試しください。", body["message"])
	})

	t.Run("unknown code keeps doc version", func(t *testing.T) {
		rec, body := doRequest(t, handler, http.MethodGet, "/decline-codes/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, declines.GetDocVersion(), body["docVersion"])
	})

	t.Run("post message", func(t *testing.T) {
		rec, body := doRequest(t, handler, http.MethodPost, "/decline-codes/message",
			`{"type":"StripeCardError","decline_code":"expired_card"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Your card has expired. Please try again using an alternative payment method.", body["message"])
	})

	t.Run("post without decline code", func(t *testing.T) {
		rec, _ := doRequest(t, handler, http.MethodPost, "/decline-codes/message", `{}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlerHeaders(t *testing.T) {
	handler := NewHandler(WithDocVersionHeader(), WithRequestIDs(""))
	rec, _ := doRequest(t, handler, http.MethodGet, "/decline-codes", "")

	assert.Equal(t, declines.GetDocVersion(), rec.Header().Get("X-Doc-Version"))
	id := rec.Header().Get("X-Request-Id")
	assert.True(t, declines.IsValidRequestID(id))
	assert.True(t, strings.HasPrefix(id, "dcl_"))
}
