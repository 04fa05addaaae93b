package declines

import "encoding/json"

// GetMessageFromStripeError extracts the decline code from a loosely typed
// gateway error object and resolves its end-user message.
//
// Only the "decline_code" field is read. If it is missing, empty, or not a
// string, the result is no value; the error's "type" and "message" fields
// are never consulted, and unknown additional fields are ignored.
// Classifying the error by type is the caller's responsibility.
func GetMessageFromStripeError(stripeErr map[string]interface{}, locale ...Locale) (string, bool) {
	if stripeErr == nil {
		return "", false
	}
	code, ok := stripeErr["decline_code"].(string)
	if !ok || code == "" {
		return "", false
	}
	return GetDeclineMessage(code, locale...)
}

// MessageFromDeclineCoder resolves the end-user message for a typed gateway
// SDK error that exposes its decline code. A nil error or an empty decline
// code yields no value.
func MessageFromDeclineCoder(err DeclineCoder, locale ...Locale) (string, bool) {
	if err == nil {
		return "", false
	}
	code := err.GetDeclineCode()
	if code == "" {
		return "", false
	}
	return GetDeclineMessage(code, locale...)
}

// MessageFromErrorJSON resolves the end-user message from a raw gateway
// error document. The document is decoded into the narrow StripeError shape;
// malformed JSON or a document without a decline_code yields no value.
func MessageFromErrorJSON(raw []byte, locale ...Locale) (string, bool) {
	var stripeErr StripeError
	if err := json.Unmarshal(raw, &stripeErr); err != nil {
		return "", false
	}
	if stripeErr.DeclineCode == "" {
		return "", false
	}
	return GetDeclineMessage(stripeErr.DeclineCode, locale...)
}
