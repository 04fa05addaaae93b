package declines

import "strings"

// FormatDeclineMessage resolves the end-user message for a decline code and
// locale exactly as GetDeclineMessage does, then substitutes template
// variables of the form {{name}} from vars.
//
// Every occurrence of each supplied key is replaced. Placeholders with no
// matching key are left untouched, and supplied keys never referenced in the
// message are ignored. A nil or empty vars map returns the resolved message
// unmodified. The second return value is false exactly when
// GetDeclineMessage would report no value.
func FormatDeclineMessage(code string, vars map[string]string, locale ...Locale) (string, bool) {
	message, ok := GetDeclineMessage(code, locale...)
	if !ok {
		return "", false
	}
	return substituteVars(message, vars), true
}

// substituteVars replaces {{name}} tokens in message for each key in vars.
// It is a pure string transform with no knowledge of which placeholders a
// message is expected to contain.
func substituteVars(message string, vars map[string]string) string {
	if len(vars) == 0 {
		return message
	}
	for name, value := range vars {
		message = strings.ReplaceAll(message, "{{"+name+"}}", value)
	}
	return message
}
