package declines

import "testing"

func TestFormatDeclineMessage(t *testing.T) {
	base, ok := GetDeclineMessage("insufficient_funds", LocaleEN)
	if !ok {
		t.Fatal("expected a base message")
	}

	t.Run("no placeholders means identity", func(t *testing.T) {
		got, ok := FormatDeclineMessage("insufficient_funds", map[string]string{"merchantName": "Acme"}, LocaleEN)
		if !ok {
			t.Fatal("expected a message")
		}
		if got != base {
			t.Errorf("expected unmodified message %q, got %q", base, got)
		}
	})

	t.Run("nil vars", func(t *testing.T) {
		got, ok := FormatDeclineMessage("insufficient_funds", nil)
		if !ok || got != base {
			t.Errorf("expected (%q, true), got (%q, %v)", base, got, ok)
		}
	})

	t.Run("propagates no value", func(t *testing.T) {
		if got, ok := FormatDeclineMessage("invalid_code", map[string]string{"a": "b"}); ok || got != "" {
			t.Errorf("expected no value, got (%q, %v)", got, ok)
		}
		// Valid code, untranslated locale.
		if _, ok := FormatDeclineMessage("fraudulent", nil, LocaleJA); ok {
			t.Error("expected no value for an untranslated code")
		}
	})

	t.Run("localized resolution", func(t *testing.T) {
		got, ok := FormatDeclineMessage("insufficient_funds", map[string]string{"x": "y"}, LocaleJA)
		if !ok {
			t.Fatal("expected a message")
		}
		if want := "別のお支払い方法を使用してもう一度お試しください。"; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

// The dataset carries no placeholders today, so the substitution itself is
// exercised against synthetic messages.
func TestSubstituteVars(t *testing.T) {
	tests := []struct {
		name    string
		message string
		vars    map[string]string
		want    string
	}{
		{
			name:    "single placeholder",
			message: "Contact {{merchantName}} for help.",
			vars:    map[string]string{"merchantName": "Acme"},
			want:    "Contact Acme for help.",
		},
		{
			name:    "every occurrence replaced",
			message: "{{name}} and {{name}} again",
			vars:    map[string]string{"name": "Acme"},
			want:    "Acme and Acme again",
		},
		{
			name:    "unknown placeholder left verbatim",
			message: "Call {{supportLine}} now.",
			vars:    map[string]string{"merchantName": "Acme"},
			want:    "Call {{supportLine}} now.",
		},
		{
			name:    "unused keys ignored",
			message: "No placeholders here.",
			vars:    map[string]string{"a": "1", "b": "2"},
			want:    "No placeholders here.",
		},
		{
			name:    "multiple keys",
			message: "{{a}}-{{b}}-{{a}}",
			vars:    map[string]string{"a": "1", "b": "2"},
			want:    "1-2-1",
		},
		{
			name:    "empty replacement value",
			message: "x{{gone}}y",
			vars:    map[string]string{"gone": ""},
			want:    "xy",
		},
		{
			name:    "nil vars",
			message: "Plain text.",
			vars:    nil,
			want:    "Plain text.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := substituteVars(tt.message, tt.vars); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
