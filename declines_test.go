package declines

import (
	"reflect"
	"regexp"
	"testing"
)

func TestIsValidDeclineCode(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		for _, code := range []string{"insufficient_funds", "generic_decline", "expired_card", "incorrect_cvc"} {
			if !IsValidDeclineCode(code) {
				t.Errorf("expected %q to be valid", code)
			}
		}
	})

	t.Run("exact match only", func(t *testing.T) {
		invalid := []string{
			"",
			" ",
			"bogus",
			"INSUFFICIENT_FUNDS",
			"Insufficient_Funds",
			"insufficient_fund",   // prefix of a valid token
			"insufficient_fundss", // valid token plus suffix
			" insufficient_funds", // leading whitespace
			"insufficient_funds ", // trailing whitespace
			"nsufficient_funds",   // suffix of a valid token
			"insufficient funds",  // wrong separator
			"カード",                 // non-ASCII garbage
		}
		for _, code := range invalid {
			if IsValidDeclineCode(code) {
				t.Errorf("expected %q to be invalid", code)
			}
		}
	})
}

func TestGetDeclineDescription(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		result := GetDeclineDescription("generic_decline")
		if result.DocVersion == "" {
			t.Error("expected DocVersion to be populated")
		}
		if got, want := result.Code.Description, "The card has been declined for an unknown reason."; got != want {
			t.Errorf("expected description %q, got %q", want, got)
		}
		if result.Code.NextSteps == "" {
			t.Error("expected NextSteps to be populated")
		}
		if result.Code.Category != HardDecline {
			t.Errorf("expected HARD_DECLINE, got %q", result.Code.Category)
		}
	})

	t.Run("no argument", func(t *testing.T) {
		result := GetDeclineDescription()
		if result.DocVersion != docVersion {
			t.Errorf("expected DocVersion %q, got %q", docVersion, result.DocVersion)
		}
		if !reflect.DeepEqual(result.Code, DeclineCodeInfo{}) {
			t.Errorf("expected zero record, got %+v", result.Code)
		}
	})

	t.Run("invalid code still carries version", func(t *testing.T) {
		for _, code := range []string{"bogus", "", "   ", "\x00"} {
			result := GetDeclineDescription(code)
			if result.DocVersion != docVersion {
				t.Errorf("code %q: expected DocVersion %q, got %q", code, docVersion, result.DocVersion)
			}
			if !reflect.DeepEqual(result.Code, DeclineCodeInfo{}) {
				t.Errorf("code %q: expected zero record, got %+v", code, result.Code)
			}
		}
	})
}

func TestGetDeclineMessage(t *testing.T) {
	const wantEN = "Please try again using an alternative payment method."
	const wantJA = "別のお支払い方法を使用してもう一度お試しください。"

	t.Run("default locale", func(t *testing.T) {
		message, ok := GetDeclineMessage("insufficient_funds")
		if !ok {
			t.Fatal("expected a message")
		}
		if message != wantEN {
			t.Errorf("expected %q, got %q", wantEN, message)
		}
	})

	t.Run("explicit base locale", func(t *testing.T) {
		message, ok := GetDeclineMessage("insufficient_funds", LocaleEN)
		if !ok || message != wantEN {
			t.Errorf("expected (%q, true), got (%q, %v)", wantEN, message, ok)
		}
	})

	t.Run("japanese locale", func(t *testing.T) {
		message, ok := GetDeclineMessage("insufficient_funds", LocaleJA)
		if !ok {
			t.Fatal("expected a message")
		}
		if message != wantJA {
			t.Errorf("expected %q, got %q", wantJA, message)
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		if message, ok := GetDeclineMessage("invalid_code"); ok || message != "" {
			t.Errorf("expected no value, got (%q, %v)", message, ok)
		}
	})

	t.Run("missing translation is not a fallback", func(t *testing.T) {
		// fraudulent has no Japanese translation; the base-locale text must
		// not leak through.
		if _, ok := GetDeclineMessage("fraudulent", LocaleJA); ok {
			t.Error("expected no value for an untranslated code")
		}
		if message, ok := GetDeclineMessage("fraudulent"); !ok || message == "" {
			t.Error("expected the base-locale message to exist")
		}
	})
}

func TestGetAllDeclineCodes(t *testing.T) {
	codes := GetAllDeclineCodes()
	if len(codes) != 44 {
		t.Fatalf("expected 44 codes, got %d", len(codes))
	}

	want := map[DeclineCode]bool{
		InsufficientFunds: false,
		GenericDecline:    false,
		ExpiredCard:       false,
		IncorrectCVC:      false,
	}
	for _, code := range codes {
		if _, tracked := want[code]; tracked {
			want[code] = true
		}
	}
	for code, seen := range want {
		if !seen {
			t.Errorf("expected %q in the code list", code)
		}
	}
}

func TestGetDocVersion(t *testing.T) {
	version := GetDocVersion()
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(version) {
		t.Errorf("expected YYYY-MM-DD, got %q", version)
	}
}

func TestGetDeclineCategory(t *testing.T) {
	t.Run("soft", func(t *testing.T) {
		category, ok := GetDeclineCategory("insufficient_funds")
		if !ok || category != SoftDecline {
			t.Errorf("expected (SOFT_DECLINE, true), got (%q, %v)", category, ok)
		}
	})

	t.Run("hard", func(t *testing.T) {
		category, ok := GetDeclineCategory("fraudulent")
		if !ok || category != HardDecline {
			t.Errorf("expected (HARD_DECLINE, true), got (%q, %v)", category, ok)
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		if category, ok := GetDeclineCategory("invalid_code"); ok || category != "" {
			t.Errorf("expected no value, got (%q, %v)", category, ok)
		}
	})
}

// The predicates are boolean-contract functions: both report false for an
// invalid code, unlike GetDeclineCategory which reports no value. The
// asymmetry is deliberate.
func TestCategoryPredicates(t *testing.T) {
	t.Run("valid codes", func(t *testing.T) {
		if !IsSoftDecline("insufficient_funds") {
			t.Error("insufficient_funds should be soft")
		}
		if IsHardDecline("insufficient_funds") {
			t.Error("insufficient_funds should not be hard")
		}
		if !IsHardDecline("fraudulent") {
			t.Error("fraudulent should be hard")
		}
		if IsSoftDecline("fraudulent") {
			t.Error("fraudulent should not be soft")
		}
	})

	t.Run("invalid code yields false from both", func(t *testing.T) {
		if IsHardDecline("invalid_code") {
			t.Error("IsHardDecline must be false for an invalid code")
		}
		if IsSoftDecline("invalid_code") {
			t.Error("IsSoftDecline must be false for an invalid code")
		}
	})
}
