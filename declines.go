// Package declines maps payment-gateway decline codes to structured,
// localized guidance: why the payment failed, what the merchant should do,
// and what to show the end user.
//
// Every operation is a pure function over an immutable table built at
// package initialization, so the package is safe for concurrent use without
// coordination. Invalid input is never an error: description lookups return
// a zero record, message and category lookups return a comma-ok false, and
// the soft/hard predicates return plain false.
package declines

// IsValidDeclineCode reports whether code is exactly one of the known
// decline-code tokens. Matching is case-sensitive with no trimming or
// normalization; prefixes and suffixes of valid tokens do not match.
func IsValidDeclineCode(code string) bool {
	_, ok := declineTable[DeclineCode(code)]
	return ok
}

// GetDeclineDescription returns the full record for a decline code.
//
// The code argument is optional: calling with no argument represents "no
// code known yet". When the code is absent or unknown the returned result
// carries the zero DeclineCodeInfo record, but DocVersion is always
// populated so callers can still display "data as of {DocVersion}".
func GetDeclineDescription(code ...string) DeclineCodeResult {
	result := DeclineCodeResult{DocVersion: docVersion}
	if len(code) == 0 {
		return result
	}
	if info, ok := declineTable[DeclineCode(code[0])]; ok {
		result.Code = info
	}
	return result
}

// GetDeclineMessage returns the end-user message for a decline code in the
// given locale (base locale when omitted). The second return value is false
// when the code is unknown, or when the requested non-base locale has no
// translation for this particular code. The function never falls back to
// the base-locale text on a missing translation; callers that want fallback
// behavior choose it explicitly.
func GetDeclineMessage(code string, locale ...Locale) (string, bool) {
	info, ok := declineTable[DeclineCode(code)]
	if !ok {
		return "", false
	}

	loc := LocaleEN
	if len(locale) > 0 && locale[0] != "" {
		loc = locale[0]
	}
	if loc == LocaleEN {
		return info.NextUserAction, true
	}

	translation, ok := info.Translations[loc]
	if !ok {
		return "", false
	}
	return translation.NextUserAction, true
}

// GetAllDeclineCodes returns every valid decline-code token. Order is
// unspecified. The returned slice is freshly allocated; mutating it does
// not affect the table.
func GetAllDeclineCodes() []DeclineCode {
	codes := make([]DeclineCode, 0, len(declineTable))
	for code := range declineTable {
		codes = append(codes, code)
	}
	return codes
}

// GetDocVersion returns the upstream documentation revision date the table
// was transcribed from, in YYYY-MM-DD form.
func GetDocVersion() string {
	return docVersion
}

// GetDeclineCategory returns the stored category tag for a decline code.
// The second return value is false for unknown codes. Category is data, not
// inference: it is read verbatim from the table.
func GetDeclineCategory(code string) (DeclineCategory, bool) {
	info, ok := declineTable[DeclineCode(code)]
	if !ok {
		return "", false
	}
	return info.Category, true
}

// IsHardDecline reports whether the code is a known hard decline.
// Unknown codes return false, not a missing value.
func IsHardDecline(code string) bool {
	category, ok := GetDeclineCategory(code)
	return ok && category == HardDecline
}

// IsSoftDecline reports whether the code is a known soft decline.
// Unknown codes return false, not a missing value.
func IsSoftDecline(code string) bool {
	category, ok := GetDeclineCategory(code)
	return ok && category == SoftDecline
}
