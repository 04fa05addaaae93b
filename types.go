package declines

// DeclineCode identifies why a card payment was refused.
// The set of valid codes is closed and matches the upstream gateway
// documentation revision reported by GetDocVersion.
type DeclineCode string

// The full set of known decline codes.
const (
	ApproveWithID                  DeclineCode = "approve_with_id"
	CallIssuer                     DeclineCode = "call_issuer"
	CardNotSupported               DeclineCode = "card_not_supported"
	CardVelocityExceeded           DeclineCode = "card_velocity_exceeded"
	CurrencyNotSupported           DeclineCode = "currency_not_supported"
	DoNotHonor                     DeclineCode = "do_not_honor"
	DuplicateTransaction           DeclineCode = "duplicate_transaction"
	ExpiredCard                    DeclineCode = "expired_card"
	Fraudulent                     DeclineCode = "fraudulent"
	GenericDecline                 DeclineCode = "generic_decline"
	IncorrectNumber                DeclineCode = "incorrect_number"
	IncorrectCVC                   DeclineCode = "incorrect_cvc"
	IncorrectPIN                   DeclineCode = "incorrect_pin"
	IncorrectZip                   DeclineCode = "incorrect_zip"
	InsufficientFunds              DeclineCode = "insufficient_funds"
	InvalidAccount                 DeclineCode = "invalid_account"
	InvalidAmount                  DeclineCode = "invalid_amount"
	InvalidCVC                     DeclineCode = "invalid_cvc"
	InvalidExpiryMonth             DeclineCode = "invalid_expiry_month"
	InvalidExpiryYear              DeclineCode = "invalid_expiry_year"
	InvalidNumber                  DeclineCode = "invalid_number"
	InvalidPIN                     DeclineCode = "invalid_pin"
	IssuerNotAvailable             DeclineCode = "issuer_not_available"
	LostCard                       DeclineCode = "lost_card"
	MerchantBlacklist              DeclineCode = "merchant_blacklist"
	NewAccountInformationAvailable DeclineCode = "new_account_information_available"
	NotPermitted                   DeclineCode = "not_permitted"
	OfflinePINRequired             DeclineCode = "offline_pin_required"
	OnlineOrOfflinePINRequired     DeclineCode = "online_or_offline_pin_required"
	PickupCard                     DeclineCode = "pickup_card"
	PINTryExceeded                 DeclineCode = "pin_try_exceeded"
	ProcessingError                DeclineCode = "processing_error"
	ReenterTransaction             DeclineCode = "reenter_transaction"
	RestrictedCard                 DeclineCode = "restricted_card"
	RevocationOfAllAuthorizations  DeclineCode = "revocation_of_all_authorizations"
	RevocationOfAuthorization      DeclineCode = "revocation_of_authorization"
	SecurityViolation              DeclineCode = "security_violation"
	ServiceNotAllowed              DeclineCode = "service_not_allowed"
	StolenCard                     DeclineCode = "stolen_card"
	StopPaymentOrder               DeclineCode = "stop_payment_order"
	TestmodeDecline                DeclineCode = "testmode_decline"
	TransactionNotAllowed          DeclineCode = "transaction_not_allowed"
	TryAgainLater                  DeclineCode = "try_again_later"
	WithdrawalCountLimitExceeded   DeclineCode = "withdrawal_count_limit_exceeded"
)

// Locale selects which localized strings to surface to an end user.
type Locale string

// Supported locales. LocaleEN is the base locale: every record carries its
// English strings directly; translations are per-locale and optional.
const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

// DeclineCategory tags a decline code as transient or permanent.
type DeclineCategory string

const (
	// SoftDecline marks a transient condition. Retrying, possibly with a
	// different payment method or at a later time, is a sensible next step.
	SoftDecline DeclineCategory = "SOFT_DECLINE"
	// HardDecline marks a permanent condition for the card. Retrying the
	// same card is not recommended.
	HardDecline DeclineCategory = "HARD_DECLINE"
)

// Translation carries the localized strings for a single decline code in a
// single non-base locale. NextSteps is intentionally absent: merchant-facing
// guidance is English-only.
type Translation struct {
	Description    string `json:"description"`
	NextUserAction string `json:"nextUserAction"`
}

// DeclineCodeInfo is the full record stored for a decline code.
type DeclineCodeInfo struct {
	// Description explains the decline in technical, merchant-oriented terms.
	Description string `json:"description"`
	// NextSteps is merchant-oriented operational guidance. English-only.
	NextSteps string `json:"nextSteps"`
	// NextUserAction is the message to show the end user, in the base locale.
	NextUserAction string `json:"nextUserAction"`
	// Category classifies the decline as soft or hard.
	Category DeclineCategory `json:"category"`
	// Translations maps non-base locales to their translated strings.
	// Any locale, including all of them, may be absent for a given code.
	Translations map[Locale]Translation `json:"translations,omitempty"`
}

// DeclineCodeResult is returned by GetDeclineDescription. DocVersion is
// always populated; Code is the zero record when the lookup failed, never a
// nil pointer. Callers probe field presence (e.g. Code.Description == "")
// rather than nullity.
type DeclineCodeResult struct {
	DocVersion string          `json:"docVersion"`
	Code       DeclineCodeInfo `json:"code"`
}

// StripeError is the narrow slice of a gateway error object this package
// reads. Additional fields on the source object are ignored.
type StripeError struct {
	Type        string `json:"type,omitempty"`
	DeclineCode string `json:"decline_code,omitempty"`
	Message     string `json:"message,omitempty"`
}

// DeclineCoder is the capability interface for typed gateway SDK errors.
// Implementations report their decline code, or "" when none is present.
type DeclineCoder interface {
	GetDeclineCode() string
}

// GetDeclineCode implements DeclineCoder.
func (e StripeError) GetDeclineCode() string {
	return e.DeclineCode
}
