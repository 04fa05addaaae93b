package declines

// docVersion is the upstream decline-code documentation revision this table
// was transcribed from.
const docVersion = "2023-09-15"

// declineTable is the authoritative mapping from decline code to its record.
// It is populated once at package initialization and never mutated. Every
// declared DeclineCode constant has a complete entry; completeness is
// enforced by tests.
var declineTable = map[DeclineCode]DeclineCodeInfo{
	ApproveWithID: {
		Description:    "The payment cannot be authorized.",
		NextSteps:      "The payment should be attempted again. If it still cannot be processed, the customer needs to contact their card issuer.",
		NextUserAction: "Please try again. If the payment still fails, please contact your card issuer.",
		Category:       SoftDecline,
	},
	CallIssuer: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	CardNotSupported: {
		Description:    "The card does not support this type of purchase.",
		NextSteps:      "The customer needs to contact their card issuer to make sure their card can be used to make this type of purchase.",
		NextUserAction: "Please contact your card issuer, or try again using an alternative payment method.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "このカードはこの種類の購入に対応していません。",
				NextUserAction: "カード発行会社にお問い合わせいただくか、別のお支払い方法でもう一度お試しください。",
			},
		},
	},
	CardVelocityExceeded: {
		Description:    "The customer has exceeded the balance or credit limit available on their card.",
		NextSteps:      "The customer should contact their card issuer for more information.",
		NextUserAction: "Please try again using an alternative payment method.",
		Category:       SoftDecline,
	},
	CurrencyNotSupported: {
		Description:    "The card does not support the specified currency.",
		NextSteps:      "The customer needs to check with the issuer whether the card can be used for the type of currency specified.",
		NextUserAction: "Please try again using an alternative payment method.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "このカードは指定された通貨に対応していません。",
				NextUserAction: "別のお支払い方法を使用してもう一度お試しください。",
			},
		},
	},
	DoNotHonor: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードは不明な理由で拒否されました。",
				NextUserAction: "詳細については、カード発行会社にお問い合わせください。",
			},
		},
	},
	DuplicateTransaction: {
		Description:    "A transaction with identical amount and credit card information was submitted very recently.",
		NextSteps:      "Check to see if a recent payment already exists.",
		NextUserAction: "The same payment may have been submitted twice. Please check whether it has already completed.",
		Category:       SoftDecline,
	},
	ExpiredCard: {
		Description:    "The card has expired.",
		NextSteps:      "The customer should use another card.",
		NextUserAction: "Your card has expired. Please try again using an alternative payment method.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードの有効期限が切れています。",
				NextUserAction: "カードの有効期限が切れています。別のお支払い方法を使用してもう一度お試しください。",
			},
		},
	},
	Fraudulent: {
		Description:    "The payment has been declined because the card issuer suspects it is fraudulent.",
		NextSteps:      "The specific reason for the decline should not be reported to the customer. Instead, it needs to be presented as a generic decline.",
		NextUserAction: "Your card has been declined. Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	GenericDecline: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information, or try again using an alternative payment method.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードは不明な理由で拒否されました。",
				NextUserAction: "カード発行会社にお問い合わせいただくか、別のお支払い方法でもう一度お試しください。",
			},
		},
	},
	IncorrectNumber: {
		Description:    "The card number is incorrect.",
		NextSteps:      "The customer should try again using the correct card number.",
		NextUserAction: "Please check the card number and try again.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カード番号が正しくありません。",
				NextUserAction: "カード番号をご確認の上、もう一度お試しください。",
			},
		},
	},
	IncorrectCVC: {
		Description:    "The CVC number is incorrect.",
		NextSteps:      "The customer should try again using the correct CVC.",
		NextUserAction: "Please check the card security code (CVC) and try again.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "セキュリティコード (CVC) が正しくありません。",
				NextUserAction: "セキュリティコード (CVC) をご確認の上、もう一度お試しください。",
			},
		},
	},
	IncorrectPIN: {
		Description:    "The PIN entered is incorrect.",
		NextSteps:      "The customer should try again using the correct PIN.",
		NextUserAction: "Please check the PIN and try again.",
		Category:       HardDecline,
	},
	IncorrectZip: {
		Description:    "The postal code is incorrect.",
		NextSteps:      "The customer should try again using the correct billing postal code.",
		NextUserAction: "Please check the billing postal code and try again.",
		Category:       HardDecline,
	},
	InsufficientFunds: {
		Description:    "The card has insufficient funds to complete the purchase.",
		NextSteps:      "The customer should use an alternative payment method.",
		NextUserAction: "Please try again using an alternative payment method.",
		Category:       SoftDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードの残高が不足しているため、購入を完了できませんでした。",
				NextUserAction: "別のお支払い方法を使用してもう一度お試しください。",
			},
		},
	},
	InvalidAccount: {
		Description:    "The card, or account the card is connected to, is invalid.",
		NextSteps:      "The customer needs to contact their card issuer to check that the card is working correctly.",
		NextUserAction: "Please contact your card issuer to confirm the card is active, or try again using an alternative payment method.",
		Category:       HardDecline,
	},
	InvalidAmount: {
		Description:    "The payment amount is invalid, or exceeds the amount that is allowed.",
		NextSteps:      "If the amount appears to be correct, the customer needs to check with their card issuer that they can make purchases of that amount.",
		NextUserAction: "Please check the payment amount, or contact your card issuer.",
		Category:       HardDecline,
	},
	InvalidCVC: {
		Description:    "The CVC number is incorrect.",
		NextSteps:      "The customer should try again using the correct CVC.",
		NextUserAction: "Please check the card security code (CVC) and try again.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "セキュリティコード (CVC) が正しくありません。",
				NextUserAction: "セキュリティコード (CVC) をご確認の上、もう一度お試しください。",
			},
		},
	},
	InvalidExpiryMonth: {
		Description:    "The expiration month is invalid.",
		NextSteps:      "The customer should try again using the correct expiration date.",
		NextUserAction: "Please check the card expiration date and try again.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "有効期限の月が無効です。",
				NextUserAction: "カードの有効期限をご確認の上、もう一度お試しください。",
			},
		},
	},
	InvalidExpiryYear: {
		Description:    "The expiration year is invalid.",
		NextSteps:      "The customer should try again using the correct expiration date.",
		NextUserAction: "Please check the card expiration date and try again.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "有効期限の年が無効です。",
				NextUserAction: "カードの有効期限をご確認の上、もう一度お試しください。",
			},
		},
	},
	InvalidNumber: {
		Description:    "The card number is invalid.",
		NextSteps:      "The customer should try again using the correct card number.",
		NextUserAction: "Please check the card number and try again.",
		Category:       HardDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カード番号が無効です。",
				NextUserAction: "カード番号をご確認の上、もう一度お試しください。",
			},
		},
	},
	InvalidPIN: {
		Description:    "The PIN entered is incorrect.",
		NextSteps:      "The customer should try again using the correct PIN.",
		NextUserAction: "Please check the PIN and try again.",
		Category:       HardDecline,
	},
	IssuerNotAvailable: {
		Description:    "The card issuer could not be reached, so the payment could not be authorized.",
		NextSteps:      "The payment should be attempted again. If it still cannot be processed, the customer needs to contact their card issuer.",
		NextUserAction: "Please try again. If the payment still fails, please contact your card issuer.",
		Category:       SoftDecline,
	},
	LostCard: {
		Description:    "The payment has been declined because the card is reported lost.",
		NextSteps:      "The specific reason for the decline should not be reported to the customer. Instead, it needs to be presented as a generic decline.",
		NextUserAction: "Your card has been declined. Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	MerchantBlacklist: {
		Description:    "The payment has been declined because it matches a value on the user's block list.",
		NextSteps:      "The specific reason for the decline should not be reported to the customer. Instead, it needs to be presented as a generic decline.",
		NextUserAction: "Your card has been declined. Please try again using an alternative payment method.",
		Category:       HardDecline,
	},
	NewAccountInformationAvailable: {
		Description:    "The card, or account the card is connected to, is invalid.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	NotPermitted: {
		Description:    "The payment is not permitted.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	OfflinePINRequired: {
		Description:    "The card has been declined because it requires a PIN.",
		NextSteps:      "The customer should try again by inserting their card and entering a PIN.",
		NextUserAction: "Please try again by inserting your card and entering your PIN.",
		Category:       HardDecline,
	},
	OnlineOrOfflinePINRequired: {
		Description:    "The card has been declined because it requires a PIN.",
		NextSteps:      "If the card reader supports online PIN, the customer should be prompted for their PIN without creating a new transaction.",
		NextUserAction: "Please try again and enter your PIN when prompted.",
		Category:       HardDecline,
	},
	PickupCard: {
		Description:    "The customer cannot use this card to make this payment (it is possible it has been reported lost or stolen).",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Your card has been declined. Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	PINTryExceeded: {
		Description:    "The allowable number of PIN tries has been exceeded.",
		NextSteps:      "The customer must use another card or method of payment.",
		NextUserAction: "Please try again using an alternative payment method.",
		Category:       HardDecline,
	},
	ProcessingError: {
		Description:    "An error occurred while processing the card.",
		NextSteps:      "The payment should be attempted again. If it still cannot be processed, try again later.",
		NextUserAction: "Please try again. If the payment still fails, please wait a while and try again later.",
		Category:       SoftDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードの処理中にエラーが発生しました。",
				NextUserAction: "もう一度お試しください。解決しない場合は、しばらくしてからもう一度お試しください。",
			},
		},
	},
	ReenterTransaction: {
		Description:    "The payment could not be processed by the issuer for an unknown reason.",
		NextSteps:      "The payment should be attempted again. If it still cannot be processed, the customer needs to contact their card issuer.",
		NextUserAction: "Please try again. If the payment still fails, please contact your card issuer.",
		Category:       SoftDecline,
	},
	RestrictedCard: {
		Description:    "The customer cannot use this card to make this payment (it is possible it has been reported lost or stolen).",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Your card has been declined. Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	RevocationOfAllAuthorizations: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	RevocationOfAuthorization: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	SecurityViolation: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	ServiceNotAllowed: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	StolenCard: {
		Description:    "The payment has been declined because the card is reported stolen.",
		NextSteps:      "The specific reason for the decline should not be reported to the customer. Instead, it needs to be presented as a generic decline.",
		NextUserAction: "Your card has been declined. Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	StopPaymentOrder: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	TestmodeDecline: {
		Description:    "A test card number was used.",
		NextSteps:      "A genuine card must be used to make a payment.",
		NextUserAction: "Please try again using a genuine card.",
		Category:       HardDecline,
	},
	TransactionNotAllowed: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "The customer needs to contact their card issuer for more information.",
		NextUserAction: "Please contact your card issuer for more information.",
		Category:       HardDecline,
	},
	TryAgainLater: {
		Description:    "The card has been declined for an unknown reason.",
		NextSteps:      "Ask the customer to attempt the payment again. If subsequent payments are declined, the customer needs to contact their card issuer for more information.",
		NextUserAction: "Please try again later. If the payment still fails, please contact your card issuer.",
		Category:       SoftDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードは不明な理由で拒否されました。",
				NextUserAction: "しばらくしてからもう一度お試しください。解決しない場合は、カード発行会社にお問い合わせください。",
			},
		},
	},
	WithdrawalCountLimitExceeded: {
		Description:    "The customer has exceeded the balance or credit limit available on their card.",
		NextSteps:      "The customer should use an alternative payment method.",
		NextUserAction: "Please try again using an alternative payment method.",
		Category:       SoftDecline,
		Translations: map[Locale]Translation{
			LocaleJA: {
				Description:    "カードの利用限度額を超えています。",
				NextUserAction: "別のお支払い方法を使用してもう一度お試しください。",
			},
		},
	},
}
