package auth

// EmailStatus distinguishes the ways a provider can answer a request for
// the account email. LinkedIn reports a permission-restricted address with
// the literal body "private" rather than omitting the field; classifying
// the wire value here keeps that quirk out of the resolver.
type EmailStatus int

const (
	// EmailAvailable means the provider returned an address. The address
	// is not guaranteed to be syntactically valid.
	EmailAvailable EmailStatus = iota

	// EmailWithheld means the user restricted API access to the address.
	EmailWithheld

	// EmailMissing means the provider returned no address at all, which
	// usually indicates a missing scope grant.
	EmailMissing
)

// EmailClaim is the provider's answer for the account email.
type EmailClaim struct {
	Status  EmailStatus
	Address string // set only when Status == EmailAvailable
}

// ClassifyEmail maps the raw wire value onto a tagged claim.
func ClassifyEmail(raw string) EmailClaim {
	switch raw {
	case "private":
		return EmailClaim{Status: EmailWithheld}
	case "":
		return EmailClaim{Status: EmailMissing}
	default:
		return EmailClaim{Status: EmailAvailable, Address: raw}
	}
}

// Profile is the normalized profile returned by a provider. It contains
// facts only, no account decisions.
type Profile struct {
	ID        string // provider-scoped unique member identifier
	FirstName string
	LastName  string
	Email     EmailClaim
}
