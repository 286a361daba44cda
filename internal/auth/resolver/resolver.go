package resolver

import (
	"context"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth"
)

type OutcomeKind int

const (
	// SignedIn means the email matched an existing account.
	SignedIn OutcomeKind = iota

	// Provisioned means a new account was created for the email.
	Provisioned

	// Rejected means the email is unusable; Reason and Message carry the
	// user-facing explanation.
	Rejected
)

type RejectReason string

const (
	ReasonPrivateEmail RejectReason = "private-email"
	ReasonInvalidScope RejectReason = "invalid-scope"
)

// Outcome is the result of resolving a provider email to a local account.
type Outcome struct {
	Kind        OutcomeKind
	UserID      string       // set for SignedIn and Provisioned
	RedirectURL string       // post-login target, set for SignedIn and Provisioned
	Reason      RejectReason // set for Rejected
	Message     string       // user-facing text, set for Rejected
}

// Resolver decides what a provider email claim means for the local user
// directory. It is the only place where that decision lives.
type Resolver interface {
	Resolve(ctx context.Context, email auth.EmailClaim) (*Outcome, error)
}
