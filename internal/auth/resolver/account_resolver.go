package resolver

import (
	"context"
	"errors"
	"net/mail"
	"net/url"
	"strings"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth"
	"github.com/hacklabr/wordpress-linkedin-login/internal/directory"
	"github.com/hacklabr/wordpress-linkedin-login/internal/utils"
)

const (
	privateEmailMessage = "We are unable to sign you in, since you have not allowed API access to your email address. Please register manually."

	invalidScopeMessage = "It seems that your application does not have proper scope permissions. Please visit your application page on LinkedIn, and make sure r_emailaddress is checked under Scope."
)

// AccountResolver maps an email claim to a sign-in, a provisioned
// account, or a rejection. Directory writes are delegated to the
// directory collaborator; session establishment belongs to the caller.
type AccountResolver struct {
	directory directory.Directory

	// postLoginURL is honored for sign-ins only when absolute with a
	// host; adminURL is the fallback and the landing page for
	// provisioned accounts.
	postLoginURL string
	adminURL     string
}

func NewAccountResolver(dir directory.Directory, postLoginURL, adminURL string) *AccountResolver {
	return &AccountResolver{
		directory:    dir,
		postLoginURL: postLoginURL,
		adminURL:     adminURL,
	}
}

// Resolve applies the decision order: existing account, withheld email,
// provisionable email, unusable email. First match wins.
func (r *AccountResolver) Resolve(ctx context.Context, email auth.EmailClaim) (*Outcome, error) {
	if email.Status == auth.EmailAvailable {
		user, err := r.directory.FindByEmail(ctx, email.Address)
		if err == nil {
			return &Outcome{
				Kind:        SignedIn,
				UserID:      user.ID,
				RedirectURL: resolveRedirect(r.postLoginURL, r.adminURL),
			}, nil
		}
		if !errors.Is(err, directory.ErrNotFound) {
			return nil, err
		}
	}

	if email.Status == auth.EmailWithheld {
		return &Outcome{
			Kind:    Rejected,
			Reason:  ReasonPrivateEmail,
			Message: privateEmailMessage,
		}, nil
	}

	if email.Status == auth.EmailAvailable && validEmail(email.Address) {
		userID, err := r.directory.CreateUser(ctx, email.Address, utils.GeneratePassword())
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Kind:        Provisioned,
			UserID:      userID,
			RedirectURL: r.adminURL,
		}, nil
	}

	return &Outcome{
		Kind:    Rejected,
		Reason:  ReasonInvalidScope,
		Message: invalidScopeMessage,
	}, nil
}

// validEmail accepts local@domain addresses with a dot in the domain.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}

	at := strings.LastIndex(addr, "@")
	if at < 1 {
		return false
	}

	return strings.Contains(addr[at+1:], ".")
}

// resolveRedirect honors the configured target only when it parses as an
// absolute URL with a host; anything else falls back.
func resolveRedirect(configured, fallback string) string {
	if configured == "" {
		return fallback
	}

	u, err := url.Parse(configured)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fallback
	}

	return configured
}
