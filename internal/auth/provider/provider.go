package provider

import (
	"context"
	"errors"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth"
)

var (
	// ErrTokenExchange indicates the authorization code could not be
	// exchanged for an access token.
	ErrTokenExchange = errors.New("token exchange failed")

	// ErrProfileFetch indicates the profile endpoint call failed or
	// returned an unusable document.
	ErrProfileFetch = errors.New("profile fetch failed")
)

// OAuthProvider defines the contract for an external login provider.
// Implementations return identity facts only and must not perform user
// creation, linking, or session management.
//
// Exchange and FetchProfile are separate steps so their failures stay
// distinguishable to the caller.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "linkedin").
	Name() string

	// AuthCodeURL returns the provider authorization URL carrying the
	// given anti-forgery state. All parameters are URL-encoded.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for an access token.
	// Failures wrap ErrTokenExchange.
	Exchange(ctx context.Context, code string) (accessToken string, err error)

	// FetchProfile retrieves the member profile with the access token.
	// Failures wrap ErrProfileFetch.
	FetchProfile(ctx context.Context, accessToken string) (*auth.Profile, error)
}
