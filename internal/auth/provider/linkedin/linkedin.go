package linkedin

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/provider"
)

const providerName = "linkedin"

const (
	defaultAuthorizeURL = "https://www.linkedin.com/uas/oauth2/authorization"
	defaultTokenURL     = "https://www.linkedin.com/uas/oauth2/accessToken"
	defaultProfileURL   = "https://api.linkedin.com/v1/people/~:(id,first-name,last-name,email-address)"

	requestTimeout = 5 * time.Second
)

// Provider implements the LinkedIn authorization-code flow: authorize
// redirect, token exchange and v1 profile fetch. It returns identity
// facts only; no user or session decisions are made here.
type Provider struct {
	oauthConfig *oauth2.Config
	profileURL  string
	httpClient  *http.Client

	// exchangeViaQuery switches the token exchange to a GET with the
	// credentials in the query string. LinkedIn's form-POST exchange has
	// historically been unreliable; this is the compatibility escape
	// hatch, not the default.
	exchangeViaQuery bool
}

type Option func(*Provider)

// WithExchangeViaQuery forces the query-string GET token exchange.
func WithExchangeViaQuery() Option {
	return func(p *Provider) { p.exchangeViaQuery = true }
}

// WithEndpoints overrides the provider URLs. Used in tests and for
// API-version migrations.
func WithEndpoints(authorizeURL, tokenURL, profileURL string) Option {
	return func(p *Provider) {
		p.oauthConfig.Endpoint = oauth2.Endpoint{
			AuthURL:  authorizeURL,
			TokenURL: tokenURL,
		}
		p.profileURL = profileURL
	}
}

func New(clientID, clientSecret, redirectURL string, opts ...Option) (*Provider, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("linkedin oauth config missing required fields")
	}

	p := &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  defaultAuthorizeURL,
				TokenURL: defaultTokenURL,
			},
			Scopes: []string{"r_basicprofile", "r_emailaddress"},
		},
		profileURL: defaultProfileURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the authorization URL. The oauth2 config encodes
// response_type, client_id, redirect_uri, scope and state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

// Exchange trades the authorization code for an access token.
func (p *Provider) Exchange(ctx context.Context, code string) (string, error) {
	if p.exchangeViaQuery {
		return p.queryExchange(ctx, code)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrTokenExchange, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token", provider.ErrTokenExchange)
	}

	return token.AccessToken, nil
}

// queryExchange performs the GET variant of the exchange with all
// parameters, client credentials included, in the query string.
func (p *Provider) queryExchange(ctx context.Context, code string) (string, error) {
	q := url.Values{}
	q.Set("grant_type", "authorization_code")
	q.Set("code", code)
	q.Set("redirect_uri", p.oauthConfig.RedirectURL)
	q.Set("client_id", p.oauthConfig.ClientID)
	q.Set("client_secret", p.oauthConfig.ClientSecret)

	endpoint := p.oauthConfig.Endpoint.TokenURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrTokenExchange, err)
	}

	res, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrTokenExchange, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", provider.ErrTokenExchange, res.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: malformed body: %v", provider.ErrTokenExchange, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token", provider.ErrTokenExchange)
	}

	return body.AccessToken, nil
}

// personDocument is the v1 people response requesting id, first-name,
// last-name and email-address.
type personDocument struct {
	XMLName   xml.Name `xml:"person"`
	ID        string   `xml:"id"`
	FirstName string   `xml:"first-name"`
	LastName  string   `xml:"last-name"`
	Email     string   `xml:"email-address"`
}

// FetchProfile retrieves the member profile with a Bearer-authenticated
// GET and maps the XML document onto the normalized profile.
func (p *Provider) FetchProfile(ctx context.Context, accessToken string) (*auth.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrProfileFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrProfileFetch, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", provider.ErrProfileFetch, res.StatusCode)
	}

	var doc personDocument
	if err := xml.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: malformed body: %v", provider.ErrProfileFetch, err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: missing member id", provider.ErrProfileFetch)
	}

	return &auth.Profile{
		ID:        doc.ID,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Email:     auth.ClassifyEmail(doc.Email),
	}, nil
}
