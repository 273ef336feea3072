package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrNoVerifiedEmail is returned when the provider does not hand back a
// usable email address for the account.
var ErrNoVerifiedEmail = errors.New("identity provider returned no verified email")

// Profile is the verified identity returned by the provider after a
// successful code exchange.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleConfig holds the OAuth client settings
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleProvider wraps the oauth2 authorization-code flow against Google.
// The provider is treated as a black box returning a verified email and
// display name.
type GoogleProvider struct {
	config *oauth2.Config
	client *http.Client
}

// NewGoogleProvider creates a new GoogleProvider
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthCodeURL returns the consent page URL for the given anti-forgery state
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for a token and resolves the
// account's profile.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	if profile.Email == "" {
		return nil, ErrNoVerifiedEmail
	}

	return &profile, nil
}
