package google

import (
	"context"
	"errors"
	"fmt"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	oauthapi "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"net/http"
	"time"
)

var ErrUnverifiedEmail = errors.New("google account email is not verified")

// Provider runs the Google OAuth 2.0 authorization code flow and reports
// the verified email address of the signed-in account.
type Provider struct {
	config     *oauth2.Config
	httpClient *http.Client
}

func NewProvider(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{oauthapi.UserinfoEmailScope, oauthapi.UserinfoProfileScope},
			Endpoint:     googleoauth.Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and looks up the
// account's email address.
func (p *Provider) Exchange(ctx context.Context, code string) (string, error) {
	const op = "auth.google.Exchange"

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%s: exchange code: %w", op, err)
	}

	svc, err := oauthapi.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return "", fmt.Errorf("%s: create userinfo service: %w", op, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%s: fetch userinfo: %w", op, err)
	}

	if info.Email == "" || info.VerifiedEmail == nil || !*info.VerifiedEmail {
		return "", fmt.Errorf("%s: %w", op, ErrUnverifiedEmail)
	}

	return info.Email, nil
}
