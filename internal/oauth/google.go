package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const UserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var Scopes = []string{"openid", "email", "profile"}

var ErrMissingEmail = errors.New("google profile has no email")

type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Provider is the part of Google sign-in the service layer depends on.
type Provider interface {
	AuthURL(state, redirectURI string) string
	Exchange(ctx context.Context, code, redirectURI string) (*Profile, error)
	VerifyIDToken(ctx context.Context, rawToken string) (*Profile, error)
}

type Google struct {
	ClientID     string
	ClientSecret string
	Endpoint     oauth2.Endpoint
	UserInfoURL  string

	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewGoogle(clientID, clientSecret string) *Google {
	return &Google{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		UserInfoURL:  UserInfoURL,
		validate:     idtoken.Validate,
	}
}

func (g *Google) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		Endpoint:     g.Endpoint,
		RedirectURL:  redirectURI,
		Scopes:       Scopes,
	}
}

func (g *Google) AuthURL(state, redirectURI string) string {
	return g.config(redirectURI).AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for tokens and fetches the profile.
func (g *Google) Exchange(ctx context.Context, code, redirectURI string) (*Profile, error) {
	conf := g.config(redirectURI)
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google: exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := conf.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("google: userinfo: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, fmt.Errorf("google: userinfo returned %d: %s", res.StatusCode, body)
	}

	var p Profile
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("google: decode userinfo: %w", err)
	}
	if p.Email == "" {
		return nil, ErrMissingEmail
	}
	return &p, nil
}

// VerifyIDToken checks the signature and audience of a Google ID token.
func (g *Google) VerifyIDToken(ctx context.Context, rawToken string) (*Profile, error) {
	validate := g.validate
	if validate == nil {
		validate = idtoken.Validate
	}
	payload, err := validate(ctx, rawToken, g.ClientID)
	if err != nil {
		return nil, fmt.Errorf("google: verify id token: %w", err)
	}

	p := &Profile{ID: payload.Subject}
	p.Email, _ = payload.Claims["email"].(string)
	p.Name, _ = payload.Claims["name"].(string)
	p.Picture, _ = payload.Claims["picture"].(string)
	p.VerifiedEmail, _ = payload.Claims["email_verified"].(bool)
	if p.Email == "" {
		return nil, ErrMissingEmail
	}
	return p, nil
}
