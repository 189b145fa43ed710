package supabase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// AuthSession is the provider's token grant
type AuthSession struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

// AuthUser is the provider's view of the authenticated account
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a session and persists both tokens
// under the legacy and canonical key names.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthSession, error) {
	body, _, err := c.do(ctx, "POST", c.authURL+"/token?grant_type=password", &RequestOptions{
		Body: credentialsRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}

	var session AuthSession
	decodeJSON(body, &session)

	if session.AccessToken != "" {
		if err := c.tokens.Set(KeyLegacyAccessToken, session.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to store access token: %w", err)
		}
		if err := c.tokens.Set(KeyAccessToken, session.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to store access token: %w", err)
		}
	}
	if session.RefreshToken != "" {
		if err := c.tokens.Set(KeyLegacyRefreshToken, session.RefreshToken); err != nil {
			return nil, fmt.Errorf("failed to store refresh token: %w", err)
		}
		if err := c.tokens.Set(KeyRefreshToken, session.RefreshToken); err != nil {
			return nil, fmt.Errorf("failed to store refresh token: %w", err)
		}
	}

	c.logger.Info("signed in", "user_id", session.User.ID)
	return &session, nil
}

// SignUp registers a new account. No tokens are persisted: a freshly
// registered user stays signed out until an explicit sign-in.
// TODO(product): confirm whether sign-up should auto-establish a session
// the way sign-in does.
func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthSession, error) {
	body, _, err := c.do(ctx, "POST", c.authURL+"/signup", &RequestOptions{
		Body: credentialsRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}

	var session AuthSession
	decodeJSON(body, &session)

	c.logger.Info("signed up", "user_id", session.User.ID)
	return &session, nil
}

// SignOut deletes the canonical token pair. Subsequent requests proceed
// anonymously and CurrentUserID returns empty.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.tokens.Delete(KeyAccessToken); err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	if err := c.tokens.Delete(KeyRefreshToken); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	c.logger.Info("signed out")
	return nil
}

// CurrentUserID returns the subject claim of the stored access token, or
// empty when no token is stored or it cannot be decoded.
//
// The token signature is NOT verified here: the server verifies it on
// every authenticated request, and this value is a display hint only.
// It must never feed an authorization decision.
func (c *Client) CurrentUserID() string {
	token, err := c.tokens.Get(KeyAccessToken)
	if err != nil || token == "" {
		return ""
	}

	subject, err := decodeSubject(token)
	if err != nil {
		return ""
	}
	return subject
}

// decodeSubject reads the sub claim from a JWT's payload segment
func decodeSubject(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// some issuers pad or use the standard alphabet
		payload, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(parts[1], "="))
		if err != nil {
			return "", fmt.Errorf("failed to decode token payload: %w", err)
		}
	}

	var claims struct {
		Sub string `json:"sub"`
	}
	if err := sonic.Unmarshal(payload, &claims); err != nil {
		return "", fmt.Errorf("failed to parse token claims: %w", err)
	}
	return claims.Sub, nil
}
