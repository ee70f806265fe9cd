package cloud

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateLoginToken starts the polling-based login flow. It requires no
// authentication and returns the token to poll with and the URL the user
// must open in a browser.
func (c *Client) CreateLoginToken(ctx context.Context) (LoginToken, error) {
	var lt LoginToken
	if err := c.Do(ctx, http.MethodPost, "login/token.json", &lt); err != nil {
		return LoginToken{}, err
	}

	// The server may hand back a redirect URL on a different host than
	// the configured endpoint. Pin it to the API host.
	u, err := url.Parse(lt.URL)
	if err != nil {
		return LoginToken{}, fmt.Errorf("parsing login redirect url: %w", err)
	}
	u.Host = c.base.Host
	lt.URL = u.String()

	return lt, nil
}

// GetLoginUser fetches the user behind a login token. The login flow polls
// this until the user confirms in the browser and the server stops
// answering 404.
func (c *Client) GetLoginUser(ctx context.Context, token string) (User, error) {
	var u User
	if err := c.Do(ctx, http.MethodGet, "login/user/"+url.PathEscape(token)+".json", &u); err != nil {
		return User{}, err
	}

	return u, nil
}
