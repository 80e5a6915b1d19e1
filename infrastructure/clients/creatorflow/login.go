package creatorflow

import (
	"strings"

	"github.com/google/go-querystring/query"
)

// LoginURL is where the browser is sent to start the identity-provider flow.
// The backend redirects back to <frontend>/auth/callback?token=...
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/google"
}

type loginErrorParams struct {
	Error string `url:"error"`
}

// AuthFailedURL builds the login page URL that reports a failed callback.
func AuthFailedURL(frontendURL string, reason string) string {
	values, err := query.Values(loginErrorParams{Error: reason})
	if err != nil {
		return strings.TrimRight(frontendURL, "/") + "/login"
	}
	return strings.TrimRight(frontendURL, "/") + "/login?" + values.Encode()
}

// DashboardURL is the landing page after a successful login.
func DashboardURL(frontendURL string) string {
	return strings.TrimRight(frontendURL, "/") + "/dashboard"
}
