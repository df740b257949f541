package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gateway/internal/auth"
)

// Client talks to the identity provider's backend API over HTTPS. The
// provider validates opaque session tokens and stores user records with a
// free-form public metadata blob; this client never interprets that blob.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient builds a provider client for the given backend API base URL,
// authenticated with the service secret key.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sessionResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

type emailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type userResponse struct {
	ID                    string         `json:"id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	PublicMetadata        map[string]any `json:"public_metadata"`
}

// GetSession validates a session token. An unknown or revoked token yields
// nil with no error.
func (c *Client) GetSession(ctx context.Context, token string) (*auth.ProviderSession, error) {
	var out sessionResponse
	found, err := c.get(ctx, "/sessions/"+url.PathEscape(token), &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if out.Status != "" && !strings.EqualFold(out.Status, "active") {
		return nil, nil
	}
	return &auth.ProviderSession{ID: out.ID, UserID: out.UserID}, nil
}

// GetUser fetches a user record by id. An unknown id yields nil with no
// error.
func (c *Client) GetUser(ctx context.Context, userID string) (*auth.ProviderUser, error) {
	var out userResponse
	found, err := c.get(ctx, "/users/"+url.PathEscape(userID), &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &auth.ProviderUser{
		ID:       out.ID,
		Email:    primaryEmail(out),
		Metadata: out.PublicMetadata,
	}, nil
}

// get performs one authenticated GET. A 404 reports found=false with no
// error; every other non-2xx status is a transport failure.
func (c *Client) get(ctx context.Context, path string, v any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, fmt.Errorf("identity: %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return false, fmt.Errorf("identity: decode %s response: %w", path, err)
	}
	return true, nil
}

func primaryEmail(u userResponse) string {
	for _, addr := range u.EmailAddresses {
		if addr.ID == u.PrimaryEmailAddressID {
			return addr.EmailAddress
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}
