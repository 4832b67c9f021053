package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gateway_errors "kakao-gateway/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client talks to the Kakao auth and API hosts. Base URLs are injectable
// so tests can point it at a local server.
type Client struct {
	httpClient  *http.Client
	authBaseURL string
	apiBaseURL  string
}

func NewClient(authBaseURL, apiBaseURL string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		authBaseURL: strings.TrimRight(authBaseURL, "/"),
		apiBaseURL:  strings.TrimRight(apiBaseURL, "/"),
	}
}

// TokenRequest carries the authorization-code grant parameters for
// ExchangeToken.
type TokenRequest struct {
	Code         string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// ExchangeToken trades an authorization code for an access token.
func (c *Client) ExchangeToken(ctx context.Context, req TokenRequest) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", req.ClientID)
	form.Set("redirect_uri", req.RedirectURI)
	form.Set("code", req.Code)
	form.Set("client_secret", req.ClientSecret)
	return c.postForm(ctx, c.authBaseURL+"/oauth/token", "", form)
}

// TokenInfo checks an access token against the token-info endpoint.
func (c *Client) TokenInfo(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, c.apiBaseURL+"/v1/user/access_token_info", token)
}

// Friends lists the talk friends of the token's owner.
func (c *Client) Friends(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, c.apiBaseURL+"/v1/api/talk/friends", token)
}

// Logout expires the access token on the platform side.
func (c *Client) Logout(ctx context.Context, token string) (json.RawMessage, error) {
	return c.postForm(ctx, c.apiBaseURL+"/v1/user/logout", token, nil)
}

// SendDefaultMessage submits one template object to a single receiver via
// the default-send endpoint. receiver_uuids and template_object are
// JSON-encoded inside the form body, as the API requires.
func (c *Client) SendDefaultMessage(ctx context.Context, token, receiverUUID string, tmpl TemplateObject) (json.RawMessage, error) {
	uuids, err := json.Marshal([]string{receiverUUID})
	if err != nil {
		return nil, fmt.Errorf("encode receiver uuids: %w", err)
	}
	obj, err := json.Marshal(tmpl)
	if err != nil {
		return nil, fmt.Errorf("encode template object: %w", err)
	}

	form := url.Values{}
	form.Set("receiver_uuids", string(uuids))
	form.Set("template_object", string(obj))
	return c.postForm(ctx, c.apiBaseURL+"/v1/api/talk/friends/message/default/send", token, form)
}

func (c *Client) postForm(ctx context.Context, endpoint, token string, form url.Values) (json.RawMessage, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req)
}

func (c *Client) get(ctx context.Context, endpoint, token string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &gateway_errors.UpstreamError{Status: resp.StatusCode, Body: data}
	}
	return data, nil
}
