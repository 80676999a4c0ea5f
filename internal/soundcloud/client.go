package soundcloud

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

const (
	productionHost = "soundcloud.com"
	sandboxHost    = "sandbox-soundcloud.com"

	pathConnect = "connect"
	pathToken   = "oauth2/token"
	pathMe      = "me"
	pathTracks  = "tracks"

	// DefaultGrantType is used by [Client.ExchangeCodeForToken] when no grant type is given.
	DefaultGrantType = "authorization_code"

	mimeForm = "application/x-www-form-urlencoded"
)

// Config holds the registered application's credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Sandbox      bool
}

// Asset is a file sent along with an upload.
type Asset struct {
	Filename string
	Reader   io.Reader
}

// Client performs requests against the SoundCloud API.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	logger       *log.Logger

	mu      sync.RWMutex
	sandbox bool
	session Session
}

// NewClient creates a Client for the given application credentials.
//
// A nil httpClient defaults to [http.DefaultClient] and a nil logger discards output.
func NewClient(cfg Config, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		httpClient:   httpClient,
		logger:       logger.WithPrefix("soundcloud"),
		sandbox:      cfg.Sandbox,
		session:      NewSession(""),
	}
}

// SetSandbox switches between the production and sandbox hosts.
func (c *Client) SetSandbox(sandbox bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sandbox = sandbox
}

// Sandbox reports whether requests target the sandbox host.
func (c *Client) Sandbox() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sandbox
}

// SetAccessToken installs token as the bearer credential for subsequent requests.
func (c *Client) SetAccessToken(token string) {
	s := NewSession(token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

// SetToken installs the access token carried by tok. A nil token clears the session.
func (c *Client) SetToken(tok *oauth2.Token) {
	if tok == nil {
		c.SetAccessToken("")
		return
	}
	c.SetAccessToken(tok.AccessToken)
}

// Session returns the current credential state.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) snapshot() (bool, Session) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sandbox, c.session
}

func (c *Client) defaults() Params {
	return NewParams(
		Param{"client_id", c.clientID},
		Param{"client_secret", c.clientSecret},
		Param{"redirect_uri", c.redirectURI},
	)
}

// AuthorizationURL returns the connect URL where the user grants the application access.
//
// The client secret is never part of the URL.
func (c *Client) AuthorizationURL() string {
	return c.AuthorizationURLWithState("")
}

// AuthorizationURLWithState is [Client.AuthorizationURL] with a state value the redirect callback
// echoes back. An empty state is omitted.
func (c *Client) AuthorizationURLWithState(state string) string {
	pairs := []Param{
		{"scope", "non-expiring"},
		{"display", "popup"},
		{"response_type", "code"},
	}
	if state != "" {
		pairs = append(pairs, Param{"state", state})
	}

	params := c.defaults().Merge(pairs...).Except("client_secret")

	sandbox, _ := c.snapshot()
	return buildURL(sandbox, pathConnect, params)
}

// ExchangeCodeForToken trades an authorization code for an access token.
//
// An empty grantType means [DefaultGrantType]. The client's session is not changed; call
// [Client.SetAccessToken] with the returned token to use it.
func (c *Client) ExchangeCodeForToken(ctx context.Context, code, grantType string) (Result, error) {
	if grantType == "" {
		grantType = DefaultGrantType
	}

	params := c.defaults().Merge(
		Param{"grant_type", grantType},
		Param{"code", code},
	)

	sandbox, session := c.snapshot()
	return c.postForm(ctx, buildURL(sandbox, pathToken, params), params, session)
}

// CurrentUser fetches the profile of the user owning token.
//
// The token is sent as the oauth_token query parameter and no client credentials are included.
func (c *Client) CurrentUser(ctx context.Context, token string) (Result, error) {
	params := NewParams(Param{"oauth_token", token})

	sandbox, session := c.snapshot()
	return c.get(ctx, buildURL(sandbox, pathMe, params), params, session)
}

// UploadTrack creates a track from data, a flat set of track attributes such as title.
//
// Each key k is sent as track[k].
func (c *Client) UploadTrack(ctx context.Context, data map[string]string) (Result, error) {
	params := c.defaults().Merge(ToNestedFormFields("track", data)...)

	sandbox, session := c.snapshot()
	return c.postForm(ctx, buildURL(sandbox, pathTracks, params), params, session)
}

// UploadTrackFile is [Client.UploadTrack] with an audio file sent as track[asset_data] in a
// multipart body.
func (c *Client) UploadTrackFile(ctx context.Context, data map[string]string, asset Asset) (Result, error) {
	if asset.Reader == nil {
		return nil, fmt.Errorf("missing asset data")
	}

	params := c.defaults().Merge(ToNestedFormFields("track", data)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, key := range params.Keys() {
		value, _ := params.Get(key)
		if err := mw.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	filename := asset.Filename
	if filename == "" {
		filename = "track"
	}
	part, err := mw.CreateFormFile("track[asset_data]", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, asset.Reader); err != nil {
		return nil, fmt.Errorf("failed to read asset: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	sandbox, session := c.snapshot()
	return c.do(ctx, http.MethodPost, buildURL(sandbox, pathTracks, params), &buf, mw.FormDataContentType(), session)
}

// buildURL returns the request URL for path. API paths are served from the api. subdomain;
// only the connect path carries params in its query string.
func buildURL(sandbox bool, path string, params Params) string {
	var sb strings.Builder
	sb.WriteString("https://")

	isConnect := strings.Contains(path, pathConnect)
	if !isConnect {
		sb.WriteString("api.")
	}

	if sandbox {
		sb.WriteString(sandboxHost)
	} else {
		sb.WriteString(productionHost)
	}

	sb.WriteByte('/')
	sb.WriteString(path)

	if isConnect && params.Len() > 0 {
		sb.WriteByte('?')
		sb.WriteString(params.Encode())
	}

	return sb.String()
}

func (c *Client) get(ctx context.Context, endpoint string, params Params, session Session) (Result, error) {
	target := endpoint
	if params.Len() > 0 {
		target += "?" + params.Encode()
	}
	return c.doURL(ctx, http.MethodGet, endpoint, target, nil, "", session)
}

func (c *Client) postForm(ctx context.Context, endpoint string, params Params, session Session) (Result, error) {
	return c.do(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()), mimeForm, session)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, session Session) (Result, error) {
	return c.doURL(ctx, method, endpoint, endpoint, body, contentType, session)
}

// doURL sends one request to target. endpoint is target without its query string and is the
// only form that reaches logs and errors.
func (c *Client) doURL(ctx context.Context, method, endpoint, target string, body io.Reader, contentType string, session Session) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = session.Headers()
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug("request", "method", method, "url", endpoint, "authenticated", session.Authenticated())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = endpoint
		}
		c.logger.Warn("request failed", "method", method, "url", endpoint, "error", err)
		return nil, transportError(method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteAPIError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read response: %v", err),
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("request rejected", "method", method, "url", endpoint, "status", resp.StatusCode)
		return nil, statusError(method, endpoint, resp.StatusCode, data)
	}

	result, err := decodeResult(data)
	if err != nil {
		return nil, &RemoteAPIError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Message:    err.Error(),
			Err:        err,
		}
	}

	c.logger.Debug("response", "method", method, "url", endpoint, "status", resp.StatusCode)
	return result, nil
}
