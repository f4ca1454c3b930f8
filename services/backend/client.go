package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	preferenceRepo "nepwork/database/repository/preference"
	"nepwork/models"
	"nepwork/utils"

	"go.uber.org/zap"
)

// maxErrorBody bounds how much of an error response is read for its detail.
const maxErrorBody = 64 << 10

// Options configures a Client.
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	DevEmailAuth bool
	Tokens       preferenceRepo.PreferenceStore // optional persisted bearer tokens
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// Client talks to the NepWork REST backend on behalf of one session per call.
type Client struct {
	baseURL      string
	http         *http.Client
	devEmailAuth bool
	tokens       preferenceRepo.PreferenceStore
	logger       *zap.Logger
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		http:         httpClient,
		devEmailAuth: opts.DevEmailAuth,
		tokens:       opts.Tokens,
		logger:       logger,
	}
}

func (c *Client) getJSON(ctx context.Context, sess *models.Session, path string, out any) error {
	return c.do(ctx, sess, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, sess *models.Session, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
	}
	return c.do(ctx, sess, method, path, bytes.NewReader(body), "application/json", out)
}

func (c *Client) do(ctx context.Context, sess *models.Session, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.authorize(ctx, req, sess)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Detail = payload.Detail
			if apiErr.Detail == "" {
				apiErr.Detail = payload.Error
			}
		}
		if apiErr.Unauthorized() {
			c.clearStaleToken(ctx, sess)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// authorize attaches the bearer token. Tokenless identities only come from
// the development email header; those fall back to the identity's persisted
// token and then to the header itself.
func (c *Client) authorize(ctx context.Context, req *http.Request, sess *models.Session) {
	if sess == nil {
		return
	}
	token := sess.Token
	if token == "" && c.devEmailAuth && c.tokens != nil && sess.Identity() != "" {
		stored, ok, err := c.tokens.GetToken(ctx, sess.Identity())
		if err != nil {
			c.logger.Warn("failed to read persisted token", zap.String("email", sess.Email), zap.Error(err))
		} else if ok {
			token = stored
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return
	}
	if c.devEmailAuth && sess.Email != "" {
		req.Header.Set(utils.DevEmailHeader, sess.Email)
	}
}

func (c *Client) clearStaleToken(ctx context.Context, sess *models.Session) {
	if c.tokens == nil || sess.Identity() == "" {
		return
	}
	// Only a verified token, or the stored one sent in its place, is stale.
	if !sess.Verified && (sess.Token != "" || !c.devEmailAuth) {
		return
	}
	if err := c.tokens.ClearToken(ctx, sess.Identity()); err != nil {
		c.logger.Warn("failed to clear stale token", zap.String("email", sess.Email), zap.Error(err))
		return
	}
	c.logger.Info("cleared stale token after 401", zap.String("email", sess.Email))
}
