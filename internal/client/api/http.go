package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/logging"
	"github.com/google/uuid"
)

// TokenProvider supplies the bearer token echoed on every protected call.
// The session store satisfies this.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// HTTPClient is the net/http implementation of Client against a fixed
// backend origin. All writes send JSON and carry an idempotency key.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	log     logging.Logger
}

// newIdempotencyKey is a test seam for the per-write idempotency key.
var newIdempotencyKey = func() string { return uuid.NewString() }

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenProvider, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do performs one request. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded success payload. authed attaches the bearer
// token from the TokenProvider.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Idempotency-Key", newIdempotencyKey())
	}
	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the backend's error string out of a failure payload.
func errorMessage(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

type accountBody struct {
	Account accountCredentials `json:"account"`
}

type accountCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	body := accountBody{Account: accountCredentials{Email: email, Password: password}}
	return c.do(ctx, http.MethodPost, "/accounts", nil, body, nil, false)
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	body := accountBody{Account: accountCredentials{Email: email, Password: password}}
	var result SignInResult
	if err := c.do(ctx, http.MethodPost, "/accounts/sign_in", nil, body, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/accounts/sign_out", nil, nil, nil, true)
}

func (c *HTTPClient) Account(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	path := "/api/accounts/" + url.PathEscape(accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &account, true); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *HTTPClient) AccountUser(ctx context.Context, accountID string) (*models.User, error) {
	// The backend answers 200 with {"error": ...} when the account owns
	// no profile, so absence has to be detected in the body.
	var payload struct {
		Error string `json:"error"`
		models.User
	}
	path := "/api/accounts/" + url.PathEscape(accountID) + "/users"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &payload, true); err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, ErrNoUser
	}
	user := payload.User
	return &user, nil
}

type userBody struct {
	User UserCore `json:"user"`
}

func (c *HTTPClient) CreateUser(ctx context.Context, core UserCore) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, userBody{User: core}, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) User(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	path := "/api/users/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, userID string, core UserCore) error {
	path := "/api/users/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodPut, path, nil, userBody{User: core}, nil, true)
}

func (c *HTTPClient) SetUserLocation(ctx context.Context, userID, location string) error {
	path := "/api/users/" + url.PathEscape(userID) + "/locations"
	body := map[string]string{"location": location}
	return c.do(ctx, http.MethodPut, path, nil, body, nil, true)
}

func (c *HTTPClient) SetUserGenres(ctx context.Context, userID string, genres []string) error {
	path := "/api/users/" + url.PathEscape(userID) + "/genres"
	body := map[string][]string{"genres": genres}
	return c.do(ctx, http.MethodPut, path, nil, body, nil, true)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, userID string) error {
	path := "/api/users/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

func (c *HTTPClient) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/", nil, nil, &events, true); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *HTTPClient) EventsByLocation(ctx context.Context, location string, filter EventFilter) ([]models.Event, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	for _, genre := range filter.Genres {
		query.Add("genres[]", genre)
	}

	var events []models.Event
	path := "/api/events/location/" + url.PathEscape(location)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &events, true); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *HTTPClient) UserEvents(ctx context.Context, userID string) ([]models.Event, error) {
	var events []models.Event
	path := "/api/users/" + url.PathEscape(userID) + "/events"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &events, true); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, userID string, event NewEvent) error {
	path := "/api/users/" + url.PathEscape(userID) + "/events"
	body := map[string]NewEvent{"event": event}
	return c.do(ctx, http.MethodPost, path, nil, body, nil, true)
}

func (c *HTTPClient) Locations(ctx context.Context) ([]string, error) {
	return c.referenceSet(ctx, "/locations")
}

func (c *HTTPClient) Genres(ctx context.Context) ([]string, error) {
	return c.referenceSet(ctx, "/genres")
}

func (c *HTTPClient) Types(ctx context.Context) ([]string, error) {
	return c.referenceSet(ctx, "/types")
}

// referenceSet fetches one of the wholesale server enumerations. These are
// public endpoints; no bearer token is attached.
func (c *HTTPClient) referenceSet(ctx context.Context, path string) ([]string, error) {
	var values []string
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &values, false); err != nil {
		return nil, err
	}
	return values, nil
}
