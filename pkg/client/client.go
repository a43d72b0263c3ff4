package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

// DefaultTimeout bounds every request when New is given a zero timeout.
const DefaultTimeout = 30 * time.Second

// Client talks to the portfolio REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Collections ---

// List fetches every record of a collection.
func (c *Client) List(ctx context.Context, coll domain.Collection) ([]domain.Record, error) {
	records := []domain.Record{}
	if err := c.get(ctx, collectionPath(coll), &records); err != nil {
		return nil, fmt.Errorf("client.List %s: %w", coll, err)
	}
	return records, nil
}

// Create stores a new record and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, coll domain.Collection, p domain.Payload) (domain.Record, error) {
	var created domain.Record
	if err := c.post(ctx, collectionPath(coll), withoutID(p), &created); err != nil {
		return nil, fmt.Errorf("client.Create %s: %w", coll, err)
	}
	return created, nil
}

// Update replaces the editable fields of a record.
func (c *Client) Update(ctx context.Context, coll domain.Collection, id string, p domain.Payload) (domain.Record, error) {
	var updated domain.Record
	if err := c.doRequest(ctx, http.MethodPut, recordPath(coll, id), withoutID(p), &updated); err != nil {
		return nil, fmt.Errorf("client.Update %s: %w", coll, err)
	}
	return updated, nil
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, coll domain.Collection, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, recordPath(coll, id), nil, nil); err != nil {
		return fmt.Errorf("client.Delete %s: %w", coll, err)
	}
	return nil
}

// --- Contacts ---

// MarkContactRead flags a contact message as read.
func (c *Client) MarkContactRead(ctx context.Context, id string) (domain.Record, error) {
	var updated domain.Record
	if err := c.doRequest(ctx, http.MethodPut, recordPath(domain.Contacts, id)+"/read", nil, &updated); err != nil {
		return nil, fmt.Errorf("client.MarkContactRead: %w", err)
	}
	return updated, nil
}

// SubmitContact posts a message through the public contact endpoint.
func (c *Client) SubmitContact(ctx context.Context, req domain.ContactRequest) (*domain.Contact, error) {
	var created domain.Contact
	if err := c.post(ctx, collectionPath(domain.Contacts), req, &created); err != nil {
		return nil, fmt.Errorf("client.SubmitContact: %w", err)
	}
	return &created, nil
}

// --- Login ---

// LoginResult is the body of a /api/login response.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrLoginRejected is returned when the server answers 2xx without success.
var ErrLoginRejected = errors.New("login rejected")

// Login checks the shared admin password. On a rejected password the result
// carries the server's message alongside the error.
func (c *Client) Login(ctx context.Context, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.post(ctx, "/api/login", map[string]string{"password": password}, &res)
	if err != nil {
		if msg := ServerMessage(err); msg != "" {
			return &LoginResult{Message: msg}, fmt.Errorf("client.Login: %w", err)
		}
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	if !res.Success {
		return &res, fmt.Errorf("client.Login: %w", ErrLoginRejected)
	}
	return &res, nil
}

func collectionPath(coll domain.Collection) string {
	return "/api/" + url.PathEscape(string(coll))
}

func recordPath(coll domain.Collection, id string) string {
	return collectionPath(coll) + "/" + url.PathEscape(id)
}

// withoutID drops the id so a stale form value can never reach the store.
func withoutID(p domain.Payload) domain.Payload {
	if _, ok := p[domain.IDField]; !ok {
		return p
	}
	out := make(domain.Payload, len(p))
	for k, v := range p {
		if k != domain.IDField {
			out[k] = v
		}
	}
	return out
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		httpErr := &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode}
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			httpErr.Message = fmt.Sprintf("failed to read body: %v", readErr)
			return httpErr
		}
		var apiErr struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		switch {
		case json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "":
			httpErr.Message = apiErr.Message
		case apiErr.Error != "":
			httpErr.Message = apiErr.Error
		default:
			httpErr.Message = strings.TrimSpace(string(respBody))
		}
		return httpErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}
