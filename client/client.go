// Package client is a typed wrapper over the course-catalog HTTP API. Each
// operation maps the server's documented status codes to typed results; any
// status outside the documented set surfaces as ErrUnexpectedStatus.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"coursecat/model"
	"coursecat/util/httpx"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Credentials carry the Basic-auth pair for operations that require it.
type Credentials struct {
	EmailAddress string
	Password     string
}

// APIError is the structured error body the server returns for expected
// failure statuses.
type APIError struct {
	Status  int      `json:"-"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type CourseInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

type Client struct {
	baseURL string
	hc      *http.Client
}

// New returns a client for the API rooted at baseURL (including the /api
// prefix, e.g. "http://localhost:5000/api").
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: httpx.Client()}
}

func (c *Client) api(ctx context.Context, method, path string, body any, creds *Credentials) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if creds != nil {
		req.SetBasicAuth(creds.EmailAddress, creds.Password)
	}
	return c.hc.Do(req)
}

func apiError(resp *http.Response) *APIError {
	e := &APIError{Status: resp.StatusCode}
	_ = json.NewDecoder(resp.Body).Decode(e)
	return e
}

func unexpected(resp *http.Response) error {
	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
}

// CreateUser signs up a new user. A nil error means 201 was returned.
func (c *Client) CreateUser(ctx context.Context, user model.SignUpReq) error {
	resp, err := c.api(ctx, http.MethodPost, "/users", user, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusInternalServerError:
		return apiError(resp)
	default:
		return unexpected(resp)
	}
}

// GetUser fetches the identity matching the credentials.
func (c *Client) GetUser(ctx context.Context, creds Credentials) (*model.User, error) {
	resp, err := c.api(ctx, http.MethodGet, "/users", nil, &creds)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		u := &model.User{}
		if err := json.NewDecoder(resp.Body).Decode(u); err != nil {
			return nil, err
		}
		return u, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, unexpected(resp)
	}
}

// GetCourses lists all courses, ordered by title. An empty catalog yields an
// empty slice; the server's informational message body is not an error.
func (c *Client) GetCourses(ctx context.Context) ([]model.Course, error) {
	resp, err := c.api(ctx, http.MethodGet, "/courses", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpected(resp)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}
	var out []model.Course
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	resp, err := c.api(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		course := &model.Course{}
		if err := json.NewDecoder(resp.Body).Decode(course); err != nil {
			return nil, err
		}
		return course, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, unexpected(resp)
	}
}

// CreateCourse creates a course owned by the credential holder and returns
// the Location header of the new record.
func (c *Client) CreateCourse(ctx context.Context, course CourseInput, creds Credentials) (string, error) {
	resp, err := c.api(ctx, http.MethodPost, "/courses", course, &creds)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return resp.Header.Get("Location"), nil
	case http.StatusBadRequest:
		return "", apiError(resp)
	case http.StatusUnauthorized:
		return "", ErrUnauthorized
	default:
		return "", unexpected(resp)
	}
}

func (c *Client) UpdateCourse(ctx context.Context, id int64, course CourseInput, creds Credentials) error {
	resp, err := c.api(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), course, &creds)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest, http.StatusForbidden:
		return apiError(resp)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return unexpected(resp)
	}
}

func (c *Client) DeleteCourse(ctx context.Context, id int64, creds Credentials) error {
	resp, err := c.api(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, &creds)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusForbidden:
		return apiError(resp)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return unexpected(resp)
	}
}
