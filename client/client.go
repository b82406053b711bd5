// Package client consumes the showcase API the way the profile page
// does: list, search, expand and delete the caller's projects. Identity
// is carried by an explicit Session passed to each call, with a refresh
// function instead of an ambient auth-state listener.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CategoryPair is one resolved category selection of a project.
type CategoryPair struct {
	CategoryName string `json:"categoryName"`
	OptionName   string `json:"optionName"`
}

// TeamMember is one credited person on a project.
type TeamMember struct {
	Name     string `json:"name"`
	Linkedin string `json:"linkedin"`
}

// Project is the profile-list shape served by the backend.
type Project struct {
	ProjectID          uint           `json:"projectId"`
	ProjectName        string         `json:"projectName"`
	ProjectDescription string         `json:"projectDescription"`
	ProjectLink        string         `json:"projectLink"`
	CustomDomain       string         `json:"customDomain"`
	CreatedAt          time.Time      `json:"createdAt"`
	Members            []TeamMember   `json:"members"`
	Categories         []CategoryPair `json:"categories"`
}

// TokenSource mints a fresh bearer token for the current user.
type TokenSource func(ctx context.Context) (string, error)

// Session holds one user's credential. It is obtained once and passed
// to every data-fetch call; Refresh re-mints the token explicitly.
type Session struct {
	token  string
	source TokenSource
}

func NewSession(ctx context.Context, source TokenSource) (*Session, error) {
	s := &Session{source: source}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Token() string { return s.token }

func (s *Session) Refresh(ctx context.Context) error {
	token, err := s.source(ctx)
	if err != nil {
		return fmt.Errorf("refreshing session token: %w", err)
	}
	s.token = token
	return nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func New(baseURL string, opts ...func(*Client)) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log.With().Str("component", "showcaseClient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger zerolog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}

// ProfileProjects fetches the session user's projects.
func (c *Client) ProfileProjects(ctx context.Context, session *Session) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, session, http.MethodGet, "/api/profile-projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProfileRole fetches the session user's role attribute. A nil role
// means no elevated role is recorded.
func (c *Client) ProfileRole(ctx context.Context, session *Session) (*string, error) {
	var body struct {
		Role *string `json:"role"`
	}
	if err := c.do(ctx, session, http.MethodGet, "/api/profile-role", nil, &body); err != nil {
		return nil, err
	}
	return body.Role, nil
}

// DeleteProject asks the backend to delete one project.
func (c *Client) DeleteProject(ctx context.Context, session *Session, projectID uint) error {
	payload := map[string]uint{"projectId": projectID}
	return c.do(ctx, session, http.MethodDelete, "/api/projects", payload, nil)
}

func (c *Client) do(ctx context.Context, session *Session, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+session.Token())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg(apiErr.Error)
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
