// Package github implements a minimal read-only client for the GitHub REST
// API, used to list the repositories the configured account can access.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/grovetools/mygit/errors"
	"github.com/grovetools/mygit/logging"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"

	// pageSize is the fixed per_page value; a page shorter than this ends
	// the listing.
	pageSize = 100
)

// Repo is one repository summary returned by the listing API.
type Repo struct {
	FullName    string `json:"full_name"`
	Private     bool   `json:"private"`
	Description string `json:"description"`
}

// Client lists repositories for a single account. The token is carried in an
// Authorization header on every request, never as a URL parameter.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a local server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client authenticating with the given token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logging.NewLogger("github"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepos fetches every repository the account owns or collaborates on,
// requesting fixed-size pages until a short or empty page. A failing page
// truncates the listing and surfaces the failure; partial results are not
// returned silently.
func (c *Client) ListRepos(ctx context.Context) ([]Repo, error) {
	var all []Repo

	for page := 1; ; page++ {
		repos, err := c.listPage(ctx, page)
		if err != nil {
			return nil, err
		}

		all = append(all, repos...)
		if len(repos) < pageSize {
			break
		}
	}

	c.log.WithField("count", len(all)).Debug("fetched repository list")
	return all, nil
}

func (c *Client) listPage(ctx context.Context, page int) ([]Repo, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(pageSize))
	query.Set("affiliation", "owner,collaborator")

	endpoint := fmt.Sprintf("%s/user/repos?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.RemoteListFailed(page, err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.RemoteListFailed(page, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, errors.RemoteUnauthorized()
	case http.StatusForbidden:
		return nil, errors.RemoteForbidden()
	default:
		return nil, errors.RemoteListFailed(page, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, errors.RemoteListFailed(page, err)
	}
	return repos, nil
}
