// Package client provides a typed Go client for the poem service REST API.
// It keeps the session cookie across calls, so Login followed by Me behaves
// exactly like a browser session.
package client

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/verseworks/poem-service/internal/model"
)

// APIError is the decoded error envelope of a failed request. Kind carries
// the stable failure name the server responds with (not_found,
// wrong_password, token_expired, ...).
type APIError struct {
	Kind    string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Code, e.Kind, e.Message)
}

// Client talks to a running poem service.
type Client struct {
	http *resty.Client
}

// New constructs a Client for the given base URL.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	c := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

func (c *Client) request(ctx context.Context, out interface{}) *resty.Request {
	req := c.http.R().SetContext(ctx).SetError(&APIError{})
	if out != nil {
		req.SetResult(out)
	}
	return req
}

func asErr(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Kind != "" {
			return apiErr
		}
		return fmt.Errorf("unexpected status %s", resp.Status())
	}
	return nil
}

// RecommendedPoems fetches the per-category digest.
func (c *Client) RecommendedPoems(ctx context.Context) ([]model.DigestEntry, error) {
	var out []model.DigestEntry
	resp, err := c.request(ctx, &out).Get("/recommended-poems")
	return out, asErr(resp, err)
}

// Poem fetches the fully joined poem view.
func (c *Client) Poem(ctx context.Context, id int) (*model.PoemDetail, error) {
	var out model.PoemDetail
	resp, err := c.request(ctx, &out).Get(fmt.Sprintf("/poems/%d", id))
	if err := asErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoemPreview fetches the half-content preview of a poem.
func (c *Client) PoemPreview(ctx context.Context, id int) (*model.PoemDetail, error) {
	var out model.PoemDetail
	resp, err := c.request(ctx, &out).Get(fmt.Sprintf("/poem-preview/%d", id))
	if err := asErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	resp, err := c.request(ctx, &out).Get("/categories")
	return out, asErr(resp, err)
}

// ThematicView fetches every poem of the category named by slug.
func (c *Client) ThematicView(ctx context.Context, slug string) (*model.ThematicView, error) {
	var out model.ThematicView
	resp, err := c.request(ctx, &out).Get("/categories/" + slug)
	if err := asErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Authors lists all authors.
func (c *Client) Authors(ctx context.Context) ([]model.Author, error) {
	var out []model.Author
	resp, err := c.request(ctx, &out).Get("/authors")
	return out, asErr(resp, err)
}

// CreatePoem appends a poem to the catalog.
func (c *Client) CreatePoem(ctx context.Context, title, content string, authorID, categoryID int) (*model.Poem, error) {
	var out model.Poem
	resp, err := c.request(ctx, &out).
		SetBody(map[string]interface{}{
			"title":      title,
			"content":    content,
			"authorId":   authorID,
			"categoryId": categoryID,
		}).
		Post("/new-poem")
	if err := asErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAuthor appends an author.
func (c *Client) CreateAuthor(ctx context.Context, name string) (*model.Author, error) {
	var out model.Author
	resp, err := c.request(ctx, &out).
		SetBody(map[string]string{"name": name}).
		Post("/new-author")
	if err := asErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory appends a category; the server derives the slug.
func (c *Client) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	var out model.Category
	resp, err := c.request(ctx, &out).
		SetBody(map[string]string{"name": name}).
		Post("/new-category")
	if err := asErr(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the session cookie on the client.
func (c *Client) Login(ctx context.Context, userName, password string) (string, error) {
	var out string
	resp, err := c.request(ctx, &out).
		SetBody(map[string]string{"userName": userName, "password": password}).
		Post("/login")
	return out, asErr(resp, err)
}

// Register creates an account and stores the session cookie on the client.
func (c *Client) Register(ctx context.Context, userName, password string) (string, error) {
	var out string
	resp, err := c.request(ctx, &out).
		SetBody(map[string]string{"userName": userName, "password": password}).
		Post("/registration")
	return out, asErr(resp, err)
}

// Me reports the userName of the current session.
func (c *Client) Me(ctx context.Context) (string, error) {
	var out string
	resp, err := c.request(ctx, &out).Get("/me")
	return out, asErr(resp, err)
}

// Logout discards the session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.request(ctx, nil).Get("/logout")
	return asErr(resp, err)
}
