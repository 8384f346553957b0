package api

import (
	"context"
	"encoding/json"
)

// Catalog fetches the raw question corpus. The body is returned unparsed so
// the catalog loader can schema-check it before normalization.
func (c *Client) Catalog(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "fetch catalog", "/api/quizzes")
}

// QuickExam fetches the homepage quick-exam question list. Returned raw so
// the catalog package can seed and normalize it the same way it handles the
// locally stored copy.
func (c *Client) QuickExam(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "fetch quick exam", "/api/homepage-exam")
}

// Lessons fetches the study-lesson list.
func (c *Client) Lessons(ctx context.Context) ([]Lesson, error) {
	const op = "fetch lessons"
	body, err := c.get(ctx, op, "/api/lessons")
	if err != nil {
		return nil, err
	}
	var out struct {
		Lessons []Lesson `json:"lessons"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ErrFormat{Op: op, Err: err}
	}
	return out.Lessons, nil
}

// Plan fetches the signed-in viewer's subscription. A viewer with no
// subscription gets PlanName "no active plan" from the backend.
func (c *Client) Plan(ctx context.Context) (*PlanInfo, error) {
	const op = "fetch plan"
	body, err := c.get(ctx, op, "/api/me/plan")
	if err != nil {
		return nil, err
	}
	var plan PlanInfo
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, &ErrFormat{Op: op, Err: err}
	}
	return &plan, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	const op = "login"
	body, err := c.postJSON(ctx, op, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var out LoginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ErrFormat{Op: op, Err: err}
	}
	return &out, nil
}
