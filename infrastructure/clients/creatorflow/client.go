package creatorflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
	"creatorflow/infrastructure/logger"

	"golang.org/x/oauth2"
)

const maxResponseBytes = 8 << 20

// Client talks to the CreatorFlow REST backend. Every request is authorized
// with the bearer token pulled from the configured token source; when the
// source has no token the request never leaves the process.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, tokens oauth2.TokenSource) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: tokens,
				Base:   http.DefaultTransport,
			},
		},
	}
}

type calendarEnvelope struct {
	Calendar []model.ContentItem `json:"calendar"`
}

type contentEnvelope struct {
	Content model.ContentItem `json:"content"`
}

type profileEnvelope struct {
	Profile *model.BrandProfile `json:"profile"`
}

func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

func (c *Client) FetchCalendar(ctx context.Context) ([]model.ContentItem, error) {
	var env calendarEnvelope
	if err := c.do(ctx, http.MethodGet, "/content/calendar", nil, &env); err != nil {
		return nil, err
	}
	return env.Calendar, nil
}

func (c *Client) GenerateCalendar(ctx context.Context) ([]model.ContentItem, error) {
	var env calendarEnvelope
	if err := c.do(ctx, http.MethodPost, "/content/generate", nil, &env); err != nil {
		return nil, err
	}
	return env.Calendar, nil
}

func (c *Client) SaveContent(ctx context.Context, id int64, patch model.ContentPatch) (model.ContentItem, error) {
	var env contentEnvelope
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/content/%d", id), patch, &env)
	return env.Content, err
}

func (c *Client) ApplyAction(ctx context.Context, id int64, action model.ContentAction) (model.ContentItem, error) {
	if !action.Valid() {
		return model.ContentItem{}, model.ErrUnknownAction
	}
	var env contentEnvelope
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/content/%d/%s", id, action), nil, &env)
	return env.Content, err
}

func (c *Client) ConfirmPlan(ctx context.Context) ([]model.ImageSuggestion, error) {
	var res dto.ConfirmPlanResponse
	if err := c.do(ctx, http.MethodPost, "/content/confirm-plan", nil, &res); err != nil {
		return nil, err
	}
	return res.Suggestions, nil
}

func (c *Client) RatePost(ctx context.Context, req model.RateRequest) (model.Rating, error) {
	var rating model.Rating
	err := c.do(ctx, http.MethodPost, "/content/rate-post", req, &rating)
	return rating, err
}

func (c *Client) GetProfile(ctx context.Context) (*model.BrandProfile, error) {
	var env profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &env); err != nil {
		return nil, err
	}
	return env.Profile, nil
}

func (c *Client) UpsertProfile(ctx context.Context, profile model.BrandProfile) (*model.BrandProfile, error) {
	var env profileEnvelope
	if err := c.do(ctx, http.MethodPost, "/profile", profile, &env); err != nil {
		return nil, err
	}
	return env.Profile, nil
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, model.ErrNoSession) {
			return model.ErrNoSession
		}
		logger.GetLogger().WithField("error", err).WithField("path", path).Error("Error while calling CreatorFlow API")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return model.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		_ = json.Unmarshal(data, &apiErr)
		logger.GetLogger().
			WithField("status", resp.StatusCode).
			WithField("path", path).
			WithField("message", apiErr.Error).
			Warn("CreatorFlow API rejected request")
		return &model.ServiceError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("decode %s %s: %w", method, path, model.ErrEmptyResponse)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
