package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
	"github.com/go-resty/resty/v2"
)

type httpDirectoryAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPDirectoryAdapter constructs an HTTP/REST implementation of
// [DirectoryAdapter]. It normalises and validates the base URL from
// cfg.Address, and configures the underlying HTTP client with the resolved
// base URL, the request timeout, and the bearer credential attached to
// every request.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPDirectoryAdapter(cfg config.ClientConfig, logger *logger.Logger) (DirectoryAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Authorization", "Bearer "+cfg.AuthToken)

	return &httpDirectoryAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListUsers implements [DirectoryAdapter].
func (h *httpDirectoryAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}

	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [DirectoryAdapter].
func (h *httpDirectoryAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request failed: %w", err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateUser implements [DirectoryAdapter].
func (h *httpDirectoryAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.request(ctx).
		SetBody(user).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request failed: %w", err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("id", created.ID).Str("location", resp.Header().Get("Location")).Msg("user created")

	return created, nil
}

// UpdateUser implements [DirectoryAdapter].
func (h *httpDirectoryAdapter) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User

	resp, err := h.request(ctx).
		SetBody(user).
		SetResult(&updated).
		Put(fmt.Sprintf("/users/%d", user.ID))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request failed: %w", err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [DirectoryAdapter].
func (h *httpDirectoryAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDirectoryAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}
