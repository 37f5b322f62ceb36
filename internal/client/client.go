// Package client — HTTP-клиент API кружков для страницы записи и CLI.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"activities-signup/internal/model"
)

// ErrUnexpectedStatus возвращается, если каталог отдан с кодом не 2xx.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Client ходит в API кружков. Таймаутов, кроме контекста вызывающего, нет.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New создаёт клиент для API по адресу baseURL, например http://localhost:8080.
// Если httpClient равен nil, используется http.DefaultClient.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// Activities загружает каталог (GET /activities) в порядке, заданном сервером.
// Код не 2xx и некорректный JSON считаются ошибкой.
func (c *Client) Activities(ctx context.Context) (model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/activities", nil), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get activities: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var catalog model.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return catalog, nil
}

// Signup записывает email на кружок
// (POST /activities/{activity}/signup?email=...). Тело разбирается при любом статусе;
// ok сообщает, был ли статус 2xx. Ошибка возвращается только при сбое транспорта
// или неразборчивом теле.
func (c *Client) Signup(ctx context.Context, activity, email string) (model.SignupResult, bool, error) {
	path := "/activities/" + url.PathEscape(activity) + "/signup"
	query := url.Values{"email": []string{email}}
	return c.send(ctx, http.MethodPost, c.endpoint(path, query))
}

// Remove отписывает email от кружка (DELETE /activities/{activity}/participants/{email}).
func (c *Client) Remove(ctx context.Context, activity, email string) (model.SignupResult, bool, error) {
	path := "/activities/" + url.PathEscape(activity) + "/participants/" + url.PathEscape(email)
	return c.send(ctx, http.MethodDelete, c.endpoint(path, nil))
}

func (c *Client) send(ctx context.Context, method, target string) (model.SignupResult, bool, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return model.SignupResult{}, false, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.SignupResult{}, false, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	var result model.SignupResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.SignupResult{}, false, fmt.Errorf("decode response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	return result, ok, nil
}

// endpoint собирает адрес из базового URL и уже экранированного пути.
func (c *Client) endpoint(escapedPath string, query url.Values) string {
	target := c.baseURL.String() + escapedPath
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}
