package webclient

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

	"selmag/pkg/auth"
	"selmag/pkg/metrics"
)

const DefaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Service - имя вызывающего сервиса, Peer - вызываемого (для метрик и ошибок)
	Service string
	Peer    string
}

// Client - базовый JSON клиент для вызова соседних сервисов.
// Каждый запрос выполняется от имени явно переданного вызывающего.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenSource
	service    string
	peer       string
}

func New(cfg Config, tokens auth.TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:  tokens,
		service: cfg.Service,
		peer:    cfg.Peer,
	}
}

// Request описывает один вызов
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Do выполняет запрос и декодирует успешный ответ в out (если out != nil).
// 404 -> ErrNotFound, 400 -> *BadRequestError, прочие ошибки -> *StatusError.
func (c *Client) Do(ctx context.Context, caller auth.Principal, r Request, out any) error {
	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.tokens.Token(ctx, caller)
	if err != nil {
		return fmt.Errorf("failed to obtain token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang := acceptLanguage(ctx); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	timer := metrics.NewClientTimer(c.service, c.peer, r.Method)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		timer.Observe(0)
		return fmt.Errorf("failed to send request to %s: %w", c.peer, err)
	}
	defer resp.Body.Close()
	timer.Observe(resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return decodeBadRequest(resp.Body)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Peer: c.peer, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", c.peer, err)
	}
	return nil
}

func decodeBadRequest(r io.Reader) error {
	var payload struct {
		Errors []string `json:"errors"`
	}
	// тело без списка ошибок всё равно остаётся BadRequest
	_ = json.NewDecoder(r).Decode(&payload)
	return &BadRequestError{Errors: payload.Errors}
}

type acceptLanguageKey struct{}

// WithAcceptLanguage передаёт язык пользователя в исходящие запросы,
// чтобы сообщения об ошибках приходили локализованными
func WithAcceptLanguage(ctx context.Context, lang string) context.Context {
	if lang == "" {
		return ctx
	}
	return context.WithValue(ctx, acceptLanguageKey{}, lang)
}

func acceptLanguage(ctx context.Context) string {
	lang, _ := ctx.Value(acceptLanguageKey{}).(string)
	return lang
}
