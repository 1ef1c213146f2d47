package cmsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"prompt-references/cmd/internal/httpclient"
	"prompt-references/cmd/internal/logger"
)

// Client는 headless CMS(Payload) REST API 를 호출하는 얇은 클라이언트다.
//
// - 프롬프트/카테고리 데이터 조회만 담당하고, 가공은 references 패키지가 맡는다.
// - 모든 요청에 "Authorization: users API-Key <key>" 헤더를 붙인다.
//
// baseURL 예: https://cms.example.com
type Client struct {
	base   *httpclient.BaseClient
	apiKey string
}

const (
	categoriesPath = "/api/prompt-categories"
	promptsPath    = "/api/prompts"
)

// Option 은 Client 생성 옵션이다.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
}

// WithHTTPClient 는 기본 로깅 클라이언트 대신 주어진 http.Client 를 사용한다.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		base:   httpclient.NewBaseClientWithClient(o.httpClient, baseURL),
		apiKey: apiKey,
	}
}

// StatusError 는 CMS 가 2xx 가 아닌 상태로 응답했을 때 반환된다.
type StatusError struct {
	Endpoint   string
	StatusCode int
	StatusText string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("CMS API error: %s", e.StatusText)
}

// ListCategories는 GET /api/prompt-categories 를 한 번 호출한다.
// limit 을 충분히 크게 주어 사실상 전체를 한 번에 가져온다.
func (c *Client) ListCategories(ctx context.Context, q CategoryQuery) (ListResponse[PromptCategory], error) {
	return getJSON[ListResponse[PromptCategory]](ctx, c, categoriesPath, q.Params())
}

// ListPrompts는 GET /api/prompts 의 한 페이지를 조회한다.
func (c *Client) ListPrompts(ctx context.Context, q PromptQuery) (ListResponse[Prompt], error) {
	return getJSON[ListResponse[Prompt]](ctx, c, promptsPath, q.Params())
}

// FetchAllPrompts는 1페이지부터 hasNextPage 가 false 가 될 때까지 순차적으로 조회해
// 모든 프롬프트를 응답 순서대로 모은다. 한 페이지라도 실패하면 즉시 에러를 반환한다.
func (c *Client) FetchAllPrompts(ctx context.Context, q PromptQuery) ([]Prompt, error) {
	var all []Prompt
	page := 1
	for {
		q.Page = page
		resp, err := c.ListPrompts(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("fetch prompts page %d: %w", page, err)
		}
		all = append(all, resp.Docs...)

		logger.Log.Infof("Fetched page %d/%d (%d/%d prompts)", page, resp.TotalPages, len(all), resp.TotalDocs)

		if !resp.HasNextPage {
			break
		}
		page++
	}
	return all, nil
}

func getJSON[T any](ctx context.Context, c *Client, relPath string, params Params) (T, error) {
	var out T

	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, params.Encode(), nil)
	if err != nil {
		return out, err
	}
	req.Header.Set("Authorization", "users API-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		statusText := http.StatusText(resp.StatusCode)
		if statusText == "" {
			statusText = resp.Status
		}
		return out, &StatusError{
			Endpoint:   relPath,
			StatusCode: resp.StatusCode,
			StatusText: statusText,
			Body:       string(b),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", relPath, err)
	}
	return out, nil
}
