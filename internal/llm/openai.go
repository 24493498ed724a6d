// internal/llm/openai.go
package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go_5_tadoku_read/internal/config"
	"go_5_tadoku_read/internal/model"
)

// openAIClient は OpenAI互換のChat Completions / Images APIを直接叩く実装です。
// SDKは使わず、必要な2エンドポイントのみをラップします。
type openAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	imageModel string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOpenAIClient(cfg *config.Config, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &openAIClient{
		baseURL:    strings.TrimRight(cfg.OpenAI.BaseURL, "/"),
		apiKey:     cfg.OpenAI.APIKey,
		model:      cfg.OpenAI.Model,
		imageModel: cfg.OpenAI.ImageModel,
		// 生成APIは遅いことがあるため、1呼び出しごとに上限時間を設ける
		httpClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
		logger:     logger,
	}
}

// --- Chat Completions ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (c *openAIClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	return c.chat(ctx, system, user, nil)
}

func (c *openAIClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return c.chat(ctx, system, user, &responseFormat{Type: "json_object"})
}

func (c *openAIClient) chat(ctx context.Context, system, user string, format *responseFormat) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: format,
	}

	var resp chatResponse
	if err := c.post(ctx, "/v1/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		c.logger.Error("OpenAI chat API returned error", "type", resp.Error.Type, "message", resp.Error.Message)
		return "", fmt.Errorf("openai chat: %s: %w", resp.Error.Message, model.ErrExternal)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai chat: empty response: %w", model.ErrExternal)
	}
	return resp.Choices[0].Message.Content, nil
}

// --- Images ---

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

func (c *openAIClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	reqBody := imageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	var resp imageResponse
	if err := c.post(ctx, "/v1/images/generations", reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		c.logger.Error("OpenAI image API returned error", "type", resp.Error.Type, "message", resp.Error.Message)
		return nil, fmt.Errorf("openai image: %s: %w", resp.Error.Message, model.ErrExternal)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("openai image: empty response: %w", model.ErrExternal)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai image: decode b64_json: %w", model.ErrExternal)
	}
	return data, nil
}

// post はJSONリクエストを送信し、レスポンスをデコードする共通ヘルパーです
func (c *openAIClient) post(ctx context.Context, path string, reqBody, respBody interface{}) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		// タイムアウトもここに含まれる。呼び出し側はそのステップの失敗として扱う。
		c.logger.Error("LLM request failed", "path", path, "error", err)
		return fmt.Errorf("llm: request failed: %v: %w", err, model.ErrExternal)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("llm: read response: %w", model.ErrExternal)
	}

	c.logger.Debug("LLM request completed",
		"path", path,
		"status", res.StatusCode,
		"latency_ms", float64(time.Since(start).Nanoseconds())/1e6,
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Error("LLM request returned non-2xx status", "path", path, "status", res.StatusCode, "body", truncateForLog(string(body)))
		// エラーボディにJSONが入っていれば呼び出し側で詳細を拾えるようにデコードを試みる
		_ = json.Unmarshal(body, respBody)
		return fmt.Errorf("llm: status %d: %w", res.StatusCode, model.ErrExternal)
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("llm: decode response: %w", model.ErrExternal)
	}
	return nil
}

func truncateForLog(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
