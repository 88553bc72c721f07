package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultTimeout = 60 * time.Second

var (
	ErrDisabled  = errors.New("llm is disabled")
	ErrNoChoices = errors.New("no response message found")
	ErrNotText   = errors.New("response content is not text")
)

// StatusError 大模型接口返回非 2xx 状态
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm api returned status %d: %s", e.Code, e.Body)
}

type Service interface {
	// Chat 返回文本回复
	Chat(ctx context.Context, system, msg string) (string, error)
	// ChatContent 返回未做类型断言的 content 字段
	ChatContent(ctx context.Context, system, msg string) (any, error)
}

type disabledImpl struct{}

type deepSeekImpl struct {
	cfg    Config
	client *fasthttp.Client
}

func NewService(cfg Config) Service {
	if !cfg.Enable {
		return disabledImpl{}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	switch cfg.Platform {
	case PlatformDeepSeek:
		return &deepSeekImpl{
			cfg: cfg,
			client: &fasthttp.Client{
				ReadTimeout:  cfg.Timeout,
				WriteTimeout: cfg.Timeout,
			},
		}
	}

	z.Warn("llm platform is not supported", zap.String("platform", cfg.Platform))
	return disabledImpl{}
}

func (disabledImpl) Chat(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}

func (disabledImpl) ChatContent(context.Context, string, string) (any, error) {
	return nil, ErrDisabled
}

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Stream      bool      `json:"stream"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func (s *deepSeekImpl) Chat(ctx context.Context, system, msg string) (string, error) {
	content, err := s.ChatContent(ctx, system, msg)
	if err != nil {
		return "", err
	}

	text, ok := content.(string)
	if !ok {
		return "", ErrNotText
	}

	return text, nil
}

func (s *deepSeekImpl) ChatContent(ctx context.Context, system, msg string) (any, error) {
	if msg == "" {
		return nil, fmt.Errorf("message is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var messages []message
	if system != "" {
		messages = append(messages, message{Role: "system", Content: system})
	}
	messages = append(messages, message{Role: "user", Content: msg})

	body, err := json.Marshal(chatRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(strings.TrimRight(s.cfg.BaseUrl, "/") + "/chat/completions")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)
	req.SetBody(body)

	deadline := time.Now().Add(s.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	err = s.client.DoDeadline(req, resp, deadline)
	if err != nil {
		z.Error("llm request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to send chat request: %w", err)
	}

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, &StatusError{Code: code, Body: string(resp.Body())}
	}

	var chatResp chatResponse
	err = json.Unmarshal(resp.Body(), &chatResp)
	if err != nil {
		z.Error("json unmarshal fail", zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal chat response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		z.Warn("no response message found")
		return nil, ErrNoChoices
	}

	return chatResp.Choices[0].Message.Content, nil
}
