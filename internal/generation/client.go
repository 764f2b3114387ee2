// Package generation calls the hosted chat-completion endpoint that turns a
// prompt into an HTML document. Calls are single-shot: no retries, no caching.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vibestudio/internal/middleware"
	"vibestudio/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "deepseek/deepseek-chat-v3-0324:free"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000

	imageAnalysisMaxTokens = 500
)

// Config configures the upstream endpoint.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
	// Timeout bounds a whole call; zero leaves it to the transport.
	Timeout time.Duration
	// HTTPClient overrides the instrumented default client.
	HTTPClient *http.Client
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return c
}

// Request is one generation call.
type Request struct {
	Prompt      string
	Category    string
	ContentType string
}

// SystemMessage is the instruction sent ahead of every prompt.
func SystemMessage(category, contentType string) string {
	return fmt.Sprintf("You are an AI assistant specialized in generating %s content. Your task is to create %s based on the user's requirements.", category, contentType)
}

// Client talks to an OpenAI-compatible chat completion API.
type Client struct {
	api openai.Client
	cfg Config
}

// NewClient builds a client with retries disabled.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		}
	}

	api := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &Client{api: api, cfg: cfg}
}

// Do performs the call and returns a tagged Result. It never panics on odd payloads.
func (c *Client) Do(ctx context.Context, req Request) Result {
	ctx, span := observability.StartSpan(ctx, "generation", "complete",
		attribute.String("generation.category", req.Category),
		attribute.String("generation.content_type", req.ContentType),
		attribute.String("generation.model", c.cfg.Model),
	)

	start := time.Now()
	result := c.complete(ctx, c.cfg.MaxTokens,
		openai.SystemMessage(SystemMessage(req.Category, req.ContentType)),
		openai.UserMessage(req.Prompt),
	)

	observability.GenerationLatency.WithLabelValues(req.Category).Observe(time.Since(start).Seconds())
	observability.GenerationRequests.WithLabelValues(req.Category, result.Outcome()).Inc()

	if result.Err != nil {
		middleware.Logger.WarnContext(ctx, "content generation failed",
			slog.String("category", req.Category),
			slog.String("content_type", req.ContentType),
			slog.String("kind", string(result.Err.Kind)),
			slog.Int("status", result.Err.StatusCode),
			slog.String("reason", result.Err.Reason),
		)
		observability.EndGenerationSpan(span, result.Outcome(), result.Err)
		return result
	}

	span.SetAttributes(attribute.Int("generation.content_length", len(result.Content)))
	observability.EndGenerationSpan(span, result.Outcome(), nil)
	return result
}

// Generate returns the generated text or an error wrapping ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, promptText, category, contentType string) (string, error) {
	res := c.Do(ctx, Request{Prompt: promptText, Category: category, ContentType: contentType})
	if res.Err != nil {
		return "", res.Err
	}
	return res.Content, nil
}

// DescribeImage asks the model to describe the image at imageURL for an industry.
func (c *Client) DescribeImage(ctx context.Context, imageURL, industry string) (string, error) {
	ctx, span := observability.StartSpan(ctx, "generation", "describe_image",
		attribute.String("generation.industry", industry),
	)

	msg := fmt.Sprintf("Analyze this image for the %s industry and describe what you see. The image is at: %s", industry, imageURL)
	res := c.complete(ctx, imageAnalysisMaxTokens, openai.UserMessage(msg))
	observability.GenerationRequests.WithLabelValues("image-analysis", res.Outcome()).Inc()

	if res.Err != nil {
		observability.EndGenerationSpan(span, res.Outcome(), res.Err)
		return "", res.Err
	}
	observability.EndGenerationSpan(span, res.Outcome(), nil)
	return res.Content, nil
}

func (c *Client) complete(ctx context.Context, maxTokens int64, messages ...openai.ChatCompletionMessageParamUnion) Result {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Messages:    messages,
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return Failed(classify(err))
	}
	if resp == nil || len(resp.Choices) == 0 {
		return Failed(&Error{Kind: KindMalformed, Reason: "response has no choices"})
	}
	msg := resp.Choices[0].Message
	if !msg.JSON.Content.Valid() {
		return Failed(&Error{Kind: KindMalformed, Reason: "response has no message content"})
	}
	return Succeeded(msg.Content)
}

func classify(err error) *Error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &Error{
			Kind:       KindStatus,
			StatusCode: apiErr.StatusCode,
			Reason:     http.StatusText(apiErr.StatusCode),
			Err:        err,
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindNetwork, Reason: "upstream unreachable", Err: err}
	}

	return &Error{Kind: KindMalformed, Reason: "unreadable response body", Err: err}
}
