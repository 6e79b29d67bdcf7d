// Package suggest asks Claude for a short fix suggestion for an enhanced
// compile diagnostic. It makes a single one-shot request (no tool loop) and
// caches results on disk keyed by diagnostic content.
package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/handleui/refract/diag"
)

const (
	// DefaultTimeout bounds a single suggestion request.
	DefaultTimeout = 60 * time.Second

	// DefaultModel is the model used for suggestions.
	DefaultModel = anthropic.ModelClaudeSonnet4_5

	// DefaultMaxTokens is the response token cap; suggestions are short.
	DefaultMaxTokens = 1024
)

// Config configures a Suggester.
type Config struct {
	Model     anthropic.Model
	MaxTokens int64
	Timeout   time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		Timeout:   DefaultTimeout,
	}
}

// Suggester produces fix suggestions for diagnostics.
type Suggester struct {
	client anthropic.Client
	config Config
	cache  *Cache
}

// New creates a Suggester. cache may be nil to disable caching.
func New(client anthropic.Client, config Config, cache *Cache) *Suggester {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Suggester{client: client, config: config, cache: cache}
}

// Suggest returns a short fix suggestion for the diagnostic. The cache is
// consulted first; a cache miss makes one Messages call and stores the
// result. Cache write failures are not fatal - the suggestion is still
// returned.
func (s *Suggester) Suggest(ctx context.Context, d diag.Diagnostic, source string) (string, error) {
	key := CacheKey(d, source)
	if s.cache != nil {
		if text, ok := s.cache.Get(key); ok {
			return text, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	response, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(d, source))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("suggestion request failed: %w", err)
	}

	text := extractTextContent(response)
	if text == "" {
		return "", fmt.Errorf("suggestion response contained no text")
	}

	if s.cache != nil {
		_ = s.cache.Put(key, text)
	}
	return text, nil
}

// extractTextContent returns the first text block of a response.
func extractTextContent(response *anthropic.Message) string {
	for i := range response.Content {
		if text, ok := response.Content[i].AsAny().(anthropic.TextBlock); ok {
			return text.Text
		}
	}
	return ""
}
