package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/matheqs/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// request-logging middleware. A nil request log disables logging.
func NewProvider(ctx context.Context, cfg Config, log store.RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so every
	// attempt (including retried ones) lands in the log.
	wrapped := base
	if log != nil {
		wrapped = WithLogging(wrapped, cfg.Provider, log)
	}
	wrapped = WithRetry(wrapped, cfg.Retry)

	return wrapped, nil
}
