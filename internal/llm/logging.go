package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/matheqs/internal/store"
)

// LoggingProvider is a decorator that records every LLM call in the local
// request log.
type LoggingProvider struct {
	inner Provider
	name  string // provider name: gemini, anthropic, openai, openrouter, mock
	log   store.RequestLog
}

// WithLogging wraps a Provider with request logging. name is the provider
// name stored alongside the model ID in each entry.
func WithLogging(p Provider, name string, log store.RequestLog) Provider {
	return &LoggingProvider{inner: p, name: name, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	entry := store.Entry{
		Purpose:     PurposeFrom(ctx),
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.Model = resp.Model
		entry.ResponseBody = string(resp.Content)
	}

	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// Best effort: a logging failure must never fail the user's request.
	if logErr := l.log.Append(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record request log entry: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
