package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/llm"
	"github.com/abhisek/matheqs/internal/render"
	"github.com/abhisek/matheqs/internal/store"
	"github.com/spf13/cobra"
)

// session bundles everything a command needs to talk to a model and
// print results. Close releases the request-log database.
type session struct {
	explainer *equations.Explainer
	term      *render.Terminal
	// timeout derives a deadline wide enough for the given number of
	// sequential LLM calls.
	timeout func(parent context.Context, calls int) (context.Context, context.CancelFunc)
	st      *store.Store
}

func (s *session) Close() {
	if s.st != nil {
		s.st.Close()
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	// The request log is best effort: a broken database must not stop
	// an explanation from being generated.
	var st *store.Store
	var log store.RequestLog
	if path, err := resolveDBPath(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "warning: request log disabled: %v\n", err)
	} else if st, err = store.Open(path); err != nil {
		fmt.Fprintf(os.Stderr, "warning: request log disabled: %v\n", err)
		st = nil
	} else {
		log = st.RequestLog()
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, log)
	if err != nil {
		if st != nil {
			st.Close()
		}
		return nil, err
	}

	return &session{
		explainer: equations.NewExplainer(provider, equations.DefaultConfig()),
		term:      render.NewTerminal(os.Stdout),
		timeout: func(parent context.Context, calls int) (context.Context, context.CancelFunc) {
			return context.WithTimeout(parent, time.Duration(calls)*cfg.Timeout)
		},
		st: st,
	}, nil
}

// loadLLMConfig reads MATHEQS_* env vars and, when no provider is
// configured explicitly, falls back to probing the well-known API key
// variables.
func loadLLMConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	err := cfg.Validate()
	if err != nil && os.Getenv("MATHEQS_LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg, err = discovered, nil
		}
	}
	return cfg, err
}

// openStore opens the request log for commands that only read or
// manage the database and never call a provider.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
