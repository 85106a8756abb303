package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Entry is one recorded LLM call.
type Entry struct {
	ID           string
	CreatedAt    time.Time
	Purpose      string // explain, history, derivation, analyze
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts filters Recent queries.
type QueryOpts struct {
	Limit   int    // max results (0 = default 20)
	Purpose string // filter by purpose ("" = all)
}

// PurposeUsage aggregates token usage per purpose.
type PurposeUsage struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// RequestLog records and queries LLM calls.
type RequestLog interface {
	// Append stores a new entry. A zero ID or CreatedAt is filled in.
	Append(ctx context.Context, e Entry) error

	// Recent returns the newest entries, newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Entry, error)

	// Get returns the entry whose ID starts with idPrefix, or nil if no
	// entry matches. Ambiguous prefixes are an error.
	Get(ctx context.Context, idPrefix string) (*Entry, error)

	// UsageByPurpose aggregates token usage grouped by purpose.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// UsageByModel aggregates token usage grouped by model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

type requestLog struct {
	db *sqlx.DB
}

// entryRow is the database shape of Entry. Timestamps are stored as unix
// seconds so the pure Go driver never has to guess a time format.
type entryRow struct {
	ID           string `db:"id"`
	CreatedAt    int64  `db:"created_at"`
	Purpose      string `db:"purpose"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
}

func (r entryRow) entry() Entry {
	return Entry{
		ID:           r.ID,
		CreatedAt:    time.Unix(r.CreatedAt, 0).UTC(),
		Purpose:      r.Purpose,
		Provider:     r.Provider,
		Model:        r.Model,
		InputTokens:  r.InputTokens,
		OutputTokens: r.OutputTokens,
		LatencyMs:    r.LatencyMs,
		Success:      r.Success,
		ErrorMessage: r.ErrorMessage,
		RequestBody:  r.RequestBody,
		ResponseBody: r.ResponseBody,
	}
}

func (l *requestLog) Append(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	row := entryRow{
		ID:           e.ID,
		CreatedAt:    e.CreatedAt.Unix(),
		Purpose:      e.Purpose,
		Provider:     e.Provider,
		Model:        e.Model,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}

	_, err := l.db.NamedExecContext(ctx, `
		INSERT INTO request_log (
			id, created_at, purpose, provider, model,
			input_tokens, output_tokens, latency_ms,
			success, error_message, request_body, response_body
		) VALUES (
			:id, :created_at, :purpose, :provider, :model,
			:input_tokens, :output_tokens, :latency_ms,
			:success, :error_message, :request_body, :response_body
		)`, row)
	if err != nil {
		return fmt.Errorf("append request log entry: %w", err)
	}
	return nil
}

func (l *requestLog) Recent(ctx context.Context, opts QueryOpts) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT * FROM request_log`
	args := []any{}
	if opts.Purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, opts.Purpose)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	var rows []entryRow
	if err := l.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.entry()
	}
	return entries, nil
}

func (l *requestLog) Get(ctx context.Context, idPrefix string) (*Entry, error) {
	var rows []entryRow
	err := l.db.SelectContext(ctx, &rows,
		`SELECT * FROM request_log WHERE id LIKE ? || '%' LIMIT 2`, idPrefix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request log entry: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		e := rows[0].entry()
		return &e, nil
	default:
		return nil, fmt.Errorf("ID prefix %q is ambiguous", idPrefix)
	}
}

func (l *requestLog) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var usage []PurposeUsage
	err := l.db.SelectContext(ctx, &usage, `
		SELECT purpose,
		       COUNT(*)                        AS calls,
		       COALESCE(SUM(input_tokens), 0)  AS input_tokens,
		       COALESCE(SUM(output_tokens), 0) AS output_tokens,
		       CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER) AS avg_latency_ms
		FROM request_log
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}
	return usage, nil
}

func (l *requestLog) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var usage []ModelUsage
	err := l.db.SelectContext(ctx, &usage, `
		SELECT model,
		       COUNT(*)                        AS calls,
		       COALESCE(SUM(input_tokens), 0)  AS input_tokens,
		       COALESCE(SUM(output_tokens), 0) AS output_tokens
		FROM request_log
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}
	return usage, nil
}
