package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Reveal event kinds.
const (
	EventRevealed   = "revealed"
	EventUnrevealed = "unrevealed"
	EventReset      = "reset"
)

// RevealEventData is one study action to append to the event log.
type RevealEventData struct {
	Kind        string
	QuestionID  int // zero for EventReset
	OptionIndex int // meaningful for EventRevealed only
	SessionID   string
}

// RevealEvent is a logged study action read back from the store.
type RevealEvent struct {
	ID          int64
	Kind        string
	QuestionID  int
	OptionIndex int
	SessionID   string
	CreatedAt   time.Time
}

// EventRepo provides append and query access to the study event log. The log
// is advisory history for the stats command; authoritative reveal state
// lives in a slot.
type EventRepo interface {
	// AppendReveal records a study action.
	AppendReveal(ctx context.Context, data RevealEventData) error

	// RecentReveals returns up to limit events, newest first.
	RecentReveals(ctx context.Context, limit int) ([]RevealEvent, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendReveal(ctx context.Context, data RevealEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reveal_events (kind, question_id, option_index, session_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		data.Kind, data.QuestionID, data.OptionIndex, data.SessionID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append %s event: %w", data.Kind, err)
	}
	return nil
}

func (r *eventRepo) RecentReveals(ctx context.Context, limit int) ([]RevealEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, question_id, option_index, session_id, created_at
		 FROM reveal_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []RevealEvent
	for rows.Next() {
		var ev RevealEvent
		var created int64
		if err := rows.Scan(&ev.ID, &ev.Kind, &ev.QuestionID, &ev.OptionIndex, &ev.SessionID, &created); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.CreatedAt = time.Unix(created, 0)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
