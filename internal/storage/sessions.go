package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/claude/tb3/internal/models"
	"github.com/google/uuid"
)

// InsertSession records a completed or abandoned training session. A missing
// ID is assigned here. Returns the stored record.
func (db *DB) InsertSession(ctx context.Context, session models.SessionRecord) (models.SessionRecord, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return session, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertSessionTx(ctx, tx, session); err != nil {
		return session, err
	}
	if err := tx.Commit(); err != nil {
		return session, fmt.Errorf("committing session: %w", err)
	}
	return session, nil
}

func insertSessionTx(ctx context.Context, tx *sql.Tx, s models.SessionRecord) error {
	var exercises any
	if len(s.Exercises) > 0 {
		exercises = string(s.Exercises)
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, date, template_id, week, session_number, status, started_at, completed_at, notes, exercises, last_modified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Date, s.TemplateID, s.Week, s.SessionNumber, s.Status, s.StartedAt, s.CompletedAt, s.Notes, exercises, s.LastModified)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// ListSessions returns the full session history, newest first.
func (db *DB) ListSessions(ctx context.Context) ([]models.SessionRecord, error) {
	rows, err := db.SQL.QueryContext(ctx, `
		SELECT id, date, template_id, week, session_number, status, started_at, completed_at, notes, exercises, last_modified
		FROM sessions
		ORDER BY date DESC, last_modified DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.SessionRecord
	for rows.Next() {
		var s models.SessionRecord
		var exercises sql.NullString
		if err := rows.Scan(&s.ID, &s.Date, &s.TemplateID, &s.Week, &s.SessionNumber,
			&s.Status, &s.StartedAt, &s.CompletedAt, &s.Notes, &exercises, &s.LastModified); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if exercises.Valid {
			s.Exercises = json.RawMessage(exercises.String)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
