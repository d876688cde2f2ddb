package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/claude/tb3/internal/models"
	"github.com/google/uuid"
)

// InsertMaxTest records a new max test. A missing ID is assigned here.
// Returns the stored test.
func (db *DB) InsertMaxTest(ctx context.Context, test models.OneRepMaxTest) (models.OneRepMaxTest, error) {
	if test.ID == "" {
		test.ID = uuid.NewString()
	}
	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return test, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertMaxTestTx(ctx, tx, test); err != nil {
		return test, err
	}
	if err := tx.Commit(); err != nil {
		return test, fmt.Errorf("committing max test: %w", err)
	}
	return test, nil
}

func insertMaxTestTx(ctx context.Context, tx *sql.Tx, t models.OneRepMaxTest) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO max_tests (id, date, lift_name, weight, reps, calculated_max, max_type, working_max, last_modified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Date, t.LiftName, t.Weight, t.Reps, t.CalculatedMax, t.MaxType, t.WorkingMax, t.LastModified)
	if err != nil {
		return fmt.Errorf("inserting max test: %w", err)
	}
	return nil
}

// ListMaxTests returns the full max test history, newest first.
func (db *DB) ListMaxTests(ctx context.Context) ([]models.OneRepMaxTest, error) {
	rows, err := db.SQL.QueryContext(ctx, `
		SELECT id, date, lift_name, weight, reps, calculated_max, max_type, working_max, last_modified
		FROM max_tests
		ORDER BY date DESC, last_modified DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying max tests: %w", err)
	}
	defer rows.Close()

	var tests []models.OneRepMaxTest
	for rows.Next() {
		var t models.OneRepMaxTest
		if err := rows.Scan(&t.ID, &t.Date, &t.LiftName, &t.Weight, &t.Reps,
			&t.CalculatedMax, &t.MaxType, &t.WorkingMax, &t.LastModified); err != nil {
			return nil, fmt.Errorf("scanning max test: %w", err)
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}
