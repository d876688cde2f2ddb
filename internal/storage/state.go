package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/tb3/internal/models"
)

// LoadAppData assembles the full application state from the database. A
// database with no state row yet yields the default state.
func (db *DB) LoadAppData(ctx context.Context) (*models.AppData, error) {
	var (
		schemaVersion int
		profileJSON   string
		barbellJSON   string
		beltJSON      string
		programJSON   sql.NullString
	)
	err := db.SQL.QueryRowContext(ctx, `
		SELECT schema_version, profile, barbell_inventory, belt_inventory, active_program
		FROM app_state WHERE id = 1
	`).Scan(&schemaVersion, &profileJSON, &barbellJSON, &beltJSON, &programJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultAppData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading app state: %w", err)
	}

	data := &models.AppData{SchemaVersion: schemaVersion}
	if err := json.Unmarshal([]byte(profileJSON), &data.Profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if err := json.Unmarshal([]byte(barbellJSON), &data.BarbellInventory); err != nil {
		return nil, fmt.Errorf("decoding barbell inventory: %w", err)
	}
	if err := json.Unmarshal([]byte(beltJSON), &data.BeltInventory); err != nil {
		return nil, fmt.Errorf("decoding belt inventory: %w", err)
	}
	if programJSON.Valid {
		if err := json.Unmarshal([]byte(programJSON.String), &data.ActiveProgram); err != nil {
			return nil, fmt.Errorf("decoding active program: %w", err)
		}
	}

	if data.SessionHistory, err = db.ListSessions(ctx); err != nil {
		return nil, err
	}
	if data.MaxTestHistory, err = db.ListMaxTests(ctx); err != nil {
		return nil, err
	}
	// Empty histories stay empty arrays, never null: an exported document
	// must pass back through the import gate.
	if data.SessionHistory == nil {
		data.SessionHistory = []models.SessionRecord{}
	}
	if data.MaxTestHistory == nil {
		data.MaxTestHistory = []models.OneRepMaxTest{}
	}
	return data, nil
}

// SaveAppData overwrites the entire stored state with the given document.
// Session and max test histories are replaced wholesale, so this is also the
// commit path for imports.
func (db *DB) SaveAppData(ctx context.Context, data *models.AppData) error {
	profileJSON, err := json.Marshal(data.Profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	barbellJSON, err := json.Marshal(data.BarbellInventory)
	if err != nil {
		return fmt.Errorf("encoding barbell inventory: %w", err)
	}
	beltJSON, err := json.Marshal(data.BeltInventory)
	if err != nil {
		return fmt.Errorf("encoding belt inventory: %w", err)
	}
	var programJSON any
	if data.ActiveProgram != nil {
		raw, err := json.Marshal(data.ActiveProgram)
		if err != nil {
			return fmt.Errorf("encoding active program: %w", err)
		}
		programJSON = string(raw)
	}

	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO app_state (id, schema_version, profile, barbell_inventory, belt_inventory, active_program, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (id) DO UPDATE SET
			schema_version = excluded.schema_version,
			profile = excluded.profile,
			barbell_inventory = excluded.barbell_inventory,
			belt_inventory = excluded.belt_inventory,
			active_program = excluded.active_program,
			updated_at = excluded.updated_at
	`, data.SchemaVersion, string(profileJSON), string(barbellJSON), string(beltJSON), programJSON)
	if err != nil {
		return fmt.Errorf("saving app state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}
	for _, s := range data.SessionHistory {
		if err := insertSessionTx(ctx, tx, s); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM max_tests`); err != nil {
		return fmt.Errorf("clearing max tests: %w", err)
	}
	for _, t := range data.MaxTestHistory {
		if err := insertMaxTestTx(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing state: %w", err)
	}
	return nil
}
