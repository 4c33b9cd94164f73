// ABOUTME: Progress CRUD operations for SQLite storage.
// ABOUTME: Includes per-exercise history and the cross-exercise recent feed.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/gymtrack/internal/models"
)

const progressColumns = "id, exercise_id, weight, reps, date, notes"

// ListProgress returns every progress entry ordered by id.
func (d *DB) ListProgress(ctx context.Context) ([]*models.Progress, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+progressColumns+` FROM progress ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	return scanProgressRows(rows)
}

// GetProgress retrieves a progress entry by id.
func (d *DB) GetProgress(ctx context.Context, id int64) (*models.Progress, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+progressColumns+` FROM progress WHERE id = ?`, id)
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "progress", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// CreateProgress stores a new progress entry and returns its id.
func (d *DB) CreateProgress(ctx context.Context, p *models.Progress) (int64, error) {
	result, err := d.db.ExecContext(ctx, `
		INSERT INTO progress (exercise_id, weight, reps, date, notes)
		VALUES (?, ?, ?, ?, ?)`,
		p.ExerciseID, p.Weight, p.Reps, p.Date, ptrArg(p.Notes))
	if err != nil {
		return 0, writeErr("create progress", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create progress: %w", err)
	}
	p.ID = id
	return id, nil
}

// UpdateProgress replaces every field of an existing progress entry.
func (d *DB) UpdateProgress(ctx context.Context, p *models.Progress) error {
	result, err := d.db.ExecContext(ctx, `
		UPDATE progress SET exercise_id = ?, weight = ?, reps = ?, date = ?, notes = ?
		WHERE id = ?`,
		p.ExerciseID, p.Weight, p.Reps, p.Date, ptrArg(p.Notes), p.ID)
	if err != nil {
		return writeErr("update progress", err)
	}
	return requireAffected(result, "progress", p.ID)
}

// DeleteProgress removes a progress entry. Deleting a missing id is a no-op.
func (d *DB) DeleteProgress(ctx context.Context, id int64) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM progress WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

// GetExerciseProgress returns an exercise's progress ordered by date, ties
// broken by id. Ascending (the zero Order) is the default.
func (d *DB) GetExerciseProgress(ctx context.Context, exerciseID int64, order Order) ([]*models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE exercise_id = ? ORDER BY date ASC, id ASC`
	if order == Descending {
		query = `SELECT ` + progressColumns + ` FROM progress WHERE exercise_id = ? ORDER BY date DESC, id DESC`
	}

	rows, err := d.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise progress: %w", err)
	}
	defer rows.Close()

	return scanProgressRows(rows)
}

// GetRecentProgress returns the most recent progress entries across all
// exercises, newest first. A limit of zero or less returns everything.
func (d *DB) GetRecentProgress(ctx context.Context, limit int) ([]*models.ProgressEntry, error) {
	query := `
		SELECT p.id, p.exercise_id, p.weight, p.reps, p.date, p.notes, e.name, e.muscle_group
		FROM progress p
		JOIN exercises e ON p.exercise_id = e.id
		ORDER BY p.date DESC, p.id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get recent progress: %w", err)
	}
	defer rows.Close()

	var entries []*models.ProgressEntry
	for rows.Next() {
		var pe models.ProgressEntry
		var notes sql.NullString
		err := rows.Scan(&pe.ID, &pe.ExerciseID, &pe.Weight, &pe.Reps, &pe.Date, &notes,
			&pe.ExerciseName, &pe.MuscleGroup)
		if err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		pe.Notes = nullStringPtr(notes)
		entries = append(entries, &pe)
	}
	return entries, rows.Err()
}

func scanProgress(row rowScanner) (*models.Progress, error) {
	var p models.Progress
	var notes sql.NullString
	if err := row.Scan(&p.ID, &p.ExerciseID, &p.Weight, &p.Reps, &p.Date, &notes); err != nil {
		return nil, err
	}
	p.Notes = nullStringPtr(notes)
	return &p, nil
}

func scanProgressRows(rows *sql.Rows) ([]*models.Progress, error) {
	var entries []*models.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}
