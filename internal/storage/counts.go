// ABOUTME: Per-table row counts for the stats command.
// ABOUTME: A single query so the numbers are consistent with each other.
package storage

import (
	"context"
	"fmt"
)

// CountRows returns the number of rows in each table.
func (d *DB) CountRows(ctx context.Context) (*RowCounts, error) {
	var c RowCounts
	err := d.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM exercises),
			(SELECT COUNT(*) FROM workouts),
			(SELECT COUNT(*) FROM workout_exercises),
			(SELECT COUNT(*) FROM progress)`,
	).Scan(&c.Exercises, &c.Workouts, &c.WorkoutExercises, &c.Progress)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}
	return &c, nil
}
