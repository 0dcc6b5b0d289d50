package robotdb

import (
	"context"
	"database/sql"
	"fmt"
)

var goalsSchema = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		goal_id INTEGER PRIMARY KEY,
		robot_id INTEGER NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		theta REAL NOT NULL,
		timestamp INTEGER DEFAULT (strftime('%s','now'))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_goals_robot_time ON goals(robot_id, timestamp);`,
}

var objectsSchema = []string{
	`CREATE TABLE IF NOT EXISTS objects (
		object_id INTEGER PRIMARY KEY,
		class_name TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		robot_id INTEGER,
		timestamp INTEGER DEFAULT (strftime('%s','now'))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_objects_class_time ON objects(class_name, timestamp);`,
}

// EnsureGoalsTable creates the goals table and its index if absent. Calling
// it repeatedly is harmless and never touches existing rows. It reports
// success; failures are logged and never escape.
func (d *Database) EnsureGoalsTable(ctx context.Context) bool {
	if err := d.ensureSchema(ctx, goalsSchema); err != nil {
		d.logger.Error("ensure goals table", "db", d.path, "error", err)
		return false
	}
	return true
}

// EnsureObjectsTable creates the objects table and its index if absent, with
// the same contract as EnsureGoalsTable.
func (d *Database) EnsureObjectsTable(ctx context.Context) bool {
	if err := d.ensureSchema(ctx, objectsSchema); err != nil {
		d.logger.Error("ensure objects table", "db", d.path, "error", err)
		return false
	}
	return true
}

func (d *Database) ensureSchema(ctx context.Context, stmts []string) error {
	return d.withConn(ctx, func(db *sql.DB) error {
		for _, stmt := range stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%w: %v", ErrSchema, err)
			}
		}
		return nil
	})
}
