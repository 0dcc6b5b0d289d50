package robotdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AddGoal inserts a navigation goal and returns its assigned goal_id. On
// engine failure it logs the cause and reports ok=false.
func (d *Database) AddGoal(ctx context.Context, robotID int64, x, y, theta float64, timestamp int64) (int64, bool) {
	id, err := d.insertGoal(ctx, robotID, x, y, theta, timestamp)
	if err != nil {
		d.logger.Error("add goal", "db", d.path, "robot", robotID, "error", err)
		return 0, false
	}
	return id, true
}

func (d *Database) insertGoal(ctx context.Context, robotID int64, x, y, theta float64, timestamp int64) (int64, error) {
	var id int64

	err := d.withConn(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(
			ctx,
			`INSERT INTO goals (robot_id, x, y, theta, timestamp) VALUES (?, ?, ?, ?, ?);`,
			robotID, x, y, theta, timestamp,
		)
		if err != nil {
			return fmt.Errorf("%w: insert goal: %v", ErrWriteFailed, err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: goal id: %v", ErrWriteFailed, err)
		}
		return nil
	})

	return id, err
}

// LatestGoal returns the goal with the greatest timestamp for robotID, or
// nil when the robot has none. Engine errors also collapse to nil.
func (d *Database) LatestGoal(ctx context.Context, robotID int64) *Goal {
	goal, err := d.latestGoal(ctx, robotID)
	if err != nil {
		d.logger.Error("latest goal", "db", d.path, "robot", robotID, "error", err)
		return nil
	}
	return goal
}

func (d *Database) latestGoal(ctx context.Context, robotID int64) (*Goal, error) {
	var goal *Goal

	err := d.withConn(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(
			ctx,
			`SELECT goal_id, robot_id, x, y, theta, timestamp FROM goals
			 WHERE robot_id = ? ORDER BY timestamp DESC LIMIT 1;`,
			robotID,
		)

		var g Goal
		if err := row.Scan(&g.GoalID, &g.RobotID, &g.X, &g.Y, &g.Theta, &g.Timestamp); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("%w: latest goal: %v", ErrQueryFailed, err)
		}

		goal = &g
		return nil
	})

	return goal, err
}

// GoalHistory returns up to limit goals for robotID ordered by timestamp
// descending. A non-positive limit yields an empty result; engine errors
// collapse to an empty result.
func (d *Database) GoalHistory(ctx context.Context, robotID int64, limit int) []Goal {
	if limit <= 0 {
		return nil
	}

	goals, err := d.goalHistory(ctx, robotID, limit)
	if err != nil {
		d.logger.Error("goal history", "db", d.path, "robot", robotID, "error", err)
		return nil
	}
	return goals
}

func (d *Database) goalHistory(ctx context.Context, robotID int64, limit int) ([]Goal, error) {
	var goals []Goal

	err := d.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(
			ctx,
			`SELECT goal_id, robot_id, x, y, theta, timestamp FROM goals
			 WHERE robot_id = ? ORDER BY timestamp DESC LIMIT ?;`,
			robotID, limit,
		)
		if err != nil {
			return fmt.Errorf("%w: goal history: %v", ErrQueryFailed, err)
		}

		goals, err = scanGoals(rows)
		return err
	})

	return goals, err
}

// AllGoals returns every stored goal ordered by timestamp ascending. It is
// intended for exports; engine errors collapse to an empty result.
func (d *Database) AllGoals(ctx context.Context) []Goal {
	var goals []Goal

	err := d.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(
			ctx,
			`SELECT goal_id, robot_id, x, y, theta, timestamp FROM goals
			 ORDER BY timestamp ASC;`,
		)
		if err != nil {
			return fmt.Errorf("%w: all goals: %v", ErrQueryFailed, err)
		}

		goals, err = scanGoals(rows)
		return err
	})
	if err != nil {
		d.logger.Error("all goals", "db", d.path, "error", err)
		return nil
	}

	return goals
}

func scanGoals(rows *sql.Rows) ([]Goal, error) {
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.GoalID, &g.RobotID, &g.X, &g.Y, &g.Theta, &g.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: scan goal: %v", ErrQueryFailed, err)
		}
		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate goals: %v", ErrQueryFailed, err)
	}

	return goals, nil
}
