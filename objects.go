package robotdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// AddObject inserts a detected object and returns its assigned object_id.
// robotID may be nil when the detecting robot is unknown. On engine failure
// it logs the cause and reports ok=false.
func (d *Database) AddObject(ctx context.Context, className string, x, y float64, robotID *int64, timestamp int64) (int64, bool) {
	id, err := d.insertObject(ctx, className, x, y, robotID, timestamp)
	if err != nil {
		d.logger.Error("add object", "db", d.path, "class", className, "error", err)
		return 0, false
	}
	return id, true
}

func (d *Database) insertObject(ctx context.Context, className string, x, y float64, robotID *int64, timestamp int64) (int64, error) {
	var detectedBy sql.NullInt64
	if robotID != nil {
		detectedBy = sql.NullInt64{Int64: *robotID, Valid: true}
	}

	var id int64

	err := d.withConn(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(
			ctx,
			`INSERT INTO objects (class_name, x, y, robot_id, timestamp) VALUES (?, ?, ?, ?, ?);`,
			className, x, y, detectedBy, timestamp,
		)
		if err != nil {
			return fmt.Errorf("%w: insert object: %v", ErrWriteFailed, err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: object id: %v", ErrWriteFailed, err)
		}
		return nil
	})

	return id, err
}

// RecentObjects returns detected objects ordered newest first, narrowed by
// the filter's conjunctive conditions. Engine errors collapse to an empty
// result.
func (d *Database) RecentObjects(ctx context.Context, filter ObjectFilter) []DetectedObject {
	objects, err := d.recentObjects(ctx, filter)
	if err != nil {
		d.logger.Error("recent objects", "db", d.path, "error", err)
		return nil
	}
	return objects
}

func (d *Database) recentObjects(ctx context.Context, filter ObjectFilter) ([]DetectedObject, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	query := `SELECT object_id, class_name, x, y, robot_id, timestamp FROM objects`
	var conds []string
	var args []interface{}

	if filter.ClassName != "" {
		conds = append(conds, "class_name = ?")
		args = append(args, filter.ClassName)
	}
	if filter.RobotID != nil {
		conds = append(conds, "robot_id = ?")
		args = append(args, *filter.RobotID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY timestamp DESC LIMIT ?"
	args = append(args, limit)

	var objects []DetectedObject

	err := d.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query+";", args...)
		if err != nil {
			return fmt.Errorf("%w: recent objects: %v", ErrQueryFailed, err)
		}

		objects, err = scanObjects(rows)
		return err
	})

	return objects, err
}

// AllObjects returns every stored object ordered by timestamp ascending. It
// is intended for exports; engine errors collapse to an empty result.
func (d *Database) AllObjects(ctx context.Context) []DetectedObject {
	var objects []DetectedObject

	err := d.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(
			ctx,
			`SELECT object_id, class_name, x, y, robot_id, timestamp FROM objects
			 ORDER BY timestamp ASC;`,
		)
		if err != nil {
			return fmt.Errorf("%w: all objects: %v", ErrQueryFailed, err)
		}

		objects, err = scanObjects(rows)
		return err
	})
	if err != nil {
		d.logger.Error("all objects", "db", d.path, "error", err)
		return nil
	}

	return objects
}

func scanObjects(rows *sql.Rows) ([]DetectedObject, error) {
	defer rows.Close()

	var objects []DetectedObject
	for rows.Next() {
		var (
			o          DetectedObject
			detectedBy sql.NullInt64
		)
		if err := rows.Scan(&o.ObjectID, &o.ClassName, &o.X, &o.Y, &detectedBy, &o.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: scan object: %v", ErrQueryFailed, err)
		}
		if detectedBy.Valid {
			id := detectedBy.Int64
			o.RobotID = &id
		}
		objects = append(objects, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate objects: %v", ErrQueryFailed, err)
	}

	return objects, nil
}
