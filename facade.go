package robotdb

import (
	"context"
	"time"
)

// One-shot helpers for callers that do not want to hold a Database value.
// Each binds to path for the duration of a single call; the Database itself
// keeps no open handle, so nothing outlives the call.

// InitializeDatabase creates the goals and objects tables at path. It
// reports false if either table could not be ensured.
func InitializeDatabase(ctx context.Context, path string) bool {
	db := New(path, nil)
	goalsOK := db.EnsureGoalsTable(ctx)
	objectsOK := db.EnsureObjectsTable(ctx)
	return goalsOK && objectsOK
}

// AddRobotGoal inserts a goal for robotID stamped with the current time.
func AddRobotGoal(ctx context.Context, path string, robotID int64, x, y, theta float64) (int64, bool) {
	return New(path, nil).AddGoal(ctx, robotID, x, y, theta, time.Now().Unix())
}

// GetRobotGoal returns the latest goal for robotID, or nil when it has none.
func GetRobotGoal(ctx context.Context, path string, robotID int64) *Goal {
	return New(path, nil).LatestGoal(ctx, robotID)
}

// GetRobotGoalHistory returns up to limit goals for robotID, newest first.
func GetRobotGoalHistory(ctx context.Context, path string, robotID int64, limit int) []Goal {
	return New(path, nil).GoalHistory(ctx, robotID, limit)
}

// AddDetectedObject inserts a detection stamped with the current time.
// robotID may be nil when the detecting robot is unknown.
func AddDetectedObject(ctx context.Context, path string, className string, x, y float64, robotID *int64) (int64, bool) {
	return New(path, nil).AddObject(ctx, className, x, y, robotID, time.Now().Unix())
}

// GetRecentDetectedObjects returns detections newest first, narrowed by
// filter.
func GetRecentDetectedObjects(ctx context.Context, path string, filter ObjectFilter) []DetectedObject {
	return New(path, nil).RecentObjects(ctx, filter)
}
