package robotdb

// DefaultQueryLimit caps result sets when the caller does not ask for a
// specific limit.
const DefaultQueryLimit = 10

// Goal is a navigation target issued to a robot.
type Goal struct {
	GoalID    int64   `json:"goal_id"`
	RobotID   int64   `json:"robot_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Theta     float64 `json:"theta"`
	Timestamp int64   `json:"timestamp"`
}

// DetectedObject is a single classified sensor observation. RobotID is nil
// when the detecting robot is unknown.
type DetectedObject struct {
	ObjectID  int64   `json:"object_id"`
	ClassName string  `json:"class_name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	RobotID   *int64  `json:"robot_id,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// ObjectFilter narrows RecentObjects results. The zero value of ClassName or
// RobotID means "no filter"; a Limit of zero or below falls back to
// DefaultQueryLimit. Filters are conjunctive.
type ObjectFilter struct {
	Limit     int
	ClassName string
	RobotID   *int64
}
