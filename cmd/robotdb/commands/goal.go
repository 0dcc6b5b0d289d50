package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mattbot/robotdb"
)

var (
	addGoalRobot     int64
	addGoalX         float64
	addGoalY         float64
	addGoalTheta     float64
	addGoalTimestamp int64

	latestGoalRobot int64

	historyRobot int64
	historyLimit int
)

// NewAddGoalCmd creates the add-goal command.
func NewAddGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-goal",
		Short: "Record a navigation goal for a robot",
		Args:  cobra.NoArgs,
		RunE:  runAddGoal,
	}

	cmd.Flags().Int64Var(&addGoalRobot, "robot", 0, "Robot identifier")
	cmd.Flags().Float64Var(&addGoalX, "x", 0, "Goal X coordinate in meters")
	cmd.Flags().Float64Var(&addGoalY, "y", 0, "Goal Y coordinate in meters")
	cmd.Flags().Float64Var(&addGoalTheta, "theta", 0, "Goal orientation in radians")
	cmd.Flags().Int64Var(&addGoalTimestamp, "timestamp", 0, "Unix timestamp in seconds (defaults to now)")
	_ = cmd.MarkFlagRequired("robot")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	_ = cmd.MarkFlagRequired("theta")

	return cmd
}

func runAddGoal(cmd *cobra.Command, args []string) error {
	ts := time.Now().Unix()
	if cmd.Flags().Changed("timestamp") {
		ts = addGoalTimestamp
	}

	db := robotdb.New(dbPath, nil)
	if !db.EnsureGoalsTable(cmd.Context()) {
		return fmt.Errorf("initialize goals table at %s", dbPath)
	}

	id, ok := db.AddGoal(cmd.Context(), addGoalRobot, addGoalX, addGoalY, addGoalTheta, ts)
	if !ok {
		return fmt.Errorf("goal not recorded")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "goal %d recorded for robot %d\n", id, addGoalRobot)
	return nil
}

// NewLatestGoalCmd creates the latest-goal command.
func NewLatestGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest-goal",
		Short: "Show the most recent goal for a robot",
		Args:  cobra.NoArgs,
		RunE:  runLatestGoal,
	}

	cmd.Flags().Int64Var(&latestGoalRobot, "robot", 0, "Robot identifier")
	_ = cmd.MarkFlagRequired("robot")

	return cmd
}

func runLatestGoal(cmd *cobra.Command, args []string) error {
	goal := robotdb.GetRobotGoal(cmd.Context(), dbPath, latestGoalRobot)
	if goal == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "no goal recorded for robot %d\n", latestGoalRobot)
		return nil
	}

	return printJSON(cmd, goal)
}

// NewGoalHistoryCmd creates the goal-history command.
func NewGoalHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal-history",
		Short: "List recent goals for a robot, newest first",
		Args:  cobra.NoArgs,
		RunE:  runGoalHistory,
	}

	cmd.Flags().Int64Var(&historyRobot, "robot", 0, "Robot identifier")
	cmd.Flags().IntVar(&historyLimit, "limit", robotdb.DefaultQueryLimit, "Maximum number of goals to list")
	_ = cmd.MarkFlagRequired("robot")

	return cmd
}

func runGoalHistory(cmd *cobra.Command, args []string) error {
	goals := robotdb.GetRobotGoalHistory(cmd.Context(), dbPath, historyRobot, historyLimit)
	if len(goals) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no goals recorded for robot %d\n", historyRobot)
		return nil
	}

	return printJSON(cmd, goals)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
