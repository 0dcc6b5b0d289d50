package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mattbot/robotdb"
)

var (
	addObjectClass     string
	addObjectX         float64
	addObjectY         float64
	addObjectRobot     int64
	addObjectTimestamp int64

	recentLimit int
	recentClass string
	recentRobot int64
)

// NewAddObjectCmd creates the add-object command.
func NewAddObjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-object",
		Short: "Record a detected object",
		Args:  cobra.NoArgs,
		RunE:  runAddObject,
	}

	cmd.Flags().StringVar(&addObjectClass, "class", "", "Detected class label")
	cmd.Flags().Float64Var(&addObjectX, "x", 0, "Object X coordinate in meters")
	cmd.Flags().Float64Var(&addObjectY, "y", 0, "Object Y coordinate in meters")
	cmd.Flags().Int64Var(&addObjectRobot, "robot", 0, "Detecting robot identifier (omit if unknown)")
	cmd.Flags().Int64Var(&addObjectTimestamp, "timestamp", 0, "Unix timestamp in seconds (defaults to now)")
	_ = cmd.MarkFlagRequired("class")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func runAddObject(cmd *cobra.Command, args []string) error {
	ts := time.Now().Unix()
	if cmd.Flags().Changed("timestamp") {
		ts = addObjectTimestamp
	}

	var robotID *int64
	if cmd.Flags().Changed("robot") {
		robotID = &addObjectRobot
	}

	db := robotdb.New(dbPath, nil)
	if !db.EnsureObjectsTable(cmd.Context()) {
		return fmt.Errorf("initialize objects table at %s", dbPath)
	}

	id, ok := db.AddObject(cmd.Context(), addObjectClass, addObjectX, addObjectY, robotID, ts)
	if !ok {
		return fmt.Errorf("object not recorded")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "object %d recorded (%s)\n", id, addObjectClass)
	return nil
}

// NewRecentObjectsCmd creates the recent-objects command.
func NewRecentObjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent-objects",
		Short: "List recently detected objects, newest first",
		Args:  cobra.NoArgs,
		RunE:  runRecentObjects,
	}

	cmd.Flags().IntVar(&recentLimit, "limit", robotdb.DefaultQueryLimit, "Maximum number of objects to list")
	cmd.Flags().StringVar(&recentClass, "class", "", "Only objects of this class")
	cmd.Flags().Int64Var(&recentRobot, "robot", 0, "Only objects detected by this robot")

	return cmd
}

func runRecentObjects(cmd *cobra.Command, args []string) error {
	filter := robotdb.ObjectFilter{
		Limit:     recentLimit,
		ClassName: recentClass,
	}
	if cmd.Flags().Changed("robot") {
		filter.RobotID = &recentRobot
	}

	objects := robotdb.GetRecentDetectedObjects(cmd.Context(), dbPath, filter)
	if len(objects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no objects recorded")
		return nil
	}

	return printJSON(cmd, objects)
}
