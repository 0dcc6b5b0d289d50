package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mattbot/robotdb"
)

// runCLI executes the command tree with args and returns combined output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("robotdb %s: %v\noutput: %s", strings.Join(args, " "), err, buf.String())
	}

	return buf.String()
}

// runCLIExpectError executes the command tree expecting a failure.
func runCLIExpectError(t *testing.T, args ...string) {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	if err := cmd.Execute(); err == nil {
		t.Fatalf("robotdb %s: expected error, got none", strings.Join(args, " "))
	}
}

func TestCLIGoalFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "robot_data.db")

	runCLI(t, "init", "--db", db)
	runCLI(t, "add-goal", "--db", db, "--robot", "1", "--x", "2.5", "--y", "-3.0", "--theta", "1.57", "--timestamp", "1000")
	runCLI(t, "add-goal", "--db", db, "--robot", "1", "--x", "4.0", "--y", "5.0", "--theta", "0.0", "--timestamp", "2000")

	var latest robotdb.Goal
	out := runCLI(t, "latest-goal", "--db", db, "--robot", "1")
	if err := json.Unmarshal([]byte(out), &latest); err != nil {
		t.Fatalf("decode latest-goal output: %v\noutput: %s", err, out)
	}
	if latest.Timestamp != 2000 {
		t.Errorf("latest goal timestamp = %d, want 2000", latest.Timestamp)
	}

	var history []robotdb.Goal
	out = runCLI(t, "goal-history", "--db", db, "--robot", "1", "--limit", "10")
	if err := json.Unmarshal([]byte(out), &history); err != nil {
		t.Fatalf("decode goal-history output: %v\noutput: %s", err, out)
	}
	if len(history) != 2 || history[0].Timestamp != 2000 || history[1].Timestamp != 1000 {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestCLILatestGoalAbsent(t *testing.T) {
	db := filepath.Join(t.TempDir(), "robot_data.db")

	runCLI(t, "init", "--db", db)

	out := runCLI(t, "latest-goal", "--db", db, "--robot", "999")
	if !strings.Contains(out, "no goal recorded for robot 999") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestCLIObjectFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "robot_data.db")

	runCLI(t, "init", "--db", db)
	runCLI(t, "add-object", "--db", db, "--class", "cup", "--x", "1.0", "--y", "1.0", "--robot", "1", "--timestamp", "100")
	runCLI(t, "add-object", "--db", db, "--class", "cup", "--x", "2.0", "--y", "2.0", "--robot", "2", "--timestamp", "200")
	runCLI(t, "add-object", "--db", db, "--class", "chair", "--x", "3.0", "--y", "3.0", "--timestamp", "300")

	var objects []robotdb.DetectedObject
	out := runCLI(t, "recent-objects", "--db", db, "--class", "cup", "--robot", "1")
	if err := json.Unmarshal([]byte(out), &objects); err != nil {
		t.Fatalf("decode recent-objects output: %v\noutput: %s", err, out)
	}
	if len(objects) != 1 || objects[0].ClassName != "cup" || objects[0].RobotID == nil || *objects[0].RobotID != 1 {
		t.Errorf("unexpected objects: %+v", objects)
	}
}

func TestCLIExportGoals(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "robot_data.db")
	out := filepath.Join(dir, "goals.csv")

	runCLI(t, "init", "--db", db)
	runCLI(t, "add-goal", "--db", db, "--robot", "1", "--x", "1.0", "--y", "2.0", "--theta", "0.5", "--timestamp", "100")

	runCLI(t, "export", "--db", db, "--table", "goals", "--out", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("csv rows = %d, want 2 (header + goal)", len(records))
	}
	if records[0][0] != "goal_id" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][1] != "1" || records[1][5] != "100" {
		t.Errorf("unexpected goal row: %v", records[1])
	}
}

func TestCLIExportUnknownTable(t *testing.T) {
	db := filepath.Join(t.TempDir(), "robot_data.db")

	runCLI(t, "init", "--db", db)
	runCLIExpectError(t, "export", "--db", db, "--table", "sensors")
}

func TestCLISimulate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "robot_data.db")

	runCLI(t, "simulate", "--db", db, "--robot", "7", "--goals", "3", "--objects", "4", "--seed", "42")

	var history []robotdb.Goal
	out := runCLI(t, "goal-history", "--db", db, "--robot", "7", "--limit", "10")
	if err := json.Unmarshal([]byte(out), &history); err != nil {
		t.Fatalf("decode goal-history output: %v\noutput: %s", err, out)
	}
	if len(history) != 3 {
		t.Errorf("simulated goals = %d, want 3", len(history))
	}
}

func TestCLIInitUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	runCLIExpectError(t, "init", "--db", filepath.Join(blocker, "robot_data.db"))
}
