package commands

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"mattbot/robotdb"
)

var (
	simRobot   int64
	simGoals   int
	simObjects int
	simSeed    int64
)

var simClasses = []string{"cup", "chair", "person", "door", "box"}

// NewSimulateCmd creates the simulate command, which fills the database with
// randomized goals and detections for demos and load checks.
func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Write randomized goals and detections",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}

	cmd.Flags().Int64Var(&simRobot, "robot", 1, "Robot identifier to simulate")
	cmd.Flags().IntVar(&simGoals, "goals", 5, "Number of goals to write")
	cmd.Flags().IntVar(&simObjects, "objects", 20, "Number of detections to write")
	cmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (defaults to current time)")

	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	seed := simSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx := cmd.Context()
	db := robotdb.New(dbPath, nil)
	if !db.EnsureGoalsTable(ctx) || !db.EnsureObjectsTable(ctx) {
		return fmt.Errorf("initialize database at %s", dbPath)
	}

	now := time.Now().Unix()

	for i := 0; i < simGoals; i++ {
		x := rng.Float64()*20 - 10
		y := rng.Float64()*20 - 10
		theta := rng.Float64()*2*math.Pi - math.Pi
		ts := now - int64(rng.Intn(3600))

		if _, ok := db.AddGoal(ctx, simRobot, x, y, theta, ts); !ok {
			return fmt.Errorf("simulated goal not recorded")
		}
	}

	for i := 0; i < simObjects; i++ {
		class := simClasses[rng.Intn(len(simClasses))]
		x := rng.Float64()*20 - 10
		y := rng.Float64()*20 - 10
		ts := now - int64(rng.Intn(3600))

		// Roughly a quarter of detections come from an unknown robot.
		var robotID *int64
		if rng.Intn(4) != 0 {
			robotID = &simRobot
		}

		if _, ok := db.AddObject(ctx, class, x, y, robotID, ts); !ok {
			return fmt.Errorf("simulated object not recorded")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "simulated %d goals and %d objects for robot %d\n", simGoals, simObjects, simRobot)
	return nil
}
