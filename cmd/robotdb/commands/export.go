package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"mattbot/robotdb"
)

var (
	exportTable string
	exportOut   string
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a table as CSV, ordered by timestamp",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	cmd.Flags().StringVar(&exportTable, "table", "goals", "Table to export (goals or objects)")
	cmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	var out io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	db := robotdb.New(dbPath, nil)

	w := csv.NewWriter(out)
	defer w.Flush()

	switch exportTable {
	case "goals":
		if err := w.Write([]string{"goal_id", "robot_id", "x", "y", "theta", "timestamp"}); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, g := range db.AllGoals(cmd.Context()) {
			row := []string{
				strconv.FormatInt(g.GoalID, 10),
				strconv.FormatInt(g.RobotID, 10),
				fmt.Sprintf("%.4f", g.X),
				fmt.Sprintf("%.4f", g.Y),
				fmt.Sprintf("%.4f", g.Theta),
				strconv.FormatInt(g.Timestamp, 10),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	case "objects":
		if err := w.Write([]string{"object_id", "class_name", "x", "y", "robot_id", "timestamp"}); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, o := range db.AllObjects(cmd.Context()) {
			detectedBy := ""
			if o.RobotID != nil {
				detectedBy = strconv.FormatInt(*o.RobotID, 10)
			}
			row := []string{
				strconv.FormatInt(o.ObjectID, 10),
				o.ClassName,
				fmt.Sprintf("%.4f", o.X),
				fmt.Sprintf("%.4f", o.Y),
				detectedBy,
				strconv.FormatInt(o.Timestamp, 10),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown table %q (want goals or objects)", exportTable)
	}

	w.Flush()
	return w.Error()
}
