package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mattbot/robotdb"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database file and its tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !robotdb.InitializeDatabase(cmd.Context(), dbPath) {
				return fmt.Errorf("initialize database at %s", dbPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database ready at %s\n", dbPath)
			return nil
		},
	}
}
