package main

import (
	"os"

	"mattbot/robotdb/cmd/robotdb/commands"
)

// Version information (set by the release build).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
