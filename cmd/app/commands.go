package main

import (
	"github.com/urfave/cli/v3"
)

// getCommands assembles the CLI command tree: server lifecycle, tunnel key
// management, and client administration.
func getCommands(version string) []*cli.Command {
	var cmds []*cli.Command
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getAuthCommands()...)
	return cmds
}
