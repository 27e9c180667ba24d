package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage habitplant settings",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configReadCmd,
		configResetCmd,
	},
}.Build()
