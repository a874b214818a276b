package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/knowledge"
	"github.com/ziadkadry99/campusbot/internal/responder"
)

// Version is set via ldflags at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of campusbot",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "campusbot %s\n", Version)
		fmt.Fprintf(out, "built-in knowledge: %d facilities, %d intent rules\n",
			knowledge.Default().Len(), len(responder.DefaultRules()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
