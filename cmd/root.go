package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "campusbot",
	Short: "Rule-based campus assistant for students",
	Long: `Campusbot answers students' questions about campus facilities (where
the library is, when the gym closes) and handles greetings and small talk
with a fixed set of canned replies. Chat in the terminal, over HTTP and
WebSocket, from Slack or Teams, or from an AI agent over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
