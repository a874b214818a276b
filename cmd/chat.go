package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/session"
)

var (
	chatUser  string
	chatAgent string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the campus assistant in the terminal",
	Long: `Starts an interactive conversation. The assistant greets you by name
and answers until you say an exit phrase such as "bye" or "quit", or input
ends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(os.Stderr, cfg)

		resp, err := buildResponder(cfg)
		if err != nil {
			return err
		}

		opts := sessionOptions(cfg, logger)
		if chatAgent != "" {
			opts.AgentName = chatAgent
		}
		if chatUser != "" {
			opts.UserName = chatUser
		} else if isTerminal(os.Stdin) {
			name, err := promptUserName(opts.UserName)
			if err != nil {
				return err
			}
			opts.UserName = name
		}

		sess := session.New(resp, opts)
		return sess.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// promptUserName asks for the user's name; blank keeps the default.
func promptUserName(def string) (string, error) {
	prompt := promptui.Prompt{
		Label:   "What's your name",
		Default: def,
	}
	name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("name prompt: %w", err)
	}
	return strings.TrimSpace(name), nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func init() {
	chatCmd.Flags().StringVar(&chatUser, "user", "", "your name (skips the prompt)")
	chatCmd.Flags().StringVar(&chatAgent, "agent", "", "assistant name (random by default)")
	rootCmd.AddCommand(chatCmd)
}
