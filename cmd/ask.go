package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [utterance...]",
	Short: "Get a single reply from the campus assistant",
	Long:  `Runs one utterance through the assistant and prints the reply. Arguments are joined with spaces, so quoting is optional.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Bool("category", false, "also print the matched category and facility")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	showCategory, _ := cmd.Flags().GetBool("category")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resp, err := buildResponder(cfg)
	if err != nil {
		return err
	}

	m := resp.Match(strings.Join(args, " "))

	out := cmd.OutOrStdout()
	if showCategory {
		label := string(m.Category)
		if m.Facility != "" {
			label += ":" + m.Facility
		}
		fmt.Fprintf(out, "[%s] ", label)
	}
	fmt.Fprintln(out, m.Reply)
	return nil
}
