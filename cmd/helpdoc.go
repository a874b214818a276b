package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/help"
)

var helpDocCmd = &cobra.Command{
	Use:   "help-doc",
	Short: "Print the user help document",
	Long:  `Generates the help document from the configured facilities and intents. Prints Markdown by default; --html renders the same page served at /help.`,
	RunE:  runHelpDoc,
}

func init() {
	helpDocCmd.Flags().Bool("html", false, "render HTML instead of Markdown")
	helpDocCmd.Flags().String("output", "", "write to a file instead of stdout")
	rootCmd.AddCommand(helpDocCmd)
}

func runHelpDoc(cmd *cobra.Command, args []string) error {
	asHTML, _ := cmd.Flags().GetBool("html")
	output, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resp, err := buildResponder(cfg)
	if err != nil {
		return err
	}

	data := []byte(help.Markdown(resp))
	if asHTML {
		data, err = help.RenderHTML(string(data))
		if err != nil {
			return err
		}
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Help written to %s\n", output)
	return nil
}
