package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/knowledge"
)

var facilitiesCmd = &cobra.Command{
	Use:   "facilities",
	Short: "List the campus facilities the assistant knows",
	Long: `Lists the configured facilities with location and hours. With --export,
writes them to a YAML file that can be edited and added to knowledge_files.`,
	RunE: runFacilities,
}

func init() {
	facilitiesCmd.Flags().String("export", "", "write the facilities to this YAML file")
	rootCmd.AddCommand(facilitiesCmd)
}

func runFacilities(cmd *cobra.Command, args []string) error {
	export, _ := cmd.Flags().GetString("export")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resp, err := buildResponder(cfg)
	if err != nil {
		return err
	}
	facilities := resp.Knowledge().Facilities()

	if export != "" {
		if err := knowledge.Save(export, facilities); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d facilities to %s\n", len(facilities), export)
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tLOCATION\tHOURS")
	for _, f := range facilities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Key, f.DisplayName(), f.Location, f.Hours)
	}
	return tw.Flush()
}
