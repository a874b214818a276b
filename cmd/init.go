package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize campusbot configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure the assistant's name, knowledge
files and HTTP server, and writes the result to the --config path. An existing
file is only replaced with --force.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if err := checkConfigWritable(cfgFile, force); err != nil {
		return err
	}

	cfg, err := config.RunWizard(cfgFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nWrote %s\n", cfgFile)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  campusbot chat      talk to the assistant in this terminal")
	fmt.Fprintf(out, "  campusbot server    serve the web chat on http://localhost:%d\n", cfg.Server.Port)
	return nil
}

// checkConfigWritable refuses to clobber an existing config unless forced.
func checkConfigWritable(path string, force bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil && !force:
		return fmt.Errorf("%s already exists; rerun with --force to replace it", path)
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking %s: %w", path, err)
	}
}
