package cli

import (
	"github.com/pyboot-labs/pyboot/internal/projectconfig"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Validate a project configuration document",
	Long: `Check a project configuration document against the schema without
creating anything on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := projectconfig.Load(args[0])
		if err != nil {
			return err
		}
		log.Infof("%s is valid (project %s, Python %s)", args[0], cfg.ProjectName, cfg.PythonVersion)
		return nil
	},
}
