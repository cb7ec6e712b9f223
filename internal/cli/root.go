package cli

import (
	"github.com/pyboot-labs/pyboot/internal/branding"
	"github.com/pyboot-labs/pyboot/internal/config"
	"github.com/pyboot-labs/pyboot/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	debug bool

	// log is the pipeline logger, constructed once per invocation in
	// PersistentPreRun and handed to every component.
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new Python project from a declarative YAML
configuration: directory structure, pinned runtime, poetry manifest and
dependencies, container build file, CI workflow, and git initialization.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(debug)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		if log == nil {
			log = logger.New(false)
		}
		log.Errorf("%v", err)
		return err
	}
	return nil
}
