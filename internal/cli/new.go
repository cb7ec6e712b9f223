package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyboot-labs/pyboot/internal/execx"
	"github.com/pyboot-labs/pyboot/internal/gitrepo"
	"github.com/pyboot-labs/pyboot/internal/installer"
	"github.com/pyboot-labs/pyboot/internal/projectconfig"
	"github.com/pyboot-labs/pyboot/internal/pyproject"
	"github.com/pyboot-labs/pyboot/internal/scaffold"
	"github.com/pyboot-labs/pyboot/internal/structure"
	"github.com/pyboot-labs/pyboot/internal/toolchain"
	"github.com/spf13/cobra"
)

var newParentDir string

func init() {
	newCmd.Flags().StringVar(&newParentDir, "dir", "..", "Parent directory the project is created in")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <config.yaml>",
	Short: "Scaffold a new Python project from a configuration document",
	Long: `Scaffold a new Python project from a declarative YAML configuration.

The document names the project and describes its dependency groups,
directory structure, runtime version, and optional remote repository.

Example:
  pyboot new project.yaml --dir ~/code`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := projectconfig.Load(args[0])
		if err != nil {
			return err
		}
		return scaffoldProject(cfg)
	},
}

// scaffoldProject drives the pipeline: structure, toolchain, manifest,
// dependencies, auxiliary files, version control. Dependency failures are
// collected and summarized at the end instead of aborting the run.
func scaffoldProject(cfg *projectconfig.Config) error {
	parent, err := filepath.Abs(newParentDir)
	if err != nil {
		return fmt.Errorf("resolving parent directory: %w", err)
	}
	base := filepath.Join(parent, cfg.ProjectName)

	if err := os.MkdirAll(base, 0755); err != nil {
		return fmt.Errorf("creating project directory %s: %w", base, err)
	}
	log.Infof("scaffolding %s at %s", cfg.ProjectName, base)

	for _, tool := range []string{"pyenv", "poetry", "git", "pre-commit"} {
		if !execx.Which(tool) {
			log.Warnf("%s not found on PATH; related steps will fail", tool)
		}
	}

	if err := structure.Build(log, base, cfg.Structure); err != nil {
		return err
	}

	binder := toolchain.New(log)
	binder.PinPython(base, cfg.PythonVersion)
	if err := binder.InitPoetry(base, cfg.ProjectName); err != nil {
		return err
	}
	binder.BindEnv(base)

	if err := pyproject.Update(base, cfg); err != nil {
		return err
	}

	outcomes := installer.New(log).Install(base, cfg.Dependencies, cfg.DependencySources)

	if err := scaffold.New(log).WriteAll(base, cfg); err != nil {
		return err
	}

	if err := gitrepo.New(log).Setup(base, cfg.RemoteURL); err != nil {
		return err
	}

	if failed := installer.Failures(outcomes); len(failed) > 0 {
		log.Errorf("there were errors installing some dependencies:")
		for _, f := range failed {
			log.Errorf("  %v", f.Err)
		}
		log.Warnf("project %s set up at %s with %d dependency failure(s)", cfg.ProjectName, base, len(failed))
		return nil
	}

	log.Infof("project %s set up at %s", cfg.ProjectName, base)
	return nil
}
