package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fastgen-io/fastgen/internal/generator"
	"github.com/fastgen-io/fastgen/internal/output"
	"github.com/fastgen-io/fastgen/internal/service"
)

var addCmd = &cobra.Command{
	Use:   "add <service> [path]",
	Short: "Add a service to an existing project",
	Long: `Applies a service overlay to an existing generated project.

The target must have been produced by fastgen create (it needs both a
pyproject.toml and a src/ directory). The path defaults to the current
directory.

Re-running add is safe: environment keys and dependency entries are only
appended when missing, and the service is recorded at most once.

Examples:
  fastgen add vercel
  fastgen add google_oauth ./myapp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	output.Init(verbosity > 0, jsonOutput)

	id := args[0]
	projectRoot := "."
	if len(args) == 2 {
		projectRoot = args[1]
	}
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolving project path: %w", err)
	}

	output.Step("Adding service: " + id)
	if err := generator.New().AddService(id, absRoot); err != nil {
		if errors.Is(err, service.ErrUnknownService) {
			return output.WrapErrorWithFix(err, "cannot add service",
				"run 'fastgen list-services' to see what is available")
		}
		return err
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"service": id,
			"dir":     absRoot,
		})
		return nil
	}

	color.Green("✓ Service '%s' added", id)
	return nil
}
