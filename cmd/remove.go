package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fastgen-io/fastgen/internal/generator"
	"github.com/fastgen-io/fastgen/internal/output"
)

var removeCmd = &cobra.Command{
	Use:   "remove <service> [path]",
	Short: "Remove a service from a project",
	Long: `Removes a service overlay's files from a generated project.

Only the files the overlay created are deleted. Environment keys and
dependency entries appended when the service was added stay in place; remove
them manually if they are no longer wanted.

Examples:
  fastgen remove vercel
  fastgen remove google_oauth ./myapp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	output.Step("Removing service: " + id)
	removed, err := generator.New().RemoveService(id, absRoot)
	if err != nil {
		return err
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"service": id,
			"dir":     absRoot,
			"removed": removed,
		})
		return nil
	}

	if removed {
		output.Success(fmt.Sprintf("Service '%s' removed", id))
		output.Info("environment and dependency entries added by the service were kept")
	} else {
		output.Info("no files found to remove", "service", id)
	}
	return nil
}
