package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastgen-io/fastgen/internal/generator"
	"github.com/fastgen-io/fastgen/internal/output"
)

var listServicesCmd = &cobra.Command{
	Use:   "list-services",
	Short: "List the services that can be added to a project",
	Args:  cobra.NoArgs,
	RunE:  runListServices,
}

func init() {
	rootCmd.AddCommand(listServicesCmd)
}

func runListServices(cmd *cobra.Command, args []string) error {
	output.Init(verbosity > 0, jsonOutput)

	overlays := generator.New().Services()

	if jsonOutput {
		type svc struct {
			ID          string `json:"id"`
			Description string `json:"description"`
		}
		services := make([]svc, 0, len(overlays))
		for _, o := range overlays {
			services = append(services, svc{ID: o.ID(), Description: o.Describe()})
		}
		output.JSON(map[string]interface{}{"services": services})
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.StyleTitle.Render("Available services:"))
	for _, o := range overlays {
		fmt.Fprintf(out, "  %-14s %s\n", o.ID(), output.StyleMuted.Render(o.Describe()))
	}
	if len(overlays) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	return nil
}
