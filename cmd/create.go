package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fastgen-io/fastgen/internal/generator"
	"github.com/fastgen-io/fastgen/internal/output"
	"github.com/fastgen-io/fastgen/internal/project"
	"github.com/fastgen-io/fastgen/internal/wizard"
)

var createOutputDir string

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new FastAPI project",
	Long: `Creates a new FastAPI project from the base template.

The project name must start with a letter and contain only letters, digits,
underscores, or hyphens. Pass "." to scaffold into the current directory;
this relaxes the emptiness check and disables rollback on failure.

When the name is omitted, an interactive wizard asks for it (and for any
service overlays to apply right away).

Examples:
  fastgen create myapp
  fastgen create myapp --output ~/projects
  fastgen create .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createOutputDir, "output", "o", ".", "directory to create the project in")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	output.Init(verbosity > 0, jsonOutput)

	gen := generator.New()

	var name string
	var services []string
	if len(args) == 1 {
		name = args[0]
	} else {
		if effectiveCIMode() {
			return output.NewErrorWithFix(
				"--ci mode requires a project name argument",
				"pass the name directly: fastgen create <name>",
			)
		}
		ids := make([]string, 0, len(gen.Services()))
		for _, o := range gen.Services() {
			ids = append(ids, o.ID())
		}
		input, err := wizard.NewCreateWizard(nil, ids).Run()
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				output.Warn("create wizard cancelled")
				return nil
			}
			return fmt.Errorf("running create wizard: %w", err)
		}
		name = input.ProjectName
		services = input.Services
	}

	result, err := gen.Create(generator.CreateOptions{Name: name, OutputDir: createOutputDir})
	if err != nil {
		if errors.Is(err, project.ErrDirectoryNotEmpty) {
			return output.WrapErrorWithFix(err, "cannot create project",
				"choose another name, or pass '.' to scaffold into the current directory")
		}
		return err
	}

	for _, id := range services {
		output.Step("Adding service: " + id)
		if err := gen.AddService(id, result.Dir); err != nil {
			return fmt.Errorf("adding service %s: %w", id, err)
		}
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"project":  result.ProjectName,
			"dir":      result.Dir,
			"files":    len(result.Actions),
			"services": services,
		})
		return nil
	}

	color.Green("✓ Project '%s' created successfully", result.ProjectName)
	fmt.Printf("\n  Location: %s\n", result.Dir)
	fmt.Println()
	fmt.Println(output.StyleBold.Render("Next steps:"))
	fmt.Printf("  cd %s\n", result.Dir)
	fmt.Println("  pip install -r requirements.txt")
	fmt.Println("  uvicorn src.index:app --reload")
	fmt.Println()
	fmt.Println("Add services later with:")
	fmt.Println("  fastgen add vercel")
	fmt.Println("  fastgen add google_oauth")
	return nil
}
