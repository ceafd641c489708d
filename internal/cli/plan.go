package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strivetech/strivekit/internal/config"
	"github.com/strivetech/strivekit/internal/export"
	"github.com/strivetech/strivekit/internal/logging"
	"github.com/strivetech/strivekit/internal/plan"
)

var (
	planFormat string
	planOutput string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the migration plan and technology stack, then save the plan",
	Long: `Print every migration phase (duration, priority, dependencies, key tasks)
and the recommended technology stack, then save the phases to a file.

The default export is CSV with one row per phase, written to
strive_tech_migration_plan.csv in the output directory. JSON and YAML exports
also carry the technology stack.

Examples:
  # Print and save the plan as CSV
  strivekit plan

  # Save as YAML next to the other exports
  strivekit plan --format yaml --output-dir build

  # Save to a specific file
  strivekit plan --format json --output plan.json`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

type planOptions struct {
	format string
	output string
}

func init() {
	planCmd.Flags().StringVar(&planFormat, "format", "csv", "Export format: csv, json, or yaml")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Output file path (default: plan_file in the output directory)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfigForCommand()
	if err != nil {
		return err
	}
	log, err := OpenLoggerForCommand(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	return emitPlan(cmd.OutOrStdout(), cfg, log, planOptions{format: planFormat, output: planOutput})
}

// emitPlan prints the phases and stack, then saves the plan export
func emitPlan(out io.Writer, cfg *config.Config, log *logging.Logger, opts planOptions) error {
	format, err := plan.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	path := planPath(cfg, format, opts.output)

	r := consoleRenderer()
	if err := r.RenderPhases(out, plan.Phases()); err != nil {
		return fmt.Errorf("failed to print plan: %w", err)
	}
	if err := r.RenderTechStack(out, plan.TechStack()); err != nil {
		return fmt.Errorf("failed to print technology stack: %w", err)
	}

	if opts.output == "" {
		if err := export.EnsureDir(cfg.OutputDir); err != nil {
			return err
		}
	}
	if err := export.SavePlan(path, format); err != nil {
		log.Printf("plan export failed: %v", err)
		return err
	}
	log.Printf("wrote %s (%s)", path, format)

	fmt.Fprintln(out, StyleSuccess.Render(fmt.Sprintf("Implementation plan saved to '%s'", displayName(cfg, path))))
	return nil
}

// planPath resolves where the plan is saved. Non-CSV formats swap the
// extension of the configured plan file.
func planPath(cfg *config.Config, format plan.Format, output string) string {
	if output != "" {
		return output
	}
	if format == plan.FormatCSV {
		return cfg.PlanPath()
	}
	name := strings.TrimSuffix(cfg.PlanFile, filepath.Ext(cfg.PlanFile)) + format.Extension()
	return filepath.Join(cfg.OutputDir, name)
}

// displayName shows paths inside the output directory by file name only
func displayName(cfg *config.Config, path string) string {
	if filepath.Dir(path) == filepath.Clean(cfg.OutputDir) {
		return filepath.Base(path)
	}
	return path
}
