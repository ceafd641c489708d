package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/strivetech/strivekit/internal/config"
	"github.com/strivetech/strivekit/internal/export"
	"github.com/strivetech/strivekit/internal/logging"
	"github.com/strivetech/strivekit/internal/watcher"
)

var templatesWatch bool

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"files", "export"},
	Short:   "Preview and save the starter templates and migration checklist",
	Long: `Preview and save the five starter templates (next.config.js, .env.example,
Prisma schema, API route example, dashboard component) and the migration
checklist.

Each template preview shows at most preview_limit characters (500 by
default). Files always receive the full content and are written with the
file_prefix (default "strive_tech_"), replacing any existing file.

With --watch, strivekit keeps running after the export and rewrites any
exported file that is edited, removed or renamed. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVarP(&templatesWatch, "watch", "w", false, "Keep exported files in sync with their templates until interrupted")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfigForCommand()
	if err != nil {
		return err
	}
	log, err := OpenLoggerForCommand(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	out := cmd.OutOrStdout()
	if _, err := exportTemplates(out, cfg, log); err != nil {
		return err
	}

	if !templatesWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTemplates(ctx, out, cfg, log)
}

// exportTemplates runs the template exporter against cfg
func exportTemplates(out io.Writer, cfg *config.Config, log *logging.Logger) (*export.Result, error) {
	exp := export.New(out, cfg, log)
	exp.Heading = styledHeading
	return exp.Run()
}

// watchTemplates restores drifted exports until ctx is cancelled
func watchTemplates(ctx context.Context, out io.Writer, cfg *config.Config, log *logging.Logger) error {
	w, err := watcher.New(export.Managed(cfg))
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintln(out)
	fmt.Fprintln(out, StyleDim.Render("Watching exported files for changes (Ctrl+C to stop)"))
	log.Printf("watching %s", cfg.OutputDir)

	err = w.Keep(ctx, func(e watcher.Event) {
		log.Printf("restored %s after it was %s", e.Path, e.Type)
		fmt.Fprintf(out, "Restored %s (%s)\n", displayName(cfg, e.Path), e.Type)
	})
	if err != nil {
		return fmt.Errorf("watch stopped: %w", err)
	}
	return nil
}
