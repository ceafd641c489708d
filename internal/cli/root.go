package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/strivetech/strivekit/internal/config"
	"github.com/strivetech/strivekit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "strivekit",
	Short: "Print the Strive Tech migration plan and export starter templates",
	Long: `strivekit prints the Strive Tech Next.js migration plan and writes the
starter files for the platform (CRM, CMS, AI chat, billing).

Running strivekit with no command does both, in order:
- plan:      print the phases and technology stack, save the plan as CSV
- templates: preview and save the five starter templates and the checklist

Existing output files are overwritten without confirmation.

Other commands:
- strivekit view              browse the plan interactively
- strivekit templates --watch keep exported files pinned to their templates`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runRootCommand,
}

// GlobalOptions holds global flags shared by every command
type GlobalOptions struct {
	OutputDir  string // Overrides output_dir from the config file
	ConfigPath string // Explicit config file; must exist when set
	LogFile    string // Append log lines here
	Verbose    bool   // Log to stderr when no log file is given
}

// GlobalOpts holds the parsed global flags (exported for testing)
var GlobalOpts GlobalOptions

func init() {
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.OutputDir, "output-dir", "", "Directory for exported files (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.ConfigPath, "config", "", "Path to config file (default: ./"+config.FileName+" if present)")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.LogFile, "log-file", "", "Append log lines to this file")
	rootCmd.PersistentFlags().BoolVarP(&GlobalOpts.Verbose, "verbose", "v", false, "Log progress to stderr")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// LoadConfigForCommand loads the config file and applies flag overrides
func LoadConfigForCommand() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if GlobalOpts.ConfigPath != "" {
		cfg, err = config.Load(GlobalOpts.ConfigPath, true)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", cwdErr)
		}
		cfg, err = config.LoadFromDir(cwd)
	}
	if err != nil {
		return nil, err
	}

	if GlobalOpts.OutputDir != "" {
		cfg.OutputDir = filepath.Clean(GlobalOpts.OutputDir)
	}
	return cfg, nil
}

// OpenLoggerForCommand returns the logger selected by the global flags.
// The caller closes it.
func OpenLoggerForCommand(cmd *cobra.Command) (*logging.Logger, error) {
	switch {
	case GlobalOpts.LogFile != "":
		return logging.Open(GlobalOpts.LogFile)
	case GlobalOpts.Verbose:
		return logging.New(cmd.ErrOrStderr()), nil
	default:
		return logging.Discard(), nil
	}
}

func runRootCommand(cmd *cobra.Command, args []string) error {
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
	log.Printf("full run: output_dir=%s", cfg.OutputDir)

	if err := emitPlan(out, cfg, log, planOptions{format: "csv"}); err != nil {
		return err
	}
	fmt.Fprintln(out)

	_, err = exportTemplates(out, cfg, log)
	return err
}
