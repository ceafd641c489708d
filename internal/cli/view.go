package cli

import (
	"errors"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/strivetech/strivekit/internal/plan"
	"github.com/strivetech/strivekit/internal/tui"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("view requires an interactive terminal (use 'strivekit plan' for piped output)")

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the migration plan and technology stack interactively",
	Long: `Open a full-screen pager over the migration plan and technology stack.

Keys:
  tab          switch between plan and stack
  ↑/↓ j/k      scroll
  pgup/pgdn    page
  q, esc       quit

Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	planText, stackText, err := renderPages()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewViewerModel(planText, stackText), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// renderPages renders the plan and stack for the pager
func renderPages() (string, string, error) {
	r := consoleRenderer()

	var planText strings.Builder
	if err := r.RenderPhases(&planText, plan.Phases()); err != nil {
		return "", "", err
	}

	var stackText strings.Builder
	if err := r.RenderTechStack(&stackText, plan.TechStack()); err != nil {
		return "", "", err
	}

	return planText.String(), strings.TrimLeft(stackText.String(), "\n"), nil
}
