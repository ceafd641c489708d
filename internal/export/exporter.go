package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strivetech/strivekit/internal/config"
	"github.com/strivetech/strivekit/internal/fsutil"
	"github.com/strivetech/strivekit/internal/logging"
	"github.com/strivetech/strivekit/internal/plan"
	"github.com/strivetech/strivekit/internal/templates"
)

// FilesTitle heads the template export output
const FilesTitle = "=== IMPLEMENTATION FILES FOR STRIVE TECH NEXT.JS PLATFORM ==="

// Files outside the template set that are counted in the summary: the plan
// export, the schema and the checklist.
const extraSavePoints = 3

const filePerm = 0644

// Exporter prints template previews and writes the starter files
type Exporter struct {
	Out     io.Writer
	Config  *config.Config
	Log     *logging.Logger
	Heading func(string) string
}

// Result lists what a run wrote
type Result struct {
	Written []string
	Total   int
}

// New creates an exporter with the given config, writing console text to out
func New(out io.Writer, cfg *config.Config, log *logging.Logger) *Exporter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Exporter{Out: out, Config: cfg, Log: log}
}

func (e *Exporter) heading(s string) string {
	if e.Heading == nil {
		return s
	}
	return e.Heading(s)
}

// Run previews and writes every template, then the checklist, then prints
// the count summary. The first failed write aborts the run.
func (e *Exporter) Run() (*Result, error) {
	cfg := e.Config
	if err := EnsureDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	result := &Result{}
	fmt.Fprintf(e.Out, "%s\n\n", e.heading(FilesTitle))

	all := templates.All()
	for _, tmpl := range all {
		fmt.Fprintf(e.Out, "File: %s\n", tmpl.Name)
		fmt.Fprintln(e.Out, strings.Repeat("=", 50))
		fmt.Fprintln(e.Out, templates.Preview(tmpl.Content, cfg.PreviewLimit))
		fmt.Fprintf(e.Out, "\n%s\n\n", strings.Repeat("-", 60))

		path := cfg.TemplatePath(tmpl.Name)
		if err := fsutil.WriteFileAtomic(path, []byte(tmpl.Content), filePerm); err != nil {
			e.Log.Printf("template %s failed: %v", tmpl.Name, err)
			return result, fmt.Errorf("failed to save template %s: %w", tmpl.Name, err)
		}
		e.Log.Printf("wrote %s (%d bytes)", path, len(tmpl.Content))
		result.Written = append(result.Written, path)
	}

	fmt.Fprintf(e.Out, "All implementation files saved with '%s' prefix\n", cfg.FilePrefix)

	checklistPath := cfg.ChecklistPath()
	if err := fsutil.WriteFileAtomic(checklistPath, []byte(templates.Checklist()), filePerm); err != nil {
		e.Log.Printf("checklist failed: %v", err)
		return result, fmt.Errorf("failed to save checklist: %w", err)
	}
	e.Log.Printf("wrote %s", checklistPath)
	result.Written = append(result.Written, checklistPath)
	fmt.Fprintf(e.Out, "Migration checklist saved to '%s'\n", cfg.ChecklistFile)

	result.Total = len(all) + extraSavePoints
	fmt.Fprintf(e.Out, "\nTotal files created: %d\n", result.Total)

	return result, nil
}

// Managed maps every exporter output path to the content it must hold
func Managed(cfg *config.Config) map[string]string {
	files := make(map[string]string)
	for _, tmpl := range templates.All() {
		files[cfg.TemplatePath(tmpl.Name)] = tmpl.Content
	}
	files[cfg.ChecklistPath()] = templates.Checklist()
	return files
}

// SavePlan encodes the plan and writes it to path, replacing any existing file
func SavePlan(path string, format plan.Format) error {
	data, err := plan.Encode(format, plan.NewDocument())
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// EnsureDir creates the output directory if it does not exist
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
