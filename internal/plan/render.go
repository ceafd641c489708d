package plan

import (
	"fmt"
	"io"
	"strings"
)

const (
	bullet        = "  • "
	separatorRule = 60
)

// Renderer writes the plan and technology catalog as console text.
// The zero value renders plain text; the hooks let callers add styling
// without changing the words that are written.
type Renderer struct {
	Heading  func(string) string
	Priority func(Priority) string
}

func (r Renderer) heading(s string) string {
	if r.Heading == nil {
		return s
	}
	return r.Heading(s)
}

func (r Renderer) priority(p Priority) string {
	if r.Priority == nil {
		return string(p)
	}
	return r.Priority(p)
}

// RenderPhases writes the plan banner followed by every phase in order
func (r Renderer) RenderPhases(w io.Writer, phases []Phase) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", r.heading(PlanTitle))
	fmt.Fprintf(&b, "%s\n\n", TotalTimeline)

	for _, p := range phases {
		fmt.Fprintf(&b, "%s\n", r.heading(p.Name))
		fmt.Fprintf(&b, "Duration: %s\n", p.Duration)
		fmt.Fprintf(&b, "Priority: %s\n", r.priority(p.Priority))
		fmt.Fprintf(&b, "Dependencies: %s\n", p.Dependencies)
		b.WriteString("Key Tasks:\n")
		for _, task := range p.Tasks {
			b.WriteString(bullet + task + "\n")
		}
		b.WriteString(strings.Repeat("-", separatorRule) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTechStack writes each category and its items in catalog order
func (r Renderer) RenderTechStack(w io.Writer, catalog []Category) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", r.heading(StackTitle))

	for _, c := range catalog {
		fmt.Fprintf(&b, "%s:\n", r.heading(c.Name))
		for _, item := range c.Items {
			b.WriteString(bullet + item + "\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPhases renders phases as plain text
func RenderPhases(w io.Writer, phases []Phase) error {
	return Renderer{}.RenderPhases(w, phases)
}

// RenderTechStack renders the catalog as plain text
func RenderTechStack(w io.Writer, catalog []Category) error {
	return Renderer{}.RenderTechStack(w, catalog)
}
