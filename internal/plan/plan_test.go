package plan

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPhasesAreStatic(t *testing.T) {
	first := Phases()
	if len(first) != 6 {
		t.Fatalf("expected 6 phases, got %d", len(first))
	}

	// Mutating the returned copy must not leak into later calls
	first[0].Name = "changed"
	first[0].Tasks[0] = "changed"

	second := Phases()
	if second[0].Name != "1. Foundation & Migration" {
		t.Errorf("phase name leaked mutation: %q", second[0].Name)
	}
	if second[0].Tasks[0] != "Next.js setup with App Router" {
		t.Errorf("task list leaked mutation: %q", second[0].Tasks[0])
	}
}

func TestPhasePriorities(t *testing.T) {
	want := []Priority{
		PriorityCritical, PriorityHigh, PriorityHigh,
		PriorityMedium, PriorityHigh, PriorityCritical,
	}
	for i, p := range Phases() {
		if p.Priority != want[i] {
			t.Errorf("phase %d: expected priority %s, got %s", i, want[i], p.Priority)
		}
	}
}

func TestRenderPhases_ContainsEveryFieldInOrder(t *testing.T) {
	var buf bytes.Buffer
	phases := Phases()
	if err := RenderPhases(&buf, phases); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, PlanTitle+"\n\n"+TotalTimeline+"\n\n") {
		t.Errorf("expected banner and timeline at top, got:\n%s", out[:120])
	}

	// Every field must appear, and each after the one before it
	pos := 0
	for _, p := range phases {
		fields := []string{
			p.Name + "\n",
			"Duration: " + p.Duration + "\n",
			"Priority: " + string(p.Priority) + "\n",
			"Dependencies: " + p.Dependencies + "\n",
			"Key Tasks:\n",
		}
		for _, task := range p.Tasks {
			fields = append(fields, "  • "+task+"\n")
		}
		fields = append(fields, strings.Repeat("-", 60)+"\n")

		for _, f := range fields {
			idx := strings.Index(out[pos:], f)
			if idx < 0 {
				t.Fatalf("expected %q after offset %d", f, pos)
			}
			pos += idx + len(f)
		}
	}

	if pos != len(out) {
		t.Errorf("unexpected trailing output: %q", out[pos:])
	}
}

func TestRenderTechStack(t *testing.T) {
	var buf bytes.Buffer
	catalog := TechStack()
	if err := RenderTechStack(&buf, catalog); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\n"+StackTitle+"\n\n") {
		t.Errorf("expected stack title at top, got %q", out[:50])
	}

	prev := -1
	for _, c := range catalog {
		idx := strings.Index(out, c.Name+":\n")
		if idx < 0 {
			t.Fatalf("missing category %q", c.Name)
		}
		if idx <= prev {
			t.Errorf("category %q out of order", c.Name)
		}
		prev = idx
		for _, item := range c.Items {
			if !strings.Contains(out, "  • "+item+"\n") {
				t.Errorf("missing item %q", item)
			}
		}
	}

	if len(catalog) != 8 || catalog[0].Name != "Frontend" || catalog[7].Name != "Deployment & Monitoring" {
		t.Errorf("unexpected catalog order: %+v", catalog)
	}
}

func TestRendererHooks(t *testing.T) {
	r := Renderer{
		Heading:  func(s string) string { return "<" + s + ">" },
		Priority: func(p Priority) string { return strings.ToUpper(string(p)) },
	}

	var buf bytes.Buffer
	if err := r.RenderPhases(&buf, Phases()[:1]); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<"+PlanTitle+">") {
		t.Error("expected styled title")
	}
	if !strings.Contains(out, "<1. Foundation & Migration>") {
		t.Error("expected styled phase name")
	}
	if !strings.Contains(out, "Priority: CRITICAL") {
		t.Error("expected styled priority")
	}
}

func TestEncodeCSV_OneRowPerPhase(t *testing.T) {
	phases := Phases()
	data, err := EncodeCSV(phases)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != len(phases)+1 {
		t.Fatalf("expected %d records, got %d", len(phases)+1, len(records))
	}
	if strings.Join(records[0], ",") != "Phase,Duration,Key Tasks,Dependencies,Priority" {
		t.Errorf("unexpected header: %v", records[0])
	}

	for i, p := range phases {
		row := records[i+1]
		if row[0] != p.Name || row[1] != p.Duration || row[3] != p.Dependencies || row[4] != string(p.Priority) {
			t.Errorf("row %d does not match phase: %v", i, row)
		}
	}

	wantTasks := "['Stripe integration setup', 'Subscription management system', 'Payment processing workflows', 'Usage tracking and billing', 'Customer portal for billing']"
	if records[5][2] != wantTasks {
		t.Errorf("unexpected task serialization:\n got %s\nwant %s", records[5][2], wantTasks)
	}
}

func TestQuoteTask(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "'plain'"},
		{"it's", `"it's"`},
		{`say "it's"`, `'say "it\'s"'`},
		{`back\slash`, `'back\\slash'`},
	}

	for _, tt := range tests {
		if got := quoteTask(tt.input); got != tt.expected {
			t.Errorf("quoteTask(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"csv", FormatCSV, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.input, got, err)
		}
	}
}

func TestEncodeStructuredFormats(t *testing.T) {
	doc := NewDocument()

	jsonData, err := Encode(FormatJSON, doc)
	if err != nil {
		t.Fatalf("json encode failed: %v", err)
	}
	var fromJSON Document
	if err := json.Unmarshal(jsonData, &fromJSON); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(fromJSON.Phases) != 6 || len(fromJSON.TechStack) != 8 {
		t.Errorf("json lost data: %d phases, %d categories", len(fromJSON.Phases), len(fromJSON.TechStack))
	}

	yamlData, err := Encode(FormatYAML, doc)
	if err != nil {
		t.Fatalf("yaml encode failed: %v", err)
	}
	var fromYAML Document
	if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if fromYAML.Phases[3].Priority != PriorityMedium {
		t.Errorf("expected phase 4 priority Medium, got %s", fromYAML.Phases[3].Priority)
	}
	if fromYAML.TechStack[5].Items[1] != "Anthropic Claude API" {
		t.Errorf("unexpected yaml catalog item: %q", fromYAML.TechStack[5].Items[1])
	}

	if _, err := Encode(Format("toml"), doc); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
