package plan

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding used when the plan is saved to disk
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for export formats other than csv, json or yaml
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (must be csv, json, or yaml)", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	return "." + string(f)
}

// CSVHeader lists the tabular export columns in order
var CSVHeader = []string{"Phase", "Duration", "Key Tasks", "Dependencies", "Priority"}

// Document is the structured form used by the json and yaml exports
type Document struct {
	Title     string     `json:"title" yaml:"title"`
	Timeline  string     `json:"timeline" yaml:"timeline"`
	Phases    []Phase    `json:"phases" yaml:"phases"`
	TechStack []Category `json:"tech_stack" yaml:"tech_stack"`
}

// NewDocument assembles the full plan document
func NewDocument() Document {
	return Document{
		Title:     PlanTitle,
		Timeline:  TotalTimeline,
		Phases:    Phases(),
		TechStack: TechStack(),
	}
}

// Encode serializes the plan in the requested format. CSV carries only the
// phases, one row each; json and yaml carry the whole document.
func Encode(format Format, doc Document) ([]byte, error) {
	switch format {
	case FormatCSV:
		return EncodeCSV(doc.Phases)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// EncodeCSV writes the header and one row per phase, preserving order
func EncodeCSV(phases []Phase) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(CSVHeader); err != nil {
		return nil, err
	}

	for _, p := range phases {
		row := []string{
			p.Name,
			p.Duration,
			formatTaskList(p.Tasks),
			p.Dependencies,
			string(p.Priority),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatTaskList renders tasks as a bracketed list of quoted strings,
// e.g. ['Stripe integration setup', 'Webhooks'], so spreadsheets keep
// the whole list in one cell.
func formatTaskList(tasks []string) string {
	quoted := make([]string, len(tasks))
	for i, t := range tasks {
		quoted[i] = quoteTask(t)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quoteTask(s string) string {
	// Switch to double quotes when that avoids escaping
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
