// Package prompt turns the structured industry forms into the natural-language
// prompts sent to the content generator.
//
// Every form has a fixed template: a header line, one "Label: value" line per
// field, a block of toggle clauses and a block of trailing instructions.
// Values are interpolated verbatim and list values are joined with ", ".
package prompt

import "strings"

// Category is an industry vertical.
type Category string

const (
	Education    Category = "education"
	Marketing    Category = "marketing"
	Architecture Category = "architecture"
	Healthcare   Category = "healthcare"
)

// Form is a filled-in generator form.
type Form interface {
	// Category is the industry the form belongs to.
	Category() Category
	// ContentType names what gets generated, e.g. "lesson plan".
	ContentType() string
	// Prompt renders the form. It never fails; call Validate first.
	Prompt() string
	// Validate reports missing or too short fields as a validation AppError.
	Validate() error
}

// Toggle is a pair of fixed clauses selected by a boolean field.
type Toggle struct {
	On  string
	Off string
}

// Clause returns On when enabled and Off otherwise.
func (t Toggle) Clause(enabled bool) string {
	if enabled {
		return t.On
	}
	return t.Off
}

// Field is one "Label: value" line.
type Field struct {
	Label string
	Value string
}

// List joins selected options the way every template expects.
func List(values []string) string {
	return strings.Join(values, ", ")
}

// template is the common shape of every prompt.
type template struct {
	header   string
	fields   []Field
	extra    []string
	toggles  []string
	trailing []string
}

func (t template) render() string {
	var b strings.Builder
	b.WriteString(t.header)
	for _, f := range t.fields {
		b.WriteString("\n")
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	for _, block := range [][]string{t.extra, t.toggles, t.trailing} {
		if len(block) == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(strings.Join(block, "\n"))
	}
	return b.String()
}
