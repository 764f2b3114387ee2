package prompt

import "vibestudio/internal/validation"

var (
	ChartLabelsToggle = Toggle{
		On:  "Include labels for the chart.",
		Off: "Do not include labels.",
	}
	LegendToggle = Toggle{
		On:  "Include a legend for the chart.",
		Off: "Do not include a legend.",
	}
	MedicalImagesToggle = Toggle{
		On:  "Include placeholders for relevant medical images and diagrams.",
		Off: "Do not include images.",
	}
	ReferencesToggle = Toggle{
		On:  "Include references or sources at the end.",
		Off: "Do not include references.",
	}
)

// Chart is the healthcare chart form.
type Chart struct {
	Title           string `json:"title" yaml:"title"`
	ChartType       string `json:"chartType" yaml:"chartType"`
	DataDescription string `json:"dataDescription" yaml:"dataDescription"`
	IncludeLabels   bool   `json:"includeLabels" yaml:"includeLabels"`
	IncludeLegend   bool   `json:"includeLegend" yaml:"includeLegend"`
}

func NewChart() *Chart {
	return &Chart{
		ChartType:     "bar",
		IncludeLabels: true,
		IncludeLegend: true,
	}
}

func (*Chart) Category() Category { return Healthcare }
func (*Chart) ContentType() string { return "chart" }

func (c *Chart) Validate() error {
	var f validation.Fields
	f.MinLength("title", c.Title, 3, "Title must be at least 3 characters")
	f.MinLength("dataDescription", c.DataDescription, 10, "Description must be at least 10 characters")
	return f.Err()
}

func (c *Chart) Prompt() string {
	return template{
		header: "Create a healthcare chart with the following details:",
		fields: []Field{
			{"Title", c.Title},
			{"Chart Type", c.ChartType},
			{"Data Description", c.DataDescription},
		},
		toggles: []string{
			ChartLabelsToggle.Clause(c.IncludeLabels),
			LegendToggle.Clause(c.IncludeLegend),
		},
		trailing: []string{
			"Create an HTML representation of a healthcare chart using div elements with Tailwind CSS for styling.",
			"Make the chart interactive and easy to understand.",
		},
	}.render()
}

// HealthGuide is the healthcare guide form.
type HealthGuide struct {
	Title             string   `json:"title" yaml:"title"`
	GuideType         string   `json:"guideType" yaml:"guideType"`
	Audience          string   `json:"audience" yaml:"audience"`
	Description       string   `json:"description" yaml:"description"`
	Sections          []string `json:"sections" yaml:"sections"`
	IncludeImages     bool     `json:"includeImages" yaml:"includeImages"`
	IncludeReferences bool     `json:"includeReferences" yaml:"includeReferences"`
}

func NewHealthGuide() *HealthGuide {
	return &HealthGuide{
		GuideType:         "condition",
		Audience:          "patients",
		Sections:          []string{"overview", "symptoms", "treatment", "prevention"},
		IncludeImages:     true,
		IncludeReferences: true,
	}
}

func (*HealthGuide) Category() Category { return Healthcare }
func (*HealthGuide) ContentType() string { return "health guide" }

func (g *HealthGuide) Validate() error {
	var f validation.Fields
	f.MinLength("title", g.Title, 3, "Title must be at least 3 characters")
	f.MinLength("description", g.Description, 10, "Description must be at least 10 characters")
	f.NonEmpty("sections", g.Sections, "Select at least one section")
	return f.Err()
}

func (g *HealthGuide) Prompt() string {
	return template{
		header: "Create a healthcare guide with the following details:",
		fields: []Field{
			{"Title", g.Title},
			{"Guide Type", g.GuideType},
			{"Target Audience", g.Audience},
			{"Description", g.Description},
			{"Sections to Include", List(g.Sections)},
		},
		toggles: []string{
			MedicalImagesToggle.Clause(g.IncludeImages),
			ReferencesToggle.Clause(g.IncludeReferences),
		},
		trailing: []string{
			"Format the guide with appropriate headings, sections, and styling using Tailwind CSS.",
			"Make the content accurate, clear, and easy to understand for the target audience.",
			"Use numbered steps for procedures and clear warnings for important information.",
		},
	}.render()
}
