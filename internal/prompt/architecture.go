package prompt

import "vibestudio/internal/validation"

var (
	FurnitureLabelsToggle = Toggle{
		On:  "Include labels for furniture and design elements.",
		Off: "Do not include labels.",
	}
	RoomLabelsToggle = Toggle{
		On:  "Include labels for each room and area.",
		Off: "Do not include labels.",
	}
	DimensionsToggle = Toggle{
		On:  "Include dimensions for rooms and overall layout.",
		Off: "Do not include dimensions.",
	}
	AnnotationsToggle = Toggle{
		On:  "Include descriptive text and annotations.",
		Off: "Minimize text, focus on visual representation.",
	}
	MultipleViewsToggle = Toggle{
		On:  "Include multiple views/perspectives of the design.",
		Off: "Focus on a single main view.",
	}
)

// InteriorDesign is the architecture interior design form.
type InteriorDesign struct {
	RoomType      string   `json:"roomType" yaml:"roomType"`
	Style         string   `json:"style" yaml:"style"`
	SquareFootage string   `json:"squareFootage" yaml:"squareFootage"`
	Description   string   `json:"description" yaml:"description"`
	Furniture     []string `json:"furniture" yaml:"furniture"`
	ColorScheme   string   `json:"colorScheme" yaml:"colorScheme"`
	IncludeLabels bool     `json:"includeLabels" yaml:"includeLabels"`
}

func NewInteriorDesign() *InteriorDesign {
	return &InteriorDesign{
		RoomType:      "living",
		Style:         "modern",
		Furniture:     []string{"sofa", "coffee-table", "tv"},
		ColorScheme:   "neutral",
		IncludeLabels: true,
	}
}

func (*InteriorDesign) Category() Category { return Architecture }
func (*InteriorDesign) ContentType() string { return "interior design" }

func (d *InteriorDesign) Validate() error {
	var f validation.Fields
	f.MinLength("squareFootage", d.SquareFootage, 1, "Square footage is required")
	f.MinLength("description", d.Description, 10, "Description must be at least 10 characters")
	f.NonEmpty("furniture", d.Furniture, "Select at least one furniture item")
	return f.Err()
}

func (d *InteriorDesign) Prompt() string {
	return template{
		header: "Create an interior design layout with the following details:",
		fields: []Field{
			{"Room Type", d.RoomType},
			{"Design Style", d.Style},
			{"Square Footage", d.SquareFootage},
			{"Description", d.Description},
			{"Furniture to Include", List(d.Furniture)},
			{"Color Scheme", d.ColorScheme},
		},
		toggles: []string{FurnitureLabelsToggle.Clause(d.IncludeLabels)},
		trailing: []string{
			"Create an HTML representation of an interior design layout using div elements with Tailwind CSS for positioning and styling.",
			"Use different colors to represent different furniture pieces and design elements.",
			"Make the layout proportional and realistic based on typical room dimensions.",
			"Include design recommendations and style notes.",
		},
	}.render()
}

// FloorPlan is the architecture layout form.
type FloorPlan struct {
	ProjectName       string   `json:"projectName" yaml:"projectName"`
	BuildingType      string   `json:"buildingType" yaml:"buildingType"`
	SquareFootage     string   `json:"squareFootage" yaml:"squareFootage"`
	Description       string   `json:"description" yaml:"description"`
	Rooms             []string `json:"rooms" yaml:"rooms"`
	IncludeLabels     bool     `json:"includeLabels" yaml:"includeLabels"`
	IncludeDimensions bool     `json:"includeDimensions" yaml:"includeDimensions"`
}

func NewFloorPlan() *FloorPlan {
	return &FloorPlan{
		BuildingType:      "residential",
		Rooms:             []string{"living", "kitchen", "bedroom", "bathroom"},
		IncludeLabels:     true,
		IncludeDimensions: true,
	}
}

func (*FloorPlan) Category() Category { return Architecture }
func (*FloorPlan) ContentType() string { return "floor plan" }

func (p *FloorPlan) Validate() error {
	var f validation.Fields
	f.MinLength("projectName", p.ProjectName, 2, "Project name is required")
	f.MinLength("squareFootage", p.SquareFootage, 1, "Square footage is required")
	f.MinLength("description", p.Description, 10, "Description must be at least 10 characters")
	f.NonEmpty("rooms", p.Rooms, "Select at least one room")
	return f.Err()
}

func (p *FloorPlan) Prompt() string {
	return template{
		header: "Create a floor plan layout with the following details:",
		fields: []Field{
			{"Project Name", p.ProjectName},
			{"Building Type", p.BuildingType},
			{"Square Footage", p.SquareFootage},
			{"Description", p.Description},
			{"Rooms to Include", List(p.Rooms)},
		},
		toggles: []string{
			RoomLabelsToggle.Clause(p.IncludeLabels),
			DimensionsToggle.Clause(p.IncludeDimensions),
		},
		trailing: []string{
			"Create an HTML representation of a floor plan using div elements with Tailwind CSS for positioning and styling.",
			"Use different colors to represent different rooms and areas.",
			"Make the layout proportional and realistic based on typical room sizes.",
		},
	}.render()
}

// Visualization is the architecture presentation form.
type Visualization struct {
	ProjectName          string `json:"projectName" yaml:"projectName"`
	BuildingType         string `json:"buildingType" yaml:"buildingType"`
	VisualizationType    string `json:"visualizationType" yaml:"visualizationType"`
	Style                string `json:"style" yaml:"style"`
	Description          string `json:"description" yaml:"description"`
	IncludeText          bool   `json:"includeText" yaml:"includeText"`
	IncludeMultipleViews bool   `json:"includeMultipleViews" yaml:"includeMultipleViews"`
}

func NewVisualization() *Visualization {
	return &Visualization{
		BuildingType:      "residential",
		VisualizationType: "exterior",
		Style:             "modern",
		IncludeText:       true,
	}
}

func (*Visualization) Category() Category { return Architecture }
func (*Visualization) ContentType() string { return "visualization" }

func (v *Visualization) Validate() error {
	var f validation.Fields
	f.MinLength("projectName", v.ProjectName, 2, "Project name is required")
	f.MinLength("description", v.Description, 10, "Description must be at least 10 characters")
	return f.Err()
}

func (v *Visualization) Prompt() string {
	return template{
		header: "Create an architectural visualization presentation with the following details:",
		fields: []Field{
			{"Project Name", v.ProjectName},
			{"Building Type", v.BuildingType},
			{"Visualization Type", v.VisualizationType},
			{"Architectural Style", v.Style},
			{"Description", v.Description},
		},
		toggles: []string{
			AnnotationsToggle.Clause(v.IncludeText),
			MultipleViewsToggle.Clause(v.IncludeMultipleViews),
		},
		trailing: []string{
			"Create an HTML representation of an architectural visualization using div elements with Tailwind CSS for styling.",
			"Include placeholders for architectural renderings and diagrams.",
			"Create a professional presentation layout with appropriate sections.",
		},
	}.render()
}
