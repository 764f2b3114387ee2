package prompt

import (
	"fmt"
	"sort"

	"vibestudio/internal/models"

	"gopkg.in/yaml.v3"
)

// Key identifies a form by category and route slug, e.g. education/quiz.
type Key struct {
	Category Category
	Slug     string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Category, k.Slug)
}

var forms = map[Key]func() Form{
	{Education, "quiz"}:             func() Form { return NewQuiz() },
	{Education, "lesson"}:           func() Form { return NewLessonPlan() },
	{Education, "guide"}:            func() Form { return NewStudyGuide() },
	{Marketing, "email"}:            func() Form { return NewEmailTemplate() },
	{Marketing, "landing"}:          func() Form { return NewLandingPage() },
	{Marketing, "banner"}:           func() Form { return NewAdBanner() },
	{Architecture, "interior"}:      func() Form { return NewInteriorDesign() },
	{Architecture, "layout"}:        func() Form { return NewFloorPlan() },
	{Architecture, "visualization"}: func() Form { return NewVisualization() },
	{Healthcare, "chart"}:           func() Form { return NewChart() },
	{Healthcare, "guide"}:           func() Form { return NewHealthGuide() },
}

// Lookup returns a fresh form for category/slug pre-filled with its defaults.
// Decoding a request body over it keeps defaults for omitted fields.
func Lookup(category, slug string) (Form, error) {
	newForm, ok := forms[Key{Category(category), slug}]
	if !ok {
		return nil, models.NewNotFoundError("Form", fmt.Sprintf("%s/%s", category, slug))
	}
	return newForm(), nil
}

// Descriptor describes one available form.
type Descriptor struct {
	Key         string   `json:"key"`
	Category    Category `json:"category"`
	Slug        string   `json:"slug"`
	ContentType string   `json:"content_type"`
	Defaults    Form     `json:"defaults"`
}

// Catalog lists every form, sorted by key.
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(forms))
	for k, newForm := range forms {
		f := newForm()
		out = append(out, Descriptor{
			Key:         k.String(),
			Category:    k.Category,
			Slug:        k.Slug,
			ContentType: f.ContentType(),
			Defaults:    f,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// LoadValues overlays a YAML document of field values onto form.
// Keys use the same camelCase names as the JSON request bodies.
func LoadValues(form Form, doc []byte) error {
	if err := yaml.Unmarshal(doc, form); err != nil {
		return models.NewValidationError("invalid form values: " + err.Error())
	}
	return nil
}
