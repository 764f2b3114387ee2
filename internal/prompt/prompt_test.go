package prompt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"vibestudio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, field)
}

func TestQuizPrompt(t *testing.T) {
	t.Parallel()

	q := NewQuiz()
	q.Title = "Cells"
	q.Subject = "Biology"
	q.Description = "Cell structure basics"
	q.QuestionCount = "5"
	q.QuestionTypes = []string{"multiple-choice", "true-false"}

	want := strings.Join([]string{
		"Create an educational quiz with the following details:",
		"Title: Cells",
		"Subject: Biology",
		"Grade Level: middle",
		"Description: Cell structure basics",
		"Number of Questions: 5",
		"Question Types: multiple-choice, true-false",
		"",
		"Include an answer key at the end.",
		"",
		"Format the quiz with appropriate headings, sections, and styling using Tailwind CSS.",
		"Make the quiz interactive with appropriate input elements for each question type.",
	}, "\n")

	require.NoError(t, q.Validate())
	assert.Equal(t, want, q.Prompt())

	q.IncludeAnswers = false
	assert.Contains(t, q.Prompt(), "Do not include answers.")
	assert.NotContains(t, q.Prompt(), "Include an answer key at the end.")
}

func TestLessonPlanPrompt_IncludesOutlineBeforeToggles(t *testing.T) {
	t.Parallel()

	l := NewLessonPlan()
	l.Title = "Fractions"
	l.Subject = "Math"
	l.Description = "Adding fractions with unlike denominators"
	l.IncludeImages = false

	p := l.Prompt()
	assert.Contains(t, p, "Duration: 60 minutes")
	assert.Contains(t, p, "\n\nThe lesson plan should include:\n1. Learning objectives\n")
	assert.Contains(t, p, "7. Conclusion\n\nDo not include images.\n\n")
	assert.True(t, strings.HasSuffix(p, "Format the content with appropriate headings, sections, and styling using Tailwind CSS."))
}

func TestFloorPlanPrompt_BothTogglesOff(t *testing.T) {
	t.Parallel()

	p := NewFloorPlan()
	p.ProjectName = "Lake House"
	p.SquareFootage = "1800"
	p.Description = "Two-storey family home"
	p.IncludeLabels = false
	p.IncludeDimensions = false

	out := p.Prompt()
	assert.Contains(t, out, "Rooms to Include: living, kitchen, bedroom, bathroom")
	assert.Contains(t, out, "\n\nDo not include labels.\nDo not include dimensions.\n\n")
}

func TestPrompt_InterpolatesVerbatim(t *testing.T) {
	t.Parallel()

	b := NewAdBanner()
	b.Headline = `<script>alert("x")</script>`
	b.ProductName = "Widget"
	b.Description = "Best widget"

	assert.Contains(t, b.Prompt(), `Headline: <script>alert("x")</script>`)
}

func TestToggleClauses(t *testing.T) {
	t.Parallel()

	toggles := []Toggle{
		EducationImagesToggle, PracticeToggle, AnswerKeyToggle,
		EmailImagesToggle, CallToActionToggle, LandingImagesToggle, LeadFormToggle,
		BannerImageToggle, AnimationToggle,
		FurnitureLabelsToggle, RoomLabelsToggle, DimensionsToggle, AnnotationsToggle, MultipleViewsToggle,
		ChartLabelsToggle, LegendToggle, MedicalImagesToggle, ReferencesToggle,
	}
	for _, tg := range toggles {
		assert.Equal(t, tg.On, tg.Clause(true))
		assert.Equal(t, tg.Off, tg.Clause(false))
		assert.NotEqual(t, tg.On, tg.Off)
	}
}

func TestValidate_MinimumLengths(t *testing.T) {
	t.Parallel()

	q := NewQuiz()
	q.Title = "Ab"
	q.Subject = "Bio"
	q.Description = "long enough text"
	assertValidationError(t, q.Validate(), "title")

	q.Title = "Abc"
	q.QuestionTypes = nil
	assertValidationError(t, q.Validate(), "questionTypes")

	d := NewInteriorDesign()
	d.Description = "A bright living room"
	assertValidationError(t, d.Validate(), "squareFootage")

	e := NewEmailTemplate()
	e.Subject = "Sale"
	e.ProductName = "Shoes"
	e.Description = "Spring collection launch"
	e.Audience = "us"
	assertValidationError(t, e.Validate(), "audience")

	b := NewAdBanner()
	b.Headline = "Go"
	b.ProductName = "Go"
	b.Description = "Fast"
	assertValidationError(t, b.Validate(), "description")
	b.Description = "Fast!"
	assert.NoError(t, b.Validate())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	f, err := Lookup("healthcare", "guide")
	require.NoError(t, err)
	assert.Equal(t, Healthcare, f.Category())
	assert.Equal(t, "health guide", f.ContentType())

	f, err = Lookup("education", "guide")
	require.NoError(t, err)
	assert.Equal(t, "study guide", f.ContentType())

	_, err = Lookup("healthcare", "infosheet")
	require.Error(t, err)
	assert.Equal(t, 404, models.StatusFor(err))
}

func TestLookup_DecodeKeepsDefaults(t *testing.T) {
	t.Parallel()

	f, err := Lookup("marketing", "landing")
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"productName":"Acme","industry":"SaaS","description":"Workflow automation","includeForms":false}`), f))
	l := f.(*LandingPage)
	assert.Equal(t, "modern", l.Style)
	assert.Equal(t, []string{"hero", "features", "testimonials", "cta"}, l.Sections)
	assert.False(t, l.IncludeForms)
	assert.True(t, l.IncludeImages)

	again, err := Lookup("marketing", "landing")
	require.NoError(t, err)
	assert.Empty(t, again.(*LandingPage).ProductName, "lookups must not share state")
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	require.Len(t, catalog, 11)
	assert.Equal(t, "architecture/interior", catalog[0].Key)

	seen := map[string]bool{}
	for _, d := range catalog {
		assert.False(t, seen[d.Key])
		seen[d.Key] = true
		assert.Equal(t, d.Category, d.Defaults.Category())
		assert.NotEmpty(t, d.Defaults.Prompt())
	}
}

func TestLoadValues(t *testing.T) {
	t.Parallel()

	f, err := Lookup("education", "quiz")
	require.NoError(t, err)

	doc := []byte(`
title: Photosynthesis
subject: Biology
description: How plants turn light into sugar
questionTypes: [multiple-choice, short-answer]
includeAnswers: false
`)
	require.NoError(t, LoadValues(f, doc))
	require.NoError(t, f.Validate())

	q := f.(*Quiz)
	assert.Equal(t, "middle", q.GradeLevel)
	assert.Equal(t, "10", q.QuestionCount)
	assert.Contains(t, q.Prompt(), "Question Types: multiple-choice, short-answer")
	assert.Contains(t, q.Prompt(), AnswerKeyToggle.Off)
}

func TestLoadValues_Malformed(t *testing.T) {
	t.Parallel()

	f, err := Lookup("marketing", "banner")
	require.NoError(t, err)
	assertValidationError(t, LoadValues(f, []byte("productName: [unterminated")), "")
}

// Every toggle renders exactly one of its two clauses. The other toggles of
// the form stay on so shared Off wording cannot mask a missing clause.
func TestFormToggles_ExactlyOneClause(t *testing.T) {
	type toggle struct {
		name   string
		clause Toggle
		set    func(on bool)
	}
	type formCase struct {
		form    Form
		toggles []toggle
	}

	cases := func() []formCase {
		quiz := NewQuiz()
		lesson := NewLessonPlan()
		guide := NewStudyGuide()
		email := NewEmailTemplate()
		landing := NewLandingPage()
		banner := NewAdBanner()
		interior := NewInteriorDesign()
		floor := NewFloorPlan()
		viz := NewVisualization()
		chart := NewChart()
		health := NewHealthGuide()
		return []formCase{
			{quiz, []toggle{{"answers", AnswerKeyToggle, func(on bool) { quiz.IncludeAnswers = on }}}},
			{lesson, []toggle{{"images", EducationImagesToggle, func(on bool) { lesson.IncludeImages = on }}}},
			{guide, []toggle{
				{"images", EducationImagesToggle, func(on bool) { guide.IncludeImages = on }},
				{"practice", PracticeToggle, func(on bool) { guide.IncludePractice = on }},
			}},
			{email, []toggle{
				{"images", EmailImagesToggle, func(on bool) { email.IncludeImages = on }},
				{"button", CallToActionToggle, func(on bool) { email.IncludeButton = on }},
			}},
			{landing, []toggle{
				{"images", LandingImagesToggle, func(on bool) { landing.IncludeImages = on }},
				{"forms", LeadFormToggle, func(on bool) { landing.IncludeForms = on }},
			}},
			{banner, []toggle{
				{"image", BannerImageToggle, func(on bool) { banner.IncludeImage = on }},
				{"animated", AnimationToggle, func(on bool) { banner.Animated = on }},
			}},
			{interior, []toggle{{"labels", FurnitureLabelsToggle, func(on bool) { interior.IncludeLabels = on }}}},
			{floor, []toggle{
				{"labels", RoomLabelsToggle, func(on bool) { floor.IncludeLabels = on }},
				{"dimensions", DimensionsToggle, func(on bool) { floor.IncludeDimensions = on }},
			}},
			{viz, []toggle{
				{"text", AnnotationsToggle, func(on bool) { viz.IncludeText = on }},
				{"views", MultipleViewsToggle, func(on bool) { viz.IncludeMultipleViews = on }},
			}},
			{chart, []toggle{
				{"labels", ChartLabelsToggle, func(on bool) { chart.IncludeLabels = on }},
				{"legend", LegendToggle, func(on bool) { chart.IncludeLegend = on }},
			}},
			{health, []toggle{
				{"images", MedicalImagesToggle, func(on bool) { health.IncludeImages = on }},
				{"references", ReferencesToggle, func(on bool) { health.IncludeReferences = on }},
			}},
		}
	}

	all := cases()
	require.Len(t, all, 11)
	for _, fc := range all {
		for i, tg := range fc.toggles {
			for _, on := range []bool{true, false} {
				name := string(fc.form.Category()) + "/" + fc.form.ContentType() + "/" + tg.name
				if !on {
					name += "_off"
				}
				t.Run(name, func(t *testing.T) {
					for j, other := range fc.toggles {
						if j != i {
							other.set(true)
						}
					}
					tg.set(on)

					got := fc.form.Prompt()
					want, unwanted := tg.clause.On, tg.clause.Off
					if !on {
						want, unwanted = unwanted, want
					}
					assert.Equal(t, 1, strings.Count(got, want), got)
					assert.NotContains(t, got, unwanted)
				})
			}
		}
	}
}
