package prompt

import (
	"fmt"

	"vibestudio/internal/validation"
)

var (
	EducationImagesToggle = Toggle{
		On:  "Include placeholders for relevant educational images.",
		Off: "Do not include images.",
	}
	PracticeToggle = Toggle{
		On:  "Include practice questions or exercises at the end.",
		Off: "Do not include practice questions.",
	}
	AnswerKeyToggle = Toggle{
		On:  "Include an answer key at the end.",
		Off: "Do not include answers.",
	}
)

// Quiz is the education quiz form.
type Quiz struct {
	Title          string   `json:"title" yaml:"title"`
	Subject        string   `json:"subject" yaml:"subject"`
	GradeLevel     string   `json:"gradeLevel" yaml:"gradeLevel"`
	Description    string   `json:"description" yaml:"description"`
	QuestionCount  string   `json:"questionCount" yaml:"questionCount"`
	QuestionTypes  []string `json:"questionTypes" yaml:"questionTypes"`
	IncludeAnswers bool     `json:"includeAnswers" yaml:"includeAnswers"`
}

// NewQuiz returns a quiz form with the default selections.
func NewQuiz() *Quiz {
	return &Quiz{
		GradeLevel:     "middle",
		QuestionCount:  "10",
		QuestionTypes:  []string{"multiple-choice"},
		IncludeAnswers: true,
	}
}

func (*Quiz) Category() Category { return Education }
func (*Quiz) ContentType() string { return "quiz" }

func (q *Quiz) Validate() error {
	var f validation.Fields
	f.MinLength("title", q.Title, 3, "Title must be at least 3 characters")
	f.MinLength("subject", q.Subject, 2, "Subject is required")
	f.MinLength("description", q.Description, 10, "Description must be at least 10 characters")
	f.NonEmpty("questionTypes", q.QuestionTypes, "Select at least one question type")
	return f.Err()
}

func (q *Quiz) Prompt() string {
	return template{
		header: "Create an educational quiz with the following details:",
		fields: []Field{
			{"Title", q.Title},
			{"Subject", q.Subject},
			{"Grade Level", q.GradeLevel},
			{"Description", q.Description},
			{"Number of Questions", q.QuestionCount},
			{"Question Types", List(q.QuestionTypes)},
		},
		toggles: []string{AnswerKeyToggle.Clause(q.IncludeAnswers)},
		trailing: []string{
			"Format the quiz with appropriate headings, sections, and styling using Tailwind CSS.",
			"Make the quiz interactive with appropriate input elements for each question type.",
		},
	}.render()
}

// LessonPlan is the education lesson plan form. Duration is in minutes.
type LessonPlan struct {
	Title         string `json:"title" yaml:"title"`
	Subject       string `json:"subject" yaml:"subject"`
	GradeLevel    string `json:"gradeLevel" yaml:"gradeLevel"`
	Description   string `json:"description" yaml:"description"`
	Duration      string `json:"duration" yaml:"duration"`
	IncludeImages bool   `json:"includeImages" yaml:"includeImages"`
}

// LessonOutline is the fixed structure every lesson plan asks for.
var LessonOutline = []string{
	"The lesson plan should include:",
	"1. Learning objectives",
	"2. Required materials",
	"3. Introduction/warm-up activity",
	"4. Main content/instruction",
	"5. Student activities",
	"6. Assessment/evaluation",
	"7. Conclusion",
}

func NewLessonPlan() *LessonPlan {
	return &LessonPlan{
		GradeLevel:    "middle",
		Duration:      "60",
		IncludeImages: true,
	}
}

func (*LessonPlan) Category() Category { return Education }
func (*LessonPlan) ContentType() string { return "lesson plan" }

func (l *LessonPlan) Validate() error {
	var f validation.Fields
	f.MinLength("title", l.Title, 3, "Title must be at least 3 characters")
	f.MinLength("subject", l.Subject, 2, "Subject is required")
	f.MinLength("description", l.Description, 10, "Description must be at least 10 characters")
	return f.Err()
}

func (l *LessonPlan) Prompt() string {
	return template{
		header: "Create an educational lesson plan with the following details:",
		fields: []Field{
			{"Title", l.Title},
			{"Subject", l.Subject},
			{"Grade Level", l.GradeLevel},
			{"Description", l.Description},
			{"Duration", fmt.Sprintf("%s minutes", l.Duration)},
		},
		extra:   LessonOutline,
		toggles: []string{EducationImagesToggle.Clause(l.IncludeImages)},
		trailing: []string{
			"Format the content with appropriate headings, sections, and styling using Tailwind CSS.",
		},
	}.render()
}

// StudyGuide is the education study guide form.
type StudyGuide struct {
	Title           string   `json:"title" yaml:"title"`
	Subject         string   `json:"subject" yaml:"subject"`
	GradeLevel      string   `json:"gradeLevel" yaml:"gradeLevel"`
	Description     string   `json:"description" yaml:"description"`
	Sections        []string `json:"sections" yaml:"sections"`
	IncludeImages   bool     `json:"includeImages" yaml:"includeImages"`
	IncludePractice bool     `json:"includePractice" yaml:"includePractice"`
}

func NewStudyGuide() *StudyGuide {
	return &StudyGuide{
		GradeLevel:      "middle",
		Sections:        []string{"key-concepts", "examples", "summary"},
		IncludeImages:   true,
		IncludePractice: true,
	}
}

func (*StudyGuide) Category() Category { return Education }
func (*StudyGuide) ContentType() string { return "study guide" }

func (g *StudyGuide) Validate() error {
	var f validation.Fields
	f.MinLength("title", g.Title, 3, "Title must be at least 3 characters")
	f.MinLength("subject", g.Subject, 2, "Subject is required")
	f.MinLength("description", g.Description, 10, "Description must be at least 10 characters")
	f.NonEmpty("sections", g.Sections, "Select at least one section")
	return f.Err()
}

func (g *StudyGuide) Prompt() string {
	return template{
		header: "Create an educational study guide with the following details:",
		fields: []Field{
			{"Title", g.Title},
			{"Subject", g.Subject},
			{"Grade Level", g.GradeLevel},
			{"Description", g.Description},
			{"Sections to Include", List(g.Sections)},
		},
		toggles: []string{
			EducationImagesToggle.Clause(g.IncludeImages),
			PracticeToggle.Clause(g.IncludePractice),
		},
		trailing: []string{
			"Format the study guide with appropriate headings, sections, and styling using Tailwind CSS.",
			"Make the content comprehensive, clear, and educational.",
		},
	}.render()
}
