package prompt

import "vibestudio/internal/validation"

var (
	EmailImagesToggle = Toggle{
		On:  "Include placeholders for product images.",
		Off: "Do not include images.",
	}
	CallToActionToggle = Toggle{
		On:  "Include a call-to-action button.",
		Off: "Do not include a CTA button.",
	}
	LandingImagesToggle = Toggle{
		On:  "Include placeholders for relevant product images and icons.",
		Off: "Do not include images.",
	}
	LeadFormToggle = Toggle{
		On:  "Include a lead capture form with appropriate fields.",
		Off: "Do not include forms.",
	}
	BannerImageToggle = Toggle{
		On:  "Include a placeholder for a product image.",
		Off: "Do not include images.",
	}
	AnimationToggle = Toggle{
		On:  "Add simple CSS animations for elements.",
		Off: "No animations needed.",
	}
)

// EmailTemplate is the marketing email form.
type EmailTemplate struct {
	Subject       string `json:"subject" yaml:"subject"`
	CampaignType  string `json:"campaignType" yaml:"campaignType"`
	ProductName   string `json:"productName" yaml:"productName"`
	Description   string `json:"description" yaml:"description"`
	Audience      string `json:"audience" yaml:"audience"`
	IncludeImages bool   `json:"includeImages" yaml:"includeImages"`
	IncludeButton bool   `json:"includeButton" yaml:"includeButton"`
}

func NewEmailTemplate() *EmailTemplate {
	return &EmailTemplate{
		CampaignType:  "promotional",
		IncludeImages: true,
		IncludeButton: true,
	}
}

func (*EmailTemplate) Category() Category { return Marketing }
func (*EmailTemplate) ContentType() string { return "email template" }

func (e *EmailTemplate) Validate() error {
	var f validation.Fields
	f.MinLength("subject", e.Subject, 3, "Subject line is required")
	f.MinLength("productName", e.ProductName, 2, "Product name is required")
	f.MinLength("description", e.Description, 10, "Description must be at least 10 characters")
	f.MinLength("audience", e.Audience, 3, "Target audience is required")
	return f.Err()
}

func (e *EmailTemplate) Prompt() string {
	return template{
		header: "Create an email marketing template with the following details:",
		fields: []Field{
			{"Subject Line", e.Subject},
			{"Campaign Type", e.CampaignType},
			{"Product/Service Name", e.ProductName},
			{"Description", e.Description},
			{"Target Audience", e.Audience},
		},
		toggles: []string{
			EmailImagesToggle.Clause(e.IncludeImages),
			CallToActionToggle.Clause(e.IncludeButton),
		},
		trailing: []string{
			"Format the email with appropriate headings, sections, and styling using inline CSS and HTML.",
			"Make the content compelling, persuasive, and focused on the campaign goal.",
			"Ensure the design is responsive and works well in email clients.",
		},
	}.render()
}

// LandingPage is the marketing landing page form.
type LandingPage struct {
	ProductName   string   `json:"productName" yaml:"productName"`
	Industry      string   `json:"industry" yaml:"industry"`
	Description   string   `json:"description" yaml:"description"`
	Style         string   `json:"style" yaml:"style"`
	ColorScheme   string   `json:"colorScheme" yaml:"colorScheme"`
	Sections      []string `json:"sections" yaml:"sections"`
	IncludeImages bool     `json:"includeImages" yaml:"includeImages"`
	IncludeForms  bool     `json:"includeForms" yaml:"includeForms"`
}

func NewLandingPage() *LandingPage {
	return &LandingPage{
		Style:         "modern",
		ColorScheme:   "blue",
		Sections:      []string{"hero", "features", "testimonials", "cta"},
		IncludeImages: true,
		IncludeForms:  true,
	}
}

func (*LandingPage) Category() Category { return Marketing }
func (*LandingPage) ContentType() string { return "landing page" }

func (l *LandingPage) Validate() error {
	var f validation.Fields
	f.MinLength("productName", l.ProductName, 2, "Product name is required")
	f.MinLength("industry", l.Industry, 2, "Industry is required")
	f.MinLength("description", l.Description, 10, "Description must be at least 10 characters")
	f.NonEmpty("sections", l.Sections, "Select at least one section")
	return f.Err()
}

func (l *LandingPage) Prompt() string {
	return template{
		header: "Create a marketing landing page with the following details:",
		fields: []Field{
			{"Product/Service Name", l.ProductName},
			{"Industry", l.Industry},
			{"Description", l.Description},
			{"Style", l.Style},
			{"Color Scheme", l.ColorScheme},
			{"Sections to Include", List(l.Sections)},
		},
		toggles: []string{
			LandingImagesToggle.Clause(l.IncludeImages),
			LeadFormToggle.Clause(l.IncludeForms),
		},
		trailing: []string{
			"Format the landing page with appropriate headings, sections, and styling using Tailwind CSS.",
			"Make the content compelling, persuasive, and focused on conversion.",
			"Ensure the design is responsive and mobile-friendly.",
		},
	}.render()
}

// AdBanner is the marketing banner form.
type AdBanner struct {
	Headline     string `json:"headline" yaml:"headline"`
	BannerSize   string `json:"bannerSize" yaml:"bannerSize"`
	ProductName  string `json:"productName" yaml:"productName"`
	Description  string `json:"description" yaml:"description"`
	ColorScheme  string `json:"colorScheme" yaml:"colorScheme"`
	IncludeImage bool   `json:"includeImage" yaml:"includeImage"`
	Animated     bool   `json:"animated" yaml:"animated"`
}

func NewAdBanner() *AdBanner {
	return &AdBanner{
		BannerSize:   "leaderboard",
		ColorScheme:  "blue",
		IncludeImage: true,
	}
}

func (*AdBanner) Category() Category { return Marketing }
func (*AdBanner) ContentType() string { return "ad banner" }

func (a *AdBanner) Validate() error {
	var f validation.Fields
	f.MinLength("headline", a.Headline, 2, "Headline is required")
	f.MinLength("productName", a.ProductName, 2, "Product name is required")
	f.MinLength("description", a.Description, 5, "Description must be at least 5 characters")
	return f.Err()
}

func (a *AdBanner) Prompt() string {
	return template{
		header: "Create an HTML ad banner with the following details:",
		fields: []Field{
			{"Headline", a.Headline},
			{"Banner Size", a.BannerSize},
			{"Product/Service Name", a.ProductName},
			{"Description", a.Description},
			{"Color Scheme", a.ColorScheme},
		},
		toggles: []string{
			BannerImageToggle.Clause(a.IncludeImage),
			AnimationToggle.Clause(a.Animated),
		},
		trailing: []string{
			"Format the banner with appropriate styling using HTML and CSS.",
			"Make the content compelling and focused on driving clicks.",
			"Ensure the design fits the specified banner size.",
		},
	}.render()
}
