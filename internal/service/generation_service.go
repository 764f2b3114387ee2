package service

import (
	"context"
	"net/url"
	"strings"

	"vibestudio/internal/models"
	"vibestudio/internal/prompt"
)

// Generator produces content from a prompt. *generation.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt, category, contentType string) (string, error)
	DescribeImage(ctx context.Context, imageURL, industry string) (string, error)
}

type GenerationService struct {
	gen Generator
}

// GeneratedContent is what a form submission produces.
type GeneratedContent struct {
	Category    prompt.Category `json:"category"`
	ContentType string          `json:"content_type"`
	Prompt      string          `json:"prompt"`
	Content     string          `json:"content"`
}

func NewGenerationService(gen Generator) *GenerationService {
	return &GenerationService{gen: gen}
}

// Forms lists every generator form with its defaults.
func (s *GenerationService) Forms() []prompt.Descriptor {
	return prompt.Catalog()
}

// Generate validates form, renders its prompt and asks the generator for content.
// Upstream failures surface as a GENERATION_FAILED AppError with a generic message.
func (s *GenerationService) Generate(ctx context.Context, form prompt.Form) (*GeneratedContent, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	text := form.Prompt()
	content, err := s.gen.Generate(ctx, text, string(form.Category()), form.ContentType())
	if err != nil {
		return nil, models.NewGenerationError(err)
	}

	return &GeneratedContent{
		Category:    form.Category(),
		ContentType: form.ContentType(),
		Prompt:      text,
		Content:     content,
	}, nil
}

// DescribeImage asks the generator to describe a reference image for an industry.
func (s *GenerationService) DescribeImage(ctx context.Context, imageURL, industry string) (string, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(imageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", models.NewValidationError("imageUrl must be an http(s) URL")
	}
	if strings.TrimSpace(industry) == "" {
		return "", models.NewValidationError("industry is required")
	}

	description, err := s.gen.DescribeImage(ctx, u.String(), industry)
	if err != nil {
		return "", models.NewGenerationError(err)
	}
	return description, nil
}
