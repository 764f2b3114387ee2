package server

import (
	"vibestudio/internal/generation"
	"vibestudio/internal/models"
	"vibestudio/internal/prompt"

	"github.com/gofiber/fiber/v2"
)

// ListForms handles GET /api/generate/forms
// @Summary List generator forms
// @Description Every industry form with its default values
// @Tags generate
// @Produce json
// @Success 200 {array} prompt.Descriptor
// @Router /generate/forms [get]
func (s *Server) ListForms(c *fiber.Ctx) error {
	return c.JSON(s.generationService.Forms())
}

// Generate handles POST /api/generate/:category/:form
// @Summary Generate content
// @Description Validates the form, renders its prompt and returns generated HTML
// @Tags generate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Industry" Enums(education, marketing, architecture, healthcare)
// @Param form path string true "Form slug"
// @Param request body object true "Form fields"
// @Success 200 {object} service.GeneratedContent
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate/{category}/{form} [post]
func (s *Server) Generate(c *fiber.Ctx) error {
	form, err := prompt.Lookup(c.Params("category"), c.Params("form"))
	if err != nil {
		return respondError(c, err)
	}

	// Omitted fields keep the form's defaults.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(form); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	out, err := s.generationService.Generate(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AnalyzeImage handles POST /api/generate/analyze-image
// @Summary Describe a reference image
// @Tags generate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{imageUrl=string,industry=string} true "Image reference"
// @Success 200 {object} object{description=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate/analyze-image [post]
func (s *Server) AnalyzeImage(c *fiber.Ctx) error {
	var req struct {
		ImageURL string `json:"imageUrl"`
		Industry string `json:"industry"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	description, err := s.generationService.DescribeImage(c.UserContext(), req.ImageURL, req.Industry)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"description": description})
}

// Preview handles POST /api/preview
// @Summary Preview generated markup
// @Description Wraps an HTML fragment in a standalone Tailwind document served under a sandboxing CSP
// @Tags generate
// @Accept json
// @Produce html
// @Param request body object{content=string} true "HTML fragment"
// @Success 200 {string} string
// @Router /preview [post]
func (s *Server) Preview(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	c.Set(fiber.HeaderContentSecurityPolicy, generation.PreviewCSP)
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(generation.WrapDocument(req.Content))
}
