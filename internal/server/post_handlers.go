package server

import (
	"io"

	"vibestudio/internal/models"
	"vibestudio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Multipart upload of a caption and an image (png, jpeg, gif or webp)
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param caption formData string true "Caption, up to 2200 characters"
// @Param image formData file true "Image"
// @Success 201 {object} object{success=bool,post=models.Post}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	image, err := readUpload(c, "image")
	if err != nil {
		return writeFailure(c, "create post", err)
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  viewerID(c),
		Caption: c.FormValue("caption"),
		Image:   image,
	})
	if err != nil {
		return writeFailure(c, "create post", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

// readUpload returns the bytes of a multipart file field.
func readUpload(c *fiber.Ctx, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, models.NewValidationError("image is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return data, nil
}

// ToggleLike handles POST /api/posts/:id/like
// @Summary Toggle like
// @Description Likes the post, or removes the viewer's like if present
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{success=bool,post_id=int,liked=bool,likes=int}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /posts/{id}/like [post]
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.postService.ToggleLike(c.UserContext(), postID, viewerID(c))
	if err != nil {
		return writeFailure(c, "like post", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"post_id": state.PostID,
		"liked":   state.Liked,
		"likes":   state.Likes,
	})
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Add a comment
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{content=string} true "Comment"
// @Success 201 {object} object{success=bool,comment=models.CommentView}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeFailure(c, "add comment", models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), service.CreateCommentInput{
		UserID:  viewerID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return writeFailure(c, "add comment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"comment": comment,
	})
}
