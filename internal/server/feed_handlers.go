package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
// @Summary Home feed
// @Description Newest posts by the viewer and the users they follow. Empty without a session or when the store is unavailable.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FeedPost
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	return c.JSON(s.feedService.GetPosts(c.UserContext(), viewerID(c)))
}

// GetExplore handles GET /api/explore
// @Summary Explore grid
// @Description Newest posts across all users with like and comment counts
// @Tags feed
// @Produce json
// @Success 200 {array} models.ExplorePost
// @Router /explore [get]
func (s *Server) GetExplore(c *fiber.Ctx) error {
	return c.JSON(s.feedService.GetExplore(c.UserContext()))
}

// GetComments handles GET /api/posts/:id/comments
// @Summary List comments
// @Description All comments on a post, oldest first
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.CommentView
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.feedService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}
