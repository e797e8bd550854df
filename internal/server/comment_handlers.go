// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"grove/internal/models"
	"grove/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
//
// Returns one page of the post's comments, newest first, as
// {"comments": [...], "totalPages": N, "count": M}.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	pq := parsePageQuery(c)
	page, err := s.commentService.ListComments(c.Context(), service.ListCommentsInput{
		PostID: postID,
		Page:   pq.Page,
		Limit:  pq.Limit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(page)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
