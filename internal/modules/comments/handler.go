package comments

import (
	"errors"
	"net/http"

	"sigmagram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for comments.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/comments")
	{
		group.POST("", h.Create)
		group.GET("/post/:postId", h.FindAllByPost)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Remove)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	comment, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create comment")
		return
	}
	response.Success(c, http.StatusCreated, comment)
}

func (h *Handler) FindAllByPost(c *gin.Context) {
	comments, err := h.service.FindAllByPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list comments")
		return
	}
	response.Success(c, http.StatusOK, comments)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	comment, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update comment")
		return
	}
	response.Success(c, http.StatusOK, comment)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete comment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case errors.Is(err, ErrNotCommentAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to modify this comment")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
