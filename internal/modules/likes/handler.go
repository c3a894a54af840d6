package likes

import (
	"errors"
	"net/http"

	"sigmagram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for likes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/posts/:id/like")
	{
		group.POST("", h.Like)
		group.DELETE("", h.Unlike)
	}
}

func (h *Handler) Like(c *gin.Context) {
	like, err := h.service.LikePost(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrAlreadyLiked) {
			response.Error(c, http.StatusConflict, "ALREADY_LIKED", "You have already liked this post")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIKE_FAILED", "Failed to like post")
		return
	}
	response.Success(c, http.StatusCreated, like)
}

func (h *Handler) Unlike(c *gin.Context) {
	if err := h.service.UnlikePost(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		if errors.Is(err, ErrLikeNotFound) {
			response.Error(c, http.StatusNotFound, "LIKE_NOT_FOUND", "Like not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UNLIKE_FAILED", "Failed to unlike post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post unliked"})
}
